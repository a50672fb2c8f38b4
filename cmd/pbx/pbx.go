package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/pbx/config"
	"github.com/signadot/pbx/libdiff"
	"github.com/signadot/pbx/project"

	"github.com/charmbracelet/log"
	"github.com/scott-cotton/cli"
)

func pbxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	cfg.Log = newLogger(os.Stderr, level)

	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// projectPath returns the project named by -p, or the single .xcodeproj
// in the current directory.
func (cfg *MainConfig) projectPath() (string, error) {
	if cfg.Project != "" {
		return cfg.Project, nil
	}
	ms, err := filepath.Glob("*.xcodeproj")
	if err != nil {
		return "", err
	}
	switch len(ms) {
	case 0:
		return "", fmt.Errorf("%w: no .xcodeproj in the current directory, use -p", cli.ErrUsage)
	case 1:
		return ms[0], nil
	}
	return "", fmt.Errorf("%w: %d projects in the current directory, use -p", cli.ErrUsage, len(ms))
}

// loadTool sets cfg.Tool from -c, or from the first configuration file
// found at or above dir.
func (cfg *MainConfig) loadTool(dir string) error {
	if cfg.Tool != nil {
		return nil
	}
	if cfg.Config != "" {
		tool, err := config.Load(cfg.Config)
		if err != nil {
			return err
		}
		cfg.Tool = tool
		return nil
	}
	tool, path, err := config.Find(dir)
	if err != nil {
		return err
	}
	if path != "" {
		cfg.Log.Debug("using configuration", "path", path)
	}
	cfg.Tool = tool
	return nil
}

// session is one loaded project together with its serialisation at load
// time, which dry runs diff against.
type session struct {
	cfg  *MainConfig
	doc  *project.Document
	orig []byte
}

func (cfg *MainConfig) open() (*session, error) {
	p, err := cfg.projectPath()
	if err != nil {
		return nil, err
	}
	if err := cfg.loadTool(filepath.Dir(p)); err != nil {
		return nil, err
	}
	doc, err := project.NewCache(project.WithLogger(cfg.Log)).Load(p)
	if err != nil {
		return nil, err
	}
	orig, err := doc.Bytes(cfg.writeOpts()...)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, doc: doc, orig: orig}, nil
}

func (s *session) target() (*project.NativeTarget, error) {
	name := s.cfg.Target
	if name == "" {
		name = s.cfg.Tool.Target
	}
	if name == "" {
		if t := s.doc.DefaultTarget(); t != nil {
			return t, nil
		}
		return nil, fmt.Errorf("%s has no targets", s.doc.Name())
	}
	if t := s.doc.Target(name); t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("%w: no target %q in %s", cli.ErrUsage, name, s.doc.Name())
}

// finish saves the document, or with -n prints what saving would change.
func (s *session) finish(cc *cli.Context, changed bool) error {
	if !changed {
		s.cfg.Log.Info("nothing to change", "project", s.doc.Name())
		return nil
	}
	if !s.cfg.DryRun {
		return s.doc.Save(s.cfg.writeOpts()...)
	}
	after, err := s.doc.Bytes(s.cfg.writeOpts()...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cc.Out, libdiff.Lines(string(s.orig), string(after), 3))
	return err
}

// edit runs fn over the project and saves the result.  The document is
// left unsaved when fn fails.
func (cfg *MainConfig) edit(cc *cli.Context, fn func(s *session) (bool, error)) error {
	s, err := cfg.open()
	if err != nil {
		return err
	}
	changed, err := fn(s)
	if err != nil {
		return err
	}
	return s.finish(cc, changed)
}

// editTarget is edit for functions applying to the selected target.
func (cfg *MainConfig) editTarget(cc *cli.Context, fn func(t *project.NativeTarget) (bool, error)) error {
	return cfg.edit(cc, func(s *session) (bool, error) {
		t, err := s.target()
		if err != nil {
			return false, err
		}
		return fn(t)
	})
}

// each applies fn to every argument and reports whether any call changed
// the document.
func each(args []string, fn func(string) (bool, error)) (bool, error) {
	res := false
	for _, a := range args {
		changed, err := fn(a)
		if err != nil {
			return false, fmt.Errorf("%s: %w", a, err)
		}
		res = res || changed
	}
	return res, nil
}
