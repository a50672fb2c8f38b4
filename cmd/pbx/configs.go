package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/pbx/config"
	"github.com/signadot/pbx/encode"
	"github.com/signadot/pbx/format"

	"github.com/charmbracelet/log"
	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Verbose bool   `cli:"name=v aliases=verbose desc='log edits at debug level'"`
	DryRun  bool   `cli:"name=n aliases=dry-run desc='print a diff instead of saving'"`
	Config  string `cli:"name=c aliases=config desc='configuration file (default: pbx.toml or pbx.yaml above the project)'"`
	Project string `cli:"name=p aliases=project desc='project directory or project.pbxproj (default: the .xcodeproj in the current directory)'"`
	Target  string `cli:"name=t aliases=target desc='target to edit (default: from the configuration, else the first target)'"`
	Color   bool   `cli:"name=color desc='encode with color'"`

	Tool *config.Config
	Log  *log.Logger

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// writeOpts are the options used for files written back to disk.
func (cfg *MainConfig) writeOpts() []encode.EncodeOption {
	return []encode.EncodeOption{encode.Indent(cfg.Tool.Indent)}
}

// encOpts are the options used for output shown to the user.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.writeOpts()
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	switch cfg.Tool.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Out       string `cli:"name=o desc='output file, its suffix picks the format when -O is absent'"`
	OutFormat *format.Format
	Dump      *cli.Command
}

// format returns the format from -O, else from the -o suffix, else from
// the configuration.
func (cfg *DumpConfig) format() (format.Format, error) {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat, nil
	}
	if cfg.Out != "" && cfg.Out != "-" {
		f, err := format.FromPath(cfg.Out)
		if err != nil {
			return 0, fmt.Errorf("%w: %w, use -O", cli.ErrUsage, err)
		}
		return f, nil
	}
	return cfg.Tool.DumpFormat, nil
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type FindConfig struct {
	*MainConfig
	Where string `cli:"name=where aliases=w desc='expression objects must satisfy'"`
	GUIDs bool   `cli:"name=q desc='print only guids'"`
	Find  *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Lines   bool `cli:"name=l desc='print a line diff instead of an object summary'"`
	Context int  `cli:"name=U desc='lines of context for -l'"`
	Diff    *cli.Command
}

type GroupConfig struct {
	*MainConfig
	Add, Get *cli.Command
	Group    *cli.Command
}

type FrameworkConfig struct {
	*MainConfig
	Group string `cli:"name=g aliases=group desc='group listing new framework references'"`

	Add, Rm, Ls *cli.Command
	Framework   *cli.Command
}

type LibraryConfig struct {
	*MainConfig
	Group string `cli:"name=g aliases=group desc='group listing new library references'"`

	Add, Rm, Ls *cli.Command
	Library     *cli.Command
}

// FileConfig serves the source, header and resource commands, which differ
// only in the build phase they add to.
type FileConfig struct {
	*MainConfig
	Group string `cli:"name=g aliases=group desc='group listing new file references (default: main group)'"`
	Kind  string
	Add   *cli.Command
	File  *cli.Command
}

type SubprojectConfig struct {
	*MainConfig
	Group      string `cli:"name=g aliases=group desc='group listing the project reference'"`
	NoDep      bool   `cli:"name=no-dep desc='do not make the target depend on the project libraries'"`
	NoLink     bool   `cli:"name=no-link desc='do not link the project libraries'"`
	Add, Rm    *cli.Command
	Subproject *cli.Command
}

type DependencyConfig struct {
	*MainConfig
	Add, Rm    *cli.Command
	Dependency *cli.Command
}

type HeaderPathConfig struct {
	*MainConfig
	Configuration string `cli:"name=C aliases=configuration desc='build configuration name'"`
	HeaderPath    *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}
