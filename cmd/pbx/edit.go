package main

import (
	"fmt"

	"github.com/signadot/pbx/project"

	"github.com/scott-cotton/cli"
)

// parseSub parses the arguments of a leaf command, printing its usage on
// failure.
func parseSub(cmd *cli.Command, cc *cli.Context, args []string, minArgs int) ([]string, error) {
	args, err := cmd.Parse(cc, args)
	if err != nil {
		cmd.Usage(cc, err)
		return nil, cli.ExitCodeErr(1)
	}
	if len(args) < minArgs {
		return nil, fmt.Errorf("%w: expected at least %d argument(s)", cli.ErrUsage, minArgs)
	}
	return args, nil
}

func groupOpts(path string) []project.AddOption {
	if path == "" {
		return nil
	}
	return []project.AddOption{project.ToGroupPath(path)}
}

func groupAdd(cfg *GroupConfig, cc *cli.Context, args []string) error {
	args, err := parseSub(cfg.Add, cc, args, 1)
	if err != nil {
		return err
	}
	return cfg.edit(cc, func(s *session) (bool, error) {
		n := s.doc.Objects().Len()
		for _, p := range args {
			g, err := s.doc.AddGroup(p)
			if err != nil {
				return false, fmt.Errorf("%s: %w", p, err)
			}
			fmt.Fprintln(cc.Out, g.GUID())
		}
		return s.doc.Objects().Len() != n, nil
	})
}

func groupGet(cfg *GroupConfig, cc *cli.Context, args []string) error {
	args, err := parseSub(cfg.Get, cc, args, 1)
	if err != nil {
		return err
	}
	s, err := cfg.open()
	if err != nil {
		return err
	}
	g := s.doc.Group(args[0])
	if g == nil {
		return fmt.Errorf("no group %q in %s", args[0], s.doc.Name())
	}
	fmt.Fprintf(cc.Out, "%s %s %s\n", g.GUID(), g.Label(), g.AbsPath())
	for _, c := range g.Children() {
		fmt.Fprintf(cc.Out, "  %s %s %s\n", c.GUID(), c.ISA(), label(c))
	}
	return nil
}

func frameworkAdd(cfg *FrameworkConfig, cc *cli.Context, args []string) error {
	args, err := parseSub(cfg.Add, cc, args, 1)
	if err != nil {
		return err
	}
	return cfg.editTarget(cc, func(t *project.NativeTarget) (bool, error) {
		group := cfg.Group
		if group == "" {
			group = cfg.Tool.FrameworksGroup
		}
		return each(args, func(name string) (bool, error) {
			return t.AddFramework(name, groupOpts(group)...)
		})
	})
}

func frameworkRm(cfg *FrameworkConfig, cc *cli.Context, args []string) error {
	args, err := parseSub(cfg.Rm, cc, args, 1)
	if err != nil {
		return err
	}
	return cfg.editTarget(cc, func(t *project.NativeTarget) (bool, error) {
		return each(args, t.RemoveFramework)
	})
}

func frameworkLs(cfg *FrameworkConfig, cc *cli.Context, args []string) error {
	if _, err := parseSub(cfg.Ls, cc, args, 0); err != nil {
		return err
	}
	return listTarget(cfg.MainConfig, cc, (*project.NativeTarget).Frameworks)
}

func libraryAdd(cfg *LibraryConfig, cc *cli.Context, args []string) error {
	args, err := parseSub(cfg.Add, cc, args, 1)
	if err != nil {
		return err
	}
	return cfg.editTarget(cc, func(t *project.NativeTarget) (bool, error) {
		return each(args, func(name string) (bool, error) {
			return t.AddLibrary(name, groupOpts(cfg.Group)...)
		})
	})
}

func libraryRm(cfg *LibraryConfig, cc *cli.Context, args []string) error {
	args, err := parseSub(cfg.Rm, cc, args, 1)
	if err != nil {
		return err
	}
	return cfg.editTarget(cc, func(t *project.NativeTarget) (bool, error) {
		return each(args, t.RemoveLibrary)
	})
}

func libraryLs(cfg *LibraryConfig, cc *cli.Context, args []string) error {
	if _, err := parseSub(cfg.Ls, cc, args, 0); err != nil {
		return err
	}
	return listTarget(cfg.MainConfig, cc, (*project.NativeTarget).Libraries)
}

func listTarget(cfg *MainConfig, cc *cli.Context, paths func(*project.NativeTarget) []string) error {
	s, err := cfg.open()
	if err != nil {
		return err
	}
	t, err := s.target()
	if err != nil {
		return err
	}
	for _, p := range paths(t) {
		fmt.Fprintln(cc.Out, p)
	}
	return nil
}

func fileAdd(cfg *FileConfig, cc *cli.Context, args []string) error {
	args, err := parseSub(cfg.Add, cc, args, 1)
	if err != nil {
		return err
	}
	return cfg.edit(cc, func(s *session) (bool, error) {
		t, err := s.target()
		if err != nil {
			return false, err
		}
		var g *project.Group
		if cfg.Group != "" {
			if g, err = s.doc.AddGroup(cfg.Group); err != nil {
				return false, err
			}
		}
		add := t.AddSource
		switch cfg.Kind {
		case "header":
			add = t.AddHeader
		case "resource":
			add = t.AddResource
		}
		return each(args, func(p string) (bool, error) {
			return add(p, g)
		})
	})
}

func subprojectAdd(cfg *SubprojectConfig, cc *cli.Context, args []string) error {
	args, err := parseSub(cfg.Add, cc, args, 1)
	if err != nil {
		return err
	}
	return cfg.edit(cc, func(s *session) (bool, error) {
		group := cfg.Group
		if group == "" {
			group = cfg.Tool.LibrariesGroup
		}
		opts := append(groupOpts(group),
			project.Dependency(!cfg.NoDep),
			project.Link(!cfg.NoLink))
		return each(args, func(p string) (bool, error) {
			return s.doc.AddProject(p, opts...)
		})
	})
}

func subprojectRm(cfg *SubprojectConfig, cc *cli.Context, args []string) error {
	args, err := parseSub(cfg.Rm, cc, args, 1)
	if err != nil {
		return err
	}
	return cfg.edit(cc, func(s *session) (bool, error) {
		return each(args, s.doc.RemoveProject)
	})
}

func dependencyAdd(cfg *DependencyConfig, cc *cli.Context, args []string) error {
	args, err := parseSub(cfg.Add, cc, args, 1)
	if err != nil {
		return err
	}
	return cfg.editTarget(cc, func(t *project.NativeTarget) (bool, error) {
		return each(args, t.AddTargetDependency)
	})
}

func dependencyRm(cfg *DependencyConfig, cc *cli.Context, args []string) error {
	args, err := parseSub(cfg.Rm, cc, args, 1)
	if err != nil {
		return err
	}
	return cfg.editTarget(cc, func(t *project.NativeTarget) (bool, error) {
		return each(args, t.RemoveTargetDependency)
	})
}

func headerPath(cfg *HeaderPathConfig, cc *cli.Context, args []string) error {
	args, err := parseSub(cfg.HeaderPath, cc, args, 1)
	if err != nil {
		return err
	}
	return cfg.edit(cc, func(s *session) (bool, error) {
		return s.doc.SetHeaderSearchPaths(cfg.Configuration, args...)
	})
}
