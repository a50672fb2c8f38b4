package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "pbx").
		WithSynopsis("pbx [opts] command [opts]").
		WithDescription("pbx reads and edits Xcode project.pbxproj files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pbxMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DumpCommand(cfg),
			CheckCommand(cfg),
			FindCommand(cfg),
			DiffCommand(cfg),
			GroupCommand(cfg),
			FrameworkCommand(cfg),
			LibraryCommand(cfg),
			FileCommand(cfg, "source"),
			FileCommand(cfg, "header"),
			FileCommand(cfg, "resource"),
			SubprojectCommand(cfg),
			DependencyCommand(cfg),
			HeaderPathCommand(cfg),
			PatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view the project, or the given pbxproj files, in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: pbx/p, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		})
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-O format] [-o file]").
		WithDescription("dump the project tree in another format").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check").
		WithDescription("check the project for dangling and duplicate references").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find [-where expr] [field=value ...]").
		WithDescription(findDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

const findDescription = `find lists the objects whose fields match every field=value argument.
A list field matches when it contains the value.

-where filters with an expression over the object's fields, where guid is
the object's own guid, referrers(guid) counts the objects referring to a
guid and exists(guid) reports whether a guid is in the object table.

  pbx find isa=PBXFileReference sourceTree=SDKROOT
  pbx find -where 'isa == "PBXBuildFile" && !exists(fileRef)'`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-l] a b").
		WithDescription("list objects added, removed or changed between two projects").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func GroupCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GroupConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Group, "group").
		WithSynopsis("group <subcommand>").
		WithDescription("resolve and create groups").
		WithSubs(
			cli.NewCommandAt(&cfg.Add, "add").
				WithSynopsis("add <path>...").
				WithDescription("create groups, with any missing parents").
				WithRun(func(cc *cli.Context, args []string) error {
					return groupAdd(cfg, cc, args)
				}),
			cli.NewCommandAt(&cfg.Get, "get").
				WithSynopsis("get <path>").
				WithDescription("show the children of a group").
				WithRun(func(cc *cli.Context, args []string) error {
					return groupGet(cfg, cc, args)
				}))
}

func FrameworkCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FrameworkConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Framework, "framework").
		WithAliases("fw").
		WithSynopsis("framework <subcommand>").
		WithDescription("link frameworks into the target").
		WithSubs(
			cli.NewCommandAt(&cfg.Add, "add").
				WithSynopsis("add [-g group] <name|path>...").
				WithDescription("link SDK frameworks by name, or local frameworks by path").
				WithOpts(opts...).
				WithRun(func(cc *cli.Context, args []string) error {
					return frameworkAdd(cfg, cc, args)
				}),
			cli.NewCommandAt(&cfg.Rm, "rm").
				WithSynopsis("rm <name|path>...").
				WithDescription("remove frameworks and their file references").
				WithRun(func(cc *cli.Context, args []string) error {
					return frameworkRm(cfg, cc, args)
				}),
			cli.NewCommandAt(&cfg.Ls, "ls").
				WithSynopsis("ls").
				WithDescription("list the frameworks linked into the target").
				WithRun(func(cc *cli.Context, args []string) error {
					return frameworkLs(cfg, cc, args)
				}))
}

func LibraryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LibraryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Library, "library").
		WithAliases("lib").
		WithSynopsis("library <subcommand>").
		WithDescription("link libraries and sub-project products into the target").
		WithSubs(
			cli.NewCommandAt(&cfg.Add, "add").
				WithSynopsis("add [-g group] <path|product>...").
				WithDescription("link library files or products of referenced projects").
				WithOpts(opts...).
				WithRun(func(cc *cli.Context, args []string) error {
					return libraryAdd(cfg, cc, args)
				}),
			cli.NewCommandAt(&cfg.Rm, "rm").
				WithSynopsis("rm <path|product>...").
				WithDescription("unlink libraries").
				WithRun(func(cc *cli.Context, args []string) error {
					return libraryRm(cfg, cc, args)
				}),
			cli.NewCommandAt(&cfg.Ls, "ls").
				WithSynopsis("ls").
				WithDescription("list the libraries linked into the target").
				WithRun(func(cc *cli.Context, args []string) error {
					return libraryLs(cfg, cc, args)
				}))
}

func FileCommand(mainCfg *MainConfig, kind string) *cli.Command {
	cfg := &FileConfig{MainConfig: mainCfg, Kind: kind}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.File, kind).
		WithSynopsis(kind + " <subcommand>").
		WithDescription("add " + kind + " files to the target").
		WithSubs(
			cli.NewCommandAt(&cfg.Add, "add").
				WithSynopsis("add [-g group] <path>...").
				WithDescription("reference existing files and add them to the " + kind + " build phase").
				WithOpts(opts...).
				WithRun(func(cc *cli.Context, args []string) error {
					return fileAdd(cfg, cc, args)
				}))
}

func SubprojectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SubprojectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Subproject, "subproject").
		WithAliases("sub").
		WithSynopsis("subproject <subcommand>").
		WithDescription("reference other projects").
		WithSubs(
			cli.NewCommandAt(&cfg.Add, "add").
				WithSynopsis("add [-g group] [-no-dep] [-no-link] <project>").
				WithDescription("reference a project, depend on and link its static libraries").
				WithOpts(opts...).
				WithRun(func(cc *cli.Context, args []string) error {
					return subprojectAdd(cfg, cc, args)
				}),
			cli.NewCommandAt(&cfg.Rm, "rm").
				WithSynopsis("rm <project>").
				WithDescription("remove a project reference and everything that depends on it").
				WithRun(func(cc *cli.Context, args []string) error {
					return subprojectRm(cfg, cc, args)
				}))
}

func DependencyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DependencyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dependency, "dependency").
		WithAliases("dep").
		WithSynopsis("dependency <subcommand>").
		WithDescription("make the target depend on products of referenced projects").
		WithSubs(
			cli.NewCommandAt(&cfg.Add, "add").
				WithSynopsis("add <product>...").
				WithDescription("add target dependencies on sub-project products").
				WithRun(func(cc *cli.Context, args []string) error {
					return dependencyAdd(cfg, cc, args)
				}),
			cli.NewCommandAt(&cfg.Rm, "rm").
				WithSynopsis("rm <product|target>...").
				WithDescription("remove target dependencies").
				WithRun(func(cc *cli.Context, args []string) error {
					return dependencyRm(cfg, cc, args)
				}))
}

func HeaderPathCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HeaderPathConfig{MainConfig: mainCfg, Configuration: "Debug"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.HeaderPath, "headerpath").
		WithAliases("hp").
		WithSynopsis("headerpath [-C configuration] <path>...").
		WithDescription("append to HEADER_SEARCH_PATHS of every build configuration with the given name").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return headerPath(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithSynopsis("patch <json-patch-file|->").
		WithDescription("apply an RFC 6902 JSON patch to the project and check the result").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
