package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/pbx/format"
	"github.com/signadot/pbx/libdiff"
	"github.com/signadot/pbx/parse"
	"github.com/signadot/pbx/project"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		s, err := cfg.open()
		if err != nil {
			return err
		}
		return s.doc.Write(cc.Out, cfg.encOpts(cc.Out)...)
	}
	if err := cfg.loadTool("."); err != nil {
		return err
	}
	for _, file := range args {
		if err := viewFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
	d, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	node, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	return format.Marshal(node, format.PBXFormat, w, cfg.encOpts(w)...)
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	s, err := cfg.open()
	if err != nil {
		return err
	}
	f, err := cfg.format()
	if err != nil {
		return err
	}
	if cfg.Out == "" || cfg.Out == "-" {
		return format.Marshal(s.doc.Tree(), f, cc.Out, cfg.encOpts(cc.Out)...)
	}
	out, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}
	if err := format.Marshal(s.doc.Tree(), f, out, cfg.writeOpts()...); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Check.Parse(cc, args); err != nil {
		return err
	}
	s, err := cfg.open()
	if err != nil {
		return err
	}
	errs := s.doc.Validate()
	for _, err := range errs {
		fmt.Fprintln(cc.Out, err)
	}
	if len(errs) != 0 {
		cfg.Log.Error("project has dangling or duplicate references", "project", s.doc.Name(), "count", len(errs))
		return cli.ExitCodeErr(1)
	}
	return nil
}

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	crit := project.Criteria{}
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%w: %q is not field=value", cli.ErrUsage, arg)
		}
		crit[k] = v
	}
	s, err := cfg.open()
	if err != nil {
		return err
	}
	var objs []project.Object
	if cfg.Where != "" {
		objs, err = s.doc.Where(cfg.Where)
		if err != nil {
			return err
		}
	} else {
		objs = s.doc.All()
	}
	for _, o := range objs {
		if !crit.Match(o.Node()) {
			continue
		}
		if cfg.GUIDs {
			fmt.Fprintln(cc.Out, o.GUID())
			continue
		}
		fmt.Fprintf(cc.Out, "%s %s %s\n", o.GUID(), o.ISA(), label(o))
	}
	return nil
}

func label(o project.Object) string {
	for _, f := range []string{"name", "path", "remoteInfo"} {
		if v := o.GetString(f); v != "" {
			return v
		}
	}
	return ""
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	if err := cfg.loadTool("."); err != nil {
		return err
	}
	cache := project.NewCache(project.WithLogger(cfg.Log))
	from, err := cache.Load(args[0])
	if err != nil {
		return err
	}
	to, err := cache.Load(args[1])
	if err != nil {
		return err
	}
	if cfg.Lines {
		a, err := from.Bytes(cfg.writeOpts()...)
		if err != nil {
			return err
		}
		b, err := to.Bytes(cfg.writeOpts()...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cc.Out, libdiff.Lines(string(a), string(b), cfg.Context))
		return err
	}
	for _, c := range libdiff.Objects(from.Objects(), to.Objects()) {
		n := c.To
		if n == nil {
			n = c.From
		}
		fmt.Fprintf(cc.Out, "%s %s %s\n", c.Kind, c.GUID, n.GetString("isa"))
	}
	return nil
}
