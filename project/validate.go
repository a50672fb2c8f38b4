package project

import (
	"fmt"

	"github.com/signadot/pbx/ir"
)

// refFields are the fields holding a GUID, or a list of GUIDs, of the same
// document.  containerPortal and remoteGlobalIDString are not checked:
// the latter names an object of another document.
var refFields = []string{
	"buildConfigurationList",
	"buildConfigurations",
	"buildPhases",
	"children",
	"dependencies",
	"fileRef",
	"files",
	"mainGroup",
	"productRefGroup",
	"productReference",
	"remoteRef",
	"target",
	"targetProxy",
	"targets",
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrReference, fmt.Sprintf(format, args...))
}

// Validate checks the structure of d and returns every violation found:
// duplicate GUIDs, references to GUIDs absent from the table, a rootObject
// which is not a project, duplicate group children and targets with more
// than one build phase of a kind.
func (d *Document) Validate() []error {
	var errs []error
	objs := d.Objects()
	seen := make(map[string]bool, objs.Len())
	for _, g := range objs.Fields {
		if seen[g] {
			errs = append(errs, violation("duplicate guid %s", g))
		}
		seen[g] = true
	}
	if d.RootObject() == nil {
		errs = append(errs, violation("rootObject %q is not a %s", d.tree.GetString("rootObject"), ISAProject))
	}
	for i, g := range objs.Fields {
		n := objs.Values[i]
		if !n.IsObject() {
			errs = append(errs, violation("%s is not a dictionary", g))
			continue
		}
		errs = append(errs, d.checkRefs(g, n)...)
		isa := n.GetString("isa")
		switch {
		case isGroupISA(isa):
			if dup := duplicate(n.Get("children").Strings()); dup != "" {
				errs = append(errs, violation("%s %s lists child %s twice", isa, g, dup))
			}
		case isa == ISANativeTarget:
			phases := map[string]bool{}
			for _, p := range n.Get("buildPhases").Strings() {
				k := d.Node(p).GetString("isa")
				if k == "" {
					continue
				}
				if phases[k] {
					errs = append(errs, violation("%s %s has more than one %s", isa, g, k))
				}
				phases[k] = true
			}
		}
	}
	return errs
}

func (d *Document) checkRefs(g string, n *ir.Node) []error {
	var errs []error
	check := func(field, ref string) {
		if ref != "" && !d.Has(ref) {
			errs = append(errs, violation("%s.%s names missing object %s", g, field, ref))
		}
	}
	for _, f := range refFields {
		v := n.Get(f)
		switch {
		case v.IsString():
			check(f, v.String)
		case v.IsArray():
			for _, e := range v.Strings() {
				check(f, e)
			}
		}
	}
	if prs := n.Get("projectReferences"); prs.IsArray() {
		for _, pr := range prs.Values {
			check("projectReferences.ProductGroup", pr.GetString("ProductGroup"))
			check("projectReferences.ProjectRef", pr.GetString("ProjectRef"))
		}
	}
	return errs
}

func duplicate(ss []string) string {
	seen := map[string]bool{}
	for _, s := range ss {
		if seen[s] {
			return s
		}
		seen[s] = true
	}
	return ""
}
