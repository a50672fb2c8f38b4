package project

// AddOption configures the operations adding files and projects to a
// document.
type AddOption func(*addOpts)

type addOpts struct {
	group      *Group
	groupPath  string
	dependency bool
	link       bool
}

const (
	// LibrariesGroup is where referenced projects are listed by default.
	LibrariesGroup = "/Libraries"
	// FrameworksGroup is where frameworks are listed by default.
	FrameworksGroup = "Frameworks"
)

func newAddOpts(groupPath string, opts []AddOption) *addOpts {
	o := &addOpts{groupPath: groupPath, dependency: true, link: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ToGroup lists new file references in g.
func ToGroup(g *Group) AddOption {
	return func(o *addOpts) { o.group = g }
}

// ToGroupPath lists new file references in the group at path, which is
// created when missing.
func ToGroupPath(path string) AddOption {
	return func(o *addOpts) { o.groupPath = path }
}

// Dependency controls whether AddProject makes the default target depend
// on the static libraries of the added project.
func Dependency(v bool) AddOption {
	return func(o *addOpts) { o.dependency = v }
}

// Link controls whether AddProject links the static libraries of the added
// project into the default target.
func Link(v bool) AddOption {
	return func(o *addOpts) { o.link = v }
}

// resolveGroup returns the group for new file references.  An empty group
// path selects the main group.
func (o *addOpts) resolveGroup(d *Document) (*Group, error) {
	if o.group != nil {
		return o.group, nil
	}
	if o.groupPath == "" {
		return d.ensureMainGroup()
	}
	return d.AddGroup(o.groupPath)
}
