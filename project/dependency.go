package project

// AddTargetDependency makes t depend on the target of a referenced project
// building the product name.  The product must already be listed through
// AddProject.
func (t *NativeTarget) AddTargetDependency(name string) (bool, error) {
	d := t.doc
	rp := d.productProxy(name)
	if rp == nil {
		return false, preconditionErr("no referenced product %q", name)
	}
	remote := rp.RemoteRef()
	if remote == nil {
		return false, referenceErr("%s %s: remoteRef %q not found", ISAReferenceProxy, rp.GUID(), rp.GetString("remoteRef"))
	}
	portal := remote.Portal()
	if portal == nil {
		return false, referenceErr("%s %s: containerPortal %q not found", ISAContainerItemProxy, remote.GUID(), remote.ContainerPortal())
	}
	sub, err := d.cache.Load(portal.AbsPath())
	if err != nil {
		return false, err
	}
	dep := findFirstAs[*NativeTarget](sub, Criteria{"isa": ISANativeTarget, "productReference": remote.RemoteGlobalID()})
	if dep == nil {
		return false, referenceErr("%s: no target builds %q", sub.Path(), name)
	}

	proxy := findFirstAs[*ContainerItemProxy](d, Criteria{
		"isa":                  ISAContainerItemProxy,
		"containerPortal":      portal.GUID(),
		"proxyType":            ProxyTypeTarget,
		"remoteGlobalIDString": dep.GUID(),
	})
	if proxy != nil {
		for _, td := range t.Dependencies() {
			if td.GetString("targetProxy") == proxy.GUID() {
				return false, nil
			}
		}
	} else {
		proxy = d.newContainerProxy(portal.GUID(), ProxyTypeTarget, dep.GUID(), dep.Name())
	}
	td := d.newTargetDependency(dep.Name(), proxy.GUID())
	t.appendGUID("dependencies", td.GUID())
	d.log().Debug("added target dependency", "target", t.Name(), "dependency", dep.Name(), "project", sub.Name())
	return true, nil
}

// dependsOn reports whether td stands for the target building name, or the
// target called name.
func (td *TargetDependency) dependsOn(name string) bool {
	if td.Name() == name {
		return true
	}
	proxy := td.TargetProxy()
	if proxy == nil {
		return false
	}
	portal := proxy.Portal()
	if portal == nil {
		return false
	}
	sub, err := td.doc.cache.Load(portal.AbsPath())
	if err != nil {
		td.doc.log().Warn("cannot resolve dependency", "dependency", td.GUID(), "err", err)
		return false
	}
	target := objectAs[*NativeTarget](sub, proxy.RemoteGlobalID())
	return target != nil && (target.ProductFileName() == name || target.Name() == name)
}

// RemoveTargetDependency undoes AddTargetDependency.  The target proxy is
// deleted once no other dependency uses it.
func (t *NativeTarget) RemoveTargetDependency(name string) (bool, error) {
	d := t.doc
	var td *TargetDependency
	for _, dep := range t.Dependencies() {
		if dep.dependsOn(name) {
			td = dep
			break
		}
	}
	if td == nil {
		return false, nil
	}
	p := newPlan(d)
	p.del(td.GUID())
	for _, o := range p.referrers(td.GUID()) {
		if _, ok := o.(*NativeTarget); !ok {
			return false, unsupportedErr(o, "removing dependency "+td.GUID())
		}
		p.unlinkGUID(o, "dependencies", td.GUID())
	}
	if proxy := td.TargetProxy(); proxy != nil && len(p.referrers(proxy.GUID())) == 0 {
		p.del(proxy.GUID())
	}
	p.apply()
	d.log().Debug("removed target dependency", "target", t.Name(), "dependency", name)
	return true, nil
}
