package project

const (
	ISAProject            = "PBXProject"
	ISAGroup              = "PBXGroup"
	ISAVariantGroup       = "PBXVariantGroup"
	ISAVersionGroup       = "XCVersionGroup"
	ISAFileReference      = "PBXFileReference"
	ISABuildFile          = "PBXBuildFile"
	ISASourcesPhase       = "PBXSourcesBuildPhase"
	ISAHeadersPhase       = "PBXHeadersBuildPhase"
	ISAResourcesPhase     = "PBXResourcesBuildPhase"
	ISAFrameworksPhase    = "PBXFrameworksBuildPhase"
	ISACopyFilesPhase     = "PBXCopyFilesBuildPhase"
	ISAShellScriptPhase   = "PBXShellScriptBuildPhase"
	ISANativeTarget       = "PBXNativeTarget"
	ISABuildConfiguration = "XCBuildConfiguration"
	ISAConfigurationList  = "XCConfigurationList"
	ISAContainerItemProxy = "PBXContainerItemProxy"
	ISAReferenceProxy     = "PBXReferenceProxy"
	ISATargetDependency   = "PBXTargetDependency"
)

const (
	SourceTreeGroup    = "<group>"
	SourceTreeAbsolute = "<absolute>"
	SourceTreeSDK      = "SDKROOT"
	SourceTreeRoot     = "SOURCE_ROOT"
	SourceTreeProducts = "BUILT_PRODUCTS_DIR"
)

const (
	// ProxyTypeTarget marks a container proxy naming a target in another
	// project, used by target dependencies.
	ProxyTypeTarget = "1"
	// ProxyTypeReference marks a container proxy naming a product of
	// another project.
	ProxyTypeReference = "2"
)

const (
	ProductTypeStaticLibrary = "com.apple.product-type.library.static"

	sdkFrameworksDir = "System/Library/Frameworks"
	buildActionMask  = "2147483647"
)

// kinds maps an isa to the view wrapping objects of that kind.
var kinds = map[string]func(object) Object{
	ISAProject:            func(o object) Object { return &Project{o} },
	ISAGroup:              func(o object) Object { return &Group{o} },
	ISAVariantGroup:       func(o object) Object { return &VariantGroup{Group{o}} },
	ISAVersionGroup:       func(o object) Object { return &VersionGroup{Group{o}} },
	ISAFileReference:      func(o object) Object { return &FileReference{o} },
	ISABuildFile:          func(o object) Object { return &BuildFile{o} },
	ISASourcesPhase:       func(o object) Object { return &BuildPhase{o} },
	ISAHeadersPhase:       func(o object) Object { return &BuildPhase{o} },
	ISAResourcesPhase:     func(o object) Object { return &BuildPhase{o} },
	ISAFrameworksPhase:    func(o object) Object { return &BuildPhase{o} },
	ISACopyFilesPhase:     func(o object) Object { return &BuildPhase{o} },
	ISAShellScriptPhase:   func(o object) Object { return &BuildPhase{o} },
	ISANativeTarget:       func(o object) Object { return &NativeTarget{o} },
	ISABuildConfiguration: func(o object) Object { return &BuildConfiguration{o} },
	ISAConfigurationList:  func(o object) Object { return &ConfigurationList{o} },
	ISAContainerItemProxy: func(o object) Object { return &ContainerItemProxy{o} },
	ISAReferenceProxy:     func(o object) Object { return &ReferenceProxy{o} },
	ISATargetDependency:   func(o object) Object { return &TargetDependency{o} },
}

func isGroupISA(isa string) bool {
	switch isa {
	case ISAGroup, ISAVariantGroup, ISAVersionGroup:
		return true
	}
	return false
}

func isPhaseISA(isa string) bool {
	switch isa {
	case ISASourcesPhase, ISAHeadersPhase, ISAResourcesPhase, ISAFrameworksPhase,
		ISACopyFilesPhase, ISAShellScriptPhase:
		return true
	}
	return false
}
