package project

import (
	"fmt"
	"path/filepath"
	"strings"
)

var fileTypes = map[string]string{
	".a":           "archive.ar",
	".app":         "wrapper.application",
	".bundle":      "wrapper.plug-in",
	".c":           "sourcecode.c.c",
	".cpp":         "sourcecode.cpp.cpp",
	".dylib":       "compiled.mach-o.dylib",
	".framework":   "wrapper.framework",
	".h":           "sourcecode.c.h",
	".hpp":         "sourcecode.cpp.h",
	".jpg":         "image.jpeg",
	".json":        "text.json",
	".m":           "sourcecode.c.objc",
	".mm":          "sourcecode.cpp.objcpp",
	".pch":         "sourcecode.c.h",
	".plist":       "text.plist.xml",
	".png":         "image.png",
	".storyboard":  "file.storyboard",
	".strings":     "text.plist.strings",
	".swift":       "sourcecode.swift",
	".tbd":         "sourcecode.text-based-dylib-definition",
	".xcassets":    "folder.assetcatalog",
	".xcconfig":    "text.xcconfig",
	".xcdatamodel": "wrapper.xcdatamodel",
	".xcodeproj":   "wrapper.pb-project",
	".xctest":      "wrapper.cfbundle",
	".xib":         "file.xib",
}

// FileType returns the Xcode file type of a path from its extension.
func FileType(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimRight(path, "/")))
	t, ok := fileTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFileType, path)
	}
	return t, nil
}
