package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex   bool
	Parse bool
	Sweep bool
	Cache bool
	GUID  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("PBX_DEBUG_LEX")
	d.Parse = boolEnv("PBX_DEBUG_PARSE")
	d.Sweep = boolEnv("PBX_DEBUG_SWEEP")
	d.Cache = boolEnv("PBX_DEBUG_CACHE")
	d.GUID = boolEnv("PBX_DEBUG_GUID")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Sweep() bool {
	return d.Sweep
}
func Cache() bool {
	return d.Cache
}
func GUID() bool {
	return d.GUID
}
