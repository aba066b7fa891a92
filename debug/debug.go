package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Adapt bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JSONDOC_DEBUG_PARSE")
	d.Adapt = boolEnv("JSONDOC_DEBUG_ADAPT")
	d.Patch = boolEnv("JSONDOC_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Adapt() bool {
	return d.Adapt
}
func Patch() bool {
	return d.Patch
}
