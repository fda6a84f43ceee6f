package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Token bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JREAD_DEBUG_PARSE")
	d.Token = boolEnv("JREAD_DEBUG_TOKEN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Parse reports whether JREAD_DEBUG_PARSE is set, gating a per-value trace
// on stderr.
func Parse() bool {
	return d.Parse
}

// Token reports whether JREAD_DEBUG_TOKEN is set, gating a per-token trace
// on stderr.
func Token() bool {
	return d.Token
}
