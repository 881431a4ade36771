package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Describe bool
	Expand   bool
	Filter   bool
	Navigate bool
	Sched    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Describe = boolEnv("INSPECT_DEBUG_DESCRIBE")
	d.Expand = boolEnv("INSPECT_DEBUG_EXPAND")
	d.Filter = boolEnv("INSPECT_DEBUG_FILTER")
	d.Navigate = boolEnv("INSPECT_DEBUG_NAVIGATE")
	d.Sched = boolEnv("INSPECT_DEBUG_SCHED")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Describe() bool {
	return d.Describe
}
func Expand() bool {
	return d.Expand
}
func Filter() bool {
	return d.Filter
}
func Navigate() bool {
	return d.Navigate
}
func Sched() bool {
	return d.Sched
}
