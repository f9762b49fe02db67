//go:build !debug

package debug

// Enabled turns on extra consistency checks in builds tagged debug.
const Enabled = false

func Log(format string, args ...interface{}) {}
