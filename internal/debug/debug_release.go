//go:build release
// +build release

package debug

// Assert does nothing in release builds.
func Assert(string, func() bool) {}
