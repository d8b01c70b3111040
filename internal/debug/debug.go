//go:build !release
// +build !release

package debug

import _ "unsafe"

//go:linkname throw runtime.throw
func throw(string)

// Assert crashes the process if fn reports false. Compiled out under
// the release tag.
func Assert(info string, fn func() bool) {
	if !fn() {
		throw("assertion failed: " + info)
	}
}
