package main

import _ "runtime/cgo"

// The blank import forces the build to fail early when CGO is disabled:
// runtime/cgo is only available with CGO enabled, and the binary depends
// on it at run time.
