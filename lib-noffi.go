//go:build !(linux && cgo && !noffi)
// +build !linux !cgo noffi

package main

import "io"

// Native support disabled in this build: no libclang, no platform type
// probes. The CLI still runs; every native operation reports
// ErrFFIDisabled instead of guessing.

const ffiEnabled = false

// TypeDefs - native probes unavailable, nothing to emit.
func TypeDefs() string {
	return ""
}

// UnderlyingSpelling - native probes unavailable.
func UnderlyingSpelling(name string) (string, bool) {
	return "", false
}

// dumpAST - libclang unavailable in this build.
func dumpAST(w io.Writer, srcPath string) error {
	return ErrFFIDisabled
}
