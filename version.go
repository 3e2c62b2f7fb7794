package main

import (
	"github.com/xyproto/env/v2"
)

// llvmVersion is the "<llvm-config> --version" output captured when the
// library was built, injected via
//
//	go build -ldflags "-X main.llvmVersion=$(llvm-config --version)"
//
// (see Makefile).
var llvmVersion string

// clangVersionFallback is replaced by cgo builds with a live
// clang_getClangVersion() query (lib-index.go).
var clangVersionFallback = func() string { return "" }

// LLVMVersion reports the LLVM version this library was built against.
// An LJCLANG_LLVM_VERSION environment override wins, then the
// build-injected string, then the linked libclang's own report.
func LLVMVersion() string {
	if v := env.Str("LJCLANG_LLVM_VERSION"); v != "" {
		return v
	}
	if llvmVersion != "" {
		return llvmVersion
	}
	if v := clangVersionFallback(); v != "" {
		return v
	}
	return "unknown"
}
