//go:build linux && cgo && !noffi
// +build linux,cgo,!noffi

package main

// The preamble of a file with //export may only contain declarations;
// the trampolines that call this dispatcher live in lib-visitor.go.

/*
#include <clang-c/Index.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// ljclangGoCursorVisitor is the single point where the type-erased
// traversal context turns back into a Go closure. It forwards the
// visitor's continuation signal to libclang unchanged.
//
//export ljclangGoCursorVisitor
func ljclangGoCursorVisitor(cursor, parent *C.CXCursor, ctx unsafe.Pointer) C.enum_CXChildVisitResult {
	tc := cgo.Handle(uintptr(ctx)).Value().(*traversalContext)
	res := tc.visitor(Cursor{c: *cursor}, Cursor{c: *parent})
	return C.enum_CXChildVisitResult(res)
}
