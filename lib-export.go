//go:build linux && cgo && !noffi
// +build linux,cgo,!noffi

package main

// The exported C surface consumed by the dlopen-ing host's FFI loader
// (build with -buildmode=c-shared). Signatures and result codes are
// kept compatible with the original support library ABI. Only
// declarations may appear in this preamble.

/*
#include <stdint.h>
#include <clang-c/Index.h>

typedef enum CXChildVisitResult (*LJCX_CursorVisitor)(
    CXCursor *cursor, CXCursor *parent, CXClientData client_data);
*/
import "C"

import (
	"sync"
	"unsafe"
)

// ljclang_getLLVMVersion reports the LLVM version the library was built
// against. The returned string is owned by the library and lives for
// the process.
//
//export ljclang_getLLVMVersion
func ljclang_getLLVMVersion() *C.char {
	versionOnce.Do(func() { versionC = C.CString(LLVMVersion()) })
	return versionC
}

var (
	versionOnce sync.Once
	versionC    *C.char
)

// ljclang_regCursorVisitor registers a visitor callback and returns the
// index by which it can subsequently be referenced.
//
// Returns:
//
//	>=0: the visitor index on success.
//	 -1: registration failed.
//
//export ljclang_regCursorVisitor
func ljclang_regCursorVisitor(visitor C.LJCX_CursorVisitor) C.int {
	h, err := registerCVisitor(visitor)
	if err != nil {
		return regFailed
	}
	return C.int(h)
}

// ljclang_visitChildren traverses the children of parent, dispatching
// to the visitor registered under visitoridx.
//
// Returns:
//
//	 0: traversal completed.
//	 1: traversal interrupted by the visitor.
//	-1: invalid visitor index; no traversal was started.
//
//export ljclang_visitChildren
func ljclang_visitChildren(parent C.CXCursor, visitoridx C.int) C.int {
	res, err := defaultRegistry.Visit(Cursor{c: parent}, VisitorHandle(visitoridx))
	if err != nil {
		return visitBadHandle
	}
	if res == Interrupted {
		return visitInterrupted
	}
	return visitCompleted
}

// ljclang_visitChildrenWith traverses the children of parent with the
// given visitor directly, bypassing the registry: the callback pointer
// itself is the client data. Preferred for one-shot traversals.
//
// Returns 0 on completion, 1 if the visitor broke the traversal, -1 for
// a null visitor.
//
//export ljclang_visitChildrenWith
func ljclang_visitChildrenWith(parent C.CXCursor, visitor C.LJCX_CursorVisitor) C.int {
	if visitor == nil {
		return visitBadHandle
	}
	if visitWithCVisitor(parent, visitor) == Interrupted {
		return visitInterrupted
	}
	return visitCompleted
}

// ljclang_getTypeDefs returns the typedef block for the host's
// foreign-type declaration parser. Built once, cached for the process.
//
//export ljclang_getTypeDefs
func ljclang_getTypeDefs() *C.char {
	typeDefsOnce.Do(func() { typeDefsC = C.CString(TypeDefs()) })
	return typeDefsC
}

var (
	typeDefsOnce sync.Once
	typeDefsC    *C.char
)

// Bit primitives over the opaque fd_set layout.

//export ljclang_FD_ZERO
func ljclang_FD_ZERO(set unsafe.Pointer) {
	FDZero(set)
}

//export ljclang_FD_SET
func ljclang_FD_SET(fd C.int, set unsafe.Pointer) {
	FDSet(int(fd), set)
}

//export ljclang_FD_CLR
func ljclang_FD_CLR(fd C.int, set unsafe.Pointer) {
	FDClr(int(fd), set)
}

//export ljclang_FD_ISSET
func ljclang_FD_ISSET(fd C.int, set unsafe.Pointer) C.int {
	if FDIsSet(int(fd), set) {
		return 1
	}
	return 0
}

//export ljclang_getDirent64Name
func ljclang_getDirent64Name(dirent unsafe.Pointer) *C.char {
	return dirent64NameC(dirent)
}

//export ljclang_setSigintHandlingToDefault
func ljclang_setSigintHandlingToDefault() {
	SetSigintHandlingToDefault()
}
