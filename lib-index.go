//go:build linux && cgo && !noffi
// +build linux,cgo,!noffi

package main

/*
#include <stdlib.h>
#include <clang-c/Index.h>
*/
import "C"

import (
	"fmt"
	"io"
	"strings"
	"unsafe"

	"github.com/xyproto/env/v2"
)

const ffiEnabled = true

// Index wraps a CXIndex. The traversed cursors themselves stay opaque
// to this layer; these wrappers exist so the traversal machinery can be
// driven (and tested) without a host environment attached.
type Index struct {
	c C.CXIndex
}

func NewIndex(excludeDeclsFromPCH, displayDiagnostics bool) Index {
	return Index{c: C.clang_createIndex(cBool(excludeDeclsFromPCH), cBool(displayDiagnostics))}
}

func (ix Index) Dispose() {
	C.clang_disposeIndex(ix.c)
}

// TranslationUnit wraps a CXTranslationUnit.
type TranslationUnit struct {
	c C.CXTranslationUnit
}

// ParseTranslationUnit parses srcPath with the given clang arguments.
// The caller owns the returned unit and must Dispose it.
func (ix Index) ParseTranslationUnit(srcPath string, args []string) (TranslationUnit, error) {
	cpath := C.CString(srcPath)
	defer C.free(unsafe.Pointer(cpath))

	cargs := make([]*C.char, len(args))
	for i, a := range args {
		cargs[i] = C.CString(a)
		defer C.free(unsafe.Pointer(cargs[i]))
	}
	var argv **C.char
	if len(cargs) > 0 {
		argv = &cargs[0]
	}

	tu := C.clang_parseTranslationUnit(ix.c, cpath, argv, C.int(len(cargs)),
		nil, 0, C.CXTranslationUnit_None)
	if tu == nil {
		return TranslationUnit{}, fmt.Errorf("failed to parse translation unit %q", srcPath)
	}
	return TranslationUnit{c: tu}, nil
}

func (tu TranslationUnit) Dispose() {
	C.clang_disposeTranslationUnit(tu.c)
}

// Cursor returns the cursor representing the whole translation unit,
// the usual traversal root.
func (tu TranslationUnit) Cursor() Cursor {
	return Cursor{c: C.clang_getTranslationUnitCursor(tu.c)}
}

// Cursor is a value copy of a CXCursor. It stays valid as long as the
// translation unit it came from.
type Cursor struct {
	c C.CXCursor
}

func (c Cursor) Kind() CursorKind {
	return CursorKind(C.clang_getCursorKind(c.c))
}

func (c Cursor) IsNull() bool {
	return C.clang_Cursor_isNull(c.c) != 0
}

func (c Cursor) Equal(o Cursor) bool {
	return C.clang_equalCursors(c.c, o.c) != 0
}

// Hash returns libclang's cursor hash, usable as a map key for cursors
// of one translation unit.
func (c Cursor) Hash() uint32 {
	return uint32(C.clang_hashCursor(c.c))
}

func (c Cursor) Spelling() string {
	return cxStringToGo(C.clang_getCursorSpelling(c.c))
}

func (c Cursor) KindSpelling() string {
	return cxStringToGo(C.clang_getCursorKindSpelling(C.clang_getCursorKind(c.c)))
}

// Cursor kinds referred to by this layer and its tests, straight from
// the C enum.
const (
	CursorStructDecl       = CursorKind(C.CXCursor_StructDecl)
	CursorEnumDecl         = CursorKind(C.CXCursor_EnumDecl)
	CursorFieldDecl        = CursorKind(C.CXCursor_FieldDecl)
	CursorEnumConstantDecl = CursorKind(C.CXCursor_EnumConstantDecl)
	CursorFunctionDecl     = CursorKind(C.CXCursor_FunctionDecl)
	CursorTypedefDecl      = CursorKind(C.CXCursor_TypedefDecl)
)

// cxStringToGo copies a CXString into Go memory and disposes it.
func cxStringToGo(s C.CXString) string {
	str := C.GoString(C.clang_getCString(s))
	C.clang_disposeString(s)
	return str
}

func cBool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

func init() {
	clangVersionFallback = func() string {
		return cxStringToGo(C.clang_getClangVersion())
	}
}

// dumpAST prints an indented cursor tree for one source file. Each
// level is walked with the pointer-passing dispatch; the recursion into
// Go here doubles as a re-entrancy exercise of the trampoline.
func dumpAST(w io.Writer, srcPath string) error {
	ix := NewIndex(true, false)
	defer ix.Dispose()

	args := strings.Fields(env.Str("LJCLANG_CLANG_ARGS"))
	tu, err := ix.ParseTranslationUnit(srcPath, args)
	if err != nil {
		return err
	}
	defer tu.Dispose()

	var walk func(c Cursor, depth int)
	walk = func(c Cursor, depth int) {
		VisitChildren(c, func(cursor, parent Cursor) ChildVisitResult {
			fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("  ", depth),
				cursor.KindSpelling(), cursor.Spelling())
			walk(cursor, depth+1)
			return VisitContinue
		})
	}
	walk(tu.Cursor(), 0)
	return nil
}
