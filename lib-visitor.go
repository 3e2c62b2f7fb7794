//go:build linux && cgo && !noffi
// +build linux,cgo,!noffi

package main

/*
#cgo LDFLAGS: -lclang

#include <stdint.h>
#include <clang-c/Index.h>

// Host-facing visitor signature. The cursors are taken BY POINTER: the
// host FFI layer cannot pass compound arguments by value through its
// callbacks, which is the reason this support library exists at all.
typedef enum CXChildVisitResult (*LJCX_CursorVisitor)(
    CXCursor *cursor, CXCursor *parent, CXClientData client_data);

// Go-side dispatcher, exported from lib-visitor_dispatch.go.
extern enum CXChildVisitResult ljclangGoCursorVisitor(
    CXCursor *cursor, CXCursor *parent, void *ctx);

// Trampoline for Go-closure dispatch. The client data is a cgo.Handle
// to the stack-scoped traversal context; recovering the real callback
// from it is the dispatcher's job.
static enum CXChildVisitResult
ljclang_tramp_go(CXCursor cursor, CXCursor parent, CXClientData client_data)
{
    return ljclangGoCursorVisitor(&cursor, &parent, client_data);
}

// Trampoline for host-supplied C visitors dispatched without a registry:
// the client data IS the callback pointer.
static enum CXChildVisitResult
ljclang_tramp_c(CXCursor cursor, CXCursor parent, CXClientData client_data)
{
    LJCX_CursorVisitor visitor = (LJCX_CursorVisitor)client_data;
    return visitor(&cursor, &parent, NULL);
}

static unsigned
ljclang_visit_go(CXCursor parent, uintptr_t ctx)
{
    return clang_visitChildren(parent, ljclang_tramp_go, (CXClientData)ctx);
}

static unsigned
ljclang_visit_c(CXCursor parent, LJCX_CursorVisitor visitor)
{
    return clang_visitChildren(parent, ljclang_tramp_c, (CXClientData)visitor);
}

// Call shim so Go code can invoke a host-supplied visitor that was
// wrapped into a registry record.
static enum CXChildVisitResult
ljclang_call_c_visitor(LJCX_CursorVisitor visitor, CXCursor *cursor, CXCursor *parent)
{
    return visitor(cursor, parent, NULL);
}
*/
import "C"

import (
	"fmt"
	"runtime/cgo"
	"sync"
)

// ChildVisitResult must agree numerically with CXChildVisitResult: the
// trampoline passes the value through without reinterpreting it. Each
// pair of conversions overflows at compile time on a mismatch.
const (
	_ = uint(C.CXChildVisit_Break - uint32(VisitBreak))
	_ = uint(uint32(VisitBreak) - C.CXChildVisit_Break)
	_ = uint(C.CXChildVisit_Continue - uint32(VisitContinue))
	_ = uint(uint32(VisitContinue) - C.CXChildVisit_Continue)
	_ = uint(C.CXChildVisit_Recurse - uint32(VisitRecurse))
	_ = uint(uint32(VisitRecurse) - C.CXChildVisit_Recurse)
)

// CursorVisitor is called once per visited cursor with the cursor and
// its structural parent. Its result steers the traversal.
type CursorVisitor func(cursor, parent Cursor) ChildVisitResult

type visitorRecord struct {
	visitor CursorVisitor
}

// VisitorRegistry holds registered cursor visitors in a contiguous
// growable arena; indices are the handles. Registration is
// single-writer: callers must not Register concurrently, and must not
// Register while a traversal that uses this registry is in flight.
// Dispatch itself only reads the registry and may run concurrently with
// other dispatches.
type VisitorRegistry struct {
	mu      sync.RWMutex
	records []visitorRecord
}

func NewVisitorRegistry() *VisitorRegistry {
	return &VisitorRegistry{}
}

// defaultRegistry backs the exported C entry points, which carry the
// original index-addressed ABI.
var defaultRegistry = NewVisitorRegistry()

// Register adds a visitor and returns its handle. Handles are strictly
// increasing and never invalidated; a handle resolves to exactly the
// visitor it was issued for, for the life of the registry. A failed
// registration leaves existing entries untouched.
func (r *VisitorRegistry) Register(v CursorVisitor) (VisitorHandle, error) {
	if v == nil {
		return -1, ErrNilVisitor
	}
	r.mu.Lock()
	r.records = append(r.records, visitorRecord{visitor: v})
	h := VisitorHandle(len(r.records) - 1)
	r.mu.Unlock()
	return h, nil
}

// Len reports the number of registered visitors.
func (r *VisitorRegistry) Len() int {
	r.mu.RLock()
	n := len(r.records)
	r.mu.RUnlock()
	return n
}

func (r *VisitorRegistry) lookup(h VisitorHandle) (CursorVisitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if h < 0 || int(h) >= len(r.records) {
		return nil, fmt.Errorf("%w: %d (%d registered)", ErrInvalidHandle, h, len(r.records))
	}
	return r.records[h].visitor, nil
}

// Visit traverses the children of root, dispatching every visited
// cursor to the visitor registered under h. The handle is validated
// before any native call is made.
func (r *VisitorRegistry) Visit(root Cursor, h VisitorHandle) (TraversalResult, error) {
	v, err := r.lookup(h)
	if err != nil {
		return Completed, err
	}
	return VisitChildren(root, v)
}

// traversalContext lives on the stack for exactly one traversal and
// carries the callback the trampoline must dispatch to. It crosses the
// C boundary as a cgo.Handle, never as a raw Go pointer.
type traversalContext struct {
	visitor CursorVisitor
}

// VisitChildren traverses the children of root with v directly, without
// a registry. This variant shares no mutable state and is safe for
// concurrent, independent traversals. The traversal runs synchronously
// on the calling thread until completion or the first VisitBreak.
func VisitChildren(root Cursor, v CursorVisitor) (TraversalResult, error) {
	if v == nil {
		return Completed, ErrNilVisitor
	}
	ctx := traversalContext{visitor: v}
	h := cgo.NewHandle(&ctx)
	defer h.Delete()
	broken := C.ljclang_visit_go(root.c, C.uintptr_t(h))
	if broken != 0 {
		return Interrupted, nil
	}
	return Completed, nil
}

// registerCVisitor wraps a host-supplied C visitor function pointer into
// a Go closure and registers it with the default registry. The wrapper
// indirects through a C call shim; the continuation signal comes back
// value-preserving.
func registerCVisitor(visitor C.LJCX_CursorVisitor) (VisitorHandle, error) {
	if visitor == nil {
		return -1, ErrNilVisitor
	}
	return defaultRegistry.Register(func(cursor, parent Cursor) ChildVisitResult {
		cc, pc := cursor.c, parent.c
		return ChildVisitResult(C.ljclang_call_c_visitor(visitor, &cc, &pc))
	})
}

// visitWithCVisitor is the pointer-passing dispatch for host-supplied C
// visitors: the function pointer itself travels as the client data.
func visitWithCVisitor(parent C.CXCursor, visitor C.LJCX_CursorVisitor) TraversalResult {
	if C.ljclang_visit_c(parent, visitor) != 0 {
		return Interrupted
	}
	return Completed
}

// FilterKinds wraps v so that it fires only on cursors of the listed
// kinds. Non-matching cursors are still descended into. Kind filtering
// is deliberately not part of the native contract (the one-time bitmap
// pre-filter stays retired); this is a host-side convenience.
func FilterKinds(v CursorVisitor, kinds ...CursorKind) CursorVisitor {
	want := make(map[CursorKind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	return func(cursor, parent Cursor) ChildVisitResult {
		if !want[cursor.Kind()] {
			return VisitRecurse
		}
		return v(cursor, parent)
	}
}
