package main

// ChildVisitResult is the tri-state continuation signal a cursor visitor
// returns to the traversal: abort everything, continue with the next
// sibling, or descend into the children of the current cursor.
//
// The numeric values are identical to libclang's CXChildVisitResult and
// are passed through the trampoline unchanged; the correspondence is
// checked at compile time in lib-visitor.go.
type ChildVisitResult int32

const (
	VisitBreak ChildVisitResult = iota
	VisitContinue
	VisitRecurse
)

func (r ChildVisitResult) String() string {
	switch r {
	case VisitBreak:
		return "break"
	case VisitContinue:
		return "continue"
	case VisitRecurse:
		return "recurse"
	}
	return "invalid"
}

// CursorKind mirrors libclang's CXCursorKind. Values for the kinds this
// layer itself refers to are declared in lib-index.go, straight from the
// C enum.
type CursorKind uint32

// VisitorHandle identifies one registered cursor visitor within a
// VisitorRegistry. Handles are small non-negative integers, strictly
// increasing per registry, and stay valid for the life of the registry;
// they are never reused or invalidated.
type VisitorHandle int

// TraversalResult reports how a child traversal ended.
type TraversalResult int32

const (
	// Completed: every reachable cursor was offered to the visitor.
	Completed TraversalResult = iota
	// Interrupted: some visitor invocation returned VisitBreak. How far
	// the traversal got is not reported; a visitor that needs to know
	// must count for itself.
	Interrupted
)

func (r TraversalResult) String() string {
	if r == Interrupted {
		return "interrupted"
	}
	return "completed"
}
