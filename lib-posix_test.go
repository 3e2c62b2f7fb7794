//go:build linux && cgo && !noffi
// +build linux,cgo,!noffi

package main

import (
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

// newFdSetBuf allocates a zeroed buffer with the real fd_set's size and
// (at least) its alignment.
func newFdSetBuf(t *testing.T) unsafe.Pointer {
	t.Helper()
	size := opaqueFor(t, "fd_set").size
	buf := make([]uint64, size/8)
	return unsafe.Pointer(&buf[0])
}

func TestFDBitPrimitives(t *testing.T) {
	set := newFdSetBuf(t)
	FDZero(set)

	for _, fd := range []int{0, 1, 31, 32, 63, 64, 100, 1023} {
		if FDIsSet(fd, set) {
			t.Fatalf("fd %d set in a zeroed set", fd)
		}
		FDSet(fd, set)
		if !FDIsSet(fd, set) {
			t.Errorf("fd %d not set after FDSet", fd)
		}
		// Same bytes, read through x/sys/unix's view of fd_set.
		if !(*unix.FdSet)(set).IsSet(fd) {
			t.Errorf("fd %d: platform macro and unix.FdSet disagree", fd)
		}
		FDClr(fd, set)
		if FDIsSet(fd, set) {
			t.Errorf("fd %d still set after FDClr", fd)
		}
	}
}

func TestFDZeroClearsAll(t *testing.T) {
	set := newFdSetBuf(t)
	for fd := 0; fd < 128; fd++ {
		FDSet(fd, set)
	}
	FDZero(set)
	for fd := 0; fd < 128; fd++ {
		if FDIsSet(fd, set) {
			t.Fatalf("fd %d survived FDZero", fd)
		}
	}
}

func TestDirent64NameNil(t *testing.T) {
	if got := Dirent64Name(nil); got != "" {
		t.Errorf(`Dirent64Name(nil) = %q, want ""`, got)
	}
}

func TestSetSigintHandlingToDefault(t *testing.T) {
	// SIG_DFL is the process's initial disposition; restoring it twice
	// must be a no-op both times.
	SetSigintHandlingToDefault()
	SetSigintHandlingToDefault()
}
