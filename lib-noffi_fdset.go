//go:build linux && (!cgo || noffi)
// +build linux
// +build !cgo noffi

package main

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Pure-Go fallback for the descriptor-set bit primitives. unix.FdSet is
// generated from the same kernel headers as fd_set, so the bytes behind
// the opaque pointer mean the same thing in both builds.

func FDZero(set unsafe.Pointer) {
	(*unix.FdSet)(set).Zero()
}

func FDSet(fd int, set unsafe.Pointer) {
	(*unix.FdSet)(set).Set(fd)
}

func FDClr(fd int, set unsafe.Pointer) {
	(*unix.FdSet)(set).Clear(fd)
}

func FDIsSet(fd int, set unsafe.Pointer) bool {
	return (*unix.FdSet)(set).IsSet(fd)
}
