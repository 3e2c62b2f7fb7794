//go:build linux && cgo && !noffi
// +build linux,cgo,!noffi

package main

/*
#define _LARGEFILE64_SOURCE 1

#include <dirent.h>
#include <signal.h>
#include <sys/select.h>

// FD_* are macros; the host's FFI declaration of the opaque fd_set
// byte-array cannot invoke them, so they are forwarded through real
// functions. No logic of our own here: each wrapper must behave exactly
// like the platform primitive of the same name on the same bytes.

static void ljc_fd_zero(fd_set *set)        { FD_ZERO(set); }
static void ljc_fd_set(int fd, fd_set *set) { FD_SET(fd, set); }
static void ljc_fd_clr(int fd, fd_set *set) { FD_CLR(fd, set); }
static int  ljc_fd_isset(int fd, fd_set *set) { return FD_ISSET(fd, set); }

static const char *ljc_dirent64_name(const struct dirent64 *dirent)
{
    return dirent ? dirent->d_name : "";
}

static void ljc_sigint_default(void)
{
    signal(SIGINT, SIG_DFL);
}
*/
import "C"

import "unsafe"

// FDZero clears every descriptor in the opaque set.
func FDZero(set unsafe.Pointer) {
	C.ljc_fd_zero((*C.fd_set)(set))
}

// FDSet adds fd to the opaque set.
func FDSet(fd int, set unsafe.Pointer) {
	C.ljc_fd_set(C.int(fd), (*C.fd_set)(set))
}

// FDClr removes fd from the opaque set.
func FDClr(fd int, set unsafe.Pointer) {
	C.ljc_fd_clr(C.int(fd), (*C.fd_set)(set))
}

// FDIsSet reports whether fd is in the opaque set.
func FDIsSet(fd int, set unsafe.Pointer) bool {
	return C.ljc_fd_isset(C.int(fd), (*C.fd_set)(set)) != 0
}

// dirent64NameC returns a pointer to the entry's name, or to an empty
// string for a null entry. The pointer aliases the dirent's own memory.
func dirent64NameC(dirent unsafe.Pointer) *C.char {
	return C.ljc_dirent64_name((*C.struct_dirent64)(dirent))
}

// Dirent64Name copies the entry's name into a Go string.
func Dirent64Name(dirent unsafe.Pointer) string {
	return C.GoString(dirent64NameC(dirent))
}

// SetSigintHandlingToDefault restores the default SIGINT disposition.
// Hosts that install their own interactive interrupt handling use this
// to hand the terminal behavior back to the OS.
func SetSigintHandlingToDefault() {
	C.ljc_sigint_default()
}
