//go:build linux && cgo && !noffi
// +build linux,cgo,!noffi

package main

/*
#include <stdint.h>
#include <stddef.h>
#include <time.h>
#include <poll.h>
#include <signal.h>
#include <sys/types.h>
#include <sys/select.h>
#include <sys/socket.h>
#include <sys/time.h>

// ---- Portable-spelling classification -------------------------------
//
// Each platform typedef of interest is matched BY TYPE IDENTITY against
// a small fixed set of portable spellings. _Generic guarantees that at
// most one association can claim a type; the "long int" / "unsigned
// long" branches are substituted with uninstantiable placeholder structs
// whenever long is already covered by a canonical 64-bit spelling, so
// the association list stays free of duplicates on every ABI.

#if __SIZEOF_LONG__ == 8
typedef struct { char unused_; }    ljc_longint_t;
typedef struct { char unused_[2]; } ljc_ulongint_t;
#else
typedef long          ljc_longint_t;
typedef unsigned long ljc_ulongint_t;
#endif

enum {
    LJC_KIND_NONE = 0,
    LJC_KIND_I32,
    LJC_KIND_I64,
    LJC_KIND_U32,
    LJC_KIND_U64,
    LJC_KIND_USHORT,
    LJC_KIND_LONG,
    LJC_KIND_ULONG
};

#define LJC_KIND(expr) _Generic((expr), \
    int32_t:        LJC_KIND_I32, \
    int64_t:        LJC_KIND_I64, \
    uint32_t:       LJC_KIND_U32, \
    uint64_t:       LJC_KIND_U64, \
    unsigned short: LJC_KIND_USHORT, \
    ljc_longint_t:  LJC_KIND_LONG, \
    ljc_ulongint_t: LJC_KIND_ULONG, \
    default:        LJC_KIND_NONE)

#define LJC_PROBE(name) \
    ljc_size_##name = sizeof(name), \
    ljc_signed_##name = ((name)-1 < (name)1), \
    ljc_kind_##name = LJC_KIND((name)0)

enum {
    LJC_PROBE(time_t),
    LJC_PROBE(blkcnt_t),
    LJC_PROBE(blksize_t),
    LJC_PROBE(clock_t),
    LJC_PROBE(clockid_t),
    LJC_PROBE(dev_t),
    LJC_PROBE(fsblkcnt_t),
    LJC_PROBE(fsfilcnt_t),
    LJC_PROBE(gid_t),
    LJC_PROBE(id_t),
    LJC_PROBE(ino_t),
    LJC_PROBE(mode_t),
    LJC_PROBE(nlink_t),
    LJC_PROBE(off_t),
    LJC_PROBE(pid_t),
    LJC_PROBE(ssize_t),
    LJC_PROBE(suseconds_t),
    LJC_PROBE(uid_t),
    LJC_PROBE(nfds_t),
    LJC_PROBE(sa_family_t),
    LJC_PROBE(socklen_t)
};

// Every probed typedef must resolve to exactly one portable spelling;
// an unresolved type would otherwise be emitted silently wrong.
#define LJC_CHECK(name) \
    _Static_assert(ljc_kind_##name != LJC_KIND_NONE, #name ": no portable spelling"); \
    _Static_assert(ljc_size_##name == 2 || ljc_size_##name == 4 || ljc_size_##name == 8, \
                   #name ": unexpected width")

LJC_CHECK(time_t);
LJC_CHECK(blkcnt_t);
LJC_CHECK(blksize_t);
LJC_CHECK(clock_t);
LJC_CHECK(clockid_t);
LJC_CHECK(dev_t);
LJC_CHECK(fsblkcnt_t);
LJC_CHECK(fsfilcnt_t);
LJC_CHECK(gid_t);
LJC_CHECK(id_t);
LJC_CHECK(ino_t);
LJC_CHECK(mode_t);
LJC_CHECK(nlink_t);
LJC_CHECK(off_t);
LJC_CHECK(pid_t);
LJC_CHECK(ssize_t);
LJC_CHECK(suseconds_t);
LJC_CHECK(uid_t);
LJC_CHECK(nfds_t);
LJC_CHECK(sa_family_t);
LJC_CHECK(socklen_t);

// ---- Opaque layouts --------------------------------------------------
//
// sigset_t and fd_set have no portable field-level spelling; they are
// exposed as byte arrays of identical size and alignment. The shadow
// structs below ARE the synthesized layout; if either assertion fails,
// the build fails instead of emitting a declaration that disagrees with
// the platform.

enum {
    ljc_align_sigset_t = _Alignof(sigset_t),
    ljc_align_fd_set   = _Alignof(fd_set)
};

struct ljc_opaque_sigset { uint8_t bytes_[sizeof(sigset_t)]; }
    __attribute__((aligned(_Alignof(sigset_t))));
struct ljc_opaque_fdset  { uint8_t bytes_[sizeof(fd_set)]; }
    __attribute__((aligned(_Alignof(fd_set))));

_Static_assert(sizeof(struct ljc_opaque_sigset) == sizeof(sigset_t),
               "sigset_t: synthesized size mismatch");
_Static_assert(_Alignof(struct ljc_opaque_sigset) == _Alignof(sigset_t),
               "sigset_t: synthesized alignment mismatch");
_Static_assert(sizeof(struct ljc_opaque_fdset) == sizeof(fd_set),
               "fd_set: synthesized size mismatch");
_Static_assert(_Alignof(struct ljc_opaque_fdset) == _Alignof(fd_set),
               "fd_set: synthesized alignment mismatch");

// ---- Field-only layout checks ----------------------------------------
//
// Structs exposed field-by-field must contain ONLY the members POSIX
// promises. Comparing total sizes rejects the common failure (extra,
// undocumented fields); a reordering with coincidentally equal size
// would slip through, a residual risk accepted for zero runtime cost.

struct ljc_check_timespec { time_t sec; long nsec; };
struct ljc_check_timeval  { time_t sec; suseconds_t usec; };
struct ljc_check_pollfd   { int fd; short events; short revents; };

_Static_assert(sizeof(struct ljc_check_timespec) == sizeof(struct timespec),
               "struct timespec has fields beyond the POSIX contract");
_Static_assert(sizeof(struct ljc_check_timeval) == sizeof(struct timeval),
               "struct timeval has fields beyond the POSIX contract");
_Static_assert(sizeof(struct ljc_check_pollfd) == sizeof(struct pollfd),
               "struct pollfd has fields beyond the POSIX contract");
*/
import "C"

import (
	"fmt"
	"strings"
	"sync"

	. "github.com/puzpuzpuz/xsync"
)

// TypeDescriptor maps one platform typedef name to the portable
// spelling of its true underlying representation, resolved at native
// build time. Descriptors are immutable.
type TypeDescriptor struct {
	Name     string
	Spelling string
}

type typeProbe struct {
	name   string
	size   int
	signed bool
	kind   int
}

type opaqueProbe struct {
	name  string
	size  int
	align int
}

// Probe tables, in emission order within their group. The values on the
// right are compile-time constants from the C preamble.
var sysIntegrals = []typeProbe{
	{"time_t", C.ljc_size_time_t, C.ljc_signed_time_t != 0, C.ljc_kind_time_t},
	{"blkcnt_t", C.ljc_size_blkcnt_t, C.ljc_signed_blkcnt_t != 0, C.ljc_kind_blkcnt_t},
	{"blksize_t", C.ljc_size_blksize_t, C.ljc_signed_blksize_t != 0, C.ljc_kind_blksize_t},
	{"clock_t", C.ljc_size_clock_t, C.ljc_signed_clock_t != 0, C.ljc_kind_clock_t},
	{"clockid_t", C.ljc_size_clockid_t, C.ljc_signed_clockid_t != 0, C.ljc_kind_clockid_t},
	{"dev_t", C.ljc_size_dev_t, C.ljc_signed_dev_t != 0, C.ljc_kind_dev_t},
	{"fsblkcnt_t", C.ljc_size_fsblkcnt_t, C.ljc_signed_fsblkcnt_t != 0, C.ljc_kind_fsblkcnt_t},
	{"fsfilcnt_t", C.ljc_size_fsfilcnt_t, C.ljc_signed_fsfilcnt_t != 0, C.ljc_kind_fsfilcnt_t},
	{"gid_t", C.ljc_size_gid_t, C.ljc_signed_gid_t != 0, C.ljc_kind_gid_t},
	{"id_t", C.ljc_size_id_t, C.ljc_signed_id_t != 0, C.ljc_kind_id_t},
	{"ino_t", C.ljc_size_ino_t, C.ljc_signed_ino_t != 0, C.ljc_kind_ino_t},
	{"mode_t", C.ljc_size_mode_t, C.ljc_signed_mode_t != 0, C.ljc_kind_mode_t},
	{"nlink_t", C.ljc_size_nlink_t, C.ljc_signed_nlink_t != 0, C.ljc_kind_nlink_t},
	{"off_t", C.ljc_size_off_t, C.ljc_signed_off_t != 0, C.ljc_kind_off_t},
	{"pid_t", C.ljc_size_pid_t, C.ljc_signed_pid_t != 0, C.ljc_kind_pid_t},
	{"ssize_t", C.ljc_size_ssize_t, C.ljc_signed_ssize_t != 0, C.ljc_kind_ssize_t},
	{"suseconds_t", C.ljc_size_suseconds_t, C.ljc_signed_suseconds_t != 0, C.ljc_kind_suseconds_t},
	{"uid_t", C.ljc_size_uid_t, C.ljc_signed_uid_t != 0, C.ljc_kind_uid_t},
}

var pollIntegrals = []typeProbe{
	{"nfds_t", C.ljc_size_nfds_t, C.ljc_signed_nfds_t != 0, C.ljc_kind_nfds_t},
}

var sockIntegrals = []typeProbe{
	{"sa_family_t", C.ljc_size_sa_family_t, C.ljc_signed_sa_family_t != 0, C.ljc_kind_sa_family_t},
	{"socklen_t", C.ljc_size_socklen_t, C.ljc_signed_socklen_t != 0, C.ljc_kind_socklen_t},
}

var opaqueProbes = []opaqueProbe{
	{"sigset_t", C.sizeof_sigset_t, C.ljc_align_sigset_t},
	{"fd_set", C.sizeof_fd_set, C.ljc_align_fd_set},
}

func spellingForKind(name string, kind int) string {
	switch kind {
	case C.LJC_KIND_I32:
		return "int32_t"
	case C.LJC_KIND_I64:
		return "int64_t"
	case C.LJC_KIND_U32:
		return "uint32_t"
	case C.LJC_KIND_U64:
		return "uint64_t"
	case C.LJC_KIND_USHORT:
		return "unsigned short"
	case C.LJC_KIND_LONG:
		return "long int"
	case C.LJC_KIND_ULONG:
		return "unsigned long"
	}
	// Unreachable: LJC_CHECK rejects unresolved kinds at build time.
	panic("no portable spelling for " + name)
}

func opaqueSpelling(o opaqueProbe) string {
	return fmt.Sprintf("struct { uint8_t bytes_[%d]; } __attribute__((aligned(%d)))",
		o.size, o.align)
}

// TypeDescriptors returns the resolved descriptors in emission order:
// the time.h/sys/types.h integrals, nfds_t (poll.h), the opaque
// sigset_t (signal.h) and fd_set (sys/select.h) layouts, then
// sa_family_t and socklen_t (sys/socket.h). The order is fixed so the
// emitted block is reproducible across builds.
func TypeDescriptors() []TypeDescriptor {
	ds := make([]TypeDescriptor, 0,
		len(sysIntegrals)+len(pollIntegrals)+len(opaqueProbes)+len(sockIntegrals))
	for _, p := range sysIntegrals {
		ds = append(ds, TypeDescriptor{p.name, spellingForKind(p.name, p.kind)})
	}
	for _, p := range pollIntegrals {
		ds = append(ds, TypeDescriptor{p.name, spellingForKind(p.name, p.kind)})
	}
	for _, o := range opaqueProbes {
		ds = append(ds, TypeDescriptor{o.name, opaqueSpelling(o)})
	}
	for _, p := range sockIntegrals {
		ds = append(ds, TypeDescriptor{p.name, spellingForKind(p.name, p.kind)})
	}
	return ds
}

// spellmap is the name-to-spelling index behind UnderlyingSpelling:
// written once while the block is built, read-mostly forever after.
type spellmap struct {
	RBMutex
	m map[string]string
}

func (u *spellmap) set(k, v string) {
	u.Lock()
	u.m[k] = v
	u.Unlock()
}

func (u *spellmap) get(k string) (string, bool) {
	tk := u.RLock()
	v, ok := u.m[k]
	u.RUnlock(tk)
	return v, ok
}

var (
	typedefOnce  sync.Once
	typedefBlock string
	typedefIndex = &spellmap{m: make(map[string]string, 24)}
)

func buildTypeDefs() {
	var b strings.Builder
	for _, d := range TypeDescriptors() {
		fmt.Fprintf(&b, "typedef %s %s;", d.Spelling, d.Name)
		typedefIndex.set(d.Name, d.Spelling)
	}
	typedefBlock = b.String()
}

// TypeDefs returns the typedef block consumed by the host's foreign-type
// declaration parser, one self-contained statement per descriptor, in
// the order documented on TypeDescriptors. The string is built once and
// cached; repeated calls return the identical bytes.
func TypeDefs() string {
	typedefOnce.Do(buildTypeDefs)
	return typedefBlock
}

// UnderlyingSpelling reports the portable spelling a typedef resolved
// to, or false for names this layer does not introspect.
func UnderlyingSpelling(name string) (string, bool) {
	TypeDefs()
	return typedefIndex.get(name)
}
