//go:build linux && cgo && !noffi
// +build linux,cgo,!noffi

package main

import (
	"fmt"
	"strings"
	"testing"
	"unsafe"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sys/unix"
)

func probeFor(t *testing.T, name string) typeProbe {
	t.Helper()
	for _, group := range [][]typeProbe{sysIntegrals, pollIntegrals, sockIntegrals} {
		for _, p := range group {
			if p.name == name {
				return p
			}
		}
	}
	t.Fatalf("no integral probe for %s", name)
	return typeProbe{}
}

func opaqueFor(t *testing.T, name string) opaqueProbe {
	t.Helper()
	for _, o := range opaqueProbes {
		if o.name == name {
			return o
		}
	}
	t.Fatalf("no opaque probe for %s", name)
	return opaqueProbe{}
}

func TestTypeDefsIdempotent(t *testing.T) {
	a, b := TypeDefs(), TypeDefs()
	if a == "" {
		t.Fatal("empty typedef block")
	}
	if a != b {
		t.Error("TypeDefs() is not byte-identical across calls")
	}
	if got, want := strings.Count(a, "typedef "), len(TypeDescriptors()); got != want {
		t.Errorf("block has %d typedef statements, want %d", got, want)
	}
}

func TestTypeDefsOrder(t *testing.T) {
	wantOrder := []string{
		"time_t", "blkcnt_t", "blksize_t", "clock_t", "clockid_t", "dev_t",
		"fsblkcnt_t", "fsfilcnt_t", "gid_t", "id_t", "ino_t", "mode_t",
		"nlink_t", "off_t", "pid_t", "ssize_t", "suseconds_t", "uid_t",
		"nfds_t",
		"sigset_t", "fd_set",
		"sa_family_t", "socklen_t",
	}
	ds := TypeDescriptors()
	if len(ds) != len(wantOrder) {
		t.Fatalf("%d descriptors, want %d: %s", len(ds), len(wantOrder), spew.Sdump(ds))
	}
	for i, d := range ds {
		if d.Name != wantOrder[i] {
			t.Errorf("descriptor %d is %s, want %s", i, d.Name, wantOrder[i])
		}
	}
}

// The portable spellings have fixed widths and signedness; each must
// agree with what the build-time probe measured on the real type.
func TestSpellingsAgreeWithProbes(t *testing.T) {
	shape := map[string]struct {
		size   int
		signed bool
	}{
		"int32_t":        {4, true},
		"int64_t":        {8, true},
		"uint32_t":       {4, false},
		"uint64_t":       {8, false},
		"unsigned short": {2, false},
	}
	for _, group := range [][]typeProbe{sysIntegrals, pollIntegrals, sockIntegrals} {
		for _, p := range group {
			spelling := spellingForKind(p.name, p.kind)
			want, known := shape[spelling]
			if !known {
				// "long int" / "unsigned long": width is platform's long.
				if p.size != 4 && p.size != 8 {
					t.Errorf("%s: %s has width %d", p.name, spelling, p.size)
				}
				continue
			}
			if p.size != want.size || p.signed != want.signed {
				t.Errorf("%s resolved to %s but probe disagrees: %s",
					p.name, spelling, spew.Sdump(p))
			}
		}
	}
}

// x/sys/unix's generated struct fields carry the same platform types;
// the resolved widths must match them.
func TestWidthsAgreeWithXSysUnix(t *testing.T) {
	var ts unix.Timespec
	var tv unix.Timeval

	cases := []struct {
		name string
		want uintptr
	}{
		{"time_t", unsafe.Sizeof(ts.Sec)},
		{"suseconds_t", unsafe.Sizeof(tv.Usec)},
	}
	for _, c := range cases {
		if p := probeFor(t, c.name); uintptr(p.size) != c.want {
			t.Errorf("%s probed as %d bytes, x/sys/unix says %d", c.name, p.size, c.want)
		}
	}

	if o := opaqueFor(t, "fd_set"); uintptr(o.size) != unsafe.Sizeof(unix.FdSet{}) {
		t.Errorf("fd_set probed as %d bytes, unix.FdSet is %d",
			o.size, unsafe.Sizeof(unix.FdSet{}))
	}
	if o := opaqueFor(t, "sigset_t"); uintptr(o.size) != unsafe.Sizeof(unix.Sigset_t{}) {
		t.Errorf("sigset_t probed as %d bytes, unix.Sigset_t is %d",
			o.size, unsafe.Sizeof(unix.Sigset_t{}))
	}
}

func TestOpaqueTypedefText(t *testing.T) {
	block := TypeDefs()
	for _, name := range []string{"sigset_t", "fd_set"} {
		o := opaqueFor(t, name)
		want := fmt.Sprintf(
			"typedef struct { uint8_t bytes_[%d]; } __attribute__((aligned(%d))) %s;",
			o.size, o.align, name)
		if !strings.Contains(block, want) {
			t.Errorf("block lacks %q", want)
		}
	}
}

func TestUnderlyingSpelling(t *testing.T) {
	if s, ok := UnderlyingSpelling("pid_t"); !ok || s != "int32_t" {
		t.Errorf(`UnderlyingSpelling("pid_t") = %q, %v; want "int32_t", true`, s, ok)
	}
	if s, ok := UnderlyingSpelling("bogus_t"); ok {
		t.Errorf(`UnderlyingSpelling("bogus_t") = %q, true; want miss`, s)
	}
}
