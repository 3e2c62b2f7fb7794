package main

import "errors"

var (
	// ErrNilVisitor is reported when a nil callback is registered or
	// dispatched.
	ErrNilVisitor = errors.New("nil cursor visitor")

	// ErrInvalidHandle is reported when a dispatch names a handle that
	// was never issued by the registry. The native traversal machinery
	// is not touched in that case.
	ErrInvalidHandle = errors.New("invalid visitor handle")

	// ErrFFIDisabled is reported by builds without cgo (or with the
	// noffi tag), where libclang and the platform type probes are
	// unavailable.
	ErrFFIDisabled = errors.New("native support disabled in this build (rebuild with cgo and without the noffi tag)")
)

// Result codes of the exported C entry points. Kept bit-for-bit
// compatible with the original support library ABI: failures are
// negative sentinels, never confusable with success.
const (
	visitCompleted   = 0  // traversal ran to the end
	visitInterrupted = 1  // a visitor returned the break signal
	visitBadHandle   = -1 // handle out of range, no native call made
	regFailed        = -1 // registration failed (nil visitor)
)
