// Package rkerr defines the error kinds shared by the pdb, anlz and setting
// codecs: structural framing failures, malformed DeviceSQL strings, unrecognized
// enum bytes, setting-file checksum mismatches and write-time overflow.
package rkerr

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind classifies the failure so callers can branch without string matching.
type Kind int

const (
	// KindStructural covers truncated input, magic mismatches, invalid page-type
	// tags and page-chain cycles.
	KindStructural Kind = iota
	// KindEncoding covers malformed DeviceSQL strings.
	KindEncoding
	// KindEnumeration covers a byte that does not map to any named enum variant.
	KindEnumeration
	// KindChecksum covers a setting-file CRC-16 mismatch.
	KindChecksum
	// KindWrite covers offset/length overflow while serializing.
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindEncoding:
		return "encoding"
	case KindEnumeration:
		return "enumeration"
	case KindChecksum:
		return "checksum"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Error is the shared error type returned by every codec package. Offset is
// the byte position within the file where the failure was observed, or -1
// when not applicable (e.g. a write-time overflow with no fixed position).
type Error struct {
	Kind   Kind
	Op     string
	Offset int64
	Field  string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Field != "" && e.Offset >= 0:
		return fmt.Sprintf("%s: %s at offset %#x, field %q: %v", e.Op, e.Kind, e.Offset, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: %s, field %q: %v", e.Op, e.Kind, e.Field, e.Err)
	case e.Offset >= 0:
		return fmt.Sprintf("%s: %s at offset %#x: %v", e.Op, e.Kind, e.Offset, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, op string, offset int64, field string, err error) *Error {
	return &Error{
		Kind:   kind,
		Op:     op,
		Offset: offset,
		Field:  field,
		Err:    errors.WithStackDepth(err, 1),
	}
}

// Structural reports a framing-level failure: truncated input, bad magic,
// unknown page-type tag or a page-chain cycle.
func Structural(op string, offset int64, err error) *Error {
	return newError(KindStructural, op, offset, "", err)
}

// Structuralf is Structural with a formatted message.
func Structuralf(op string, offset int64, format string, args ...any) *Error {
	return Structural(op, offset, errors.Newf(format, args...))
}

// Encoding reports a malformed DeviceSQL string.
func Encoding(op string, offset int64, err error) *Error {
	return newError(KindEncoding, op, offset, "", err)
}

// Enumeration reports a byte value with no matching named variant, per §7.
func Enumeration(op, field string, offset int64, value byte) *Error {
	return newError(KindEnumeration, op, offset, field, errors.Newf("unrecognized value %#04x", value))
}

// Checksum reports a CRC-16 mismatch. It is the one recoverable kind:
// setting.Read returns it in Setting.ChecksumMismatch next to the parsed
// value instead of failing. No read path has a strict mode that turns it into
// a returned error.
func Checksum(op string, offset int64, want, got uint16) *Error {
	return newError(KindChecksum, op, offset, "", errors.Newf("checksum mismatch: want %#04x, got %#04x", want, got))
}

// Write reports an offset or length overflow discovered while serializing.
func Write(op, field string, err error) *Error {
	return newError(KindWrite, op, -1, field, err)
}

// IsChecksumMismatch reports whether err is (or wraps) a checksum Error, the
// one designed-recoverable error kind.
func IsChecksumMismatch(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == KindChecksum
	}
	return false
}
