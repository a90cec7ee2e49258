// Package shareable turns shop, encounter and NPC payloads into compact
// URL-safe strings and back: stable field-order binary serialization,
// zstd compression, then base64url.
package shareable

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// The wire format carries no field names or tags. Unsigned ints are
// LEB128 varints, signed ints are zigzag varints, strings are
// length-prefixed UTF-8, and enums travel as their variant index.

type writer struct {
	buf []byte
}

func (w *writer) uvarint(v uint64) {
	w.buf = binary.AppendUvarint(w.buf, v)
}

func (w *writer) varint(v int64) {
	w.buf = binary.AppendVarint(w.buf, v)
}

func (w *writer) str(s string) {
	w.uvarint(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *writer) boolean(b bool) {
	if b {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

func (w *writer) bytes() []byte {
	return w.buf
}

// reader consumes a wire buffer with a sticky error: after the first
// malformed read every later read returns the zero value.
type reader struct {
	buf []byte
	off int
	err error
}

var errTruncated = errors.New("truncated payload")

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) uvarint() uint64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Uvarint(r.buf[r.off:])
	if n <= 0 {
		r.fail(errTruncated)
		return 0
	}
	r.off += n
	return v
}

func (r *reader) varint() int64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Varint(r.buf[r.off:])
	if n <= 0 {
		r.fail(errTruncated)
		return 0
	}
	r.off += n
	return v
}

func (r *reader) str() string {
	n := r.uvarint()
	if r.err != nil {
		return ""
	}
	if n > uint64(len(r.buf)-r.off) {
		r.fail(errTruncated)
		return ""
	}
	s := string(r.buf[r.off : r.off+int(n)])
	r.off += int(n)
	return s
}

func (r *reader) boolean() bool {
	if r.err != nil {
		return false
	}
	if r.off >= len(r.buf) {
		r.fail(errTruncated)
		return false
	}
	b := r.buf[r.off]
	r.off++
	if b > 1 {
		r.fail(fmt.Errorf("invalid boolean byte 0x%02x", b))
		return false
	}
	return b == 1
}

// finish verifies the whole buffer was consumed.
func (r *reader) finish() error {
	if r.err != nil {
		return r.err
	}
	if r.off != len(r.buf) {
		return fmt.Errorf("%d trailing bytes after payload", len(r.buf)-r.off)
	}
	return nil
}
