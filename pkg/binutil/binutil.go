// Package binutil collects the byte-level primitives every codec package in
// rekordcodec builds on: fixed-width integer reads/writes of a declared
// endianness, fixed-size byte arrays, explicit zero padding and alignment.
package binutil

import (
	"encoding/binary"
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// Order picks the byte order for a single field. PDB files are little-endian
// throughout; ANLZ files are big-endian except for a handful of little-endian
// shorts inside color-waveform payloads — so every read/write call states its
// order explicitly rather than relying on a file-global setting.
type Order = binary.ByteOrder

var (
	LE Order = binary.LittleEndian
	BE Order = binary.BigEndian
)

// ReadU8 reads a single byte.
func ReadU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadU16 reads a 16-bit unsigned integer in the given order.
func ReadU16(r io.Reader, order Order) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return order.Uint16(buf[:]), nil
}

// ReadU32 reads a 32-bit unsigned integer in the given order.
func ReadU32(r io.Reader, order Order) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return order.Uint32(buf[:]), nil
}

// WriteU8 writes a single byte.
func WriteU8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

// WriteU16 writes a 16-bit unsigned integer in the given order.
func WriteU16(w io.Writer, order Order, v uint16) error {
	var buf [2]byte
	order.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// WriteU32 writes a 32-bit unsigned integer in the given order.
func WriteU32(w io.Writer, order Order, v uint32) error {
	var buf [4]byte
	order.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadBytes reads exactly n bytes.
func ReadBytes(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadMagic reads len(want) bytes and compares them against want, returning a
// structural rkerr.Error naming op and the observed bytes on mismatch.
func ReadMagic(r io.Reader, op string, offset int64, want []byte) error {
	got, err := ReadBytes(r, len(want))
	if err != nil {
		return rkerr.Structural(op, offset, err)
	}
	for i := range want {
		if got[i] != want[i] {
			return rkerr.Structuralf(op, offset, "magic mismatch: want %x, got %x", want, got)
		}
	}
	return nil
}

// PadZero writes n zero bytes.
func PadZero(w io.Writer, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := w.Write(make([]byte, n))
	return err
}

// AlignUp rounds n up to the next multiple of align; an align of 1 or less
// returns n unchanged.
func AlignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	rem := n % align
	if rem == 0 {
		return n
	}
	return n + (align - rem)
}

// PaddingFor returns the number of zero bytes needed to align n up to align.
func PaddingFor(n, align int) int {
	return AlignUp(n, align) - n
}

// BitReader reads a stream bit-at-a-time, most-significant-bit first within
// each byte. No codec package in this module calls it; they read whole
// bytes through ReadU8/ReadU16.
type BitReader struct {
	r      io.Reader
	buffer byte
	count  uint // bits remaining in buffer, 0-8
}

// NewBitReader wraps r for bit-at-a-time reads.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: r}
}

// Read consumes numBits (1-32) and returns them as the low bits of an int,
// most-significant bit first. It returns io.EOF once the underlying reader is
// exhausted, along with whatever partial value had been accumulated.
func (br *BitReader) Read(numBits uint) (int, error) {
	if numBits == 0 || numBits > 32 {
		return 0, rkerr.Structuralf("binutil.BitReader.Read", -1, "invalid bit count %d", numBits)
	}

	value := 0
	for i := uint(0); i < numBits; i++ {
		if br.count == 0 {
			var buf [1]byte
			n, err := br.r.Read(buf[:])
			if n == 0 {
				return value, err
			}
			br.buffer = buf[0]
			br.count = 8
		}
		bit := (br.buffer >> 7) & 1
		value = (value << 1) | int(bit)
		br.buffer <<= 1
		br.count--
	}
	return value, nil
}
