// Package devicesql implements Rekordbox's length-prefixed DeviceSQL string
// encoding, the text type used throughout export.pdb row payloads. It has
// three physical forms, all little-endian: short ASCII, long ASCII and long
// UTF-16LE. A decoded String remembers which form it came from so writing it
// back reproduces the original bytes.
package devicesql

import (
	"io"
	"unicode/utf16"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// maxShortLen is the largest length the short-ASCII form's 7-bit length
// field can carry: ((0xFF >> 1) - 1).
const maxShortLen = 126

// Encoding names the physical form a String was read as (or will be written
// as).
type Encoding int

const (
	// ShortASCII is the one-byte-header short-string-optimized form.
	ShortASCII Encoding = iota
	// LongASCII is the 0x40-flagged long form. New never produces this form
	// (per the Non-goal in spec.md §4.1, it is preserved on read but not
	// synthesized); it is reachable only by constructing a String through
	// Read or NewRaw.
	LongASCII
	// LongUTF16LE is the 0x90-flagged long form holding UTF-16LE code units,
	// terminated by a mandatory 2-byte null.
	LongUTF16LE
	// ISRC is the 0x90-flagged long form's special-cased pseudo-string used
	// only for a track's ISRC field: a 0x3 magic byte followed by a
	// null-terminated ASCII string.
	ISRC
)

// String is an immutable DeviceSQL string value.
type String struct {
	encoding Encoding
	text     string
}

// Empty is the canonical empty DeviceSQLString, encoded as a zero-length
// short-ASCII string ([0x3]).
func Empty() String {
	return String{encoding: ShortASCII, text: ""}
}

// New builds a String from a plain Go string, choosing the short-ASCII form
// when it is pure ASCII and fits the 126-byte short-form budget, and the long
// UTF-16LE form otherwise. It never produces the long-ASCII form: that form
// is only ever preserved when read from an existing file.
func New(s string) String {
	if isASCII(s) && len(s) <= maxShortLen {
		return String{encoding: ShortASCII, text: s}
	}
	return String{encoding: LongUTF16LE, text: s}
}

// NewISRC builds a String holding s using the ISRC pseudo-string encoding.
// An empty s degenerates to Empty, matching the corpus's observed behavior
// for untagged tracks.
func NewISRC(s string) String {
	if s == "" {
		return Empty()
	}
	return String{encoding: ISRC, text: s}
}

// NewRaw constructs a String that will be written back using the given
// encoding verbatim, for round-trip preservation of forms New never
// produces (notably LongASCII).
func NewRaw(encoding Encoding, text string) String {
	return String{encoding: encoding, text: text}
}

// Text returns the decoded Go string.
func (s String) Text() string { return s.text }

// Encoding reports which physical form this value will serialize as.
func (s String) Encoding() Encoding { return s.encoding }

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}

// Read decodes a DeviceSQLString starting at the reader's current position.
func Read(r io.Reader) (String, error) {
	const op = "devicesql.Read"

	header, err := binutil.ReadU8(r)
	if err != nil {
		return String{}, rkerr.Structural(op, -1, err)
	}

	if header&1 == 1 {
		// Short ASCII: bits 1-6 of header encode (length+1)*2.
		length := int(header>>1) - 1
		if length < 0 {
			return String{}, rkerr.Encoding(op, -1, rkerr.Structuralf(op, -1, "negative short-string length from header %#02x", header).Err)
		}
		content, err := binutil.ReadBytes(r, length)
		if err != nil {
			return String{}, rkerr.Structural(op, -1, err)
		}
		return String{encoding: ShortASCII, text: string(content)}, nil
	}

	flags := header
	length, err := binutil.ReadU16(r, binutil.LE)
	if err != nil {
		return String{}, rkerr.Structural(op, -1, err)
	}
	if length < 4 {
		return String{}, rkerr.Structuralf(op, -1, "long-form length %d shorter than 4-byte subheader", length)
	}
	if _, err := binutil.ReadU8(r); err != nil { // mandatory zero padding byte
		return String{}, rkerr.Structural(op, -1, err)
	}
	remaining := int(length) - 4

	switch flags {
	case 0x40:
		content, err := binutil.ReadBytes(r, remaining)
		if err != nil {
			return String{}, rkerr.Structural(op, -1, err)
		}
		return String{encoding: LongASCII, text: string(content)}, nil
	case 0x90:
		content, err := binutil.ReadBytes(r, remaining)
		if err != nil {
			return String{}, rkerr.Structural(op, -1, err)
		}
		if len(content) > 0 && content[0] == 0x3 {
			// ISRC pseudo-string: magic byte + null-terminated ASCII.
			body := content[1:]
			if len(body) == 0 || body[len(body)-1] != 0x00 {
				return String{}, rkerr.Encoding(op, -1, rkerr.Structuralf(op, -1, "ISRC body missing null terminator").Err)
			}
			return String{encoding: ISRC, text: string(body[:len(body)-1])}, nil
		}
		if remaining%2 != 0 {
			return String{}, rkerr.Encoding(op, -1, rkerr.Structuralf(op, -1, "UTF-16LE body has odd length %d", remaining).Err)
		}
		units := make([]uint16, remaining/2)
		for i := range units {
			units[i] = binutil.LE.Uint16(content[i*2 : i*2+2])
		}
		if len(units) == 0 || units[len(units)-1] != 0 {
			return String{}, rkerr.Encoding(op, -1, rkerr.Structuralf(op, -1, "long UTF-16LE string missing mandatory null terminator").Err)
		}
		return String{encoding: LongUTF16LE, text: string(utf16.Decode(units[:len(units)-1]))}, nil
	default:
		return String{}, rkerr.Encoding(op, -1, rkerr.Structuralf(op, -1, "unrecognized long-form flags byte %#02x", flags).Err)
	}
}

// Write serializes s to w using its remembered encoding.
func (s String) Write(w io.Writer) error {
	const op = "devicesql.Write"

	switch s.encoding {
	case ShortASCII:
		if len(s.text) > maxShortLen {
			return rkerr.Write(op, "text", rkerr.Structuralf(op, -1, "short ASCII string too long: %d > %d", len(s.text), maxShortLen).Err)
		}
		header := byte(((len(s.text) + 1) << 1) | 1)
		if err := binutil.WriteU8(w, header); err != nil {
			return err
		}
		_, err := w.Write([]byte(s.text))
		return err

	case LongASCII:
		body := []byte(s.text)
		return writeLongHeaderAndBody(w, 0x40, body)

	case LongUTF16LE:
		units := utf16.Encode([]rune(s.text))
		units = append(units, 0) // mandatory trailing null, per spec.md §4.1.
		body := make([]byte, len(units)*2)
		for i, u := range units {
			binutil.LE.PutUint16(body[i*2:i*2+2], u)
		}
		return writeLongHeaderAndBody(w, 0x90, body)

	case ISRC:
		body := make([]byte, 0, len(s.text)+2)
		body = append(body, 0x3)
		body = append(body, []byte(s.text)...)
		body = append(body, 0x00)
		return writeLongHeaderAndBody(w, 0x90, body)

	default:
		return rkerr.Write(op, "encoding", rkerr.Structuralf(op, -1, "unknown encoding %d", s.encoding).Err)
	}
}

func writeLongHeaderAndBody(w io.Writer, flags byte, body []byte) error {
	const op = "devicesql.Write"
	byteCount := len(body)
	if byteCount+4 > 0xFFFF {
		return rkerr.Write(op, "length", rkerr.Structuralf(op, -1, "long-form body too large: %d bytes", byteCount).Err)
	}
	if err := binutil.WriteU8(w, flags); err != nil {
		return err
	}
	if err := binutil.WriteU16(w, binutil.LE, uint16(byteCount+4)); err != nil {
		return err
	}
	if err := binutil.WriteU8(w, 0); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

// EncodedLen returns the number of bytes s occupies when serialized, without
// writing it. Used by pdb row writers to compute offset-array slots.
func (s String) EncodedLen() int {
	switch s.encoding {
	case ShortASCII:
		return 1 + len(s.text)
	case LongASCII:
		return 4 + len(s.text)
	case LongUTF16LE:
		return 4 + (len(utf16.Encode([]rune(s.text)))+1)*2
	case ISRC:
		return 4 + len(s.text) + 2
	default:
		return 0
	}
}
