package anlz

import (
	"io"
	"unicode/utf16"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// readUTF16BEString decodes the shared "length-prefixed, null-terminated
// UTF-16BE" string framing used by PPTH and by each PCO2 cue's Comment: a
// uint32 byte count (including the 2-byte terminator) followed by that many
// bytes of UTF-16BE.
func readUTF16BEString(op string, r io.Reader) (string, error) {
	byteLen, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return "", rkerr.Structural(op, -1, err)
	}
	if byteLen < 2 || byteLen%2 != 0 {
		return "", rkerr.Encoding(op, -1, rkerr.Structuralf(op, -1, "UTF-16BE string length %d is not a positive even number", byteLen).Err)
	}
	body, err := binutil.ReadBytes(r, int(byteLen))
	if err != nil {
		return "", rkerr.Structural(op, -1, err)
	}
	units := make([]uint16, byteLen/2)
	for i := range units {
		units[i] = binutil.BE.Uint16(body[i*2 : i*2+2])
	}
	if units[len(units)-1] != 0 {
		return "", rkerr.Encoding(op, -1, rkerr.Structuralf(op, -1, "UTF-16BE string missing null terminator").Err)
	}
	return string(utf16.Decode(units[:len(units)-1])), nil
}

func writeUTF16BEString(w io.Writer, s string) error {
	units := utf16.Encode([]rune(s))
	units = append(units, 0)
	if err := binutil.WriteU32(w, binutil.BE, uint32(len(units)*2)); err != nil {
		return err
	}
	body := make([]byte, len(units)*2)
	for i, u := range units {
		binutil.BE.PutUint16(body[i*2:i*2+2], u)
	}
	_, err := w.Write(body)
	return err
}
