package setting

import (
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// readByteEnum reads one byte and validates it against valid, per §7's
// totality rule: every enum byte either names a variant or is a decode
// error, never a silent default.
func readByteEnum[T ~uint8](op, field string, r io.Reader, valid ...T) (T, error) {
	b, err := binutil.ReadU8(r)
	if err != nil {
		return 0, rkerr.Structural(op, -1, err)
	}
	v := T(b)
	for _, ok := range valid {
		if v == ok {
			return v, nil
		}
	}
	return 0, rkerr.Enumeration(op, field, -1, b)
}

func writeByteEnum[T ~uint8](w io.Writer, v T) error {
	return binutil.WriteU8(w, uint8(v))
}
