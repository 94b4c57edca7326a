package devicesql

import (
	"bytes"
	"strings"
	"testing"
)

func roundTrip(t *testing.T, raw []byte, want String) {
	t.Helper()

	parsed, err := Read(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Read(%x) error = %v", raw, err)
	}
	if parsed.Text() != want.Text() {
		t.Errorf("Read(%x).Text() = %q, want %q", raw, parsed.Text(), want.Text())
	}

	var buf bytes.Buffer
	if err := parsed.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !bytes.Equal(buf.Bytes(), raw) {
		t.Errorf("round-trip mismatch: got %x, want %x", buf.Bytes(), raw)
	}
}

func TestEmptyString(t *testing.T) {
	roundTrip(t, []byte{0x3}, Empty())
}

func TestShortASCIIString(t *testing.T) {
	roundTrip(t, []byte{0x9, 0x66, 0x6F, 0x6F}, New("foo"))
}

func TestLongASCIIString(t *testing.T) {
	long := strings.Repeat("a", 131)
	raw := append([]byte{0x40, 0x87, 0x00, 0x00}, []byte(long)...)
	roundTrip(t, raw, NewRaw(LongASCII, long))
}

func TestLongUTF16LEStringWithTerminator(t *testing.T) {
	// "hi" as UTF-16LE plus a mandatory trailing null code unit.
	raw := []byte{0x90, 0x0A, 0x00, 0x00, 'h', 0x00, 'i', 0x00, 0x00, 0x00}
	roundTrip(t, raw, New("hi"))
}

func TestISRCEdgeCase(t *testing.T) {
	raw := []byte{
		0x90, 0x12, 0x00, 0x00, 0x03, 'G', 'B', 'A', 'Y', 'E', '6', '7', '0', '0', '1', '4', '9', 0x00,
	}
	roundTrip(t, raw, NewISRC("GBAYE6700149"))
}

func TestNewISRCEmptyDegeneratesToEmpty(t *testing.T) {
	roundTrip(t, []byte{0x3}, NewISRC(""))
}

func TestNewChoosesShortFormWithinBudget(t *testing.T) {
	s := New("short")
	if s.Encoding() != ShortASCII {
		t.Errorf("Encoding() = %d, want ShortASCII", s.Encoding())
	}
}

func TestNewChoosesLongUTF16LEForNonASCII(t *testing.T) {
	s := New("café")
	if s.Encoding() != LongUTF16LE {
		t.Errorf("Encoding() = %d, want LongUTF16LE", s.Encoding())
	}
}

func TestNewChoosesLongFormBeyondShortBudget(t *testing.T) {
	s := New(strings.Repeat("x", maxShortLen+1))
	if s.Encoding() != LongUTF16LE {
		t.Errorf("Encoding() = %d, want LongUTF16LE (New never synthesizes LongASCII)", s.Encoding())
	}
}

func TestReadRejectsUnrecognizedFlags(t *testing.T) {
	raw := []byte{0x20, 0x04, 0x00, 0x00}
	if _, err := Read(bytes.NewReader(raw)); err == nil {
		t.Error("Read() with unknown flags byte = nil error, want error")
	}
}

func TestReadRejectsMissingUTF16Terminator(t *testing.T) {
	// flags=0x90, length=8 (4 header + 4 body), body "hi" with no trailing null.
	raw := []byte{0x90, 0x08, 0x00, 0x00, 'h', 0x00, 'i', 0x00}
	if _, err := Read(bytes.NewReader(raw)); err == nil {
		t.Error("Read() with missing UTF-16 terminator = nil error, want error")
	}
}

func TestEncodedLenMatchesWrite(t *testing.T) {
	for _, s := range []String{New("foo"), New("café"), NewISRC("GBAYE6700149")} {
		var buf bytes.Buffer
		if err := s.Write(&buf); err != nil {
			t.Fatalf("Write(): %v", err)
		}
		if buf.Len() != s.EncodedLen() {
			t.Errorf("EncodedLen() = %d, want %d", s.EncodedLen(), buf.Len())
		}
	}
}
