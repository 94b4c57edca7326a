package binutil

import (
	"bytes"
	"io"
	"testing"
)

func TestReadWriteU16RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteU16(&buf, LE, 0xBEEF); err != nil {
		t.Fatalf("WriteU16: %v", err)
	}
	got, err := ReadU16(&buf, LE)
	if err != nil {
		t.Fatalf("ReadU16: %v", err)
	}
	if got != 0xBEEF {
		t.Errorf("ReadU16() = %#04x, want 0xbeef", got)
	}
}

func TestReadWriteU32BigEndian(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteU32(&buf, BE, 0x50_4D_41_49); err != nil {
		t.Fatalf("WriteU32: %v", err)
	}
	want := []byte{0x50, 0x4D, 0x41, 0x49}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("serialized = %x, want %x", buf.Bytes(), want)
	}
	got, err := ReadU32(bytes.NewReader(want), BE)
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if got != 0x504D4149 {
		t.Errorf("ReadU32() = %#08x, want 0x504d4149", got)
	}
}

func TestReadMagicMismatch(t *testing.T) {
	r := bytes.NewReader([]byte("XXXX"))
	if err := ReadMagic(r, "anlz.Read", 0, []byte("PMAI")); err == nil {
		t.Error("ReadMagic() = nil, want mismatch error")
	}
}

func TestReadMagicMatch(t *testing.T) {
	r := bytes.NewReader([]byte("PMAI"))
	if err := ReadMagic(r, "anlz.Read", 0, []byte("PMAI")); err != nil {
		t.Errorf("ReadMagic() = %v, want nil", err)
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		n, align, want int
	}{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{5, 4, 8},
		{17, 4, 20},
	}
	for _, tt := range tests {
		if got := AlignUp(tt.n, tt.align); got != tt.want {
			t.Errorf("AlignUp(%d, %d) = %d, want %d", tt.n, tt.align, got, tt.want)
		}
	}
}

func TestPaddingFor(t *testing.T) {
	if got := PaddingFor(5, 4); got != 3 {
		t.Errorf("PaddingFor(5, 4) = %d, want 3", got)
	}
}

func TestBitReaderMSBFirst(t *testing.T) {
	// 0b10110000 -> first 3 bits read as 0b101 = 5
	br := NewBitReader(bytes.NewReader([]byte{0b1011_0000}))
	v, err := br.Read(3)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != 0b101 {
		t.Errorf("Read(3) = %b, want %b", v, 0b101)
	}
}

func TestBitReaderEOF(t *testing.T) {
	br := NewBitReader(bytes.NewReader(nil))
	_, err := br.Read(8)
	if err != io.EOF {
		t.Errorf("Read() error = %v, want io.EOF", err)
	}
}
