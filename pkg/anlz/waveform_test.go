package anlz

import (
	"bytes"
	"testing"
)

func TestWaveformPreviewRoundTrip(t *testing.T) {
	p := WaveformPreview{Columns: make([]uint8, 400)}
	for i := range p.Columns {
		p.Columns[i] = uint8(i % 256)
	}
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readWaveformPreview(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("readWaveformPreview() error = %v", err)
	}
	if !bytes.Equal(got.(WaveformPreview).Columns, p.Columns) {
		t.Errorf("readWaveformPreview() mismatch")
	}
}

func TestTinyWaveformPreviewRoundTrip(t *testing.T) {
	p := TinyWaveformPreview{Columns: make([]uint8, 800)}
	for i := range p.Columns {
		p.Columns[i] = uint8(i % 16)
	}
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if buf.Len() != 400 {
		t.Fatalf("packed length = %d, want 400 (two columns per byte)", buf.Len())
	}
	got, err := readTinyWaveformPreview(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("readTinyWaveformPreview() error = %v", err)
	}
	if !bytes.Equal(got.(TinyWaveformPreview).Columns, p.Columns) {
		t.Errorf("readTinyWaveformPreview() mismatch")
	}
}

func TestTinyWaveformPreviewOddColumnCount(t *testing.T) {
	p := TinyWaveformPreview{Columns: []uint8{5, 9, 2}}
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readTinyWaveformPreview(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("readTinyWaveformPreview() error = %v", err)
	}
	// The trailing pad nibble round-trips as an extra zero column, which the
	// caller must trim using the section's own declared column count.
	gc := got.(TinyWaveformPreview).Columns
	if len(gc) != 4 || gc[0] != 5 || gc[1] != 9 || gc[2] != 2 || gc[3] != 0 {
		t.Errorf("readTinyWaveformPreview() = %v", gc)
	}
}

func TestWaveformDetailRoundTrip(t *testing.T) {
	d := WaveformDetail{Columns: []WaveformDetailColumn{
		{Height: 15, Whiteness: 7},
		{Height: 0, Whiteness: 0},
		{Height: 9, Whiteness: 3},
	}}
	var buf bytes.Buffer
	if err := d.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readWaveformDetail(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("readWaveformDetail() error = %v", err)
	}
	gd := got.(WaveformDetail)
	if len(gd.Columns) != len(d.Columns) {
		t.Fatalf("len(Columns) = %d, want %d", len(gd.Columns), len(d.Columns))
	}
	for i := range d.Columns {
		if gd.Columns[i] != d.Columns[i] {
			t.Errorf("Columns[%d] = %+v, want %+v", i, gd.Columns[i], d.Columns[i])
		}
	}
}

func TestColorWaveformPreviewRoundTrip(t *testing.T) {
	p := ColorWaveformPreview{Columns: []ColorWaveformPreviewColumn{
		{LowR: 1, LowG: 2, LowB: 3, HighR: 4, HighG: 5, HighB: 6},
	}}
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if buf.Len() != colorPreviewColumnSize {
		t.Fatalf("len = %d, want %d", buf.Len(), colorPreviewColumnSize)
	}
	got, err := readColorWaveformPreview(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("readColorWaveformPreview() error = %v", err)
	}
	if got.(ColorWaveformPreview).Columns[0] != p.Columns[0] {
		t.Errorf("readColorWaveformPreview() = %+v", got)
	}
}

func TestColorWaveformPreviewRejectsBadLength(t *testing.T) {
	if _, err := readColorWaveformPreview(bytes.NewReader([]byte{1, 2, 3})); err == nil {
		t.Fatal("readColorWaveformPreview() error = nil, want structural error")
	}
}

func TestColorWaveformDetailRoundTrip(t *testing.T) {
	d := ColorWaveformDetail{Columns: []uint16{0x0000, 0xF800, 0x07E0, 0x001F}}
	var buf bytes.Buffer
	if err := d.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readColorWaveformDetail(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("readColorWaveformDetail() error = %v", err)
	}
	gd := got.(ColorWaveformDetail)
	if len(gd.Columns) != len(d.Columns) {
		t.Fatalf("len = %d, want %d", len(gd.Columns), len(d.Columns))
	}
	for i := range d.Columns {
		if gd.Columns[i] != d.Columns[i] {
			t.Errorf("Columns[%d] = %#04x, want %#04x", i, gd.Columns[i], d.Columns[i])
		}
	}
}
