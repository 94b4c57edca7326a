package anlz

import (
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// WaveformPreview is the PWAV payload: one byte per column, the whole track
// compressed to a fixed-width overview.
type WaveformPreview struct {
	Columns []uint8
}

func (WaveformPreview) Kind() string { return KindWaveformPreview }

func readWaveformPreview(r io.Reader) (Content, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, rkerr.Structural("anlz.readWaveformPreview", -1, err)
	}
	return WaveformPreview{Columns: raw}, nil
}

func (p WaveformPreview) WriteTo(w io.Writer) error {
	_, err := w.Write(p.Columns)
	return err
}

// TinyWaveformPreview is the PWV2 payload: a half-byte (nibble) height per
// column, two columns packed per byte, high nibble first.
type TinyWaveformPreview struct {
	Columns []uint8 // one entry per column, each in [0, 15]
}

func (TinyWaveformPreview) Kind() string { return KindTinyWaveformPreview }

func readTinyWaveformPreview(r io.Reader) (Content, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, rkerr.Structural("anlz.readTinyWaveformPreview", -1, err)
	}
	columns := make([]uint8, 0, len(raw)*2)
	for _, b := range raw {
		columns = append(columns, b>>4, b&0x0F)
	}
	return TinyWaveformPreview{Columns: columns}, nil
}

func (p TinyWaveformPreview) WriteTo(w io.Writer) error {
	raw := make([]byte, 0, (len(p.Columns)+1)/2)
	for i := 0; i < len(p.Columns); i += 2 {
		hi := p.Columns[i] & 0x0F
		var lo uint8
		if i+1 < len(p.Columns) {
			lo = p.Columns[i+1] & 0x0F
		}
		raw = append(raw, hi<<4|lo)
	}
	_, err := w.Write(raw)
	return err
}

// WaveformDetailColumn packs a 4-bit height with a 3-bit "whiteness" level
// into a single byte, the densest of the monochrome waveform variants.
type WaveformDetailColumn struct {
	Height    uint8 // 0-15
	Whiteness uint8 // 0-7
}

// WaveformDetail is the PWV3 payload.
type WaveformDetail struct {
	Columns []WaveformDetailColumn
}

func (WaveformDetail) Kind() string { return KindWaveformDetail }

func readWaveformDetail(r io.Reader) (Content, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, rkerr.Structural("anlz.readWaveformDetail", -1, err)
	}
	columns := make([]WaveformDetailColumn, len(raw))
	for i, b := range raw {
		columns[i] = WaveformDetailColumn{Height: b & 0x0F, Whiteness: (b >> 4) & 0x07}
	}
	return WaveformDetail{Columns: columns}, nil
}

func (d WaveformDetail) WriteTo(w io.Writer) error {
	raw := make([]byte, len(d.Columns))
	for i, c := range d.Columns {
		raw[i] = (c.Height & 0x0F) | (c.Whiteness&0x07)<<4
	}
	_, err := w.Write(raw)
	return err
}

// ColorWaveformPreviewColumn is one six-byte "band" column of the color
// overview waveform: an RGB intensity triple for each of the low and high
// frequency bands.
type ColorWaveformPreviewColumn struct {
	LowR, LowG, LowB    uint8
	HighR, HighG, HighB uint8
}

// ColorWaveformPreview is the PWV4 payload.
type ColorWaveformPreview struct {
	Columns []ColorWaveformPreviewColumn
}

func (ColorWaveformPreview) Kind() string { return KindColorWaveformPreview }

const colorPreviewColumnSize = 6

func readColorWaveformPreview(r io.Reader) (Content, error) {
	const op = "anlz.readColorWaveformPreview"
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	if len(raw)%colorPreviewColumnSize != 0 {
		return nil, rkerr.Structuralf(op, -1, "color waveform preview length %d is not a multiple of %d", len(raw), colorPreviewColumnSize)
	}
	columns := make([]ColorWaveformPreviewColumn, len(raw)/colorPreviewColumnSize)
	for i := range columns {
		b := raw[i*colorPreviewColumnSize:]
		columns[i] = ColorWaveformPreviewColumn{
			LowR: b[0], LowG: b[1], LowB: b[2],
			HighR: b[3], HighG: b[4], HighB: b[5],
		}
	}
	return ColorWaveformPreview{Columns: columns}, nil
}

func (p ColorWaveformPreview) WriteTo(w io.Writer) error {
	raw := make([]byte, len(p.Columns)*colorPreviewColumnSize)
	for i, c := range p.Columns {
		b := raw[i*colorPreviewColumnSize:]
		b[0], b[1], b[2] = c.LowR, c.LowG, c.LowB
		b[3], b[4], b[5] = c.HighR, c.HighG, c.HighB
	}
	_, err := w.Write(raw)
	return err
}

// ColorWaveformDetail is the PWV5 payload: one RGB565-style packed color per
// column, stored little-endian within the otherwise big-endian analysis
// file.
type ColorWaveformDetail struct {
	Columns []uint16
}

func (ColorWaveformDetail) Kind() string { return KindColorWaveformDetail }

func readColorWaveformDetail(r io.Reader) (Content, error) {
	const op = "anlz.readColorWaveformDetail"
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	if len(raw)%2 != 0 {
		return nil, rkerr.Structuralf(op, -1, "color waveform detail length %d is not even", len(raw))
	}
	columns := make([]uint16, len(raw)/2)
	for i := range columns {
		columns[i] = binutil.LE.Uint16(raw[i*2 : i*2+2])
	}
	return ColorWaveformDetail{Columns: columns}, nil
}

func (d ColorWaveformDetail) WriteTo(w io.Writer) error {
	raw := make([]byte, len(d.Columns)*2)
	for i, c := range d.Columns {
		binutil.LE.PutUint16(raw[i*2:i*2+2], c)
	}
	_, err := w.Write(raw)
	return err
}
