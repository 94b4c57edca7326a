package anlz

import (
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// Section kind magics.
const (
	KindBeatGrid             = "PQTZ"
	KindCueList              = "PCOB"
	KindExtendedCueList      = "PCO2"
	KindPath                 = "PPTH"
	KindVBR                  = "PVBR"
	KindWaveformPreview      = "PWAV"
	KindTinyWaveformPreview  = "PWV2"
	KindWaveformDetail       = "PWV3"
	KindColorWaveformPreview = "PWV4"
	KindColorWaveformDetail  = "PWV5"
	KindSongStructure        = "PSSI"
	KindWaveformUnknown6     = "PWV6"
	KindWaveformUnknown7     = "PWV7"
)

func decodePayload(kind string, r io.Reader) (Content, error) {
	switch kind {
	case KindBeatGrid:
		return readBeatGrid(r)
	case KindCueList:
		return readCueList(r, false)
	case KindExtendedCueList:
		return readCueList(r, true)
	case KindPath:
		return readPath(r)
	case KindVBR:
		return readVBR(r)
	case KindWaveformPreview:
		return readWaveformPreview(r)
	case KindTinyWaveformPreview:
		return readTinyWaveformPreview(r)
	case KindWaveformDetail:
		return readWaveformDetail(r)
	case KindColorWaveformPreview:
		return readColorWaveformPreview(r)
	case KindColorWaveformDetail:
		return readColorWaveformDetail(r)
	case KindSongStructure:
		return readSongStructure(r)
	default:
		return readUnknown(kind, r)
	}
}

// Unknown preserves a section whose kind the codec does not model (or the
// trailing bytes of a modeled one), for forward-compatible round trip.
type Unknown struct {
	kind string
	Raw  []byte
}

func (u Unknown) Kind() string { return u.kind }

func (u Unknown) WriteTo(w io.Writer) error {
	_, err := w.Write(u.Raw)
	return err
}

func readUnknown(kind string, r io.Reader) (Content, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, rkerr.Structural("anlz.readUnknown", -1, err)
	}
	return Unknown{kind: kind, Raw: raw}, nil
}

// BeatGridEntry is one beat marker: its position within its bar, the tempo
// in effect at that beat, and its millisecond timestamp.
type BeatGridEntry struct {
	BeatWithinBar uint16
	Tempo         uint16 // BPM * 100
	TimestampMs   uint32
}

// BeatGrid is the PQTZ payload: a full beat grid for the track, preceded by
// two fields of unknown purpose.
type BeatGrid struct {
	Unknown1 uint32
	Unknown2 uint32
	Beats    []BeatGridEntry
}

func (BeatGrid) Kind() string { return KindBeatGrid }

func readBeatGrid(r io.Reader) (Content, error) {
	const op = "anlz.readBeatGrid"

	unknown1, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	unknown2, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	count, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}

	g := BeatGrid{Unknown1: unknown1, Unknown2: unknown2, Beats: make([]BeatGridEntry, count)}
	for i := range g.Beats {
		beat, err := binutil.ReadU16(r, binutil.BE)
		if err != nil {
			return nil, rkerr.Structural(op, -1, err)
		}
		tempo, err := binutil.ReadU16(r, binutil.BE)
		if err != nil {
			return nil, rkerr.Structural(op, -1, err)
		}
		ts, err := binutil.ReadU32(r, binutil.BE)
		if err != nil {
			return nil, rkerr.Structural(op, -1, err)
		}
		g.Beats[i] = BeatGridEntry{BeatWithinBar: beat, Tempo: tempo, TimestampMs: ts}
	}
	return g, nil
}

func (g BeatGrid) WriteTo(w io.Writer) error {
	if err := binutil.WriteU32(w, binutil.BE, g.Unknown1); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.BE, g.Unknown2); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.BE, uint32(len(g.Beats))); err != nil {
		return err
	}
	for _, b := range g.Beats {
		if err := binutil.WriteU16(w, binutil.BE, b.BeatWithinBar); err != nil {
			return err
		}
		if err := binutil.WriteU16(w, binutil.BE, b.Tempo); err != nil {
			return err
		}
		if err := binutil.WriteU32(w, binutil.BE, b.TimestampMs); err != nil {
			return err
		}
	}
	return nil
}

// PathPayload is the PPTH section: the track file's path on the device,
// stored as a length-prefixed (byte count including the null terminator)
// null-terminated UTF-16BE string.
type PathPayload struct {
	Path string
}

func (PathPayload) Kind() string { return KindPath }

func readPath(r io.Reader) (Content, error) {
	const op = "anlz.readPath"
	s, err := readUTF16BEString(op, r)
	if err != nil {
		return nil, err
	}
	return PathPayload{Path: s}, nil
}

func (p PathPayload) WriteTo(w io.Writer) error {
	return writeUTF16BEString(w, p.Path)
}

// VBRPayload is the PVBR section: a fixed-size opaque VBR seek table, kept
// as raw bytes since the reference documentation does not decode its
// contents beyond "frame position index".
type VBRPayload struct {
	Raw []byte
}

func (VBRPayload) Kind() string { return KindVBR }

func readVBR(r io.Reader) (Content, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, rkerr.Structural("anlz.readVBR", -1, err)
	}
	return VBRPayload{Raw: raw}, nil
}

func (v VBRPayload) WriteTo(w io.Writer) error {
	_, err := w.Write(v.Raw)
	return err
}
