package anlz

import (
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// CueListType distinguishes a memory-cue list from a hot-cue list at the
// list level. Individual cues carry their own type byte too, and the two
// are allowed to disagree — a defect present in real exports that this
// codec preserves rather than rejects.
type CueListType uint32

const (
	CueListMemory CueListType = 0
	CueListHot    CueListType = 1
)

// CueType is a single cue entry's own type discriminator.
type CueType uint32

const (
	CuePoint CueType = 0
	CueLoop  CueType = 2
)

// Cue is one PCOB entry: a hot-cue slot index (0 for memory cues), its own
// type, and its position (and, for loops, its loop-out position) in
// milliseconds.
type Cue struct {
	HotCueIndex uint32
	Type        CueType
	Time        uint32
	LoopTime    uint32
}

// ExtendedCue is one PCO2 entry: a Cue plus the hot-cue color and free-text
// comment PCO2 adds over the plain PCOB shape.
type ExtendedCue struct {
	Cue
	HotCueColorIndex uint8
	ColorR           uint8
	ColorG           uint8
	ColorB           uint8
	Comment          string
}

// CueList is the PCOB/PCO2 payload. Extended reports whether this list was
// read from a PCO2 section (and so writes back with the color/comment
// trailer); Cues and ExtendedCues are mutually exclusive depending on
// Extended.
type CueList struct {
	Extended     bool
	ListType     CueListType
	MemoryCount  uint32
	Cues         []Cue
	ExtendedCues []ExtendedCue
}

func (c CueList) Kind() string {
	if c.Extended {
		return KindExtendedCueList
	}
	return KindCueList
}

func readCueList(r io.Reader, extended bool) (Content, error) {
	const op = "anlz.readCueList"

	listType, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	count, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	memoryCount, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}

	cl := CueList{Extended: extended, ListType: CueListType(listType), MemoryCount: memoryCount}

	for i := uint32(0); i < count; i++ {
		base, err := readCueBase(r)
		if err != nil {
			return nil, err
		}
		if !extended {
			cl.Cues = append(cl.Cues, base)
			continue
		}
		colorIndex, err := binutil.ReadU8(r)
		if err != nil {
			return nil, rkerr.Structural(op, -1, err)
		}
		red, err := binutil.ReadU8(r)
		if err != nil {
			return nil, rkerr.Structural(op, -1, err)
		}
		green, err := binutil.ReadU8(r)
		if err != nil {
			return nil, rkerr.Structural(op, -1, err)
		}
		blue, err := binutil.ReadU8(r)
		if err != nil {
			return nil, rkerr.Structural(op, -1, err)
		}
		comment, err := readUTF16BEString(op, r)
		if err != nil {
			return nil, err
		}
		cl.ExtendedCues = append(cl.ExtendedCues, ExtendedCue{
			Cue:              base,
			HotCueColorIndex: colorIndex,
			ColorR:           red,
			ColorG:           green,
			ColorB:           blue,
			Comment:          comment,
		})
	}

	return cl, nil
}

func readCueBase(r io.Reader) (Cue, error) {
	const op = "anlz.readCueBase"

	hotCueIndex, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return Cue{}, rkerr.Structural(op, -1, err)
	}
	typ, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return Cue{}, rkerr.Structural(op, -1, err)
	}
	if _, err := binutil.ReadU32(r, binutil.BE); err != nil { // unknown reserved field
		return Cue{}, rkerr.Structural(op, -1, err)
	}
	timeMs, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return Cue{}, rkerr.Structural(op, -1, err)
	}
	loopTimeMs, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return Cue{}, rkerr.Structural(op, -1, err)
	}

	// A cue's own type is trusted verbatim even when it disagrees with the
	// list's type: a known defect in real exports, not a corruption signal.
	return Cue{HotCueIndex: hotCueIndex, Type: CueType(typ), Time: timeMs, LoopTime: loopTimeMs}, nil
}

func (c CueList) WriteTo(w io.Writer) error {
	count := len(c.Cues)
	if c.Extended {
		count = len(c.ExtendedCues)
	}

	if err := binutil.WriteU32(w, binutil.BE, uint32(c.ListType)); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.BE, uint32(count)); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.BE, c.MemoryCount); err != nil {
		return err
	}

	if !c.Extended {
		for _, cue := range c.Cues {
			if err := writeCueBase(w, cue); err != nil {
				return err
			}
		}
		return nil
	}
	for _, ec := range c.ExtendedCues {
		if err := writeCueBase(w, ec.Cue); err != nil {
			return err
		}
		if err := binutil.WriteU8(w, ec.HotCueColorIndex); err != nil {
			return err
		}
		if err := binutil.WriteU8(w, ec.ColorR); err != nil {
			return err
		}
		if err := binutil.WriteU8(w, ec.ColorG); err != nil {
			return err
		}
		if err := binutil.WriteU8(w, ec.ColorB); err != nil {
			return err
		}
		if err := writeUTF16BEString(w, ec.Comment); err != nil {
			return err
		}
	}
	return nil
}

func writeCueBase(w io.Writer, c Cue) error {
	if err := binutil.WriteU32(w, binutil.BE, c.HotCueIndex); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.BE, uint32(c.Type)); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.BE, 0); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.BE, c.Time); err != nil {
		return err
	}
	return binutil.WriteU32(w, binutil.BE, c.LoopTime)
}
