package anlz

import (
	"bytes"
	"testing"
)

func TestCueListRoundTrip(t *testing.T) {
	cl := CueList{
		ListType:    CueListHot,
		MemoryCount: 3,
		Cues: []Cue{
			{HotCueIndex: 1, Type: CuePoint, Time: 1500},
			{HotCueIndex: 2, Type: CueLoop, Time: 2000, LoopTime: 4000},
		},
	}

	var buf bytes.Buffer
	if err := cl.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readCueList(bytes.NewReader(buf.Bytes()), false)
	if err != nil {
		t.Fatalf("readCueList() error = %v", err)
	}
	gl := got.(CueList)
	if gl.ListType != cl.ListType || gl.MemoryCount != cl.MemoryCount {
		t.Errorf("readCueList() = %+v, want %+v", gl, cl)
	}
	if len(gl.Cues) != 2 || gl.Cues[0] != cl.Cues[0] || gl.Cues[1] != cl.Cues[1] {
		t.Errorf("readCueList().Cues = %+v, want %+v", gl.Cues, cl.Cues)
	}
}

func TestCueListAcceptsTypeDisagreeingWithListType(t *testing.T) {
	// A memory-cue list (ListType 0) whose entry claims CueLoop must still be
	// accepted, not rejected, per the known defect this codec preserves.
	cl := CueList{
		ListType: CueListMemory,
		Cues:     []Cue{{HotCueIndex: 0, Type: CueLoop, Time: 100, LoopTime: 200}},
	}
	var buf bytes.Buffer
	if err := cl.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readCueList(bytes.NewReader(buf.Bytes()), false)
	if err != nil {
		t.Fatalf("readCueList() error = %v", err)
	}
	gl := got.(CueList)
	if gl.Cues[0].Type != CueLoop {
		t.Errorf("Cues[0].Type = %v, want %v (must not be corrected or rejected)", gl.Cues[0].Type, CueLoop)
	}
}

func TestExtendedCueListRoundTrip(t *testing.T) {
	cl := CueList{
		Extended: true,
		ListType: CueListHot,
		ExtendedCues: []ExtendedCue{
			{
				Cue:              Cue{HotCueIndex: 1, Type: CuePoint, Time: 5000},
				HotCueColorIndex: 3,
				ColorR:           0xff, ColorG: 0x00, ColorB: 0x80,
				Comment: "Drop",
			},
		},
	}

	var buf bytes.Buffer
	if err := cl.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readCueList(bytes.NewReader(buf.Bytes()), true)
	if err != nil {
		t.Fatalf("readCueList() error = %v", err)
	}
	gl := got.(CueList)
	if len(gl.ExtendedCues) != 1 {
		t.Fatalf("len(ExtendedCues) = %d, want 1", len(gl.ExtendedCues))
	}
	ec := gl.ExtendedCues[0]
	if ec.Comment != "Drop" || ec.HotCueColorIndex != 3 || ec.ColorR != 0xff || ec.ColorB != 0x80 {
		t.Errorf("ExtendedCues[0] = %+v", ec)
	}
	if ec.Cue != cl.ExtendedCues[0].Cue {
		t.Errorf("ExtendedCues[0].Cue = %+v, want %+v", ec.Cue, cl.ExtendedCues[0].Cue)
	}

	var out bytes.Buffer
	if err := gl.WriteTo(&out); err != nil {
		t.Fatalf("re-WriteTo() error = %v", err)
	}
	if !bytes.Equal(out.Bytes(), buf.Bytes()) {
		t.Errorf("round-trip mismatch:\ngot  %x\nwant %x", out.Bytes(), buf.Bytes())
	}
}

func TestCueListKindReflectsExtended(t *testing.T) {
	if (CueList{Extended: false}).Kind() != KindCueList {
		t.Error("Kind() for plain list != KindCueList")
	}
	if (CueList{Extended: true}).Kind() != KindExtendedCueList {
		t.Error("Kind() for extended list != KindExtendedCueList")
	}
}
