package pdb

import (
	"bytes"
	"testing"
)

// memPageFile backs io.ReaderAt with an in-memory slice for page tests.
type memPageFile []byte

func (f memPageFile) ReadAt(p []byte, off int64) (int, error) {
	return copy(p, f[off:]), nil
}

// buildPage assembles a single raw page image for one row group holding n
// rows at the given offsets, honoring the always-16-slots rule.
func buildPage(t *testing.T, pageSize uint32, typ PageType, numRows uint8, offsets []uint16, nextPage uint32, allocated bool) []byte {
	t.Helper()

	buf := make([]byte, pageSize)
	flags := uint8(0)
	if allocated {
		flags = pageAllocatedFlag
	}

	putU32 := func(off int, v uint32) {
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
	putU16 := func(off int, v uint16) {
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
	}

	putU32(0, 0)
	putU32(4, 7)
	putU32(8, typ.Raw())
	putU32(12, nextPage)
	putU32(16, 0)
	putU32(20, 0)
	buf[24] = numRows
	buf[27] = flags
	putU16(34, uint16(numRows))

	groupStart := int(pageSize) - rowGroupSize
	var present uint16
	for i, off := range offsets {
		putU16(groupStart+i*2, off)
		present |= 1 << uint(i)
	}
	putU16(groupStart+32, present)

	return buf
}

func TestReadPageAtBasicFields(t *testing.T) {
	const pageSize = 256
	raw := buildPage(t, pageSize, PageTypeTracks, 2, []uint16{40, 60}, 0, true)
	file := memPageFile(append(make([]byte, 7*pageSize), raw...))

	page, err := ReadPageAt(file, pageSize, 7)
	if err != nil {
		t.Fatalf("ReadPageAt() error = %v", err)
	}
	if page.Index != 7 {
		t.Errorf("Index = %d, want 7", page.Index)
	}
	if page.Type != PageTypeTracks {
		t.Errorf("Type = %v, want Tracks", page.Type)
	}
	if !page.IsAllocated() {
		t.Error("IsAllocated() = false, want true")
	}
	if got := page.EffectiveRowCount(); got != 2 {
		t.Errorf("EffectiveRowCount() = %d, want 2", got)
	}
	gotOffsets := page.RowOffsets()
	if len(gotOffsets) != 2 || gotOffsets[0] != 40 || gotOffsets[1] != 60 {
		t.Errorf("RowOffsets() = %v, want [40 60]", gotOffsets)
	}
}

func TestEffectiveRowCountPrefersLargeField(t *testing.T) {
	p := Page{NumRowsSmall: 0x1f, NumRowsLarge: 200}
	if got := p.EffectiveRowCount(); got != 200 {
		t.Errorf("EffectiveRowCount() = %d, want 200", got)
	}
}

func TestEffectiveRowCountRejectsSentinel(t *testing.T) {
	p := Page{NumRowsSmall: 5, NumRowsLarge: 0x1fff}
	if got := p.EffectiveRowCount(); got != 5 {
		t.Errorf("EffectiveRowCount() = %d, want 5 (sentinel must not win)", got)
	}
}

func TestEffectiveRowCountFallsBackToSmall(t *testing.T) {
	p := Page{NumRowsSmall: 9, NumRowsLarge: 3}
	if got := p.EffectiveRowCount(); got != 9 {
		t.Errorf("EffectiveRowCount() = %d, want 9", got)
	}
}

func TestPageBytesRoundTrip(t *testing.T) {
	const pageSize = 256
	raw := buildPage(t, pageSize, PageTypeArtists, 1, []uint16{48}, 3, true)
	file := memPageFile(raw)

	page, err := ReadPageAt(file, pageSize, 0)
	if err != nil {
		t.Fatalf("ReadPageAt() error = %v", err)
	}

	out, err := page.Bytes(pageSize)
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if !bytes.Equal(out, raw) {
		t.Errorf("round-trip mismatch:\ngot  %x\nwant %x", out, raw)
	}
}

func TestWalkPageChainDetectsCycle(t *testing.T) {
	const pageSize = 256
	page0 := buildPage(t, pageSize, PageTypeTracks, 0, nil, 0, true) // index 0: unused header stand-in
	page1 := buildPage(t, pageSize, PageTypeTracks, 0, nil, 2, true) // -> page 2
	page2 := buildPage(t, pageSize, PageTypeTracks, 0, nil, 1, true) // -> page 1 (cycle)

	var buf bytes.Buffer
	buf.Write(page0)
	buf.Write(page1)
	buf.Write(page2)
	file := memPageFile(buf.Bytes())

	// lastPage is set past the actual chain so the walk never stops on it,
	// letting the cycle-detection path fire instead.
	err := WalkPageChain(file, pageSize, 1, 99, func(Page) error { return nil })
	if err == nil {
		t.Fatal("WalkPageChain() error = nil, want cycle error")
	}
}

func TestWalkPageChainVisitsEveryPage(t *testing.T) {
	const pageSize = 256
	page0 := buildPage(t, pageSize, PageTypeTracks, 0, nil, 0, true)
	page1 := buildPage(t, pageSize, PageTypeTracks, 0, nil, 2, true) // -> page 2
	page2 := buildPage(t, pageSize, PageTypeTracks, 0, nil, 0, true) // end of chain

	var buf bytes.Buffer
	buf.Write(page0)
	buf.Write(page1)
	buf.Write(page2)
	file := memPageFile(buf.Bytes())

	visits := 0
	err := WalkPageChain(file, pageSize, 1, 2, func(p Page) error {
		visits++
		return nil
	})
	if err != nil {
		t.Fatalf("WalkPageChain() error = %v", err)
	}
	if visits != 2 {
		t.Errorf("visited %d pages, want 2", visits)
	}
}
