package pdb

import (
	"bytes"
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// pageHeaderSize is the fixed byte length of a page's header, preceding the
// row heap and the backward-growing row-group region.
const pageHeaderSize = 40

// rowGroupSize is the on-disk size of one RowGroup record: 16 row offsets,
// a presence bitmask and one unknown field, each 2 bytes.
const rowGroupSize = 36

// rowsPerGroup is fixed at 16 regardless of how many rows the group actually
// holds; unused trailing slots are marked absent in Present.
const rowsPerGroup = 16

// pageAllocatedFlag marks a page as holding live row data. A page with this
// bit clear is a free/candidate page and is skipped by row-level walkers,
// distinct from an unrecognized page-type tag.
const pageAllocatedFlag = 1 << 0

// RowGroup is one 36-byte backward-growing directory record: up to 16 row
// offsets (relative to the start of the page), a bitmask marking which of
// those 16 slots actually hold a row, and one field of unknown purpose.
type RowGroup struct {
	Offsets [rowsPerGroup]uint16
	Present uint16
	Unknown uint16
}

// IsPresent reports whether slot (0-15) holds a row.
func (g RowGroup) IsPresent(slot int) bool {
	return g.Present&(1<<uint(slot)) != 0
}

func readRowGroup(r io.Reader) (RowGroup, error) {
	var g RowGroup
	for i := range g.Offsets {
		v, err := binutil.ReadU16(r, binutil.LE)
		if err != nil {
			return RowGroup{}, err
		}
		g.Offsets[i] = v
	}
	present, err := binutil.ReadU16(r, binutil.LE)
	if err != nil {
		return RowGroup{}, err
	}
	unknown, err := binutil.ReadU16(r, binutil.LE)
	if err != nil {
		return RowGroup{}, err
	}
	g.Present = present
	g.Unknown = unknown
	return g, nil
}

func (g RowGroup) write(w io.Writer) error {
	for _, off := range g.Offsets {
		if err := binutil.WriteU16(w, binutil.LE, off); err != nil {
			return err
		}
	}
	if err := binutil.WriteU16(w, binutil.LE, g.Present); err != nil {
		return err
	}
	return binutil.WriteU16(w, binutil.LE, g.Unknown)
}

// Page is one fixed-size page of the paged database: a header identifying
// its type and position in the table's page chain, a forward-growing heap of
// row bytes, and a backward-growing region of RowGroup directories.
type Page struct {
	Index        uint32
	Type         PageType
	NextPage     uint32
	Flags        uint8
	NumRowsSmall uint8
	NumRowsLarge uint16
	FreeSize     uint16
	UsedSize     uint16
	Unknown1     uint32
	Unknown2     uint32
	Unknown3     uint16
	Unknown4     uint16
	Unknown5     uint16
	Unknown6     uint16
	Unknown7     uint16
	RowGroups    []RowGroup

	// Raw holds the full pageSize-length page image, offsets into which are
	// given by RowGroup.Offsets. Row decoders slice into it directly rather
	// than copying individual rows out.
	Raw []byte
}

// IsAllocated reports whether the page carries live row data, as opposed to
// being a free/candidate page awaiting reuse.
func (p Page) IsAllocated() bool {
	return p.Flags&pageAllocatedFlag != 0
}

// EffectiveRowCount resolves the 8-bit and 16-bit row-count fields to the
// actual number of rows on the page. The 16-bit field wins only when it
// strictly exceeds the 8-bit one and isn't the sentinel 0x1fff some pages
// carry when the count has never been tracked at that width.
func (p Page) EffectiveRowCount() int {
	if p.NumRowsLarge > uint16(p.NumRowsSmall) && p.NumRowsLarge != 0x1fff {
		return int(p.NumRowsLarge)
	}
	return int(p.NumRowsSmall)
}

// RowOffsets returns the byte offsets (relative to the start of the page) of
// every present row slot, in group-then-slot order, truncated to
// EffectiveRowCount entries.
func (p Page) RowOffsets() []uint16 {
	want := p.EffectiveRowCount()
	offsets := make([]uint16, 0, want)
	for _, g := range p.RowGroups {
		for slot := 0; slot < rowsPerGroup && len(offsets) < want; slot++ {
			if g.IsPresent(slot) {
				offsets = append(offsets, g.Offsets[slot])
			}
		}
	}
	return offsets
}

// RowBytes returns the page's raw bytes starting at offset, for a row
// decoder to consume as much of as it needs.
func (p Page) RowBytes(offset uint16) []byte {
	if int(offset) >= len(p.Raw) {
		return nil
	}
	return p.Raw[offset:]
}

// ReadPageAt decodes the page at the given page index within a file whose
// fixed page size is pageSize.
func ReadPageAt(r io.ReaderAt, pageSize uint32, index uint32) (Page, error) {
	const op = "pdb.ReadPageAt"

	buf := make([]byte, pageSize)
	base := int64(index) * int64(pageSize)
	if _, err := r.ReadAt(buf, base); err != nil {
		return Page{}, rkerr.Structural(op, base, err)
	}

	hdr := bytes.NewReader(buf[:pageHeaderSize])

	if _, err := binutil.ReadU32(hdr, binutil.LE); err != nil { // unknown leading field
		return Page{}, rkerr.Structural(op, base, err)
	}
	pageIndex, err := binutil.ReadU32(hdr, binutil.LE)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+4, err)
	}
	pageType, err := binutil.ReadU32(hdr, binutil.LE)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+8, err)
	}
	nextPage, err := binutil.ReadU32(hdr, binutil.LE)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+12, err)
	}
	unknown2, err := binutil.ReadU32(hdr, binutil.LE)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+16, err)
	}
	unknown1, err := binutil.ReadU32(hdr, binutil.LE)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+20, err)
	}
	numRowsSmall, err := binutil.ReadU8(hdr)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+24, err)
	}
	unknown3, err := binutil.ReadU8(hdr)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+25, err)
	}
	unknown4, err := binutil.ReadU8(hdr)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+26, err)
	}
	flags, err := binutil.ReadU8(hdr)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+27, err)
	}
	freeSize, err := binutil.ReadU16(hdr, binutil.LE)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+28, err)
	}
	usedSize, err := binutil.ReadU16(hdr, binutil.LE)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+30, err)
	}
	unknown5, err := binutil.ReadU16(hdr, binutil.LE)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+32, err)
	}
	numRowsLarge, err := binutil.ReadU16(hdr, binutil.LE)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+34, err)
	}
	unknown6, err := binutil.ReadU16(hdr, binutil.LE)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+36, err)
	}
	unknown7, err := binutil.ReadU16(hdr, binutil.LE)
	if err != nil {
		return Page{}, rkerr.Structural(op, base+38, err)
	}

	p := Page{
		Index:        pageIndex,
		Type:         pageTypeFromRaw(pageType),
		NextPage:     nextPage,
		Flags:        flags,
		NumRowsSmall: numRowsSmall,
		NumRowsLarge: numRowsLarge,
		FreeSize:     freeSize,
		UsedSize:     usedSize,
		Unknown1:     unknown1,
		Unknown2:     unknown2,
		Unknown3:     uint16(unknown3),
		Unknown4:     uint16(unknown4),
		Unknown5:     unknown5,
		Unknown6:     unknown6,
		Unknown7:     unknown7,
		Raw:          buf,
	}

	rowCount := p.EffectiveRowCount()
	numGroups := (rowCount + rowsPerGroup - 1) / rowsPerGroup
	if rowCount == 0 {
		numGroups = 0
	}
	p.RowGroups = make([]RowGroup, numGroups)
	for i := 0; i < numGroups; i++ {
		start := int(pageSize) - (i+1)*rowGroupSize
		if start < pageHeaderSize {
			return Page{}, rkerr.Structuralf(op, base, "row-group region overruns page header at group %d", i)
		}
		g, err := readRowGroup(bytes.NewReader(buf[start : start+rowGroupSize]))
		if err != nil {
			return Page{}, rkerr.Structural(op, base+int64(start), err)
		}
		p.RowGroups[i] = g
	}

	return p, nil
}

// Bytes reconstructs the page's on-disk image from its header fields and
// RowGroups, reusing Raw only for the row heap between the header and the
// row-group region. Unlike returning Raw verbatim, this exercises the write
// path for every structured field, so a read-then-write round trip actually
// proves the codec rather than an unchanged cache.
func (p Page) Bytes(pageSize uint32) ([]byte, error) {
	const op = "pdb.Page.Bytes"

	groupsBytes := len(p.RowGroups) * rowGroupSize
	heapEnd := int(pageSize) - groupsBytes
	if heapEnd < pageHeaderSize || int(pageSize) > len(p.Raw) {
		return nil, rkerr.Write(op, "pageSize", rkerr.Structuralf(op, -1, "page %d: row-group region does not fit in %d-byte page", p.Index, pageSize).Err)
	}

	buf := make([]byte, pageSize)
	var hdr bytes.Buffer
	if err := binutil.WriteU32(&hdr, binutil.LE, 0); err != nil { // unknown leading field
		return nil, err
	}
	if err := binutil.WriteU32(&hdr, binutil.LE, p.Index); err != nil {
		return nil, err
	}
	if err := binutil.WriteU32(&hdr, binutil.LE, p.Type.Raw()); err != nil {
		return nil, err
	}
	if err := binutil.WriteU32(&hdr, binutil.LE, p.NextPage); err != nil {
		return nil, err
	}
	if err := binutil.WriteU32(&hdr, binutil.LE, p.Unknown2); err != nil {
		return nil, err
	}
	if err := binutil.WriteU32(&hdr, binutil.LE, p.Unknown1); err != nil {
		return nil, err
	}
	if err := binutil.WriteU8(&hdr, p.NumRowsSmall); err != nil {
		return nil, err
	}
	if err := binutil.WriteU8(&hdr, uint8(p.Unknown3)); err != nil {
		return nil, err
	}
	if err := binutil.WriteU8(&hdr, uint8(p.Unknown4)); err != nil {
		return nil, err
	}
	if err := binutil.WriteU8(&hdr, p.Flags); err != nil {
		return nil, err
	}
	if err := binutil.WriteU16(&hdr, binutil.LE, p.FreeSize); err != nil {
		return nil, err
	}
	if err := binutil.WriteU16(&hdr, binutil.LE, p.UsedSize); err != nil {
		return nil, err
	}
	if err := binutil.WriteU16(&hdr, binutil.LE, p.Unknown5); err != nil {
		return nil, err
	}
	if err := binutil.WriteU16(&hdr, binutil.LE, p.NumRowsLarge); err != nil {
		return nil, err
	}
	if err := binutil.WriteU16(&hdr, binutil.LE, p.Unknown6); err != nil {
		return nil, err
	}
	if err := binutil.WriteU16(&hdr, binutil.LE, p.Unknown7); err != nil {
		return nil, err
	}
	copy(buf[:pageHeaderSize], hdr.Bytes())
	copy(buf[pageHeaderSize:heapEnd], p.Raw[pageHeaderSize:heapEnd])

	for i, g := range p.RowGroups {
		start := int(pageSize) - (i+1)*rowGroupSize
		var gb bytes.Buffer
		if err := g.write(&gb); err != nil {
			return nil, err
		}
		copy(buf[start:start+rowGroupSize], gb.Bytes())
	}

	return buf, nil
}

// WalkPageChain reads the page chain starting at firstPage, calling fn for
// each page in order, and stops once it has processed lastPage: a real
// terminal page's next_page field points past the end of the file rather
// than being zero or self-referential, so lastPage (from the owning table's
// descriptor) is the only reliable stopping point. A page reappearing before
// lastPage is reached is reported as a structural error rather than looping
// forever. fn's error, if non-nil, stops the walk and is returned unmodified.
func WalkPageChain(r io.ReaderAt, pageSize uint32, firstPage, lastPage uint32, fn func(Page) error) error {
	const op = "pdb.WalkPageChain"

	visited := make(map[uint32]bool)
	index := firstPage
	for {
		if visited[index] {
			return rkerr.Structuralf(op, -1, "page chain cycle detected at page %d", index)
		}
		visited[index] = true

		page, err := ReadPageAt(r, pageSize, index)
		if err != nil {
			return err
		}
		if err := fn(page); err != nil {
			return err
		}

		if index == lastPage {
			return nil
		}
		index = page.NextPage
	}
}
