package pdb

import (
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// Table is a table descriptor: a page-type tag plus the head and tail of the
// page chain holding that type's rows.
type Table struct {
	Type           PageType
	EmptyCandidate uint32
	FirstPage      uint32
	LastPage       uint32
}

// Header is the fixed file-level header of export.pdb / exportExt.pdb: page
// size, the table-descriptor list, and a handful of fields whose meaning is
// undocumented and preserved verbatim.
type Header struct {
	PageSize      uint32
	NextUnusedPage uint32
	Unknown       uint32
	Sequence      uint32
	Tables        []Table
}

const headerLeadingZero = 0

// readHeader parses the fixed file header starting at the current reader
// position (always offset 0).
func readHeader(r io.Reader) (Header, error) {
	const op = "pdb.readHeader"

	unknown1, err := binutil.ReadU32(r, binutil.LE)
	if err != nil {
		return Header{}, rkerr.Structural(op, 0, err)
	}
	if unknown1 != headerLeadingZero {
		return Header{}, rkerr.Structuralf(op, 0, "leading header field must be zero, got %#x", unknown1)
	}

	pageSize, err := binutil.ReadU32(r, binutil.LE)
	if err != nil {
		return Header{}, rkerr.Structural(op, 4, err)
	}
	numTables, err := binutil.ReadU32(r, binutil.LE)
	if err != nil {
		return Header{}, rkerr.Structural(op, 8, err)
	}
	nextUnusedPage, err := binutil.ReadU32(r, binutil.LE)
	if err != nil {
		return Header{}, rkerr.Structural(op, 12, err)
	}
	unknown, err := binutil.ReadU32(r, binutil.LE)
	if err != nil {
		return Header{}, rkerr.Structural(op, 16, err)
	}
	sequence, err := binutil.ReadU32(r, binutil.LE)
	if err != nil {
		return Header{}, rkerr.Structural(op, 20, err)
	}
	gap, err := binutil.ReadU32(r, binutil.LE)
	if err != nil {
		return Header{}, rkerr.Structural(op, 24, err)
	}
	if gap != 0 {
		return Header{}, rkerr.Structuralf(op, 24, "header gap field must be zero, got %#x", gap)
	}

	tables := make([]Table, numTables)
	for i := range tables {
		pageType, err := binutil.ReadU32(r, binutil.LE)
		if err != nil {
			return Header{}, rkerr.Structural(op, -1, err)
		}
		emptyCandidate, err := binutil.ReadU32(r, binutil.LE)
		if err != nil {
			return Header{}, rkerr.Structural(op, -1, err)
		}
		firstPage, err := binutil.ReadU32(r, binutil.LE)
		if err != nil {
			return Header{}, rkerr.Structural(op, -1, err)
		}
		lastPage, err := binutil.ReadU32(r, binutil.LE)
		if err != nil {
			return Header{}, rkerr.Structural(op, -1, err)
		}
		tables[i] = Table{
			Type:           pageTypeFromRaw(pageType),
			EmptyCandidate: emptyCandidate,
			FirstPage:      firstPage,
			LastPage:       lastPage,
		}
	}

	return Header{
		PageSize:       pageSize,
		NextUnusedPage: nextUnusedPage,
		Unknown:        unknown,
		Sequence:       sequence,
		Tables:         tables,
	}, nil
}

// write serializes the header. numTables and the gap/leading-zero fields are
// always recomputed rather than trusted from parse time, per §4.3's "write
// recomputes lengths" discipline applied to the header's own table count.
func (h Header) write(w io.Writer) error {
	if err := binutil.WriteU32(w, binutil.LE, headerLeadingZero); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, h.PageSize); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, uint32(len(h.Tables))); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, h.NextUnusedPage); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, h.Unknown); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, h.Sequence); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, 0); err != nil { // gap
		return err
	}
	for _, t := range h.Tables {
		if err := binutil.WriteU32(w, binutil.LE, t.Type.Raw()); err != nil {
			return err
		}
		if err := binutil.WriteU32(w, binutil.LE, t.EmptyCandidate); err != nil {
			return err
		}
		if err := binutil.WriteU32(w, binutil.LE, t.FirstPage); err != nil {
			return err
		}
		if err := binutil.WriteU32(w, binutil.LE, t.LastPage); err != nil {
			return err
		}
	}
	return nil
}

// TableFor returns the descriptor for the given page type and whether it was
// found.
func (h Header) TableFor(t PageType) (Table, bool) {
	for _, tbl := range h.Tables {
		if tbl.Type == t {
			return tbl, true
		}
	}
	return Table{}, false
}
