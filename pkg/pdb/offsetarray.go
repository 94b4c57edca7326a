package pdb

import (
	"bytes"
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/devicesql"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// readOffsetTable reads numOffsets little-endian u16 offsets starting at r's
// current position. This is the shared variable-length-field layout used by
// Album, Artist and Track rows: a run of fixed-width scalar fields followed
// by a small table of offsets (relative to the start of the row) pointing at
// that row's DeviceSQLStrings, read out of line in whatever order the table
// lists them. A slot value of 0 means the string is absent rather than
// "points at offset 0", per stringAt below.
// current position.
func readOffsetTable(r io.Reader, numOffsets int) ([]uint16, error) {
	offsets := make([]uint16, numOffsets)
	for i := range offsets {
		v, err := binutil.ReadU16(r, binutil.LE)
		if err != nil {
			return nil, err
		}
		offsets[i] = v
	}
	return offsets, nil
}

// stringAt decodes the DeviceSQLString whose row-relative byte offset is
// given, or returns Empty (per §4.4's convention for slot value 0) without
// touching the row bytes.
func stringAt(op string, row []byte, offset uint16) (devicesql.String, error) {
	if offset == 0 {
		return devicesql.Empty(), nil
	}
	if int(offset) >= len(row) {
		return devicesql.String{}, rkerr.Structuralf(op, int64(offset), "string offset past end of row (row is %d bytes)", len(row))
	}
	return devicesql.Read(bytes.NewReader(row[offset:]))
}
