// Package pdb implements Rekordbox's export.pdb paged database: the file
// header and table descriptors, page and row-group framing, and per-table
// row decoding for every recognized page type.
package pdb

import (
	"bytes"
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// Database is the decoded value tree of one export.pdb (or exportExt.pdb)
// file: the header plus every row, grouped by table. Per spec.md's
// Non-goals, Database does not support arbitrary post-parse mutation
// followed by rewrite; Write reproduces exactly the pages Read saw, which is
// what the round-trip-identity property requires. Row-level and page-level
// mutation-then-write is supported directly through Page.Bytes and each Row
// type's WriteTo, for callers building a file from scratch.
type Database struct {
	Header   Header
	PageSize uint32

	pages      map[uint32]Page
	rowsByType map[uint32][]Row
}

// Read decodes a full database from r, a random-access view of a file of
// fileSize bytes.
func Read(r io.ReaderAt, fileSize int64) (*Database, error) {
	const op = "pdb.Read"

	sr := io.NewSectionReader(r, 0, fileSize)
	hdr, err := readHeader(sr)
	if err != nil {
		return nil, err
	}
	if hdr.PageSize == 0 {
		return nil, rkerr.Structuralf(op, 0, "page size must be non-zero")
	}

	db := &Database{
		Header:     hdr,
		PageSize:   hdr.PageSize,
		pages:      make(map[uint32]Page),
		rowsByType: make(map[uint32][]Row),
	}

	maxSteps := fileSize / int64(hdr.PageSize)
	if maxSteps < 1 {
		maxSteps = 1
	}

	for _, table := range hdr.Tables {
		steps := int64(0)
		err := WalkPageChain(r, hdr.PageSize, table.FirstPage, table.LastPage, func(p Page) error {
			steps++
			if steps > maxSteps {
				return rkerr.Structuralf(op, -1, "table %s: page chain exceeds %d steps", table.Type, maxSteps)
			}
			db.pages[p.Index] = p

			if !p.IsAllocated() || p.Type != table.Type {
				return nil // invalid page: skip row parsing, keep traversing
			}
			for _, offset := range p.RowOffsets() {
				row, err := decodeRow(table.Type, p.RowBytes(offset))
				if err != nil {
					return err
				}
				db.rowsByType[table.Type.Raw()] = append(db.rowsByType[table.Type.Raw()], row)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Write reproduces the exact file Read decoded: the header followed by
// every page this Database saw, each at its own page-index offset, zero
// padding any page index that was never visited (unused pages within a
// table's allocation span). Pages are written using the header/row-group
// fields Read parsed, so a read-then-write of an unmodified Database is
// byte-exact even though the writer re-derives rather than replays the
// header bytes.
func (db *Database) Write(w io.Writer) error {
	var headerBuf bytes.Buffer
	if err := db.Header.write(&headerBuf); err != nil {
		return err
	}

	var maxIndex uint32
	for idx := range db.pages {
		if idx > maxIndex {
			maxIndex = idx
		}
	}

	out := make([]byte, (int64(maxIndex)+1)*int64(db.PageSize))
	copy(out, headerBuf.Bytes())

	for idx, page := range db.pages {
		buf, err := page.Bytes(db.PageSize)
		if err != nil {
			return err
		}
		start := int64(idx) * int64(db.PageSize)
		copy(out[start:start+int64(db.PageSize)], buf)
	}

	_, err := w.Write(out)
	return err
}

// decodeRow dispatches a row's bytes to the decoder for its page type. A
// recognized tag with no documented row layout (History) and any
// unrecognized tag both fall back to UnknownRow, for two different reasons
// recorded in DESIGN.md.
func decodeRow(t PageType, raw []byte) (Row, error) {
	if t.IsUnknown() {
		return UnknownRow{Type: t, Raw: raw}, nil
	}
	switch t {
	case PageTypeTracks:
		row, err := readTrackRow(raw)
		return row, err
	case PageTypeGenres:
		row, err := readGenreRow(raw)
		return row, err
	case PageTypeArtists:
		row, err := readArtistRow(raw)
		return row, err
	case PageTypeAlbums:
		row, err := readAlbumRow(raw)
		return row, err
	case PageTypeLabels:
		row, err := readLabelRow(raw)
		return row, err
	case PageTypeKeys:
		row, err := readKeyRow(raw)
		return row, err
	case PageTypeColors:
		row, err := readColorRow(raw)
		return row, err
	case PageTypePlaylistTree:
		row, err := readPlaylistTreeNodeRow(raw)
		return row, err
	case PageTypePlaylistEntries:
		row, err := readPlaylistEntryRow(raw)
		return row, err
	case PageTypeHistoryPlaylists:
		row, err := readHistoryPlaylistRow(raw)
		return row, err
	case PageTypeHistoryEntries:
		row, err := readHistoryEntryRow(raw)
		return row, err
	case PageTypeArtwork:
		row, err := readArtworkRow(raw)
		return row, err
	case PageTypeColumns:
		row, err := readColumnEntryRow(raw)
		return row, err
	default:
		// PageTypeHistory and any other recognized-but-unmodeled tag.
		return UnknownRow{Type: t, Raw: raw}, nil
	}
}

// Tracks returns every decoded Track row.
func (db *Database) Tracks() []TrackRow { return typedRows[TrackRow](db, PageTypeTracks) }

// Albums returns every decoded Album row.
func (db *Database) Albums() []AlbumRow { return typedRows[AlbumRow](db, PageTypeAlbums) }

// Artists returns every decoded Artist row.
func (db *Database) Artists() []ArtistRow { return typedRows[ArtistRow](db, PageTypeArtists) }

// Genres returns every decoded Genre row.
func (db *Database) Genres() []GenreRow { return typedRows[GenreRow](db, PageTypeGenres) }

// Labels returns every decoded Label row.
func (db *Database) Labels() []LabelRow { return typedRows[LabelRow](db, PageTypeLabels) }

// Keys returns every decoded Key row.
func (db *Database) Keys() []KeyRow { return typedRows[KeyRow](db, PageTypeKeys) }

// Colors returns every decoded Color row.
func (db *Database) Colors() []ColorRow { return typedRows[ColorRow](db, PageTypeColors) }

// Artwork returns every decoded Artwork row.
func (db *Database) Artwork() []ArtworkRow { return typedRows[ArtworkRow](db, PageTypeArtwork) }

// Columns returns every decoded Columns row.
func (db *Database) Columns() []ColumnEntryRow { return typedRows[ColumnEntryRow](db, PageTypeColumns) }

// PlaylistEntries returns every decoded PlaylistEntries row.
func (db *Database) PlaylistEntries() []PlaylistEntryRow {
	return typedRows[PlaylistEntryRow](db, PageTypePlaylistEntries)
}

// HistoryPlaylists returns every decoded HistoryPlaylists row.
func (db *Database) HistoryPlaylists() []HistoryPlaylistRow {
	return typedRows[HistoryPlaylistRow](db, PageTypeHistoryPlaylists)
}

// HistoryEntries returns every decoded HistoryEntries row.
func (db *Database) HistoryEntries() []HistoryEntryRow {
	return typedRows[HistoryEntryRow](db, PageTypeHistoryEntries)
}

// PlaylistNode is one resolved node of the playlist tree: a
// PlaylistTreeNodeRow plus its already-resolved children, for callers that
// want a nested view instead of the flat table.
type PlaylistNode struct {
	PlaylistTreeNodeRow
	Children []*PlaylistNode
}

// PlaylistTree resolves the flat PlaylistTree table into a forest rooted at
// ParentID == 0.
func (db *Database) PlaylistTree() []*PlaylistNode {
	rows := typedRows[PlaylistTreeNodeRow](db, PageTypePlaylistTree)

	byID := make(map[uint32]*PlaylistNode, len(rows))
	childrenOf := make(map[uint32][]*PlaylistNode)
	for _, row := range rows {
		node := &PlaylistNode{PlaylistTreeNodeRow: row}
		byID[row.ID] = node
		childrenOf[row.ParentID] = append(childrenOf[row.ParentID], node)
	}
	for id, node := range byID {
		node.Children = childrenOf[id]
	}
	return childrenOf[0]
}

// typedRows type-asserts every Row the database decoded for pageType into T.
func typedRows[T Row](db *Database, pageType PageType) []T {
	raw := db.rowsByType[pageType.Raw()]
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		if t, ok := r.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
