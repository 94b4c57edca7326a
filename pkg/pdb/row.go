package pdb

import (
	"bytes"
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/devicesql"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// Row is the sum type of every PDB row kind. Which concrete type a Row holds
// is decided entirely by the page-type tag of the table it came from — a
// single page never mixes row kinds — so every row of a page goes through the
// same decoder.
type Row interface {
	// PageType names the table this row belongs to.
	PageType() PageType
	// WriteTo serializes the row's own bytes (not including the RowGroup
	// offset slot that points at it).
	WriteTo(w io.Writer) error
}

// artistSubtypeShort and artistSubtypeLong are the two Artist.Subtype tag
// values; short artists have no secondary name offset, long ones do.
const (
	artistSubtypeShort = 0x60
	artistSubtypeLong  = 0x64
)

// playlistNodeIsFolder marks a PlaylistTreeNode as a folder rather than a
// leaf playlist.
const playlistNodeIsFolder = 1

// AlbumRow is one row of the Albums table.
type AlbumRow struct {
	ID         uint32
	Unknown1   uint32
	ArtistID   uint32
	AlbumArtID uint32
	Unknown2   uint32
	Name       devicesql.String
}

func (AlbumRow) PageType() PageType { return PageTypeAlbums }

func readAlbumRow(row []byte) (AlbumRow, error) {
	const op = "pdb.readAlbumRow"
	r := bytes.NewReader(row)

	var a AlbumRow
	var err error
	if a.ID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return AlbumRow{}, rkerr.Structural(op, 0, err)
	}
	if a.Unknown1, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return AlbumRow{}, rkerr.Structural(op, 4, err)
	}
	if a.ArtistID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return AlbumRow{}, rkerr.Structural(op, 8, err)
	}
	if a.AlbumArtID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return AlbumRow{}, rkerr.Structural(op, 12, err)
	}
	if a.Unknown2, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return AlbumRow{}, rkerr.Structural(op, 16, err)
	}
	nameOffset, err := binutil.ReadU16(r, binutil.LE)
	if err != nil {
		return AlbumRow{}, rkerr.Structural(op, 20, err)
	}
	if a.Name, err = stringAt(op, row, nameOffset); err != nil {
		return AlbumRow{}, err
	}
	return a, nil
}

func (a AlbumRow) WriteTo(w io.Writer) error {
	if err := binutil.WriteU32(w, binutil.LE, a.ID); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, a.Unknown1); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, a.ArtistID); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, a.AlbumArtID); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, a.Unknown2); err != nil {
		return err
	}
	const fixedLen = 22 // fields above (20 bytes) + the name-offset slot itself
	if err := binutil.WriteU16(w, binutil.LE, uint16(fixedLen)); err != nil {
		return err
	}
	return a.Name.Write(w)
}

// ArtistRow is one row of the Artists table. Short artists (Subtype ==
// 0x60) store their name inline at a single offset; long artists (0x64)
// additionally carry an unused secondary offset slot observed in real
// exports but never populated by Rekordbox itself, preserved for fidelity.
type ArtistRow struct {
	ID              uint32
	Subtype         uint8
	Name            devicesql.String
	SecondaryOffset uint16
}

func (ArtistRow) PageType() PageType { return PageTypeArtists }

func readArtistRow(row []byte) (ArtistRow, error) {
	const op = "pdb.readArtistRow"
	r := bytes.NewReader(row)

	var a ArtistRow
	subtype, err := binutil.ReadU8(r)
	if err != nil {
		return ArtistRow{}, rkerr.Structural(op, 0, err)
	}
	a.Subtype = subtype
	if _, err := binutil.ReadU8(r); err != nil { // padding byte
		return ArtistRow{}, rkerr.Structural(op, 1, err)
	}
	nameOffset, err := binutil.ReadU16(r, binutil.LE)
	if err != nil {
		return ArtistRow{}, rkerr.Structural(op, 2, err)
	}
	if a.ID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return ArtistRow{}, rkerr.Structural(op, 4, err)
	}
	if subtype == artistSubtypeLong {
		if a.SecondaryOffset, err = binutil.ReadU16(r, binutil.LE); err != nil {
			return ArtistRow{}, rkerr.Structural(op, 8, err)
		}
	}
	if a.Name, err = stringAt(op, row, nameOffset); err != nil {
		return ArtistRow{}, err
	}
	return a, nil
}

func (a ArtistRow) WriteTo(w io.Writer) error {
	if err := binutil.WriteU8(w, a.Subtype); err != nil {
		return err
	}
	if err := binutil.WriteU8(w, 0); err != nil {
		return err
	}
	fixedLen := 8
	if a.Subtype == artistSubtypeLong {
		fixedLen = 10
	}
	if err := binutil.WriteU16(w, binutil.LE, uint16(fixedLen)); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, a.ID); err != nil {
		return err
	}
	if a.Subtype == artistSubtypeLong {
		if err := binutil.WriteU16(w, binutil.LE, a.SecondaryOffset); err != nil {
			return err
		}
	}
	return a.Name.Write(w)
}

// ArtworkRow is one row of the Artwork table: an artwork ID and the file
// path of the cached image on the device.
type ArtworkRow struct {
	ID   uint32
	Path devicesql.String
}

func (ArtworkRow) PageType() PageType { return PageTypeArtwork }

func readArtworkRow(row []byte) (ArtworkRow, error) {
	const op = "pdb.readArtworkRow"
	r := bytes.NewReader(row)

	var a ArtworkRow
	var err error
	if a.ID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return ArtworkRow{}, rkerr.Structural(op, 0, err)
	}
	if a.Path, err = devicesql.Read(r); err != nil {
		return ArtworkRow{}, err
	}
	return a, nil
}

func (a ArtworkRow) WriteTo(w io.Writer) error {
	if err := binutil.WriteU32(w, binutil.LE, a.ID); err != nil {
		return err
	}
	return a.Path.Write(w)
}

// ColorRow is one row of the Colors table.
type ColorRow struct {
	Unknown1  uint32
	ColorCode uint8
	Unknown2  [3]uint8
	ID        uint16
	Name      devicesql.String
}

func (ColorRow) PageType() PageType { return PageTypeColors }

func readColorRow(row []byte) (ColorRow, error) {
	const op = "pdb.readColorRow"
	r := bytes.NewReader(row)

	var c ColorRow
	var err error
	if c.Unknown1, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return ColorRow{}, rkerr.Structural(op, 0, err)
	}
	if c.ColorCode, err = binutil.ReadU8(r); err != nil {
		return ColorRow{}, rkerr.Structural(op, 4, err)
	}
	for i := range c.Unknown2 {
		if c.Unknown2[i], err = binutil.ReadU8(r); err != nil {
			return ColorRow{}, rkerr.Structural(op, int64(5+i), err)
		}
	}
	if c.ID, err = binutil.ReadU16(r, binutil.LE); err != nil {
		return ColorRow{}, rkerr.Structural(op, 8, err)
	}
	if c.Name, err = devicesql.Read(r); err != nil {
		return ColorRow{}, err
	}
	return c, nil
}

func (c ColorRow) WriteTo(w io.Writer) error {
	if err := binutil.WriteU32(w, binutil.LE, c.Unknown1); err != nil {
		return err
	}
	if err := binutil.WriteU8(w, c.ColorCode); err != nil {
		return err
	}
	for _, b := range c.Unknown2 {
		if err := binutil.WriteU8(w, b); err != nil {
			return err
		}
	}
	if err := binutil.WriteU16(w, binutil.LE, c.ID); err != nil {
		return err
	}
	return c.Name.Write(w)
}

// namedRow is the shared {id, name} shape of Genre, Label and HistoryPlaylist
// rows.
type namedRow struct {
	ID   uint32
	Name devicesql.String
}

func readNamedRow(op string, row []byte) (namedRow, error) {
	r := bytes.NewReader(row)
	var n namedRow
	var err error
	if n.ID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return namedRow{}, rkerr.Structural(op, 0, err)
	}
	if n.Name, err = devicesql.Read(r); err != nil {
		return namedRow{}, err
	}
	return n, nil
}

func (n namedRow) writeTo(w io.Writer) error {
	if err := binutil.WriteU32(w, binutil.LE, n.ID); err != nil {
		return err
	}
	return n.Name.Write(w)
}

// GenreRow is one row of the Genres table.
type GenreRow struct{ namedRow }

func (GenreRow) PageType() PageType   { return PageTypeGenres }
func (g GenreRow) WriteTo(w io.Writer) error { return g.namedRow.writeTo(w) }

func readGenreRow(row []byte) (GenreRow, error) {
	n, err := readNamedRow("pdb.readGenreRow", row)
	return GenreRow{n}, err
}

// LabelRow is one row of the Labels table.
type LabelRow struct{ namedRow }

func (LabelRow) PageType() PageType   { return PageTypeLabels }
func (l LabelRow) WriteTo(w io.Writer) error { return l.namedRow.writeTo(w) }

func readLabelRow(row []byte) (LabelRow, error) {
	n, err := readNamedRow("pdb.readLabelRow", row)
	return LabelRow{n}, err
}

// HistoryPlaylistRow is one row of the HistoryPlaylists table.
type HistoryPlaylistRow struct{ namedRow }

func (HistoryPlaylistRow) PageType() PageType   { return PageTypeHistoryPlaylists }
func (h HistoryPlaylistRow) WriteTo(w io.Writer) error { return h.namedRow.writeTo(w) }

func readHistoryPlaylistRow(row []byte) (HistoryPlaylistRow, error) {
	n, err := readNamedRow("pdb.readHistoryPlaylistRow", row)
	return HistoryPlaylistRow{n}, err
}

// KeyRow is one row of the Keys table: a musical key with its ordering
// number among the enharmonic-equivalent set Rekordbox groups together.
type KeyRow struct {
	ID    uint32
	Order uint32
	Name  devicesql.String
}

func (KeyRow) PageType() PageType { return PageTypeKeys }

func readKeyRow(row []byte) (KeyRow, error) {
	const op = "pdb.readKeyRow"
	r := bytes.NewReader(row)

	var k KeyRow
	var err error
	if k.ID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return KeyRow{}, rkerr.Structural(op, 0, err)
	}
	if k.Order, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return KeyRow{}, rkerr.Structural(op, 4, err)
	}
	if k.Name, err = devicesql.Read(r); err != nil {
		return KeyRow{}, err
	}
	return k, nil
}

func (k KeyRow) WriteTo(w io.Writer) error {
	if err := binutil.WriteU32(w, binutil.LE, k.ID); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, k.Order); err != nil {
		return err
	}
	return k.Name.Write(w)
}

// HistoryEntryRow is one row of the HistoryEntries table.
type HistoryEntryRow struct {
	TrackID    uint32
	PlaylistID uint32
	EntryIndex uint32
}

func (HistoryEntryRow) PageType() PageType { return PageTypeHistoryEntries }

func readHistoryEntryRow(row []byte) (HistoryEntryRow, error) {
	const op = "pdb.readHistoryEntryRow"
	r := bytes.NewReader(row)

	var h HistoryEntryRow
	var err error
	if h.TrackID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return HistoryEntryRow{}, rkerr.Structural(op, 0, err)
	}
	if h.PlaylistID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return HistoryEntryRow{}, rkerr.Structural(op, 4, err)
	}
	if h.EntryIndex, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return HistoryEntryRow{}, rkerr.Structural(op, 8, err)
	}
	return h, nil
}

func (h HistoryEntryRow) WriteTo(w io.Writer) error {
	if err := binutil.WriteU32(w, binutil.LE, h.TrackID); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, h.PlaylistID); err != nil {
		return err
	}
	return binutil.WriteU32(w, binutil.LE, h.EntryIndex)
}

// PlaylistTreeNodeRow is one row of the PlaylistTree table: either a folder
// or a leaf playlist, forming a tree rooted at ParentID == 0.
type PlaylistTreeNodeRow struct {
	ParentID  uint32
	Unknown   uint32
	SortOrder uint32
	ID        uint32
	NodeFlags uint32
	Name      devicesql.String
}

func (PlaylistTreeNodeRow) PageType() PageType { return PageTypePlaylistTree }

func (p PlaylistTreeNodeRow) IsFolder() bool { return p.NodeFlags&playlistNodeIsFolder != 0 }

func readPlaylistTreeNodeRow(row []byte) (PlaylistTreeNodeRow, error) {
	const op = "pdb.readPlaylistTreeNodeRow"
	r := bytes.NewReader(row)

	var p PlaylistTreeNodeRow
	var err error
	if p.ParentID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return PlaylistTreeNodeRow{}, rkerr.Structural(op, 0, err)
	}
	if p.Unknown, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return PlaylistTreeNodeRow{}, rkerr.Structural(op, 4, err)
	}
	if p.SortOrder, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return PlaylistTreeNodeRow{}, rkerr.Structural(op, 8, err)
	}
	if p.ID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return PlaylistTreeNodeRow{}, rkerr.Structural(op, 12, err)
	}
	if p.NodeFlags, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return PlaylistTreeNodeRow{}, rkerr.Structural(op, 16, err)
	}
	if p.Name, err = devicesql.Read(r); err != nil {
		return PlaylistTreeNodeRow{}, err
	}
	return p, nil
}

func (p PlaylistTreeNodeRow) WriteTo(w io.Writer) error {
	if err := binutil.WriteU32(w, binutil.LE, p.ParentID); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, p.Unknown); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, p.SortOrder); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, p.ID); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, p.NodeFlags); err != nil {
		return err
	}
	return p.Name.Write(w)
}

// PlaylistEntryRow is one row of the PlaylistEntries table.
type PlaylistEntryRow struct {
	EntryIndex uint32
	TrackID    uint32
	PlaylistID uint32
}

func (PlaylistEntryRow) PageType() PageType { return PageTypePlaylistEntries }

func readPlaylistEntryRow(row []byte) (PlaylistEntryRow, error) {
	const op = "pdb.readPlaylistEntryRow"
	r := bytes.NewReader(row)

	var p PlaylistEntryRow
	var err error
	if p.EntryIndex, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return PlaylistEntryRow{}, rkerr.Structural(op, 0, err)
	}
	if p.TrackID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return PlaylistEntryRow{}, rkerr.Structural(op, 4, err)
	}
	if p.PlaylistID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return PlaylistEntryRow{}, rkerr.Structural(op, 8, err)
	}
	return p, nil
}

func (p PlaylistEntryRow) WriteTo(w io.Writer) error {
	if err := binutil.WriteU32(w, binutil.LE, p.EntryIndex); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, p.TrackID); err != nil {
		return err
	}
	return binutil.WriteU32(w, binutil.LE, p.PlaylistID)
}

// ColumnEntryRow is one row of the Columns table: a numeric column
// identifier paired with its display name.
type ColumnEntryRow struct {
	ColumnID uint32
	Name     devicesql.String
}

func (ColumnEntryRow) PageType() PageType { return PageTypeColumns }

func readColumnEntryRow(row []byte) (ColumnEntryRow, error) {
	const op = "pdb.readColumnEntryRow"
	r := bytes.NewReader(row)

	var c ColumnEntryRow
	var err error
	if c.ColumnID, err = binutil.ReadU32(r, binutil.LE); err != nil {
		return ColumnEntryRow{}, rkerr.Structural(op, 0, err)
	}
	if c.Name, err = devicesql.Read(r); err != nil {
		return ColumnEntryRow{}, err
	}
	return c, nil
}

func (c ColumnEntryRow) WriteTo(w io.Writer) error {
	if err := binutil.WriteU32(w, binutil.LE, c.ColumnID); err != nil {
		return err
	}
	return c.Name.Write(w)
}

// UnknownRow preserves a row whose layout the codec does not model, either
// because its page-type tag is itself unrecognized, or because the tag is
// recognized (History, tag 19) but no row structure has ever been
// documented for it — two distinct reasons a row ends up here, both
// resulting in the same raw-byte preservation.
type UnknownRow struct {
	Type PageType
	Raw  []byte
}

func (u UnknownRow) PageType() PageType { return u.Type }

func (u UnknownRow) WriteTo(w io.Writer) error {
	_, err := w.Write(u.Raw)
	return err
}
