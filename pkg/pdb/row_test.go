package pdb

import (
	"bytes"
	"testing"

	"github.com/amanogawa-dev/rekordcodec/pkg/devicesql"
)

func TestAlbumRowRoundTrip(t *testing.T) {
	a := AlbumRow{ID: 10, Unknown1: 1, ArtistID: 20, AlbumArtID: 30, Unknown2: 2, Name: devicesql.New("Discovery")}

	var buf bytes.Buffer
	if err := a.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	got, err := readAlbumRow(buf.Bytes())
	if err != nil {
		t.Fatalf("readAlbumRow() error = %v", err)
	}
	if got.ID != a.ID || got.ArtistID != a.ArtistID || got.AlbumArtID != a.AlbumArtID {
		t.Errorf("readAlbumRow() = %+v, want scalar fields of %+v", got, a)
	}
	if got.Name.Text() != "Discovery" {
		t.Errorf("Name.Text() = %q, want Discovery", got.Name.Text())
	}
}

func TestArtistRowRoundTripShort(t *testing.T) {
	a := ArtistRow{ID: 5, Subtype: artistSubtypeShort, Name: devicesql.New("Daft Punk")}

	var buf bytes.Buffer
	if err := a.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readArtistRow(buf.Bytes())
	if err != nil {
		t.Fatalf("readArtistRow() error = %v", err)
	}
	if got.ID != 5 || got.Subtype != artistSubtypeShort || got.Name.Text() != "Daft Punk" {
		t.Errorf("readArtistRow() = %+v", got)
	}
}

func TestArtistRowRoundTripLong(t *testing.T) {
	a := ArtistRow{ID: 8, Subtype: artistSubtypeLong, Name: devicesql.New("Justice"), SecondaryOffset: 0}

	var buf bytes.Buffer
	if err := a.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readArtistRow(buf.Bytes())
	if err != nil {
		t.Fatalf("readArtistRow() error = %v", err)
	}
	if got.Subtype != artistSubtypeLong || got.Name.Text() != "Justice" {
		t.Errorf("readArtistRow() = %+v", got)
	}
}

func TestArtworkRowRoundTrip(t *testing.T) {
	a := ArtworkRow{ID: 3, Path: devicesql.New("/PIONEER/ARTWORK/001.jpg")}

	var buf bytes.Buffer
	if err := a.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readArtworkRow(buf.Bytes())
	if err != nil {
		t.Fatalf("readArtworkRow() error = %v", err)
	}
	if got.ID != 3 || got.Path.Text() != a.Path.Text() {
		t.Errorf("readArtworkRow() = %+v", got)
	}
}

func TestColorRowRoundTrip(t *testing.T) {
	c := ColorRow{Unknown1: 7, ColorCode: 3, ID: 99, Name: devicesql.New("Rose")}

	var buf bytes.Buffer
	if err := c.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readColorRow(buf.Bytes())
	if err != nil {
		t.Fatalf("readColorRow() error = %v", err)
	}
	if got.ColorCode != 3 || got.ID != 99 || got.Name.Text() != "Rose" {
		t.Errorf("readColorRow() = %+v", got)
	}
}

func TestGenreLabelHistoryPlaylistRoundTrip(t *testing.T) {
	g := GenreRow{namedRow{ID: 1, Name: devicesql.New("House")}}
	var buf bytes.Buffer
	if err := g.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readGenreRow(buf.Bytes())
	if err != nil {
		t.Fatalf("readGenreRow() error = %v", err)
	}
	if got.ID != 1 || got.Name.Text() != "House" {
		t.Errorf("readGenreRow() = %+v", got)
	}
}

func TestKeyRowRoundTrip(t *testing.T) {
	k := KeyRow{ID: 4, Order: 2, Name: devicesql.New("Am")}
	var buf bytes.Buffer
	if err := k.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readKeyRow(buf.Bytes())
	if err != nil {
		t.Fatalf("readKeyRow() error = %v", err)
	}
	if got.Order != 2 || got.Name.Text() != "Am" {
		t.Errorf("readKeyRow() = %+v", got)
	}
}

func TestHistoryEntryRowRoundTrip(t *testing.T) {
	h := HistoryEntryRow{TrackID: 1, PlaylistID: 2, EntryIndex: 3}
	var buf bytes.Buffer
	if err := h.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readHistoryEntryRow(buf.Bytes())
	if err != nil {
		t.Fatalf("readHistoryEntryRow() error = %v", err)
	}
	if got != h {
		t.Errorf("readHistoryEntryRow() = %+v, want %+v", got, h)
	}
}

func TestPlaylistTreeNodeRowIsFolder(t *testing.T) {
	p := PlaylistTreeNodeRow{ParentID: 0, SortOrder: 1, ID: 2, NodeFlags: playlistNodeIsFolder, Name: devicesql.New("Favorites")}
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readPlaylistTreeNodeRow(buf.Bytes())
	if err != nil {
		t.Fatalf("readPlaylistTreeNodeRow() error = %v", err)
	}
	if !got.IsFolder() {
		t.Error("IsFolder() = false, want true")
	}
	if got.Name.Text() != "Favorites" {
		t.Errorf("Name.Text() = %q, want Favorites", got.Name.Text())
	}
}

func TestPlaylistEntryRowRoundTrip(t *testing.T) {
	p := PlaylistEntryRow{EntryIndex: 1, TrackID: 2, PlaylistID: 3}
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readPlaylistEntryRow(buf.Bytes())
	if err != nil {
		t.Fatalf("readPlaylistEntryRow() error = %v", err)
	}
	if got != p {
		t.Errorf("readPlaylistEntryRow() = %+v, want %+v", got, p)
	}
}

func TestColumnEntryRowRoundTrip(t *testing.T) {
	c := ColumnEntryRow{ColumnID: 7, Name: devicesql.New("BPM")}
	var buf bytes.Buffer
	if err := c.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got, err := readColumnEntryRow(buf.Bytes())
	if err != nil {
		t.Fatalf("readColumnEntryRow() error = %v", err)
	}
	if got.ColumnID != 7 || got.Name.Text() != "BPM" {
		t.Errorf("readColumnEntryRow() = %+v", got)
	}
}

func TestDecodeRowUnknownPageType(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	row, err := decodeRow(PageTypeUnknown(77), raw)
	if err != nil {
		t.Fatalf("decodeRow() error = %v", err)
	}
	u, ok := row.(UnknownRow)
	if !ok {
		t.Fatalf("decodeRow() = %T, want UnknownRow", row)
	}
	if !bytes.Equal(u.Raw, raw) {
		t.Errorf("UnknownRow.Raw = %x, want %x", u.Raw, raw)
	}
}

func TestDecodeRowHistoryFallsBackToUnknown(t *testing.T) {
	raw := []byte{9, 9, 9}
	row, err := decodeRow(PageTypeHistory, raw)
	if err != nil {
		t.Fatalf("decodeRow() error = %v", err)
	}
	if _, ok := row.(UnknownRow); !ok {
		t.Errorf("decodeRow(History) = %T, want UnknownRow", row)
	}
}
