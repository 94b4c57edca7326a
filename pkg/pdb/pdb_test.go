package pdb

import (
	"bytes"
	"testing"

	"github.com/amanogawa-dev/rekordcodec/pkg/devicesql"
)

// buildSingleRowPage lays out one row at the start of the row heap and a
// single row group pointing at it, for a page holding exactly one row.
func buildSingleRowPage(pageSize uint32, pageIndex uint32, typ PageType, row []byte, nextPage uint32) []byte {
	buf := make([]byte, pageSize)
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
	putU32(4, pageIndex)
	putU32(8, typ.Raw())
	putU32(12, nextPage)
	buf[27] = pageAllocatedFlag
	putU16(34, 1) // num_rows_large

	copy(buf[pageHeaderSize:], row)

	groupStart := int(pageSize) - rowGroupSize
	putU16(groupStart, uint16(pageHeaderSize))
	putU16(groupStart+32, 1) // present bit 0

	return buf
}

func TestDatabaseReadWriteRoundTrip(t *testing.T) {
	const pageSize = 256

	album := AlbumRow{ID: 1, ArtistID: 2, AlbumArtID: 3, Name: devicesql.New("Homework")}
	var rowBuf bytes.Buffer
	if err := album.WriteTo(&rowBuf); err != nil {
		t.Fatalf("AlbumRow.WriteTo() error = %v", err)
	}

	header := Header{
		PageSize: pageSize,
		Tables: []Table{
			{Type: PageTypeAlbums, FirstPage: 1, LastPage: 1},
		},
	}
	var headerBuf bytes.Buffer
	if err := header.write(&headerBuf); err != nil {
		t.Fatalf("header.write() error = %v", err)
	}

	dataPage := buildSingleRowPage(pageSize, 1, PageTypeAlbums, rowBuf.Bytes(), 0)

	file := make([]byte, 2*pageSize)
	copy(file[:pageSize], headerBuf.Bytes())
	copy(file[pageSize:], dataPage)

	db, err := Read(bytes.NewReader(file), int64(len(file)))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	albums := db.Albums()
	if len(albums) != 1 {
		t.Fatalf("len(Albums()) = %d, want 1", len(albums))
	}
	if albums[0].ID != 1 || albums[0].Name.Text() != "Homework" {
		t.Errorf("Albums()[0] = %+v", albums[0])
	}

	var out bytes.Buffer
	if err := db.Write(&out); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !bytes.Equal(out.Bytes(), file) {
		t.Errorf("round-trip mismatch:\ngot  %x\nwant %x", out.Bytes(), file)
	}
}

func TestDatabasePlaylistTreeResolvesForest(t *testing.T) {
	const pageSize = 512

	root := PlaylistTreeNodeRow{ParentID: 0, ID: 1, NodeFlags: playlistNodeIsFolder, Name: devicesql.New("root")}
	child := PlaylistTreeNodeRow{ParentID: 1, ID: 2, Name: devicesql.New("Warmup")}

	var rootBuf, childBuf bytes.Buffer
	if err := root.WriteTo(&rootBuf); err != nil {
		t.Fatalf("root.WriteTo() error = %v", err)
	}
	if err := child.WriteTo(&childBuf); err != nil {
		t.Fatalf("child.WriteTo() error = %v", err)
	}

	header := Header{
		PageSize: pageSize,
		Tables: []Table{
			{Type: PageTypePlaylistTree, FirstPage: 1, LastPage: 2},
		},
	}
	var headerBuf bytes.Buffer
	if err := header.write(&headerBuf); err != nil {
		t.Fatalf("header.write() error = %v", err)
	}

	page1 := buildSingleRowPage(pageSize, 1, PageTypePlaylistTree, rootBuf.Bytes(), 2)
	page2 := buildSingleRowPage(pageSize, 2, PageTypePlaylistTree, childBuf.Bytes(), 0)

	file := make([]byte, 3*pageSize)
	copy(file[:pageSize], headerBuf.Bytes())
	copy(file[pageSize:], page1)
	copy(file[2*pageSize:], page2)

	db, err := Read(bytes.NewReader(file), int64(len(file)))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	forest := db.PlaylistTree()
	if len(forest) != 1 {
		t.Fatalf("len(PlaylistTree()) = %d, want 1", len(forest))
	}
	if forest[0].Name.Text() != "root" || !forest[0].IsFolder() {
		t.Errorf("forest[0] = %+v", forest[0].PlaylistTreeNodeRow)
	}
	if len(forest[0].Children) != 1 || forest[0].Children[0].Name.Text() != "Warmup" {
		t.Errorf("forest[0].Children = %+v", forest[0].Children)
	}
}
