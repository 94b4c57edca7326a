package pdb

import (
	"bytes"
	"testing"
)

func buildHeader() Header {
	return Header{
		PageSize:       4096,
		NextUnusedPage: 12,
		Unknown:        0,
		Sequence:       3,
		Tables: []Table{
			{Type: PageTypeTracks, EmptyCandidate: 0, FirstPage: 1, LastPage: 5},
			{Type: PageTypeArtists, EmptyCandidate: 0, FirstPage: 6, LastPage: 6},
			{Type: PageTypeUnknown(42), EmptyCandidate: 0, FirstPage: 9, LastPage: 9},
		},
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	h := buildHeader()

	var buf bytes.Buffer
	if err := h.write(&buf); err != nil {
		t.Fatalf("write() error = %v", err)
	}

	got, err := readHeader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("readHeader() error = %v", err)
	}
	if got.PageSize != h.PageSize || got.NextUnusedPage != h.NextUnusedPage || got.Sequence != h.Sequence {
		t.Errorf("readHeader() = %+v, want %+v", got, h)
	}
	if len(got.Tables) != len(h.Tables) {
		t.Fatalf("len(Tables) = %d, want %d", len(got.Tables), len(h.Tables))
	}
	for i, table := range h.Tables {
		if got.Tables[i].Type != table.Type {
			t.Errorf("Tables[%d].Type = %v, want %v", i, got.Tables[i].Type, table.Type)
		}
		if got.Tables[i].FirstPage != table.FirstPage || got.Tables[i].LastPage != table.LastPage {
			t.Errorf("Tables[%d] = %+v, want %+v", i, got.Tables[i], table)
		}
	}

	var buf2 bytes.Buffer
	if err := got.write(&buf2); err != nil {
		t.Fatalf("second write() error = %v", err)
	}
	if !bytes.Equal(buf.Bytes(), buf2.Bytes()) {
		t.Errorf("round-trip mismatch:\ngot  %x\nwant %x", buf2.Bytes(), buf.Bytes())
	}
}

func TestHeaderRejectsNonZeroLeadingField(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{1, 0, 0, 0}) // leading field must be zero
	buf.Write(make([]byte, 24))
	if _, err := readHeader(&buf); err == nil {
		t.Error("readHeader() error = nil, want error")
	}
}

func TestHeaderTableFor(t *testing.T) {
	h := buildHeader()
	table, ok := h.TableFor(PageTypeArtists)
	if !ok {
		t.Fatal("TableFor(Artists) ok = false, want true")
	}
	if table.FirstPage != 6 {
		t.Errorf("TableFor(Artists).FirstPage = %d, want 6", table.FirstPage)
	}
	if _, ok := h.TableFor(PageTypeColumns); ok {
		t.Error("TableFor(Columns) ok = true, want false (not in fixture)")
	}
}
