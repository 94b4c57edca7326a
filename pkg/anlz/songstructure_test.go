package anlz

import (
	"bytes"
	"testing"

	"github.com/amanogawa-dev/rekordcodec/pkg/xormask"
)

func TestSongStructureRoundTrip(t *testing.T) {
	s := SongStructure{
		Mood: MoodHigh,
		Entries: []SongStructureEntry{
			{Index: 0, Beat: 1, Bank: 1},
			{Index: 1, Beat: 33, Bank: 2},
		},
	}

	var buf bytes.Buffer
	if err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	got, err := readSongStructure(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("readSongStructure() error = %v", err)
	}
	gs := got.(SongStructure)
	if gs.Mood != s.Mood {
		t.Errorf("Mood = %v, want %v", gs.Mood, s.Mood)
	}
	if len(gs.Entries) != len(s.Entries) {
		t.Fatalf("len(Entries) = %d, want %d", len(gs.Entries), len(s.Entries))
	}
	for i := range s.Entries {
		if gs.Entries[i] != s.Entries[i] {
			t.Errorf("Entries[%d] = %+v, want %+v", i, gs.Entries[i], s.Entries[i])
		}
	}
}

func TestSongStructurePayloadIsMaskedOnWire(t *testing.T) {
	s := SongStructure{Mood: MoodLow, Entries: []SongStructureEntry{{Index: 0, Beat: 1, Bank: 1}}}
	var buf bytes.Buffer
	if err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	// The unmasked count field would read as 1 in the first two bytes; on the
	// wire it must not, proving the keystream was actually applied.
	if buf.Bytes()[0] == 0x00 && buf.Bytes()[1] == 0x01 {
		t.Error("WriteTo() wrote an unmasked payload")
	}
}

func TestSongStructureRejectsCountLengthMismatch(t *testing.T) {
	raw := make([]byte, 4)
	raw[1] = 5 // claims 5 entries with no entry bytes present
	xormask.NewKeyStream(songStructureMaskKey).Apply(raw)
	if _, err := readSongStructure(bytes.NewReader(raw)); err == nil {
		t.Fatal("readSongStructure() error = nil, want structural error")
	}
}
