package anlz

import (
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
	"github.com/amanogawa-dev/rekordcodec/pkg/xormask"
)

// Mood is Rekordbox's three-way energy classification for a song-structure
// phrase.
type Mood uint16

const (
	MoodHigh Mood = 1
	MoodMid  Mood = 2
	MoodLow  Mood = 3
)

// songStructureMaskKey is the fixed key vector newer exports XOR the PSSI
// payload body against.
var songStructureMaskKey = []byte{0xCB, 0xE1, 0xEE, 0xFA, 0xE5, 0xEE, 0xAD, 0xEE, 0xE9, 0xD2, 0xE9, 0xEB, 0xE1, 0xE9, 0xF3, 0xE8}

// SongStructureEntry is one phrase boundary in the song structure.
type SongStructureEntry struct {
	Index uint16
	Beat  uint16
	Bank  uint8
}

// SongStructure is the PSSI payload: the track's phrase-level structure
// (intro, verse, chorus, and so on), masked with a fixed keystream in newer
// exports before it reaches the section body.
type SongStructure struct {
	Mood    Mood
	Entries []SongStructureEntry
}

func (SongStructure) Kind() string { return KindSongStructure }

func readSongStructure(r io.Reader) (Content, error) {
	const op = "anlz.readSongStructure"

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	xormask.NewKeyStream(songStructureMaskKey).Apply(raw)

	if len(raw) < 4 {
		return nil, rkerr.Structuralf(op, -1, "song structure payload too short: %d bytes", len(raw))
	}
	count := binutil.BE.Uint16(raw[0:2])
	mood := Mood(binutil.BE.Uint16(raw[2:4]))

	const entrySize = 5
	body := raw[4:]
	if len(body) != int(count)*entrySize {
		return nil, rkerr.Structuralf(op, -1, "song structure entry count %d inconsistent with payload length %d", count, len(body))
	}

	entries := make([]SongStructureEntry, count)
	for i := range entries {
		b := body[i*entrySize:]
		entries[i] = SongStructureEntry{
			Index: binutil.BE.Uint16(b[0:2]),
			Beat:  binutil.BE.Uint16(b[2:4]),
			Bank:  b[4],
		}
	}
	return SongStructure{Mood: mood, Entries: entries}, nil
}

func (s SongStructure) WriteTo(w io.Writer) error {
	const entrySize = 5
	raw := make([]byte, 4+len(s.Entries)*entrySize)
	binutil.BE.PutUint16(raw[0:2], uint16(len(s.Entries)))
	binutil.BE.PutUint16(raw[2:4], uint16(s.Mood))
	for i, e := range s.Entries {
		b := raw[4+i*entrySize:]
		binutil.BE.PutUint16(b[0:2], e.Index)
		binutil.BE.PutUint16(b[2:4], e.Beat)
		b[4] = e.Bank
	}

	xormask.NewKeyStream(songStructureMaskKey).Apply(raw)
	_, err := w.Write(raw)
	return err
}
