package pdb

import (
	"bytes"
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/devicesql"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// trackStringSlots is the fixed, in-file order of a Track row's 21
// offset-addressed DeviceSQLStrings.
const trackStringSlots = 21

// Track string-slot indices, named per SPEC_FULL's recovered field order.
// Several slots are labeled only "UnknownStringN": Rekordbox populates them
// in every observed export but no semantic name survives in the reference
// documentation, so they are preserved verbatim rather than guessed at.
const (
	trackSlotISRC = iota
	trackSlotUnknownString1
	trackSlotUnknownString2
	trackSlotUnknownString3
	trackSlotUnknownString4
	trackSlotMessage
	trackSlotKuvoPublic
	trackSlotAutoloadHotcues
	trackSlotUnknownString5
	trackSlotUnknownString6
	trackSlotDateAdded
	trackSlotReleaseDate
	trackSlotMixName
	trackSlotUnknownString7
	trackSlotAnalyzePath
	trackSlotAnalyzeDate
	trackSlotComment
	trackSlotTitle
	trackSlotUnknownString8
	trackSlotFilename
	trackSlotFilePath
)

// TrackRow is one row of the Tracks table: the track's scalar metadata and
// foreign keys, plus its 21 offset-addressed strings.
type TrackRow struct {
	ID       uint32
	Unknown1 uint32
	Unknown2 uint32

	ArtistID   uint32
	AlbumID    uint32
	GenreID    uint32
	KeyID      uint32
	ColorID    uint32
	LabelID    uint32
	ArtworkID  uint32

	SampleRate  uint32
	Duration    uint32 // seconds
	BitRate     uint32
	Tempo       uint32 // BPM * 100
	Year        uint16
	Rating      uint8
	TrackNumber uint16
	DiscNumber  uint16
	PlayCount   uint32

	ISRC             devicesql.String
	UnknownString1   devicesql.String
	UnknownString2   devicesql.String
	UnknownString3   devicesql.String
	UnknownString4   devicesql.String
	Message          devicesql.String
	KuvoPublic       devicesql.String
	AutoloadHotcues  devicesql.String
	UnknownString5   devicesql.String
	UnknownString6   devicesql.String
	DateAdded        devicesql.String
	ReleaseDate      devicesql.String
	MixName          devicesql.String
	UnknownString7   devicesql.String
	AnalyzePath      devicesql.String
	AnalyzeDate      devicesql.String
	Comment          devicesql.String
	Title            devicesql.String
	UnknownString8   devicesql.String
	Filename         devicesql.String
	FilePath         devicesql.String
}

func (TrackRow) PageType() PageType { return PageTypeTracks }

// trackFixedLen is the byte length of every field preceding the offset
// table: 14 uint32 fields (56) + 3 uint16 fields (6) + rating byte + its
// alignment pad (2) + the trailing ID field (4) = 68.
const trackFixedLen = 68

func readTrackRow(row []byte) (TrackRow, error) {
	const op = "pdb.readTrackRow"
	r := bytes.NewReader(row)

	var t TrackRow
	var err error
	readU32 := func() uint32 {
		if err != nil {
			return 0
		}
		var v uint32
		v, err = binutil.ReadU32(r, binutil.LE)
		return v
	}
	readU16 := func() uint16 {
		if err != nil {
			return 0
		}
		var v uint16
		v, err = binutil.ReadU16(r, binutil.LE)
		return v
	}
	readU8 := func() uint8 {
		if err != nil {
			return 0
		}
		var v uint8
		v, err = binutil.ReadU8(r)
		return v
	}

	t.Unknown1 = readU32()
	t.Unknown2 = readU32()
	t.ArtistID = readU32()
	t.AlbumID = readU32()
	t.GenreID = readU32()
	t.KeyID = readU32()
	t.ColorID = readU32()
	t.LabelID = readU32()
	t.ArtworkID = readU32()
	t.SampleRate = readU32()
	t.Duration = readU32()
	t.BitRate = readU32()
	t.Tempo = readU32()
	t.PlayCount = readU32()
	t.Year = readU16()
	t.TrackNumber = readU16()
	t.DiscNumber = readU16()
	t.Rating = readU8()
	if err != nil {
		return TrackRow{}, rkerr.Structural(op, -1, err)
	}
	if _, err = binutil.ReadU8(r); err != nil { // pad to 4-byte boundary before offsets
		return TrackRow{}, rkerr.Structural(op, -1, err)
	}
	t.ID = readU32()
	if err != nil {
		return TrackRow{}, rkerr.Structural(op, -1, err)
	}

	offsets, err := readOffsetTable(r, trackStringSlots)
	if err != nil {
		return TrackRow{}, rkerr.Structural(op, -1, err)
	}

	slot := func(i int) (devicesql.String, error) { return stringAt(op, row, offsets[i]) }

	fields := []*devicesql.String{
		&t.ISRC, &t.UnknownString1, &t.UnknownString2, &t.UnknownString3, &t.UnknownString4,
		&t.Message, &t.KuvoPublic, &t.AutoloadHotcues, &t.UnknownString5, &t.UnknownString6,
		&t.DateAdded, &t.ReleaseDate, &t.MixName, &t.UnknownString7, &t.AnalyzePath,
		&t.AnalyzeDate, &t.Comment, &t.Title, &t.UnknownString8, &t.Filename, &t.FilePath,
	}
	for i, dst := range fields {
		s, err := slot(i)
		if err != nil {
			return TrackRow{}, err
		}
		*dst = s
	}

	return t, nil
}

func (t TrackRow) WriteTo(w io.Writer) error {
	const op = "pdb.TrackRow.WriteTo"

	if err := binutil.WriteU32(w, binutil.LE, t.Unknown1); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, t.Unknown2); err != nil {
		return err
	}
	for _, v := range []uint32{
		t.ArtistID, t.AlbumID, t.GenreID, t.KeyID, t.ColorID, t.LabelID, t.ArtworkID,
		t.SampleRate, t.Duration, t.BitRate, t.Tempo, t.PlayCount,
	} {
		if err := binutil.WriteU32(w, binutil.LE, v); err != nil {
			return err
		}
	}
	for _, v := range []uint16{t.Year, t.TrackNumber, t.DiscNumber} {
		if err := binutil.WriteU16(w, binutil.LE, v); err != nil {
			return err
		}
	}
	if err := binutil.WriteU8(w, t.Rating); err != nil {
		return err
	}
	if err := binutil.WriteU8(w, 0); err != nil { // alignment pad
		return err
	}
	if err := binutil.WriteU32(w, binutil.LE, t.ID); err != nil {
		return err
	}

	fields := []devicesql.String{
		t.ISRC, t.UnknownString1, t.UnknownString2, t.UnknownString3, t.UnknownString4,
		t.Message, t.KuvoPublic, t.AutoloadHotcues, t.UnknownString5, t.UnknownString6,
		t.DateAdded, t.ReleaseDate, t.MixName, t.UnknownString7, t.AnalyzePath,
		t.AnalyzeDate, t.Comment, t.Title, t.UnknownString8, t.Filename, t.FilePath,
	}
	if len(fields) != trackStringSlots {
		return rkerr.Write(op, "fields", rkerr.Structuralf(op, -1, "internal: %d string fields, want %d", len(fields), trackStringSlots).Err)
	}

	offsetTableStart := trackFixedLen
	offsetTableLen := trackStringSlots * 2
	running := offsetTableStart + offsetTableLen
	offsets := make([]uint16, trackStringSlots)
	for i, f := range fields {
		if f.Text() == "" && f.Encoding() == devicesql.ShortASCII {
			offsets[i] = 0
			continue
		}
		if running > 0xFFFF {
			return rkerr.Write(op, "offsets", rkerr.Structuralf(op, -1, "track row too large: string offset %d overflows 16 bits", running).Err)
		}
		offsets[i] = uint16(running)
		running += f.EncodedLen()
	}

	for _, off := range offsets {
		if err := binutil.WriteU16(w, binutil.LE, off); err != nil {
			return err
		}
	}
	for i, f := range fields {
		if offsets[i] == 0 {
			continue
		}
		if err := f.Write(w); err != nil {
			return err
		}
	}
	return nil
}
