// Package setting implements Rekordbox's *SETTING.DAT device preference
// files: a fixed brand/software/version header, a length-prefixed payload
// whose shape depends on which of the four known files it is, and a
// CRC-16 checksum trailer.
package setting

import (
	"bytes"
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

const (
	stringFieldSize  = 0x20
	lenStringData    = 0x60 // 3 string fields * 0x20, asserted verbatim on read
	unknownTailValue = 0
)

// Setting is a decoded *SETTING.DAT file.
type Setting struct {
	Brand    string
	Software string
	Version  string
	Data     Data

	// Checksum is the on-disk checksum value verbatim, as read. Write
	// replays it unchanged rather than recomputing it, so a read-then-write
	// round trip of a real file reproduces its exact checksum bytes even if
	// the exporter used a different CRC-16 variant than crc16 assumes. A
	// Setting built by hand (Checksum left at its zero value) instead gets
	// one computed at Write time.
	Checksum uint16

	// ChecksumMismatch is non-nil if the file's own CRC-16 disagreed with the
	// recomputed value; Read still returns the parsed Data in this case, per
	// rkerr's one designed-recoverable error kind.
	ChecksumMismatch error
}

// Read decodes a setting file of the given kind. kind must match the file
// actually being read (there is no on-disk field that distinguishes
// MySetting from MySetting2 — both payloads are the same length — so the
// caller, which already knows which of the four fixed filenames it opened,
// states it explicitly).
func Read(r io.Reader, kind FileKind) (*Setting, error) {
	const op = "setting.Read"

	lenStr, err := binutil.ReadU32(r, binutil.LE)
	if err != nil {
		return nil, rkerr.Structural(op, 0, err)
	}
	if lenStr != lenStringData {
		return nil, rkerr.Structuralf(op, 0, "len_stringdata = %#x, want %#x", lenStr, lenStringData)
	}

	brand, err := readNullPaddedString(op, r, stringFieldSize)
	if err != nil {
		return nil, err
	}
	software, err := readNullPaddedString(op, r, stringFieldSize)
	if err != nil {
		return nil, err
	}
	version, err := readNullPaddedString(op, r, stringFieldSize)
	if err != nil {
		return nil, err
	}

	lenData, err := binutil.ReadU32(r, binutil.LE)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	wantLen := kind.payloadLen()
	if int(lenData) != wantLen {
		return nil, rkerr.Structuralf(op, -1, "len_data = %d, want %d for this file kind", lenData, wantLen)
	}

	payloadRaw, err := binutil.ReadBytes(r, wantLen)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	data, err := readData(kind, bytes.NewReader(payloadRaw))
	if err != nil {
		return nil, err
	}

	wantChecksum := checksumRegion(kind, lenStr, brand, software, version, lenData, payloadRaw)

	gotChecksum, err := binutil.ReadU16(r, binutil.LE)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}

	unknown, err := binutil.ReadU16(r, binutil.LE)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	if unknown != unknownTailValue {
		return nil, rkerr.Structuralf(op, -1, "trailing unknown field = %#04x, want 0", unknown)
	}

	s := &Setting{Brand: brand, Software: software, Version: version, Data: data, Checksum: gotChecksum}
	if gotChecksum != wantChecksum {
		s.ChecksumMismatch = rkerr.Checksum(op, -1, wantChecksum, gotChecksum)
	}
	return s, nil
}

// Write serializes s, recomputing len_data from the file kind. A non-zero
// s.Checksum is written back unchanged; a zero one is replaced by the
// checksum computed over the serialized bytes.
func (s *Setting) Write(w io.Writer) error {
	const op = "setting.Write"

	if err := binutil.WriteU32(w, binutil.LE, lenStringData); err != nil {
		return err
	}
	if err := writeNullPaddedString(w, s.Brand, stringFieldSize); err != nil {
		return err
	}
	if err := writeNullPaddedString(w, s.Software, stringFieldSize); err != nil {
		return err
	}
	if err := writeNullPaddedString(w, s.Version, stringFieldSize); err != nil {
		return err
	}

	kind := s.Data.FileKind()
	lenData := uint32(kind.payloadLen())
	if err := binutil.WriteU32(w, binutil.LE, lenData); err != nil {
		return err
	}

	var payloadBuf bytes.Buffer
	if err := s.Data.WriteTo(&payloadBuf); err != nil {
		return err
	}
	if payloadBuf.Len() != kind.payloadLen() {
		return rkerr.Write(op, "data", rkerr.Structuralf(op, -1, "serialized payload is %d bytes, want %d", payloadBuf.Len(), kind.payloadLen()).Err)
	}
	if _, err := w.Write(payloadBuf.Bytes()); err != nil {
		return err
	}

	checksum := s.Checksum
	if checksum == 0 {
		checksum = checksumRegion(kind, lenStringData, s.Brand, s.Software, s.Version, lenData, payloadBuf.Bytes())
	}
	if err := binutil.WriteU16(w, binutil.LE, checksum); err != nil {
		return err
	}
	return binutil.WriteU16(w, binutil.LE, unknownTailValue)
}

// checksumRegion computes the CRC-16 over the bytes the checksum protects:
// just the payload for every file kind except DJMMySetting, where DJM
// mixers checksum the whole preceding header too.
func checksumRegion(kind FileKind, lenStr uint32, brand, software, version string, lenData uint32, payload []byte) uint16 {
	if kind != FileDJMMySetting {
		return crc16(payload)
	}

	var buf bytes.Buffer
	_ = binutil.WriteU32(&buf, binutil.LE, lenStr)
	_ = writeNullPaddedString(&buf, brand, stringFieldSize)
	_ = writeNullPaddedString(&buf, software, stringFieldSize)
	_ = writeNullPaddedString(&buf, version, stringFieldSize)
	_ = binutil.WriteU32(&buf, binutil.LE, lenData)
	buf.Write(payload)
	return crc16(buf.Bytes())
}

func readNullPaddedString(op string, r io.Reader, size int) (string, error) {
	raw, err := binutil.ReadBytes(r, size)
	if err != nil {
		return "", rkerr.Structural(op, -1, err)
	}
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw), nil
}

func writeNullPaddedString(w io.Writer, s string, size int) error {
	if len(s) >= size {
		return rkerr.Write("setting.writeNullPaddedString", "text", rkerr.Structuralf("setting.writeNullPaddedString", -1, "string %q too long for %d-byte field", s, size).Err)
	}
	buf := make([]byte, size)
	copy(buf, s)
	_, err := w.Write(buf)
	return err
}
