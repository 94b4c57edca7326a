// Package anlz implements Rekordbox's per-track analysis files (ANLZ0000.DAT
// / .EXT / .2EX): an outer PMAI-tagged container holding a sequence of
// tagged sections — beat grid, cue lists, waveforms, song structure, and the
// track's own file path. Every field, outer and per-section, is big-endian
// except the little-endian shorts embedded in the color-waveform payloads,
// so every read/write states its endianness explicitly rather than trusting
// a file-global order.
package anlz

import (
	"bytes"
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

var magicPMAI = []byte("PMAI")

// File is the decoded outer container: the header and every section in file
// order, unknown ones included.
type File struct {
	Sections []Section

	// HeaderExtra holds any outer-header bytes beyond the three fields Read
	// consumes (12 bytes): observed exports pad the header to 0x1c. Kept
	// verbatim so Write reproduces the original header length instead of
	// collapsing it to 12.
	HeaderExtra []byte
}

// Section is one tagged section: its 4-byte kind magic and its decoded
// payload.
type Section struct {
	Kind    string
	Payload Content

	// HeaderLen is the section's own len_header field as read from disk.
	// It is replayed verbatim on Write; a zero value (a Section built by
	// hand rather than by Read) writes back as the standard 12.
	HeaderLen uint32
}

// Content is the sum type of every section payload kind.
type Content interface {
	Kind() string
	WriteTo(w io.Writer) error
}

// Read decodes a full analysis file from r.
func Read(r io.Reader) (*File, error) {
	const op = "anlz.Read"

	if err := binutil.ReadMagic(r, op, 0, magicPMAI); err != nil {
		return nil, err
	}
	headerLen, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return nil, rkerr.Structural(op, 4, err)
	}
	totalLen, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return nil, rkerr.Structural(op, 8, err)
	}
	if totalLen < headerLen {
		return nil, rkerr.Structuralf(op, 8, "total length %d shorter than header length %d", totalLen, headerLen)
	}
	f := &File{}
	if headerLen > 12 {
		extra, err := binutil.ReadBytes(r, int(headerLen-12))
		if err != nil {
			return nil, rkerr.Structural(op, 12, err)
		}
		f.HeaderExtra = extra
	}

	bodyLen := int64(totalLen - headerLen)
	body := io.LimitReader(r, bodyLen)

	var consumed int64
	for consumed < bodyLen {
		section, sectionLen, err := readSection(body)
		if err != nil {
			return nil, err
		}
		f.Sections = append(f.Sections, section)
		consumed += sectionLen
	}
	if consumed != bodyLen {
		return nil, rkerr.Structuralf(op, -1, "section lengths sum to %d, want body length %d", consumed, bodyLen)
	}

	return f, nil
}

func readSection(r io.Reader) (Section, int64, error) {
	const op = "anlz.readSection"

	kindBytes, err := binutil.ReadBytes(r, 4)
	if err != nil {
		return Section{}, 0, rkerr.Structural(op, -1, err)
	}
	kind := string(kindBytes)

	headerLen, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return Section{}, 0, rkerr.Structural(op, -1, err)
	}
	totalLen, err := binutil.ReadU32(r, binutil.BE)
	if err != nil {
		return Section{}, 0, rkerr.Structural(op, -1, err)
	}
	if totalLen < headerLen || headerLen < 12 || totalLen < 12 {
		return Section{}, 0, rkerr.Structuralf(op, -1, "section %q: total length %d inconsistent with header length %d", kind, totalLen, headerLen)
	}
	// The payload reader starts right at offset 12 and runs to the end of
	// the section: any header-extension fields a section kind carries
	// (e.g. BeatGrid's two reserved words before its beat count) are read
	// by that kind's own decoder as ordinary leading content, exactly as
	// the reference parser reads them, rather than being sliced off and
	// discarded here.
	remaining := int64(totalLen - 12)
	payloadReader := io.LimitReader(r, remaining)

	payload, err := decodePayload(kind, payloadReader)
	if err != nil {
		return Section{}, 0, err
	}

	// Drain any bytes the decoder didn't consume (padding / unread tail),
	// preserving forward-compatible extension bytes exactly as required for
	// round-trip fidelity of unknown-shaped content.
	drained, err := io.ReadAll(payloadReader)
	if err != nil {
		return Section{}, 0, rkerr.Structural(op, -1, err)
	}
	if len(drained) > 0 {
		payload = appendTrailer(payload, drained)
	}

	return Section{Kind: kind, Payload: payload, HeaderLen: headerLen}, int64(totalLen), nil
}

// appendTrailer folds undecoded trailing bytes into the payload so Write
// reproduces them; only Unknown needs this since every named payload either
// consumes its whole section or is itself Unknown.
func appendTrailer(c Content, trailer []byte) Content {
	if u, ok := c.(Unknown); ok {
		u.Raw = append(u.Raw, trailer...)
		return u
	}
	return c
}

// Write serializes f, recomputing every section's and the outer container's
// length fields from the actual serialized payloads rather than trusting
// values cached at parse time.
func (f *File) Write(w io.Writer) error {
	const op = "anlz.Write"

	var body bytes.Buffer
	for _, s := range f.Sections {
		if err := writeSection(&body, s); err != nil {
			return err
		}
	}

	outerHeaderLen := 12 + len(f.HeaderExtra)
	totalLen := outerHeaderLen + body.Len()

	if _, err := w.Write(magicPMAI); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.BE, uint32(outerHeaderLen)); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.BE, uint32(totalLen)); err != nil {
		return rkerr.Write(op, "totalLength", err)
	}
	if len(f.HeaderExtra) > 0 {
		if _, err := w.Write(f.HeaderExtra); err != nil {
			return err
		}
	}
	_, err := w.Write(body.Bytes())
	return err
}

func writeSection(w io.Writer, s Section) error {
	const op = "anlz.writeSection"

	var payloadBuf bytes.Buffer
	if err := s.Payload.WriteTo(&payloadBuf); err != nil {
		return err
	}

	const defaultSectionHeaderLen = 12
	headerLen := s.HeaderLen
	if headerLen == 0 {
		headerLen = defaultSectionHeaderLen
	}
	totalLen := 12 + payloadBuf.Len()
	if totalLen > 0xFFFFFFFF {
		return rkerr.Write(op, "totalLength", rkerr.Structuralf(op, -1, "section %q too large", s.Kind).Err)
	}

	if _, err := io.WriteString(w, s.Kind); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.BE, headerLen); err != nil {
		return err
	}
	if err := binutil.WriteU32(w, binutil.BE, uint32(totalLen)); err != nil {
		return rkerr.Write(op, "totalLength", err)
	}
	_, err := w.Write(payloadBuf.Bytes())
	return err
}
