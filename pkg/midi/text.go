package midi

import "golang.org/x/text/transform"

// textMetaConstructor builds a text-bearing meta message, optionally
// passing text through tr first (e.g. to re-encode UTF-8 into the
// Latin-1-ish byte stream many SMF consumers expect). Grounded on
// oov-mxl2mid's TextEvent.Transformer field: the same optional-transform
// shape, applied here to every text-bearing meta kind instead of just
// lyrics.
func textMetaConstructor(time uint32, metaType uint8, text string, tr transform.Transformer) Meta {
	data := []byte(text)
	if tr != nil {
		transformed, _, err := transform.Bytes(tr, data)
		if err == nil {
			data = transformed
		}
	}
	return newMeta(time, metaType, data)
}

// Text carries free-form text (meta type 0x01).
type Text Meta

// NewText constructs a Text meta message. tr may be nil to store text
// as raw UTF-8 bytes unchanged.
func NewText(time uint32, text string, tr transform.Transformer) Text {
	return Text(textMetaConstructor(time, uint8(TextMeta), text, tr))
}

// TextValue returns the decoded text bytes, not reversing any transform
// applied at construction time (per spec.md's "no lossy normalisation on
// decode": the reader hands back exactly what's on the wire).
func (m Text) TextValue() (string, error) {
	v, err := Meta(m).Value()
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CopyrightNote carries copyright text (meta type 0x02).
type CopyrightNote Meta

// NewCopyrightNote constructs a CopyrightNote meta message.
func NewCopyrightNote(time uint32, text string, tr transform.Transformer) CopyrightNote {
	return CopyrightNote(textMetaConstructor(time, uint8(CopyrightNoteMeta), text, tr))
}

func (m CopyrightNote) TextValue() (string, error) {
	v, err := Meta(m).Value()
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// TrackName carries a track/sequence name (meta type 0x03).
type TrackName Meta

// NewTrackName constructs a TrackName meta message.
func NewTrackName(time uint32, name string, tr transform.Transformer) TrackName {
	return TrackName(textMetaConstructor(time, uint8(TrackNameMeta), name, tr))
}

func (m TrackName) TextValue() (string, error) {
	v, err := Meta(m).Value()
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// InstrumentName carries an instrument name (meta type 0x04).
type InstrumentName Meta

// NewInstrumentName constructs an InstrumentName meta message.
func NewInstrumentName(time uint32, name string, tr transform.Transformer) InstrumentName {
	return InstrumentName(textMetaConstructor(time, uint8(InstrumentNameMeta), name, tr))
}

func (m InstrumentName) TextValue() (string, error) {
	v, err := Meta(m).Value()
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Lyric carries a lyric fragment (meta type 0x05).
type Lyric Meta

// NewLyric constructs a Lyric meta message.
func NewLyric(time uint32, lyric string, tr transform.Transformer) Lyric {
	return Lyric(textMetaConstructor(time, uint8(LyricMeta), lyric, tr))
}

func (m Lyric) TextValue() (string, error) {
	v, err := Meta(m).Value()
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Marker carries a marker label (meta type 0x06).
type Marker Meta

// NewMarker constructs a Marker meta message.
func NewMarker(time uint32, marker string, tr transform.Transformer) Marker {
	return Marker(textMetaConstructor(time, uint8(MarkerMeta), marker, tr))
}

func (m Marker) TextValue() (string, error) {
	v, err := Meta(m).Value()
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CuePoint carries a cue point label (meta type 0x07).
type CuePoint Meta

// NewCuePoint constructs a CuePoint meta message.
func NewCuePoint(time uint32, cuePoint string, tr transform.Transformer) CuePoint {
	return CuePoint(textMetaConstructor(time, uint8(CuePointMeta), cuePoint, tr))
}

func (m CuePoint) TextValue() (string, error) {
	v, err := Meta(m).Value()
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SequencerSpecific carries vendor-specific data (meta type 0x7F).
type SequencerSpecific Meta

// NewSequencerSpecific constructs a SequencerSpecific meta message.
func NewSequencerSpecific(time uint32, data []byte) SequencerSpecific {
	return SequencerSpecific(newMeta(time, uint8(SequencerSpecificMeta), data))
}

func (m SequencerSpecific) RawValue() ([]byte, error) {
	return Meta(m).Value()
}

// SequenceNumber carries a 16-bit sequence number (meta type 0x00).
type SequenceNumber Meta

// NewSequenceNumber constructs a SequenceNumber meta message.
func NewSequenceNumber(time uint32, number uint16) SequenceNumber {
	value := []byte{byte(number >> 8), byte(number)}
	return SequenceNumber(newMeta(time, uint8(SequenceNumberMeta), value))
}

func (m SequenceNumber) Number() uint16 {
	v, _ := Meta(m).Value()
	return uint16(ReadMSB(v, 2))
}
