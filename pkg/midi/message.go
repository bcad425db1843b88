package midi

// Message is the tagged-union value every decoded or hand-built MIDI
// event is represented as. Per-kind accessors are obtained via zero-cost
// Go type conversion to one of the wrapper types below (NoteOn, SetTempo,
// ...) which share Message's exact underlying layout, so the conversion
// copies nothing and reinterprets nothing unsafely.
type Message struct {
	Time       uint32
	StatusByte uint8
	payload    Bytes
}

// Payload returns the message's data bytes, excluding the status byte.
func (m *Message) Payload() []byte {
	return m.payload.Bytes()
}

// Type classifies the message by its status byte.
func (m Message) Type() MessageType {
	return classifyStatus(m.StatusByte)
}

// Channel returns the channel nibble of a voice message's status byte.
// It is meaningless for system/meta messages.
func (m Message) Channel() uint8 {
	return m.StatusByte & 0x0F
}

// newMessage builds a Message, copying data into its small-buffer-optimised
// payload.
func newMessage(time uint32, status uint8, data []byte) Message {
	return Message{Time: time, StatusByte: status, payload: NewBytes(data)}
}

// --- Voice message wrapper types -------------------------------------

// NoteOn carries channel, pitch, and velocity.
type NoteOn Message

// NewNoteOn constructs a NoteOn message.
func NewNoteOn(time uint32, channel, pitch, velocity uint8) NoteOn {
	return NoteOn(newMessage(time, 0x90|(channel&0x0F), []byte{pitch, velocity}))
}

func (m NoteOn) Channel() uint8  { return Message(m).Channel() }
func (m NoteOn) Pitch() uint8    { p := Message(m); return p.payload.At(0) }
func (m NoteOn) Velocity() uint8 { p := Message(m); return p.payload.At(1) }

// NoteOff carries channel, pitch, and velocity (release velocity).
type NoteOff Message

// NewNoteOff constructs a NoteOff message.
func NewNoteOff(time uint32, channel, pitch, velocity uint8) NoteOff {
	return NoteOff(newMessage(time, 0x80|(channel&0x0F), []byte{pitch, velocity}))
}

func (m NoteOff) Channel() uint8  { return Message(m).Channel() }
func (m NoteOff) Pitch() uint8    { p := Message(m); return p.payload.At(0) }
func (m NoteOff) Velocity() uint8 { p := Message(m); return p.payload.At(1) }

// PolyphonicAfterTouch carries channel, pitch, and pressure (its second
// payload byte is named "velocity" in the accessor table for symmetry
// with NoteOn/NoteOff, per spec).
type PolyphonicAfterTouch Message

// NewPolyphonicAfterTouch constructs a PolyphonicAfterTouch message.
func NewPolyphonicAfterTouch(time uint32, channel, pitch, pressure uint8) PolyphonicAfterTouch {
	return PolyphonicAfterTouch(newMessage(time, 0xA0|(channel&0x0F), []byte{pitch, pressure}))
}

func (m PolyphonicAfterTouch) Channel() uint8  { return Message(m).Channel() }
func (m PolyphonicAfterTouch) Pitch() uint8    { p := Message(m); return p.payload.At(0) }
func (m PolyphonicAfterTouch) Velocity() uint8 { p := Message(m); return p.payload.At(1) }

// ControlChange carries channel, control number, and control value.
type ControlChange Message

// NewControlChange constructs a ControlChange message.
func NewControlChange(time uint32, channel, controlNumber, controlValue uint8) ControlChange {
	return ControlChange(newMessage(time, 0xB0|(channel&0x0F), []byte{controlNumber, controlValue}))
}

func (m ControlChange) Channel() uint8       { return Message(m).Channel() }
func (m ControlChange) ControlNumber() uint8 { p := Message(m); return p.payload.At(0) }
func (m ControlChange) ControlValue() uint8  { p := Message(m); return p.payload.At(1) }

// ProgramChange carries channel and program number.
type ProgramChange Message

// NewProgramChange constructs a ProgramChange message.
func NewProgramChange(time uint32, channel, program uint8) ProgramChange {
	return ProgramChange(newMessage(time, 0xC0|(channel&0x0F), []byte{program}))
}

func (m ProgramChange) Channel() uint8 { return Message(m).Channel() }
func (m ProgramChange) Program() uint8 { p := Message(m); return p.payload.At(0) }

// ChannelAfterTouch carries channel and pressure.
type ChannelAfterTouch Message

// NewChannelAfterTouch constructs a ChannelAfterTouch message.
func NewChannelAfterTouch(time uint32, channel, pressure uint8) ChannelAfterTouch {
	return ChannelAfterTouch(newMessage(time, 0xD0|(channel&0x0F), []byte{pressure}))
}

func (m ChannelAfterTouch) Channel() uint8  { return Message(m).Channel() }
func (m ChannelAfterTouch) Pressure() uint8 { p := Message(m); return p.payload.At(0) }

// minPitchBend / maxPitchBend bound the signed 14-bit pitch-bend range.
const (
	minPitchBend int16 = -8192
	maxPitchBend int16 = 8191
)

// PitchBend carries channel and a signed pitch-bend value in
// [-8192..8191].
type PitchBend Message

// NewPitchBend constructs a PitchBend message. value is additively
// rebiased by +8192 before being split into the wire's two 7-bit bytes,
// per spec's constructor/accessor convention.
func NewPitchBend(time uint32, channel uint8, value int16) PitchBend {
	biased := uint16(int32(value) - int32(minPitchBend))
	return PitchBend(newMessage(time, 0xE0|(channel&0x0F), []byte{
		byte(biased & 0x7F),
		byte((biased >> 7) & 0x7F),
	}))
}

func (m PitchBend) Channel() uint8 { return Message(m).Channel() }

// PitchBendValue returns the signed pitch-bend value. This is the
// "intended" semantics from spec.md §4.2 / §9: the 14-bit unsigned value
// is assembled first, then rebiased by -8192 — not the operator-precedence
// bug present in some revisions of the source, which folded the bias into
// the high byte's shift before the OR.
func (m PitchBend) PitchBendValue() int16 {
	p := Message(m)
	lo := uint16(p.payload.At(0) & 0x7F)
	hi := uint16(p.payload.At(1) & 0x7F)
	unsigned := lo | (hi << 7)
	return int16(int32(unsigned) + int32(minPitchBend))
}

// SongPositionPointer carries a 14-bit unsigned position.
type SongPositionPointer Message

// NewSongPositionPointer constructs a SongPositionPointer message.
func NewSongPositionPointer(time uint32, position uint16) SongPositionPointer {
	position &= 0x3FFF
	return SongPositionPointer(newMessage(time, 0xF2, []byte{
		byte(position & 0x7F),
		byte((position >> 7) & 0x7F),
	}))
}

func (m SongPositionPointer) Position() uint16 {
	p := Message(m)
	return uint16(p.payload.At(0)&0x7F) | (uint16(p.payload.At(1)&0x7F) << 7)
}

// QuarterFrame carries a frame type (high nibble) and frame value (low
// nibble) packed into a single data byte.
type QuarterFrame Message

// NewQuarterFrame constructs a QuarterFrame message.
func NewQuarterFrame(time uint32, frameType, frameValue uint8) QuarterFrame {
	return QuarterFrame(newMessage(time, 0xF1, []byte{((frameType & 0x0F) << 4) | (frameValue & 0x0F)}))
}

func (m QuarterFrame) FrameType() uint8  { p := Message(m); return p.payload.At(0) >> 4 }
func (m QuarterFrame) FrameValue() uint8 { p := Message(m); return p.payload.At(0) & 0x0F }

// --- SysEx --------------------------------------------------------------

// SysEx wraps a variable-length system-exclusive payload: a VLQ length
// followed by the contents. The wire-level length includes a terminating
// 0xF7 byte when the writer chose to emit one; SysEx itself does not add
// or strip it on decode.
type SysEx Message

// NewSysEx constructs a SysEx message whose payload is data with an
// appended terminating 0xF7, as the source's constructor does.
func NewSysEx(time uint32, data []byte) SysEx {
	body := make([]byte, 0, len(data)+1)
	body = append(body, data...)
	body = append(body, 0xF7)

	out := make([]byte, 0, VLQSize(uint32(len(body)))+len(body))
	out = WriteVLQ(out, uint32(len(body)))
	out = append(out, body...)
	return SysEx(newMessage(time, 0xF0, out))
}

// Data returns the SysEx contents following the embedded VLQ length
// (including a trailing 0xF7 if present in the source bytes).
func (m SysEx) Data() []byte {
	p := Message(m)
	raw := p.payload.Bytes()
	length, n := ReadVLQ(raw)
	end := n + int(length)
	if end > len(raw) {
		end = len(raw)
	}
	return raw[n:end]
}

// SysExContinuation wraps a 0xF7-headed SysEx continuation packet, per
// spec.md §6: "SysEx continuation: 0xF7, VLQ length N, then N bytes.
// Treated as a separate SysEx-shaped event." It shares SysEx's payload
// shape (VLQ length followed by the contents) but is a distinct status
// byte and therefore a distinct type.
type SysExContinuation Message

// NewSysExContinuation constructs a 0xF7 SysEx continuation message whose
// payload is data, VLQ-length-prefixed. Unlike NewSysEx, it does not
// append a trailing 0xF7: a continuation packet terminates the overall
// SysEx only when the caller includes 0xF7 as the last byte of data.
func NewSysExContinuation(time uint32, data []byte) SysExContinuation {
	out := make([]byte, 0, VLQSize(uint32(len(data)))+len(data))
	out = WriteVLQ(out, uint32(len(data)))
	out = append(out, data...)
	return SysExContinuation(newMessage(time, 0xF7, out))
}

// Data returns the continuation packet's contents following the embedded
// VLQ length.
func (m SysExContinuation) Data() []byte {
	p := Message(m)
	raw := p.payload.Bytes()
	length, n := ReadVLQ(raw)
	end := n + int(length)
	if end > len(raw) {
		end = len(raw)
	}
	return raw[n:end]
}

// --- Meta ---------------------------------------------------------------

// Meta is the generic wrapper for any 0xFF event: its first payload byte
// is the meta-type byte, followed by a VLQ length and the value bytes.
type Meta Message

// newMeta builds a Meta message's payload: metaType byte, VLQ length,
// then value.
func newMeta(time uint32, metaType uint8, value []byte) Meta {
	out := make([]byte, 0, 1+VLQSize(uint32(len(value)))+len(value))
	out = append(out, metaType)
	out = WriteVLQ(out, uint32(len(value)))
	out = append(out, value...)
	return Meta(newMessage(time, 0xFF, out))
}

// MetaKindOf returns the classified MetaKind for this message.
func (m Meta) MetaKindOf() MetaKind {
	p := Message(m)
	return classifyMeta(p.payload.At(0))
}

// MetaTypeByte returns the raw byte following 0xFF.
func (m Meta) MetaTypeByte() uint8 {
	p := Message(m)
	return p.payload.At(0)
}

// Value returns the meta value bytes, skipping the meta-type byte and the
// VLQ length that follows it. It returns ErrOutOfRange if the declared
// length runs past the stored payload.
func (m Meta) Value() ([]byte, error) {
	p := Message(m)
	raw := p.payload.Bytes()
	if len(raw) < 1 {
		return nil, newOutOfRangeError("meta message has no type byte")
	}
	length, n := ReadVLQ(raw[1:])
	start := 1 + n
	end := start + int(length)
	if end > len(raw) {
		return nil, newOutOfRangeError("meta value is out of bound (declared length %d, have %d)", length, len(raw)-start)
	}
	return raw[start:end], nil
}

// --- Typed meta wrappers --------------------------------------------

// SetTempo carries the microseconds-per-quarter-note tempo.
type SetTempo Meta

// NewSetTempo constructs a SetTempo meta message.
func NewSetTempo(time uint32, microsPerQuarter uint32) SetTempo {
	value := []byte{
		byte((microsPerQuarter >> 16) & 0xFF),
		byte((microsPerQuarter >> 8) & 0xFF),
		byte(microsPerQuarter & 0xFF),
	}
	return SetTempo(newMeta(time, uint8(SetTempoMeta), value))
}

// TempoMicrosPerQuarter returns the tempo, read as a 3-byte MSB-first
// unsigned integer.
func (m SetTempo) TempoMicrosPerQuarter() uint32 {
	v, _ := Meta(m).Value()
	return uint32(ReadMSB(v, 3))
}

// TimeSignature carries numerator/denominator plus the standard MIDI
// clocks-per-metronome-click and 32nds-per-quarter fields.
type TimeSignature Meta

// NewTimeSignature constructs a TimeSignature meta message. denominator
// must be a power of two; it is stored as floor(log2(denominator)) per
// the source's truncating cast — callers passing a non-power-of-two value
// get the floor of its log2, which is documented rather than rejected
// (spec.md §9 leaves either choice acceptable; this port picks floor
// behavior to match the source exactly).
func NewTimeSignature(time uint32, numerator, denominator uint8) TimeSignature {
	value := []byte{numerator, log2Floor(denominator), 0x18, 0x08}
	return TimeSignature(newMeta(time, uint8(TimeSignatureMeta), value))
}

func log2Floor(n uint8) uint8 {
	var result uint8
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

func (m TimeSignature) Numerator() uint8 {
	v, _ := Meta(m).Value()
	return v[0]
}

func (m TimeSignature) Denominator() uint8 {
	v, _ := Meta(m).Value()
	return 1 << v[1]
}

// KeySignature carries a signed key (-7..7 sharps/flats) and a tonality
// (0 = major, 1 = minor).
type KeySignature Meta

// NewKeySignature constructs a KeySignature meta message.
func NewKeySignature(time uint32, key int8, tonality uint8) KeySignature {
	value := []byte{byte(key), tonality}
	return KeySignature(newMeta(time, uint8(KeySignatureMeta), value))
}

func (m KeySignature) Key() int8 {
	v, _ := Meta(m).Value()
	return int8(v[0])
}

func (m KeySignature) Tonality() uint8 {
	v, _ := Meta(m).Value()
	return v[1]
}

// keySignatureNames is the 30-element table spec.md §4.2 mandates,
// indexed by key()+7+tonality()*15: 15 major names followed by 15 minor
// names, each spanning 7 flats through 7 sharps.
var keySignatureNames = [30]string{
	// major, key = -7..7
	"Cb", "Gb", "Db", "Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E", "B", "F#", "C#",
	// minor, key = -7..7
	"Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E", "B", "F#", "C#", "G#", "D#", "A#",
}

// Name returns the key's conventional name, e.g. "C" or "F#". It returns
// ErrOutOfRange when Tonality() is neither 0 nor 1.
func (m KeySignature) Name() (string, error) {
	tonality := m.Tonality()
	if tonality > 1 {
		return "", newOutOfRangeError("key signature tonality must be 0 or 1, got %d", tonality)
	}
	idx := int(m.Key()) + 7 + int(tonality)*15
	if idx < 0 || idx >= len(keySignatureNames) {
		return "", newOutOfRangeError("key signature key %d out of range", m.Key())
	}
	return keySignatureNames[idx], nil
}

// SMPTEOffset carries an hour/minute/second/frame/subframe timecode.
type SMPTEOffset Meta

// NewSMPTEOffset constructs an SMPTEOffset meta message.
func NewSMPTEOffset(time uint32, hour, minute, second, frame, subframe uint8) SMPTEOffset {
	value := []byte{hour, minute, second, frame, subframe}
	return SMPTEOffset(newMeta(time, uint8(SMPTEOffsetMeta), value))
}

func (m SMPTEOffset) Hour() uint8     { v, _ := Meta(m).Value(); return v[0] }
func (m SMPTEOffset) Minute() uint8   { v, _ := Meta(m).Value(); return v[1] }
func (m SMPTEOffset) Second() uint8   { v, _ := Meta(m).Value(); return v[2] }
func (m SMPTEOffset) Frame() uint8    { v, _ := Meta(m).Value(); return v[3] }
func (m SMPTEOffset) Subframe() uint8 { v, _ := Meta(m).Value(); return v[4] }

// MIDIChannelPrefix carries the channel a following meta event applies to.
type MIDIChannelPrefix Meta

// NewMIDIChannelPrefix constructs a MIDIChannelPrefix meta message.
func NewMIDIChannelPrefix(time uint32, channel uint8) MIDIChannelPrefix {
	return MIDIChannelPrefix(newMeta(time, uint8(MIDIChannelPrefixMeta), []byte{channel}))
}

func (m MIDIChannelPrefix) ChannelPrefix() uint8 {
	v, _ := Meta(m).Value()
	return v[0]
}

// EndOfTrack is a tag-only meta message with no value bytes.
type EndOfTrack Meta

// NewEndOfTrack constructs an EndOfTrack meta message.
func NewEndOfTrack(time uint32) EndOfTrack {
	return EndOfTrack(newMeta(time, uint8(EndOfTrackMeta), nil))
}
