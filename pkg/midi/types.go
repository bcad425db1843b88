package midi

// MessageType classifies a message by its status byte.
type MessageType uint8

const (
	Unknown MessageType = iota
	NoteOffType
	NoteOnType
	PolyphonicAfterTouchType
	ControlChangeType
	ProgramChangeType
	ChannelAfterTouchType
	PitchBendType
	SysExStartType
	QuarterFrameType
	SongPositionPointerType
	SongSelectType
	TuneRequestType
	SysExEndType
	TimingClockType
	StartSequenceType
	ContinueSequenceType
	StopSequenceType
	ActiveSensingType
	MetaType_
)

func (t MessageType) String() string {
	if s, ok := messageTypeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// MetaKind classifies a Meta message by the byte following 0xFF.
type MetaKind uint8

const (
	SequenceNumberMeta      MetaKind = 0x00
	TextMeta                MetaKind = 0x01
	CopyrightNoteMeta       MetaKind = 0x02
	TrackNameMeta           MetaKind = 0x03
	InstrumentNameMeta      MetaKind = 0x04
	LyricMeta               MetaKind = 0x05
	MarkerMeta              MetaKind = 0x06
	CuePointMeta            MetaKind = 0x07
	MIDIChannelPrefixMeta   MetaKind = 0x20
	EndOfTrackMeta          MetaKind = 0x2F
	SetTempoMeta            MetaKind = 0x51
	SMPTEOffsetMeta         MetaKind = 0x54
	TimeSignatureMeta       MetaKind = 0x58
	KeySignatureMeta        MetaKind = 0x59
	SequencerSpecificMeta   MetaKind = 0x7F
	UnknownMeta             MetaKind = 0xFF
)

func (k MetaKind) String() string {
	if s, ok := metaKindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// messageSpec is the single source of truth for (name, status, length)
// used to build the 256-entry status->type and type->length lookup
// tables. This is the Go rendition of the source's macro-generated enum
// tables: a plain literal table built once at package init instead of a
// C++ constexpr array, since Go has no user-facing compile-time table
// generation.
type messageSpec struct {
	kind   MessageType
	name   string
	status uint8
	length int // fixed payload length excluding status byte; -1 = variable
}

var messageSpecs = []messageSpec{
	{Unknown, "Unknown", 0x00, -1},
	{NoteOffType, "NoteOff", 0x80, 2},
	{NoteOnType, "NoteOn", 0x90, 2},
	{PolyphonicAfterTouchType, "PolyphonicAfterTouch", 0xA0, 2},
	{ControlChangeType, "ControlChange", 0xB0, 2},
	{ProgramChangeType, "ProgramChange", 0xC0, 1},
	{ChannelAfterTouchType, "ChannelAfterTouch", 0xD0, 1},
	{PitchBendType, "PitchBend", 0xE0, 2},
	{SysExStartType, "SysExStart", 0xF0, -1},
	{QuarterFrameType, "QuarterFrame", 0xF1, 1},
	{SongPositionPointerType, "SongPositionPointer", 0xF2, 2},
	{SongSelectType, "SongSelect", 0xF3, 1},
	{TuneRequestType, "TuneRequest", 0xF6, 0},
	{SysExEndType, "SysExEnd", 0xF7, -1},
	{TimingClockType, "TimingClock", 0xF8, 0},
	{StartSequenceType, "StartSequence", 0xFA, 0},
	{ContinueSequenceType, "ContinueSequence", 0xFB, 0},
	{StopSequenceType, "StopSequence", 0xFC, 0},
	{ActiveSensingType, "ActiveSensing", 0xFE, 0},
	{MetaType_, "Meta", 0xFF, -1},
}

type metaSpec struct {
	kind MetaKind
	name string
}

var metaSpecs = []metaSpec{
	{SequenceNumberMeta, "SequenceNumber"},
	{TextMeta, "Text"},
	{CopyrightNoteMeta, "CopyrightNote"},
	{TrackNameMeta, "TrackName"},
	{InstrumentNameMeta, "InstrumentName"},
	{LyricMeta, "Lyric"},
	{MarkerMeta, "Marker"},
	{CuePointMeta, "CuePoint"},
	{MIDIChannelPrefixMeta, "MIDIChannelPrefix"},
	{EndOfTrackMeta, "EndOfTrack"},
	{SetTempoMeta, "SetTempo"},
	{SMPTEOffsetMeta, "SMPTEOffset"},
	{TimeSignatureMeta, "TimeSignature"},
	{KeySignatureMeta, "KeySignature"},
	{SequencerSpecificMeta, "SequencerSpecific"},
}

var (
	messageTypeNames = map[MessageType]string{}
	metaKindNames    = map[MetaKind]string{}
	messageTypeTable [256]MessageType
	messageLenTable  [32]int // indexed by MessageType, -1 = variable
	metaKindTable    [256]MetaKind
)

func init() {
	for _, s := range messageSpecs {
		messageTypeNames[s.kind] = s.name
	}
	for _, s := range metaSpecs {
		metaKindNames[s.kind] = s.name
	}

	for i := range messageTypeTable {
		messageTypeTable[i] = Unknown
	}
	for _, s := range messageSpecs {
		if s.status == 0x00 {
			continue // Unknown has no status byte of its own
		}
		if s.status < 0xF0 {
			for ch := 0; ch < 0x10; ch++ {
				messageTypeTable[int(s.status)|ch] = s.kind
			}
		} else {
			messageTypeTable[s.status] = s.kind
		}
	}

	for i := range messageLenTable {
		messageLenTable[i] = -1
	}
	for _, s := range messageSpecs {
		messageLenTable[int(s.kind)] = s.length
	}

	for i := range metaKindTable {
		metaKindTable[i] = UnknownMeta
	}
	for _, s := range metaSpecs {
		metaKindTable[int(s.kind)] = s.kind
	}
}

// classifyStatus returns the MessageType for a raw status byte.
func classifyStatus(status uint8) MessageType {
	return messageTypeTable[status]
}

// fixedLength returns the fixed payload length (excluding the status
// byte) for a MessageType, or -1 if the type has no fixed length
// (SysEx/Meta, whose length is variable, and Unknown).
func fixedLength(t MessageType) int {
	return messageLenTable[t]
}

// classifyMeta returns the MetaKind for the byte following 0xFF.
func classifyMeta(b uint8) MetaKind {
	return metaKindTable[b]
}
