package midi

import (
	"fmt"
	"strings"
)

// messageToString implements the per-variant to_string dispatch spec.md
// §4.7 requires: a single-line description for every variant, with
// MidiFile.String() printing the header followed by each track's
// messages. No bit-level guarantees are made by this function.
func messageToString(m Message) string {
	prefix := fmt.Sprintf("time=%d | ", m.Time)
	switch m.Type() {
	case NoteOnType:
		n := NoteOn(m)
		return prefix + fmt.Sprintf("NoteOn: channel=%d pitch=%d velocity=%d", n.Channel(), n.Pitch(), n.Velocity())
	case NoteOffType:
		n := NoteOff(m)
		return prefix + fmt.Sprintf("NoteOff: channel=%d pitch=%d velocity=%d", n.Channel(), n.Pitch(), n.Velocity())
	case PolyphonicAfterTouchType:
		n := PolyphonicAfterTouch(m)
		return prefix + fmt.Sprintf("PolyphonicAfterTouch: channel=%d pitch=%d velocity=%d", n.Channel(), n.Pitch(), n.Velocity())
	case ControlChangeType:
		n := ControlChange(m)
		return prefix + fmt.Sprintf("ControlChange: channel=%d control_number=%d control_value=%d", n.Channel(), n.ControlNumber(), n.ControlValue())
	case ProgramChangeType:
		n := ProgramChange(m)
		return prefix + fmt.Sprintf("ProgramChange: channel=%d program=%d", n.Channel(), n.Program())
	case ChannelAfterTouchType:
		n := ChannelAfterTouch(m)
		return prefix + fmt.Sprintf("ChannelAfterTouch: channel=%d pressure=%d", n.Channel(), n.Pressure())
	case PitchBendType:
		n := PitchBend(m)
		return prefix + fmt.Sprintf("PitchBend: channel=%d value=%d", n.Channel(), n.PitchBendValue())
	case SongPositionPointerType:
		n := SongPositionPointer(m)
		return prefix + fmt.Sprintf("SongPositionPointer: position=%d", n.Position())
	case QuarterFrameType:
		n := QuarterFrame(m)
		return prefix + fmt.Sprintf("QuarterFrame: type=%d value=%d", n.FrameType(), n.FrameValue())
	case SysExStartType, SysExEndType:
		n := SysEx(m)
		return prefix + fmt.Sprintf("SysEx: %s", hexString(n.Data()))
	case MetaType_:
		return prefix + metaToString(Meta(m))
	default:
		return prefix + fmt.Sprintf("%s: status=0x%02X length=%d", m.Type(), m.StatusByte, m.payload.Len())
	}
}

func metaToString(meta Meta) string {
	kind := meta.MetaKindOf()
	label := fmt.Sprintf("Meta: (%s) ", kind)

	switch kind {
	case TrackNameMeta:
		v, _ := TrackName(meta).TextValue()
		return label + v
	case InstrumentNameMeta:
		v, _ := InstrumentName(meta).TextValue()
		return label + v
	case TextMeta:
		v, _ := Text(meta).TextValue()
		return label + v
	case LyricMeta:
		v, _ := Lyric(meta).TextValue()
		return label + v
	case MarkerMeta:
		v, _ := Marker(meta).TextValue()
		return label + v
	case CuePointMeta:
		v, _ := CuePoint(meta).TextValue()
		return label + v
	case CopyrightNoteMeta:
		v, _ := CopyrightNote(meta).TextValue()
		return label + v
	case TimeSignatureMeta:
		ts := TimeSignature(meta)
		return label + fmt.Sprintf("%d/%d", ts.Numerator(), ts.Denominator())
	case SetTempoMeta:
		return label + fmt.Sprintf("%d", SetTempo(meta).TempoMicrosPerQuarter())
	case KeySignatureMeta:
		name, err := KeySignature(meta).Name()
		if err != nil {
			return label + err.Error()
		}
		return label + name
	case EndOfTrackMeta:
		return label + "EndOfTrack"
	case SequenceNumberMeta:
		return label + fmt.Sprintf("%d", SequenceNumber(meta).Number())
	case SMPTEOffsetMeta:
		s := SMPTEOffset(meta)
		return label + fmt.Sprintf("%02d:%02d:%02d frame=%d subframe=%d", s.Hour(), s.Minute(), s.Second(), s.Frame(), s.Subframe())
	case MIDIChannelPrefixMeta:
		return label + fmt.Sprintf("channel=%d", MIDIChannelPrefix(meta).ChannelPrefix())
	default:
		v, err := meta.Value()
		if err != nil {
			return label + err.Error()
		}
		return label + "value=" + hexString(v)
	}
}

func hexString(data []byte) string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, b := range data {
		fmt.Fprintf(&sb, "%02x ", b)
	}
	sb.WriteString("}")
	return sb.String()
}

// String renders every message in the track, one per line.
func (t Track) String() string {
	var sb strings.Builder
	for _, m := range t.Messages {
		sb.WriteString(m.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// String renders the header followed by each track's messages.
func (f MidiFile) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "File format: %s\n", f.Header.Format)
	if f.Header.Division.SMPTE {
		tps, _ := f.Header.Division.TicksPerSecond()
		fmt.Fprintf(&sb, "Division: SMPTE, ticks per second: %d\n", tps)
	} else {
		fmt.Fprintf(&sb, "Division: metrical, ticks per quarter: %d\n", f.Header.Division.TicksPerQuarter)
	}
	sb.WriteString("\n")
	for i, t := range f.Tracks {
		fmt.Fprintf(&sb, "Track %d:\n", i)
		sb.WriteString(t.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
