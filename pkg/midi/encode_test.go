package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	f := MidiFile{
		Header: Header{Format: MultiTrack, Division: Division{TicksPerQuarter: 96}},
		Tracks: []Track{
			{Messages: []Message{
				Message(NewTrackName(0, "melody", nil)),
				Message(NewNoteOn(0, 0, 60, 100)),
				Message(NewNoteOff(20, 0, 60, 0)),
				Message(NewSetTempo(0, 500000)),
			}},
		},
	}

	encoded := f.Bytes()
	decoded, err := NewMidiFile(encoded)
	require.NoError(t, err)

	require.Len(t, decoded.Tracks, 1)
	require.Len(t, decoded.Tracks[0].Messages, 4)

	reencoded := decoded.Bytes()
	assert.Equal(t, encoded, reencoded)
}

func TestEncodeRunningStatusCompression(t *testing.T) {
	track := Track{Messages: []Message{
		Message(NewNoteOn(0, 0, 60, 100)),
		Message(NewNoteOn(10, 0, 61, 100)),
	}}
	encoded := track.Bytes()

	// second NoteOn shares status with the first, so its status byte is
	// omitted: 00 90 3C 64 | 0A 3D 64 | 00 FF 2F 00
	expected := []byte{
		'M', 'T', 'r', 'k', 0x00, 0x00, 0x00, 0x0B,
		0x00, 0x90, 0x3C, 0x64,
		0x0A, 0x3D, 0x64,
		0x00, 0xFF, 0x2F, 0x00,
	}
	assert.Equal(t, expected, encoded)
}

func TestEncodeNeverCompressesSysExOrMeta(t *testing.T) {
	track := Track{Messages: []Message{
		Message(NewSysEx(0, []byte{0x01})),
		Message(NewSysEx(0, []byte{0x02})),
	}}
	encoded := track.Bytes()

	// both SysEx status bytes (0xF0) must appear even though identical.
	count := 0
	for _, b := range encoded {
		if b == 0xF0 {
			count++
		}
	}
	assert.Equal(t, 2, count)
}
