package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorSingleNoteOn(t *testing.T) {
	// track body: delta=0, NoteOn ch0 pitch60 vel100, then EOT
	body := []byte{0x00, 0x90, 0x3C, 0x64, 0x00, 0xFF, 0x2F, 0x00}
	track, err := NewTrackFromView(NewTrackView(body))
	require.NoError(t, err)
	require.Len(t, track.Messages, 1)

	n := NoteOn(track.Messages[0])
	assert.Equal(t, uint32(0), Message(n).Time)
	assert.Equal(t, uint8(0), n.Channel())
	assert.Equal(t, uint8(60), n.Pitch())
	assert.Equal(t, uint8(100), n.Velocity())
}

func TestGeneratorRunningStatus(t *testing.T) {
	// 00 90 3C 64  10 3C 00  20 40 64, then EOT
	body := []byte{
		0x00, 0x90, 0x3C, 0x64,
		0x10, 0x3C, 0x00,
		0x20, 0x40, 0x64,
		0x00, 0xFF, 0x2F, 0x00,
	}
	track, err := NewTrackFromView(NewTrackView(body))
	require.NoError(t, err)
	require.Len(t, track.Messages, 3)

	want := []struct {
		time uint32
		pitch, vel uint8
	}{
		{0, 0x3C, 0x64},
		{16, 0x3C, 0x00},
		{48, 0x40, 0x64},
	}
	for i, w := range want {
		n := NoteOn(track.Messages[i])
		assert.Equal(t, w.time, Message(n).Time)
		assert.Equal(t, w.pitch, n.Pitch())
		assert.Equal(t, w.vel, n.Velocity())
	}
}

func TestGeneratorRunningStatusWithNoPriorStatus(t *testing.T) {
	body := []byte{0x00, 0x3C, 0x64}
	track, err := NewTrackFromView(NewTrackView(body))
	require.Error(t, err)
	assert.Equal(t, Track{}, track)

	var midiErr *Error
	require.ErrorAs(t, err, &midiErr)
	assert.Equal(t, ErrCorrupted, midiErr.Kind)
}

func TestGeneratorSysExRoundTrip(t *testing.T) {
	body := []byte{0x00, 0xF0, 0x05, 0x7E, 0x7F, 0x06, 0x01, 0xF7, 0x00, 0xFF, 0x2F, 0x00}
	track, err := NewTrackFromView(NewTrackView(body))
	require.NoError(t, err)
	require.Len(t, track.Messages, 1)

	sx := SysEx(track.Messages[0])
	assert.Equal(t, []byte{0x7E, 0x7F, 0x06, 0x01, 0xF7}, sx.Data())

	encoded := track.Bytes()
	// the SysEx event bytes themselves should round-trip byte-for-byte
	// within the encoded track body (status + VLQ length + N bytes).
	assert.Contains(t, string(encoded), string([]byte{0xF0, 0x05, 0x7E, 0x7F, 0x06, 0x01, 0xF7}))
}

func TestGeneratorSysExContinuationRoundTrip(t *testing.T) {
	// a standalone 0xF7 packet (not trailing inside an 0xF0 SysEx's
	// payload): status 0xF7, VLQ length 3, then 3 data bytes.
	body := []byte{0x00, 0xF7, 0x03, 0x01, 0x02, 0x03, 0x00, 0xFF, 0x2F, 0x00}
	track, err := NewTrackFromView(NewTrackView(body))
	require.NoError(t, err)
	require.Len(t, track.Messages, 1)

	assert.Equal(t, SysExEndType, track.Messages[0].Type())

	cont := SysExContinuation(track.Messages[0])
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, cont.Data())

	encoded := track.Bytes()
	assert.Contains(t, string(encoded), string([]byte{0xF7, 0x03, 0x01, 0x02, 0x03}))
}

func TestGeneratorReservedStatusAborts(t *testing.T) {
	// 0xF4 is reserved/undefined: not SysEx, not Meta, not a voice message,
	// and absent from messageSpecs, so its length can't be determined.
	body := []byte{0x00, 0xF4, 0x00, 0xFF, 0x2F, 0x00}
	track, err := NewTrackFromView(NewTrackView(body))
	require.Error(t, err)
	assert.Equal(t, Track{}, track)

	var midiErr *Error
	require.ErrorAs(t, err, &midiErr)
	assert.Equal(t, ErrCorrupted, midiErr.Kind)
}

func TestGeneratorUnexpectedEof(t *testing.T) {
	body := []byte{0x00, 0x90, 0x3C} // missing velocity byte
	_, err := NewTrackFromView(NewTrackView(body))
	require.Error(t, err)

	var midiErr *Error
	require.ErrorAs(t, err, &midiErr)
	assert.Equal(t, ErrUnexpectedEof, midiErr.Kind)
}
