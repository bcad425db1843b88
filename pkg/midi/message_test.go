package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteOnAccessors(t *testing.T) {
	n := NewNoteOn(10, 3, 60, 100)
	assert.Equal(t, uint32(10), Message(n).Time)
	assert.Equal(t, uint8(3), n.Channel())
	assert.Equal(t, uint8(60), n.Pitch())
	assert.Equal(t, uint8(100), n.Velocity())
	assert.Equal(t, NoteOnType, Message(n).Type())
}

func TestPitchBendRoundTrip(t *testing.T) {
	cases := []int16{minPitchBend, -1, 0, 1, maxPitchBend}
	for _, v := range cases {
		pb := NewPitchBend(0, 5, v)
		assert.Equal(t, v, pb.PitchBendValue())
		assert.Equal(t, uint8(5), pb.Channel())
	}
}

func TestSetTempoAccessor(t *testing.T) {
	// FF 51 03 07 A1 20 -> tempo_us_per_quarter == 500000 (120 BPM)
	data := []byte{0x51, 0x03, 0x07, 0xA1, 0x20}
	m := newMessage(0, 0xFF, data)
	tempo := SetTempo(Message(m))
	assert.Equal(t, uint32(500000), tempo.TempoMicrosPerQuarter())
}

func TestKeySignatureName(t *testing.T) {
	ks := NewKeySignature(0, 0, 0) // C major
	name, err := ks.Name()
	assert.NoError(t, err)
	assert.Equal(t, "C", name)

	minor := NewKeySignature(0, 0, 1) // C minor
	name, err = minor.Name()
	assert.NoError(t, err)
	assert.Equal(t, "C", name)

	bad := NewKeySignature(0, 0, 2)
	_, err = bad.Name()
	assert.Error(t, err)
}

func TestTimeSignatureLog2Floor(t *testing.T) {
	ts := NewTimeSignature(0, 4, 4)
	assert.Equal(t, uint8(4), ts.Numerator())
	assert.Equal(t, uint8(4), ts.Denominator())

	ts8 := NewTimeSignature(0, 6, 8)
	assert.Equal(t, uint8(8), ts8.Denominator())
}

func TestSysExConstructorAndData(t *testing.T) {
	sx := NewSysEx(0, []byte{0x7E, 0x7F, 0x06, 0x01})
	data := sx.Data()
	assert.Equal(t, []byte{0x7E, 0x7F, 0x06, 0x01, 0xF7}, data)
}

func TestSysExContinuationConstructorAndData(t *testing.T) {
	cont := NewSysExContinuation(0, []byte{0x01, 0x02, 0x03})
	assert.Equal(t, uint8(0xF7), Message(cont).StatusByte)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, cont.Data())
	assert.Equal(t, SysExEndType, Message(cont).Type())
}

func TestMetaValueOutOfRange(t *testing.T) {
	truncated := newMessage(0, 0xFF, []byte{0x01, 0x05, 'h', 'i'})
	meta := Meta(truncated)
	_, err := meta.Value()
	assert.Error(t, err)

	var midiErr *Error
	assert.ErrorAs(t, err, &midiErr)
	assert.Equal(t, ErrOutOfRange, midiErr.Kind)
}
