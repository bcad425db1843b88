package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestTrackNameRoundTrip(t *testing.T) {
	tn := NewTrackName(0, "Piano", nil)
	v, err := tn.TextValue()
	require.NoError(t, err)
	assert.Equal(t, "Piano", v)
}

func TestLyricRoundTrip(t *testing.T) {
	l := NewLyric(120, "la la la", nil)
	v, err := l.TextValue()
	require.NoError(t, err)
	assert.Equal(t, "la la la", v)
}

func TestTrackNameWithLatin1Transformer(t *testing.T) {
	// "café" UTF-8-encoded has a two-byte 0xC3 0xA9 for é; re-encoded through
	// ISO-8859-1 it collapses to the single byte 0xE9, exercising transform
	// for real rather than leaving it permanently nil.
	tn := NewTrackName(0, "café", charmap.ISO8859_1.NewEncoder())
	raw, err := Meta(tn).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, raw)

	unconverted := NewTrackName(0, "café", nil)
	rawUnconverted, err := Meta(unconverted).Value()
	require.NoError(t, err)
	assert.NotEqual(t, raw, rawUnconverted)
}

func TestSequenceNumberAccessor(t *testing.T) {
	sn := NewSequenceNumber(0, 42)
	assert.Equal(t, uint16(42), sn.Number())
}

func TestSequencerSpecificRawValue(t *testing.T) {
	ss := NewSequencerSpecific(0, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	v, err := ss.RawValue()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, v)
}
