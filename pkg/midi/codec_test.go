package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVLQRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 0x3F, 0x7F, 0x80, 0x3FFF, 0x4000, 0x1FFFFF, 0x200000, 0x0FFFFFFF}
	for _, v := range values {
		buf := WriteVLQ(nil, v)
		got, n := ReadVLQ(buf)
		assert.Equal(t, v, got)
		assert.Equal(t, len(buf), n)
	}
}

func TestVLQSize(t *testing.T) {
	assert.Equal(t, 1, VLQSize(0))
	assert.Equal(t, 1, VLQSize(0x7F))
	assert.Equal(t, 2, VLQSize(0x80))
	assert.Equal(t, 2, VLQSize(0x3FFF))
	assert.Equal(t, 3, VLQSize(0x4000))
	assert.Equal(t, 3, VLQSize(0x1FFFFF))
	assert.Equal(t, 4, VLQSize(0x200000))
}

func TestMSBRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	WriteMSB(buf, 0x01020304, 4)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
	assert.Equal(t, uint64(0x01020304), ReadMSB(buf, 4))

	buf2 := make([]byte, 2)
	WriteMSB(buf2, 480, 2)
	assert.Equal(t, uint64(480), ReadMSB(buf2, 2))
}

func TestChunkIDEqual(t *testing.T) {
	require.True(t, chunkIDEqual([]byte("MThd\x00\x00\x00\x06"), "MThd"))
	require.False(t, chunkIDEqual([]byte("XYZq"), "MThd"))
	require.False(t, chunkIDEqual([]byte("MT"), "MThd"))
}
