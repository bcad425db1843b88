package midi

// smallBytesCap is the inline capacity of Bytes. Every fixed-length voice
// message (2 data bytes) and the vast majority of meta/SysEx payloads fit
// inside it, so the common path never touches the heap.
const smallBytesCap = 7

// Bytes is a small-buffer-optimised owning byte sequence. Payloads up to
// smallBytesCap bytes live inline in small; longer payloads spill into
// heap. This mirrors the source's ankerl::svector<uint8_t, 7> and is load
// bearing for parse throughput: it is preserved rather than replaced by a
// plain []byte.
type Bytes struct {
	small  [smallBytesCap]byte
	length int
	heap   []byte
}

// NewBytes copies data into a Bytes, inlining it when it fits.
func NewBytes(data []byte) Bytes {
	var b Bytes
	b.length = len(data)
	if len(data) <= smallBytesCap {
		copy(b.small[:], data)
		return b
	}
	b.heap = make([]byte, len(data))
	copy(b.heap, data)
	return b
}

// Len returns the number of bytes stored.
func (b *Bytes) Len() int {
	return b.length
}

// Bytes returns the stored bytes as a slice. For inline payloads this
// slice aliases the Bytes value itself and must not be retained past the
// lifetime of the Bytes (or its owning Message); for spilled payloads it
// aliases the heap-allocated backing array.
func (b *Bytes) Bytes() []byte {
	if b.length <= smallBytesCap {
		return b.small[:b.length]
	}
	return b.heap
}

// At returns the byte at index i.
func (b *Bytes) At(i int) byte {
	return b.Bytes()[i]
}
