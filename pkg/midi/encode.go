package midi

// Bytes serialises a single track back to its MTrk chunk bytes: stable
// sort by time (dropping any existing EndOfTrack), running-status
// compression, a synthetic EndOfTrack, and the chunk length patched in
// after the fact.
func (t Track) Bytes() []byte {
	sorted := t.Sort()

	approxLen := 8
	for _, m := range sorted.Messages {
		approxLen += m.payload.Len() + 5
	}
	buf := make([]byte, 8, approxLen+16)
	copy(buf[0:4], "MTrk")

	var prevTime uint32
	var prevStatus uint8

	for _, m := range sorted.Messages {
		buf = WriteVLQ(buf, m.Time-prevTime)
		prevTime = m.Time

		// Running-status compression is never applied to Meta, SysExStart,
		// or SysExEnd: those always re-emit their status byte.
		if m.StatusByte == 0xFF || m.StatusByte == 0xF0 || m.StatusByte == 0xF7 || m.StatusByte != prevStatus {
			buf = append(buf, m.StatusByte)
		}
		buf = append(buf, m.payload.Bytes()...)
		prevStatus = m.StatusByte
	}

	// Synthetic EndOfTrack: delta VLQ(0), 0xFF, 0x2F, 0x00.
	buf = append(buf, 0x00, 0xFF, 0x2F, 0x00)

	WriteMSB(buf[4:8], uint64(len(buf)-8), 4)
	return buf
}

// Bytes serialises the whole file back to MThd + one MTrk per track.
func (f MidiFile) Bytes() []byte {
	trackBytes := make([][]byte, len(f.Tracks))
	total := headerLength
	for i, t := range f.Tracks {
		trackBytes[i] = t.Bytes()
		total += len(trackBytes[i])
	}

	buf := make([]byte, headerLength, total)
	encodeHeader(buf[:headerLength], f.Header, len(f.Tracks))
	for _, tb := range trackBytes {
		buf = append(buf, tb...)
	}
	return buf
}

// String renders a single-line human-readable form of a message, per
// spec.md §4.7's minimal diagnostic contract. It is not part of the wire
// contract.
func (m Message) String() string {
	return messageToString(m)
}
