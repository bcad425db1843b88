package midi

// messageGenerator is the stateful pull-parser that consumes a track
// chunk's body and yields one message per step while maintaining running
// status, per spec.md §4.3. It walks a borrowed byte slice rather than an
// io.ReadSeeker (unlike the teacher's original decoder), so the track body
// itself is never copied. Each yielded Message does not borrow from that
// slice: newMessage copies its data bytes into an owning Bytes.
type messageGenerator struct {
	buf          []byte
	cursor       int
	tickOffset   uint32
	prevStatus   uint8
	prevEventLen int
	foundEOT     bool
}

func newMessageGenerator(buf []byte) *messageGenerator {
	return &messageGenerator{buf: buf}
}

// done reports whether the generator has nothing left to yield, either
// because the cursor reached the end of the buffer or because an explicit
// EndOfTrack meta was found.
func (g *messageGenerator) done() bool {
	return g.foundEOT || g.cursor >= len(g.buf)
}

// next decodes and returns the next message, advancing internal state.
// Callers must check done() before calling next().
func (g *messageGenerator) next() (Message, error) {
	if g.cursor > len(g.buf) {
		return Message{}, newUnexpectedEofError("cursor beyond end of track buffer", g.cursor-len(g.buf), 0)
	}

	delta, n := ReadVLQ(g.buf[g.cursor:])
	g.cursor += n
	g.tickOffset += delta

	if g.cursor >= len(g.buf) {
		return Message{}, newUnexpectedEofError("track ended immediately after delta-time", g.cursor-len(g.buf), 0)
	}

	status := g.buf[g.cursor]

	switch {
	case status == 0xF0 || status == 0xF7:
		return g.sysexMessage(status)
	case status == 0xFF:
		return g.metaMessage()
	case status < 0x80:
		return g.runningStatusMessage()
	default:
		return g.commonMessage(status)
	}
}

func (g *messageGenerator) runningStatusMessage() (Message, error) {
	if g.prevEventLen == 0 {
		return Message{}, newCorruptedError("running status byte with no preceding status")
	}
	need := g.prevEventLen - 1
	if g.cursor+need > len(g.buf) {
		return Message{}, newUnexpectedEofError("running status event runs past end of track", g.cursor+need-len(g.buf), need)
	}
	data := g.buf[g.cursor : g.cursor+need]
	g.cursor += need
	return newMessage(g.tickOffset, g.prevStatus, data), nil
}

// sysexMessage decodes a SysEx-shaped event: a status byte (0xF0 to start
// one, or 0xF7 to continue one per spec.md §6), a VLQ length, then that
// many payload bytes. status is passed in rather than re-read from the
// buffer so the same decoding path serves both status bytes.
func (g *messageGenerator) sysexMessage(status uint8) (Message, error) {
	start := g.cursor
	g.cursor++ // past status byte

	if g.cursor > len(g.buf) {
		return Message{}, newUnexpectedEofError("sysex event truncated before length", g.cursor-len(g.buf), 0)
	}
	length, n := ReadVLQ(g.buf[g.cursor:])
	g.cursor += n

	eventLen := (g.cursor - start) + int(length)
	if start+eventLen > len(g.buf) {
		return Message{}, newUnexpectedEofError("sysex event runs past end of track", start+eventLen-len(g.buf), eventLen)
	}
	g.prevStatus = status
	g.prevEventLen = eventLen

	g.cursor = start + eventLen
	// payload begins right after the status byte, so it includes the VLQ
	// length prefix itself, per the message model in spec.md §3.
	data := g.buf[start+1 : g.cursor]
	return newMessage(g.tickOffset, status, data), nil
}

func (g *messageGenerator) metaMessage() (Message, error) {
	start := g.cursor
	status := g.buf[start]
	g.cursor += 2 // past status byte and meta-type byte

	if g.cursor > len(g.buf) {
		return Message{}, newUnexpectedEofError("meta event truncated before length", g.cursor-len(g.buf), 0)
	}
	length, n := ReadVLQ(g.buf[g.cursor:])
	g.cursor += n

	eventLen := (g.cursor - start) + int(length)
	if start+eventLen > len(g.buf) {
		return Message{}, newUnexpectedEofError("meta event runs past end of track", start+eventLen-len(g.buf), eventLen)
	}

	metaTypeByte := g.buf[start+1]
	// the message data does not include the status byte, but the
	// meta-type byte is included.
	data := g.buf[start+1 : start+eventLen]

	if MetaKind(metaTypeByte) == EndOfTrackMeta {
		g.foundEOT = true
		g.cursor = len(g.buf)
	} else {
		g.cursor = start + eventLen
	}
	// meta messages never affect running status.
	return newMessage(g.tickOffset, status, data), nil
}

func (g *messageGenerator) commonMessage(status uint8) (Message, error) {
	kind := classifyStatus(status)
	length := fixedLength(kind)
	if length < 0 {
		// spec.md §3: Unknown classification alone must not abort parsing,
		// but only when a length can still be determined. A reserved/
		// undefined status byte (e.g. 0xF4, 0xF5, 0xF9, 0xFD) that isn't
		// SysEx/Meta and has no messageSpecs entry has no bound at all, so
		// parsing cannot safely continue past it.
		return Message{}, newCorruptedError("undecodable status 0x%02X has no determinable length", status)
	}
	if g.cursor+1+length > len(g.buf) {
		return Message{}, newUnexpectedEofError("midi event runs past end of track", g.cursor+1+length-len(g.buf), length)
	}
	g.prevStatus = status
	g.prevEventLen = length + 1

	data := g.buf[g.cursor+1 : g.cursor+1+length]
	g.cursor += 1 + length
	return newMessage(g.tickOffset, status, data), nil
}
