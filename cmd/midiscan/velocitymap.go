package main

import (
	"context"

	"github.com/lzqlzzq/minimidi/pkg/midi"
	"go.uber.org/zap"
)

type velocitySet map[uint8]bool
type positionMap map[int]velocitySet
type directionMap map[string]positionMap

// noteMap is pitch -> direction ("on"/"off") -> quarter position (0-3) ->
// set of velocities observed at that position across a corpus of files.
type noteMap map[uint8]directionMap

func (m noteMap) record(pitch uint8, direction string, position int, velocity uint8) {
	d, ok := m[pitch]
	if !ok {
		d = make(directionMap)
		m[pitch] = d
	}
	p, ok := d[direction]
	if !ok {
		p = make(positionMap)
		d[direction] = p
	}
	v, ok := p[position]
	if !ok {
		v = make(velocitySet)
		p[position] = v
	}
	v[velocity] = true
}

// flatten collapses the quarter-position dimension into the pitch ->
// direction -> []int shape midihumanize's database expects.
func (m noteMap) flatten() velocityMap {
	out := make(velocityMap)
	for pitch, directions := range m {
		out[pitch] = make(map[string][]int)
		for direction, positions := range directions {
			seen := make(velocitySet)
			for _, velocities := range positions {
				for v := range velocities {
					seen[v] = true
				}
			}
			values := make([]int, 0, len(seen))
			for v := range seen {
				values = append(values, int(v))
			}
			out[pitch][direction] = values
		}
	}
	return out
}

type velocityMap map[uint8]map[string][]int

// buildNoteMap drains the decode pipeline, recording every NoteOn/NoteOff
// velocity it sees. It returns the first decode error encountered, if any.
func buildNoteMap(parent context.Context, paths <-chan string, cntRoutines int) (noteMap, error) {
	log := scanLog.Named("buildNoteMap")
	ctx, cancel := context.WithCancel(parent)
	results, done := decodeWorker(ctx, paths, cntRoutines)

	defer func() {
		log.Debug("cancel")
		cancel()
		<-done // wait decodeWorker closed
	}()

	m := make(noteMap)

	for res := range results {
		if res.err != nil {
			return nil, res.err
		}

		log.Debug("result", zap.String("name", res.name), zap.Int("tracks", len(res.file.Tracks)))

		for _, track := range res.file.Tracks {
			for _, msg := range track.Messages {
				switch msg.Type() {
				case midi.NoteOnType:
					n := midi.NoteOn(msg)
					pos := quarterPosition(msg, res.file.Header.Division)
					m.record(n.Pitch(), "on", pos, n.Velocity())
				case midi.NoteOffType:
					n := midi.NoteOff(msg)
					pos := quarterPosition(msg, res.file.Header.Division)
					m.record(n.Pitch(), "off", pos, n.Velocity())
				}
			}
		}
	}

	return m, nil
}
