package main

import "github.com/lzqlzzq/minimidi/pkg/midi"

// beatRange tracks a sliding [lowerBound, upperBound) window of ticks one
// quarter note wide, stepping forward by whole quarters until it contains
// a given absolute tick. cnt counts how many quarters it has stepped past
// the origin, which position() folds down to a 0-3 slot within the bar.
type beatRange struct {
	cnt int

	lowerBound int64
	upperBound int64
}

func newBeatRange(lowerBound, upperBound int64) *beatRange {
	return &beatRange{lowerBound: lowerBound, upperBound: upperBound}
}

func (r *beatRange) stepBy(n int) {
	r.cnt += n
	step := r.upperBound - r.lowerBound

	r.upperBound += step * int64(n)
	r.lowerBound += step * int64(n)
}

func (r *beatRange) contains(item int64) bool {
	return item >= r.lowerBound && item < r.upperBound
}

func (r *beatRange) position() int {
	return r.cnt % 4
}

// ticksPerQuarterNote derives the quarter-note tick span from a file's
// Division, covering both of pkg/midi's representations: metrical
// division already counts ticks per quarter directly, while SMPTE
// division has no quarter-note notion at all (it counts ticks per frame
// of wall-clock time), so a quarter-note bucket is meaningless for it and
// every event falls in bucket 0.
func ticksPerQuarterNote(d midi.Division) int64 {
	if d.SMPTE {
		return 0
	}
	return int64(d.TicksPerQuarter)
}

// quarterPosition returns which quarter (0-3) of a 4/4 bar msg falls into,
// given the file's division. It reads msg.Time directly rather than
// taking a bare tick count, so the bucketing is always evaluated against
// the actual message it is being recorded for.
func quarterPosition(msg midi.Message, division midi.Division) int {
	tpq := ticksPerQuarterNote(division)
	if tpq <= 0 {
		return 0
	}

	absTicks := int64(msg.Time)
	r := newBeatRange(0, tpq)

	for !r.contains(absTicks) {
		if absTicks > tpq {
			r.stepBy(int(absTicks / tpq))
		} else {
			r.stepBy(1)
		}
	}

	return r.position()
}
