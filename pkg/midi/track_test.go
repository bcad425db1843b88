package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackSortStability(t *testing.T) {
	// Two messages share time=0; their relative order must be preserved.
	a := Message(NewProgramChange(0, 0, 5))
	b := Message(NewNoteOn(0, 0, 60, 100))
	c := Message(NewNoteOn(5, 0, 61, 100))

	track := Track{Messages: []Message{c, a, b}}
	sorted := track.Sort()

	assert.Equal(t, []Message{a, b, c}, sorted.Messages)
}

func TestTrackSortDropsEndOfTrack(t *testing.T) {
	a := Message(NewNoteOn(0, 0, 60, 100))
	eot := Message(NewEndOfTrack(10))

	track := Track{Messages: []Message{a, eot}}
	sorted := track.Sort()
	assert.Equal(t, []Message{a}, sorted.Messages)
}

func TestTrackIsSortedShortCircuit(t *testing.T) {
	track := Track{Messages: []Message{
		Message(NewNoteOn(0, 0, 1, 1)),
		Message(NewNoteOn(1, 0, 2, 2)),
	}}
	assert.True(t, track.isSorted())

	unsorted := Track{Messages: []Message{
		Message(NewNoteOn(5, 0, 1, 1)),
		Message(NewNoteOn(1, 0, 2, 2)),
	}}
	assert.False(t, unsorted.isSorted())
}
