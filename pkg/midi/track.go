package midi

import "sort"

// TrackView is a non-owning, lazy view over a track chunk's body bytes.
// It must not outlive the buffer it was constructed from.
type TrackView struct {
	data []byte
}

// NewTrackView wraps data (the track chunk's body, i.e. the bytes after
// the 8-byte "MTrk"+length header) as a TrackView.
func NewTrackView(data []byte) TrackView {
	return TrackView{data: data}
}

// Iterator returns a fresh single-pass, non-restartable iterator over the
// track's messages.
func (v TrackView) Iterator() *MessageIterator {
	return &MessageIterator{gen: newMessageGenerator(v.data)}
}

// MessageIterator is the pull-style iterator TrackView hands out. Use it
// in the bufio.Scanner idiom:
//
//	it := view.Iterator()
//	for it.Next() {
//	    msg := it.Message()
//	}
//	if err := it.Err(); err != nil { ... }
type MessageIterator struct {
	gen  *messageGenerator
	cur  Message
	err  error
	done bool
}

// Next advances the iterator and reports whether a message was produced.
// An explicit EndOfTrack meta event terminates the iterator without being
// yielded as a normal message, per spec.md §4.3/§4.4; Next returns false
// in that case with Err() == nil.
func (it *MessageIterator) Next() bool {
	if it.done || it.err != nil {
		return false
	}
	for {
		if it.gen.done() {
			it.done = true
			return false
		}
		msg, err := it.gen.next()
		if err != nil {
			it.err = err
			it.done = true
			return false
		}
		if msg.Type() == MetaType_ && Meta(msg).MetaKindOf() == EndOfTrackMeta {
			it.done = true
			return false
		}
		it.cur = msg
		return true
	}
}

// Message returns the message produced by the most recent call to Next.
func (it *MessageIterator) Message() Message {
	return it.cur
}

// Err returns the first error encountered, if any.
func (it *MessageIterator) Err() error {
	return it.err
}

// Track is an owning, materialised sequence of messages.
type Track struct {
	Messages []Message
}

// NewTrackFromView drains view's iterator into an owning Track, reserving
// size/3 + 100 slots as a heuristic lower bound on message count per
// spec.md §4.4. Errors from the generator propagate; materialising does
// not itself revalidate beyond what the generator already checks.
func NewTrackFromView(view TrackView) (Track, error) {
	t := Track{Messages: make([]Message, 0, len(view.data)/3+100)}
	it := view.Iterator()
	for it.Next() {
		t.Messages = append(t.Messages, it.Message())
	}
	if err := it.Err(); err != nil {
		return Track{}, err
	}
	return t, nil
}

// isSorted reports whether Messages is already non-decreasing by Time.
func (t Track) isSorted() bool {
	for i := 1; i < len(t.Messages); i++ {
		if t.Messages[i].Time < t.Messages[i-1].Time {
			return false
		}
	}
	return true
}

// Sort returns a new Track whose messages are stably sorted by Time, with
// any existing EndOfTrack messages filtered out so the encoder can
// reinsert exactly one. Stability matters: the source relies on insertion
// order to disambiguate simultaneous events (e.g. a program change before
// a note-on at the same tick). The sort is skipped entirely when the
// track is already ordered.
func (t Track) Sort() Track {
	filtered := make([]Message, 0, len(t.Messages))
	for _, m := range t.Messages {
		if m.Type() == MetaType_ && Meta(m).MetaKindOf() == EndOfTrackMeta {
			continue
		}
		filtered = append(filtered, m)
	}

	out := Track{Messages: filtered}
	if out.isSorted() {
		return out
	}

	sort.SliceStable(out.Messages, func(i, j int) bool {
		return out.Messages[i].Time < out.Messages[j].Time
	})
	return out
}
