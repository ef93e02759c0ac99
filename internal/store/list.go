package store

import (
	"fmt"

	"foodlist-cli/internal/model"
)

type ChangeOp int

const (
	OpAppended ChangeOp = iota
	OpReplaced
	OpRemoved
)

func (op ChangeOp) String() string {
	switch op {
	case OpAppended:
		return "appended"
	case OpReplaced:
		return "replaced"
	case OpRemoved:
		return "removed"
	default:
		return fmt.Sprintf("ChangeOp(%d)", int(op))
	}
}

// Change describes one mutation. Index is the affected position (for removals,
// the position the entry occupied before it was removed). Len is the length
// after the mutation.
type Change struct {
	Op    ChangeOp
	Index int
	Len   int
}

// List is the ordered collection of entries for one session. Insertion order
// is display order and positions are the only identity entries have.
//
// List is not safe for concurrent use; callers serialize access through the
// UI event loop.
type List struct {
	entries []model.Entry

	nextSubID   int
	subscribers []subscriber
}

type subscriber struct {
	id int
	fn func(Change)
}

func NewList() *List {
	return &List{}
}

func (l *List) Len() int { return len(l.entries) }

// At returns the entry at i and whether i was in range.
func (l *List) At(i int) (model.Entry, bool) {
	if i < 0 || i >= len(l.entries) {
		return model.Entry{}, false
	}
	return l.entries[i], true
}

// Snapshot returns a copy of the current entries.
func (l *List) Snapshot() model.Snapshot {
	return model.Snapshot(l.entries).Clone()
}

// Append adds e at the end. e must already be validated.
func (l *List) Append(e model.Entry) {
	l.entries = append(l.entries, e)
	l.notify(Change{Op: OpAppended, Index: len(l.entries) - 1, Len: len(l.entries)})
}

// ReplaceAt overwrites position i. An out-of-range index is a caller bug and
// panics.
func (l *List) ReplaceAt(i int, e model.Entry) {
	l.mustIndex("ReplaceAt", i)
	l.entries[i] = e
	l.notify(Change{Op: OpReplaced, Index: i, Len: len(l.entries)})
}

// RemoveAt deletes position i; later entries shift down by one. An
// out-of-range index panics.
func (l *List) RemoveAt(i int) {
	l.mustIndex("RemoveAt", i)
	l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
	l.notify(Change{Op: OpRemoved, Index: i, Len: len(l.entries)})
}

// Subscribe registers fn to run synchronously after every mutation, in
// subscription order. The returned func unsubscribes.
func (l *List) Subscribe(fn func(Change)) (unsubscribe func()) {
	l.nextSubID++
	id := l.nextSubID
	l.subscribers = append(l.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range l.subscribers {
			if s.id == id {
				l.subscribers = append(l.subscribers[:i:i], l.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (l *List) notify(c Change) {
	// Copy so a subscriber may unsubscribe while being notified.
	subs := append([]subscriber(nil), l.subscribers...)
	for _, s := range subs {
		s.fn(c)
	}
}

func (l *List) mustIndex(op string, i int) {
	if i < 0 || i >= len(l.entries) {
		panic(fmt.Sprintf("store: %s index %d out of range [0,%d)", op, i, len(l.entries)))
	}
}
