// Package form implements the shared create/edit form: a single draft buffer
// plus a Closed / Creating / Editing(index) state machine. Commits go through
// the rules package and land in a store.List.
package form

import (
	"errors"
	"fmt"

	"foodlist-cli/internal/rules"
	"foodlist-cli/internal/store"
)

type Mode int

const (
	Closed Mode = iota
	Creating
	Editing
)

func (m Mode) String() string {
	switch m {
	case Closed:
		return "closed"
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

var (
	ErrNotOpen     = errors.New("form is not open")
	ErrNoSuchEntry = errors.New("no entry at that position")
)

// Draft is raw, unvalidated input.
type Draft struct {
	NameText  string
	PriceText string
}

// AutoCancel records why an open edit was dropped without a commit.
type AutoCancel struct {
	Index int
	Draft Draft
}

type Controller struct {
	list *store.List

	mode  Mode
	index int
	draft Draft

	lastAutoCancel *AutoCancel
	unsubscribe    func()
}

// New binds a controller to list. The controller watches list so that an
// open edit keeps pointing at the entry it was opened on.
func New(list *store.List) *Controller {
	c := &Controller{list: list, index: -1}
	c.unsubscribe = list.Subscribe(c.onListChange)
	return c
}

// Close detaches the controller from its list.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *Controller) Mode() Mode   { return c.mode }
func (c *Controller) Draft() Draft { return c.draft }
func (c *Controller) IsOpen() bool { return c.mode != Closed }

// Index is the position being edited, or -1 unless the mode is Editing.
func (c *Controller) Index() int {
	if c.mode != Editing {
		return -1
	}
	return c.index
}

// LastAutoCancel reports the most recent edit that was dropped because its
// entry was removed, or nil.
func (c *Controller) LastAutoCancel() *AutoCancel { return c.lastAutoCancel }

// OpenCreate opens an empty form. It does nothing if a form is already open.
func (c *Controller) OpenCreate() {
	if c.mode != Closed {
		return
	}
	c.mode = Creating
	c.index = -1
	c.draft = Draft{}
}

// OpenEdit opens the form on entry i, pre-filled with its name and price text.
func (c *Controller) OpenEdit(i int) error {
	e, ok := c.list.At(i)
	if !ok {
		return fmt.Errorf("edit %d: %w", i, ErrNoSuchEntry)
	}
	c.mode = Editing
	c.index = i
	c.draft = Draft{NameText: e.Name, PriceText: e.Price.String()}
	c.lastAutoCancel = nil
	return nil
}

// Toggle opens a create form when closed and cancels otherwise. Cancelling
// discards the draft and never touches the list.
func (c *Controller) Toggle() {
	if c.mode == Closed {
		c.OpenCreate()
		return
	}
	c.reset()
}

func (c *Controller) SetName(text string) {
	if c.mode == Closed {
		return
	}
	c.draft.NameText = text
}

func (c *Controller) SetPrice(text string) {
	if c.mode == Closed {
		return
	}
	c.draft.PriceText = text
}

// Commit validates the draft and applies it. On a validation failure the form
// stays open with its draft intact and the *rules.ValidationError is returned.
func (c *Controller) Commit() error {
	if c.mode == Closed {
		return ErrNotOpen
	}
	e, err := rules.ParseEntry(c.draft.NameText, c.draft.PriceText)
	if err != nil {
		return err
	}
	mode, index := c.mode, c.index
	c.reset()
	switch mode {
	case Creating:
		c.list.Append(e)
	case Editing:
		c.list.ReplaceAt(index, e)
	}
	return nil
}

func (c *Controller) reset() {
	c.mode = Closed
	c.index = -1
	c.draft = Draft{}
}

func (c *Controller) onListChange(ch store.Change) {
	if c.mode != Editing || ch.Op != store.OpRemoved {
		return
	}
	switch {
	case ch.Index == c.index:
		c.lastAutoCancel = &AutoCancel{Index: c.index, Draft: c.draft}
		c.reset()
	case ch.Index < c.index:
		c.index--
	}
}
