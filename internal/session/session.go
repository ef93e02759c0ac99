// Package session owns the state of one list-building session: the list, the
// shared create/edit form, the floating overlay and the handoff to the summary
// view. All mutation goes through Session commands; renderers only ever see
// immutable View values.
package session

import (
	"fmt"
	"log/slog"

	"foodlist-cli/internal/form"
	"foodlist-cli/internal/handoff"
	"foodlist-cli/internal/model"
	"foodlist-cli/internal/overlay"
	"foodlist-cli/internal/store"

	"github.com/shopspring/decimal"
)

// View is a point-in-time copy of everything a renderer needs.
type View struct {
	Entries  model.Snapshot
	Mode     form.Mode
	Index    int
	Draft    form.Draft
	Floating []overlay.Token
	Total    decimal.Decimal
}

type Option func(*Session)

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

type Session struct {
	list     *store.List
	form     *form.Controller
	floating *overlay.Manager
	gateway  *handoff.Gateway
	log      *slog.Logger

	subscribers []func(View)
}

func New(nav handoff.Navigator, opts ...Option) *Session {
	s := &Session{
		gateway: handoff.NewGateway(nav),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}
	s.mount()
	return s
}

func (s *Session) mount() {
	s.list = store.NewList()
	s.form = form.New(s.list)
	s.floating = overlay.NewManager()
}

// Reset discards all state, as when the main view unmounts.
func (s *Session) Reset() {
	s.form.Close()
	s.mount()
	s.log.Debug("session reset")
	s.publish()
}

// Subscribe registers fn to receive a View after every change.
func (s *Session) Subscribe(fn func(View)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Session) View() View {
	entries := s.list.Snapshot()
	return View{
		Entries:  entries,
		Mode:     s.form.Mode(),
		Index:    s.form.Index(),
		Draft:    s.form.Draft(),
		Floating: s.floating.Tokens(),
		Total:    entries.Total(),
	}
}

func (s *Session) Snapshot() model.Snapshot { return s.list.Snapshot() }

// LastAutoCancel reports an edit that was dropped because its entry was removed.
func (s *Session) LastAutoCancel() *form.AutoCancel { return s.form.LastAutoCancel() }

func (s *Session) OpenCreate() {
	s.form.OpenCreate()
	s.log.Debug("form open", slog.String("mode", s.form.Mode().String()))
	s.publish()
}

func (s *Session) OpenEdit(i int) error {
	if err := s.form.OpenEdit(i); err != nil {
		return err
	}
	s.log.Debug("form open", slog.String("mode", "editing"), slog.Int("index", i))
	s.publish()
	return nil
}

// Toggle opens a create form when closed and cancels an open one.
func (s *Session) Toggle() {
	wasOpen := s.form.IsOpen()
	s.form.Toggle()
	if wasOpen {
		s.log.Debug("form cancel")
	}
	s.publish()
}

func (s *Session) SetName(text string) {
	s.form.SetName(text)
	s.publish()
}

func (s *Session) SetPrice(text string) {
	s.form.SetPrice(text)
	s.publish()
}

// Commit applies the open form. Validation failures leave everything as it
// was and come back as *rules.ValidationError.
func (s *Session) Commit() error {
	mode, index := s.form.Mode(), s.form.Index()
	if err := s.form.Commit(); err != nil {
		s.log.Debug("commit refused", slog.String("mode", mode.String()), slog.Any("err", err))
		return err
	}
	s.log.Info("commit", slog.String("mode", mode.String()), slog.Int("index", index), slog.Int("len", s.list.Len()))
	s.publish()
	return nil
}

// Remove deletes entry i. An open edit on i is cancelled.
func (s *Session) Remove(i int) error {
	if _, ok := s.list.At(i); !ok {
		return fmt.Errorf("remove %d: %w", i, form.ErrNoSuchEntry)
	}
	editing := s.form.Mode() == form.Editing && s.form.Index() == i
	s.list.RemoveAt(i)
	if editing {
		s.log.Warn("edit cancelled; entry removed", slog.Int("index", i))
	}
	s.log.Info("remove", slog.Int("index", i), slog.Int("len", s.list.Len()))
	s.publish()
	return nil
}

// Spawn pins a floating copy of entry i.
func (s *Session) Spawn(i int) (overlay.Token, error) {
	e, ok := s.list.At(i)
	if !ok {
		return overlay.Token{}, fmt.Errorf("spawn %d: %w", i, form.ErrNoSuchEntry)
	}
	tok := s.floating.Spawn(e)
	s.log.Debug("overlay spawn", slog.String("key", tok.Key))
	s.publish()
	return tok, nil
}

// Release drops floating token i; stale positions are ignored.
func (s *Session) Release(i int) bool {
	if !s.floating.ReleaseAt(i) {
		return false
	}
	s.log.Debug("overlay release", slog.Int("index", i))
	s.publish()
	return true
}

// Finalize hands the current list to the summary view. Floating tokens are
// not part of the payload.
func (s *Session) Finalize() error {
	snap := s.list.Snapshot()
	if err := s.gateway.Finalize(snap); err != nil {
		s.log.Debug("finalize refused", slog.Any("err", err))
		return err
	}
	s.log.Info("finalize", slog.Int("len", len(snap)), slog.String("total", snap.Total().String()))
	return nil
}

func (s *Session) publish() {
	if len(s.subscribers) == 0 {
		return
	}
	v := s.View()
	for _, fn := range s.subscribers {
		fn(v)
	}
}
