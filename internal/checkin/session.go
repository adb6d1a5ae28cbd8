package checkin

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"mealdesk/internal/model"
)

type State int

const (
	StateIdle State = iota
	StateSearching
	StateResultsShown
	StateGuestSelected
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateResultsShown:
		return "results"
	case StateGuestSelected:
		return "selected"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

var (
	ErrNoSelection     = errors.New("no guest selected")
	ErrInvalidQuantity = errors.New("quantity must be 1 or 2")
	ErrBusy            = errors.New("submission already in flight")
)

// historyLimit bounds the locally held recent-entries list.
const historyLimit = 10

type HistoryEntry struct {
	Guest    model.Guest
	Quantity int
	At       time.Time
}

type Options struct {
	Debounce     time.Duration // delay between typing and the search request
	RefreshEvery time.Duration // running-total polling interval
}

// Session is a single desk operator's check-in flow. Text input is
// debounced into searches; only the most recently issued search may apply
// its results (older in-flight responses are discarded by sequence
// number, not by aborting the request). Successful submissions bump the
// displayed total optimistically; the periodic refresh reconciles drift
// from other desks.
type Session struct {
	api  API
	opts Options

	mu       sync.Mutex
	state    State
	query    string
	seq      uint64
	results  []model.Guest
	selected *model.Guest
	history  []HistoryEntry
	total    int
	lastErr  error
	timer    *time.Timer

	onChange func()

	ctx    context.Context
	cancel context.CancelFunc
}

func NewSession(api API, opts Options) *Session {
	if opts.Debounce <= 0 {
		opts.Debounce = 300 * time.Millisecond
	}
	if opts.RefreshEvery <= 0 {
		opts.RefreshEvery = 30 * time.Second
	}
	return &Session{api: api, opts: opts, ctx: context.Background()}
}

// OnChange registers a callback invoked after every state change, outside
// the session lock. The terminal client uses it to redraw.
func (s *Session) OnChange(fn func()) { s.onChange = fn }

// Start loads the running total and begins the periodic refresh.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	done := s.ctx.Done()
	s.mu.Unlock()
	go func() {
		s.RefreshTotal()
		ticker := time.NewTicker(s.opts.RefreshEvery)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.RefreshTotal()
			}
		}
	}()
}

func (s *Session) Close() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

// Input records the current search text. Queries shorter than two
// characters clear the result list locally; anything longer schedules a
// search after the debounce delay, superseding any pending one.
func (s *Session) Input(text string) {
	s.mu.Lock()
	s.query = text
	trimmed := strings.TrimSpace(text)
	if s.timer != nil {
		s.timer.Stop()
	}
	if utf8.RuneCountInString(trimmed) < 2 {
		s.seq++ // drop any in-flight search result
		s.results = nil
		if s.selected == nil {
			s.state = StateIdle
		}
		s.mu.Unlock()
		s.notify()
		return
	}
	s.timer = time.AfterFunc(s.opts.Debounce, func() { s.search(trimmed) })
	s.mu.Unlock()
	s.notify()
}

func (s *Session) search(query string) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	if s.selected == nil {
		s.state = StateSearching
	}
	ctx := s.ctx
	s.mu.Unlock()
	s.notify()

	guests, err := s.api.SearchGuests(ctx, query)

	s.mu.Lock()
	if seq != s.seq {
		// a newer query superseded this one
		s.mu.Unlock()
		return
	}
	if err != nil {
		// search degrades silently to an empty list
		guests = []model.Guest{}
	}
	s.results = guests
	if s.selected == nil {
		s.state = StateResultsShown
	}
	s.mu.Unlock()
	s.notify()
}

// Select picks a guest from the current results.
func (s *Session) Select(index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.results) {
		s.mu.Unlock()
		return errors.New("no such result")
	}
	g := s.results[index]
	s.selected = &g
	s.state = StateGuestSelected
	s.lastErr = nil
	s.mu.Unlock()
	s.notify()
	return nil
}

// Cancel drops the current selection and search without any server-side
// effect.
func (s *Session) Cancel() {
	s.mu.Lock()
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
	}
	s.selected = nil
	s.results = nil
	s.query = ""
	s.lastErr = nil
	s.state = StateIdle
	s.mu.Unlock()
	s.notify()
}

// Submit records the given meal count for the selected guest. On success
// the entry is prepended to the recent history, the displayed total is
// bumped optimistically and the session returns to idle. On conflict or
// failure the selection is kept so the operator can retry or cancel; the
// error is also stored as LastError.
func (s *Session) Submit(quantity int) error {
	if quantity != 1 && quantity != 2 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return ErrBusy
	}
	if s.selected == nil {
		s.mu.Unlock()
		return ErrNoSelection
	}
	guest := *s.selected
	s.state = StateSubmitting
	ctx := s.ctx
	s.mu.Unlock()
	s.notify()

	err := s.api.RecordMeal(ctx, guest.ID, quantity)

	s.mu.Lock()
	if err != nil {
		s.lastErr = err
		s.state = StateGuestSelected
		s.mu.Unlock()
		s.notify()
		return err
	}

	s.history = append([]HistoryEntry{{Guest: guest, Quantity: quantity, At: time.Now()}}, s.history...)
	if len(s.history) > historyLimit {
		s.history = s.history[:historyLimit]
	}
	s.total += quantity // optimistic; reconciled on the next refresh
	s.seq++
	s.selected = nil
	s.results = nil
	s.query = ""
	s.lastErr = nil
	s.state = StateIdle
	s.mu.Unlock()
	s.notify()
	return nil
}

// RefreshTotal replaces the displayed total with the server's value,
// reconciling optimistic increments and other desks' submissions. Errors
// leave the current value in place.
func (s *Session) RefreshTotal() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	total, err := s.api.TodayTotal(ctx)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.total = total
	s.mu.Unlock()
	s.notify()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *Session) Results() []model.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Guest, len(s.results))
	copy(out, s.results)
	return out
}

func (s *Session) Selected() *model.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	g := *s.selected
	return &g
}

func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *Session) History() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
