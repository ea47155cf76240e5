// Package view guards results of asynchronous work against the view that
// requested them having gone away.
package view

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Session is one UI context, such as "viewing species X". Work started for a
// session commits its results only while the session is alive; there is no
// cancellation of in-flight requests, only discarding of stale results.
type Session struct {
	ID      string
	Subject string

	mu    sync.Mutex
	alive bool
}

// NewSession starts a live session for subject.
func NewSession(subject string) *Session {
	return &Session{
		ID:      ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String(),
		Subject: subject,
		alive:   true,
	}
}

// Alive reports whether the session still accepts results.
func (s *Session) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alive
}

// Commit runs fn if the session is alive and reports whether it ran.
// Close waits for a running commit to finish.
func (s *Session) Commit(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.alive {
		return false
	}
	fn()
	return true
}

// Close marks the session dead. Closing twice is a no-op.
func (s *Session) Close() {
	s.mu.Lock()
	s.alive = false
	s.mu.Unlock()
}

// Tracker holds the current session per UI slot ("detail", "move-panel").
// Opening a new session in a slot closes the previous one.
type Tracker struct {
	mu    sync.Mutex
	slots map[string]*Session
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{slots: make(map[string]*Session)}
}

// Open starts a session for subject in slot, retiring the slot's previous one.
func (t *Tracker) Open(slot, subject string) *Session {
	s := NewSession(subject)
	t.mu.Lock()
	prev := t.slots[slot]
	t.slots[slot] = s
	t.mu.Unlock()
	if prev != nil {
		prev.Close()
	}
	return s
}

// Current returns the live session in slot, if any.
func (t *Tracker) Current(slot string) *Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.slots[slot]
}

// CloseAll retires every session.
func (t *Tracker) CloseAll() {
	t.mu.Lock()
	slots := t.slots
	t.slots = make(map[string]*Session)
	t.mu.Unlock()
	for _, s := range slots {
		s.Close()
	}
}
