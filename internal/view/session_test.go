package view

import (
	"testing"
)

func TestSessionCommit(t *testing.T) {
	s := NewSession("pikachu")
	if s.ID == "" {
		t.Fatal("expected session id")
	}

	var got string
	if !s.Commit(func() { got = "catalog" }) {
		t.Fatal("expected commit on live session")
	}
	if got != "catalog" {
		t.Errorf("commit did not run, got %q", got)
	}

	s.Close()
	s.Close()
	if s.Alive() {
		t.Error("expected closed session")
	}
	if s.Commit(func() { got = "stale" }) {
		t.Error("expected commit to be refused after close")
	}
	if got != "catalog" {
		t.Errorf("stale result leaked: %q", got)
	}
}

func TestTrackerRetiresPrevious(t *testing.T) {
	tr := NewTracker()

	first := tr.Open("detail", "bulbasaur")
	second := tr.Open("detail", "charmander")
	other := tr.Open("moves", "bulbasaur")

	if first.Alive() {
		t.Error("expected previous session in slot to be closed")
	}
	if !second.Alive() || !other.Alive() {
		t.Error("expected current sessions to stay alive")
	}
	if tr.Current("detail") != second {
		t.Error("expected current detail session to be the latest")
	}
	if first.ID == second.ID {
		t.Error("expected distinct session ids")
	}

	tr.CloseAll()
	if second.Alive() || other.Alive() {
		t.Error("expected CloseAll to retire every session")
	}
	if tr.Current("detail") != nil {
		t.Error("expected no current session after CloseAll")
	}
}
