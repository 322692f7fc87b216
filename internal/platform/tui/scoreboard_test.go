package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScoreboardShowsScoresAndStats(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{10, 30, 20} {
		if _, err := store.SaveScore("jumper", "bob", s, 2); err != nil {
			t.Fatalf("SaveScore() error = %v", err)
		}
	}

	m := NewScoreboardModel(store, "jumper", "Jumper", 80, 30)
	view := m.View()

	for _, want := range []string{"HIGH SCORES - Jumper", "Runs: 3", "Best: 30", "bob"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "jumper", "Jumper", 80, 30)
	view := m.View()

	if !strings.Contains(view, "unavailable") {
		t.Error("View() should report the missing database")
	}
	if !strings.Contains(view, "No scores recorded yet") {
		t.Error("View() should show the empty message")
	}
}

func TestScoreboardRefreshAndQuit(t *testing.T) {
	store := openTestStore(t)
	m := NewScoreboardModel(store, "jumper", "Jumper", 80, 30)

	if _, err := store.SaveScore("jumper", "carol", 5, 1); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "carol") {
		t.Error("refresh should load new scores")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should quit")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
