package tui

import (
	"strings"
	"testing"
	"time"

	"wordup/internal/pipeline"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateAccumulatesPhases(t *testing.T) {
	m := NewModel(Config{})
	next, _ := m.Update(statsMsg(pipeline.Stats{Phase: "frequency", Words: 10, Timestamp: time.Now()}))
	next, _ = next.Update(statsMsg(pipeline.Stats{Phase: "final", Words: 99, Timestamp: time.Now()}))

	view := next.View()
	if !strings.Contains(view, "frequency") || !strings.Contains(view, "final") {
		t.Errorf("view missing phase lines:\n%s", view)
	}
	if !strings.Contains(view, "Working...") {
		t.Errorf("view should report in-progress state:\n%s", view)
	}
}

func TestUpdateResult(t *testing.T) {
	res := &pipeline.Result{
		Masks: []string{"?l?l?l"},
		Rules: []string{"c word"},
	}
	m := NewModel(Config{})
	next, _ := m.Update(resultMsg{result: res})
	view := next.View()
	if !strings.Contains(view, "Done:") {
		t.Errorf("view missing completion line:\n%s", view)
	}
	if !strings.Contains(view, "1 masks | 1 rules") {
		t.Errorf("view missing artifact counts:\n%s", view)
	}
}

func TestQuitKeyCallsStop(t *testing.T) {
	stopped := false
	m := NewModel(Config{Stop: func() { stopped = true }})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !stopped {
		t.Error("stop callback not invoked")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestQuitWhenBothChannelsClose(t *testing.T) {
	m := NewModel(Config{})
	next, _ := m.Update(statsClosedMsg{})
	_, cmd := next.Update(resultClosedMsg{})
	if cmd == nil {
		t.Error("expected quit command after both channels closed")
	}
}
