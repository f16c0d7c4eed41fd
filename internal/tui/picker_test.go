package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/napolitain/solver-tfc/internal/models"
)

func testAlloys() []models.AlloySpec {
	return models.DefaultAlloys()
}

func TestPickerSelectsSecondAlloy(t *testing.T) {
	var m tea.Model = NewPicker(testAlloys())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	choice, ok := m.(PickerModel).Choice()
	if !ok {
		t.Fatal("Expected a choice")
	}
	if choice.Name != testAlloys()[1].Name {
		t.Errorf("Expected %q, got %q", testAlloys()[1].Name, choice.Name)
	}
}

func TestPickerCursorStaysInBounds(t *testing.T) {
	var m tea.Model = NewPicker(testAlloys()[:2])

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp}) // already at top
	for i := 0; i < 10; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	choice, ok := m.(PickerModel).Choice()
	if !ok {
		t.Fatal("Expected a choice")
	}
	if choice.Name != testAlloys()[1].Name {
		t.Errorf("Expected cursor clamped to last alloy, got %q", choice.Name)
	}
}

func TestPickerQuitWithoutChoice(t *testing.T) {
	var m tea.Model = NewPicker(testAlloys())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if cmd == nil {
		t.Error("Expected quit command")
	}
	if _, ok := m.(PickerModel).Choice(); ok {
		t.Error("Expected no choice after quitting")
	}
}

func TestPickerViewListsAlloys(t *testing.T) {
	m := NewPicker(testAlloys())

	view := m.View()
	for _, a := range testAlloys() {
		if !strings.Contains(view, a.Name) {
			t.Errorf("View missing alloy %q", a.Name)
		}
	}
}
