// Package tui provides the interactive alloy picker for the CLI
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/napolitain/solver-tfc/internal/models"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	bandStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// PickerModel is the bubbletea model for selecting an alloy
type PickerModel struct {
	alloys []models.AlloySpec
	cursor int
	choice *models.AlloySpec
}

// NewPicker creates a picker over the given alloys
func NewPicker(alloys []models.AlloySpec) PickerModel {
	return PickerModel{alloys: alloys}
}

// Init implements tea.Model
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.alloys)-1 {
				m.cursor++
			}
		case "enter":
			m.choice = &m.alloys[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select an alloy"))
	b.WriteString("\n\n")

	for i, a := range m.alloys {
		line := fmt.Sprintf("  %s %s", " ", a.Name)
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("  %s %s", ">", a.Name))
		}
		b.WriteString(line)

		var bands []string
		for _, c := range a.Components {
			bands = append(bands, fmt.Sprintf("%s %.0f–%.0f%%", c.ProducedType, c.MinPercent, c.MaxPercent))
		}
		b.WriteString(bandStyle.Render("  (" + strings.Join(bands, ", ") + ")"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter select · q quit"))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected alloy, or false if the picker was aborted
func (m PickerModel) Choice() (models.AlloySpec, bool) {
	if m.choice == nil {
		return models.AlloySpec{}, false
	}
	return *m.choice, true
}

// PickAlloy runs the picker program and returns the chosen alloy.
// The second return is false when the user quit without choosing.
func PickAlloy(alloys []models.AlloySpec) (models.AlloySpec, bool, error) {
	program := tea.NewProgram(NewPicker(alloys))
	final, err := program.Run()
	if err != nil {
		return models.AlloySpec{}, false, fmt.Errorf("picker failed: %w", err)
	}

	model, ok := final.(PickerModel)
	if !ok {
		return models.AlloySpec{}, false, nil
	}
	spec, chosen := model.Choice()
	return spec, chosen, nil
}
