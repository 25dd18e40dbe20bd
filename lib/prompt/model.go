// Copyright 2026 The Safe Transaction Setup Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines the key bindings for the prompt form.
type KeyMap struct {
	Commit key.Binding
	Abort  key.Binding
	Left   key.Binding
	Right  key.Binding
	Home   key.Binding
	End    key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Commit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Abort: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("ctrl+c", "abort"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "move left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "move right"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "ctrl+a"),
		key.WithHelp("home", "line start"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "ctrl+e"),
		key.WithHelp("end", "line end"),
	),
}

// Styles holds the lipgloss styles for the form. ANSI 256-color codes
// for broad terminal compatibility.
type Styles struct {
	Label       lipgloss.Style
	Answered    lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the built-in styling.
func DefaultStyles() Styles {
	return Styles{
		Label:       lipgloss.NewStyle().Bold(true),
		Answered:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Model is the bubbletea model for the sequential prompt form. One
// field is editable at a time; committed fields stay on screen above
// the active one.
type Model struct {
	fields []Field
	values []string

	input  []rune // Active field's in-progress text.
	cursor int    // Cursor position within input.
	index  int    // Active field index.

	done    bool
	aborted bool

	keys   KeyMap
	styles Styles
}

// NewModel creates the form model for the given fields.
func NewModel(fields []Field) Model {
	return Model{
		fields: fields,
		values: make([]string, 0, len(fields)),
		keys:   DefaultKeyMap,
		styles: DefaultStyles(),
	}
}

// Values returns the committed values, one per field, in field order.
func (m Model) Values() []string {
	values := make([]string, len(m.values))
	copy(values, m.values)
	return values
}

// Aborted reports whether the operator cancelled the form.
func (m Model) Aborted() bool {
	return m.aborted
}

// Done reports whether every field has been committed.
func (m Model) Done() bool {
	return m.done
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	keyMessage, ok := message.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMessage, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMessage, m.keys.Commit):
		// The empty string is a valid answer; commit whatever is there.
		m.values = append(m.values, string(m.input))
		m.input = nil
		m.cursor = 0
		m.index++
		if m.index >= len(m.fields) {
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(keyMessage, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(keyMessage, m.keys.Right):
		if m.cursor < len(m.input) {
			m.cursor++
		}
		return m, nil

	case key.Matches(keyMessage, m.keys.Home):
		m.cursor = 0
		return m, nil

	case key.Matches(keyMessage, m.keys.End):
		m.cursor = len(m.input)
		return m, nil
	}

	switch keyMessage.Type {
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range keyMessage.Runes {
			m.input = append(m.input[:m.cursor], append([]rune{character}, m.input[m.cursor:]...)...)
			m.cursor++
		}

	case tea.KeyBackspace:
		if m.cursor > 0 {
			m.input = append(m.input[:m.cursor-1], m.input[m.cursor:]...)
			m.cursor--
		}

	case tea.KeyDelete:
		if m.cursor < len(m.input) {
			m.input = append(m.input[:m.cursor], m.input[m.cursor+1:]...)
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done || m.aborted {
		return ""
	}

	var sections []string

	// Committed fields stay visible above the active one.
	for i, value := range m.values {
		sections = append(sections, m.styles.Answered.Render(m.fields[i].Label+" "+value))
	}

	active := m.fields[m.index]
	sections = append(sections, m.styles.Label.Render(active.Label))
	sections = append(sections, m.renderInput(active))
	sections = append(sections, m.styles.Help.Render("enter confirm · ctrl+c abort"))

	return strings.Join(sections, "\n") + "\n"
}

// renderInput draws the active field's text with a block cursor, or
// the dimmed placeholder while the field is empty.
func (m Model) renderInput(field Field) string {
	if len(m.input) == 0 {
		cursor := m.styles.Cursor.Render(" ")
		if field.Placeholder == "" {
			return cursor
		}
		return cursor + m.styles.Placeholder.Render(field.Placeholder)
	}

	before := string(m.input[:m.cursor])
	if m.cursor >= len(m.input) {
		return before + m.styles.Cursor.Render(" ")
	}
	at := string(m.input[m.cursor])
	after := string(m.input[m.cursor+1:])
	return before + m.styles.Cursor.Render(at) + after
}
