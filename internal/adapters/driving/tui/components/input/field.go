// Package input provides text input components for the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/styles"
)

// DefaultCharLimit bounds the length of a single field.
const DefaultCharLimit = 256

// Field wraps a bubbles textinput with a label and a validation message.
type Field struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	errMsg    string
	width     int
}

// NewField creates a new labelled field. The field starts blurred.
func NewField(s *styles.Styles, label, placeholder string) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = DefaultCharLimit
	ti.Width = 50
	ti.Prompt = ""

	return &Field{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// Init initialises the field.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages. Editing clears the validation message.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	before := f.textinput.Value()
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	if f.textinput.Value() != before {
		f.errMsg = ""
	}
	return f, cmd
}

// View renders the label, the input box and any validation message.
func (f *Field) View() string {
	var b strings.Builder
	b.WriteString(f.styles.Section.Render(f.label))
	b.WriteString("\n")

	box := f.styles.InputField
	if f.textinput.Focused() {
		box = f.styles.InputFocused
	}
	b.WriteString(box.Width(f.width).Render(f.textinput.View()))

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(f.styles.Error.Render(f.errMsg))
	}
	return b.String()
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
}

// SetCharLimit sets the maximum value length.
func (f *Field) SetCharLimit(n int) {
	f.textinput.CharLimit = n
}

// SetError sets the validation message shown under the field.
func (f *Field) SetError(msg string) {
	f.errMsg = msg
}

// Error returns the validation message.
func (f *Field) Error() string {
	return f.errMsg
}

// Focus sets focus on the field.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the field.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the field is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the width of the field box.
func (f *Field) SetWidth(width int) {
	f.width = width
	// Account for border and padding
	inputWidth := width - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *Field) Width() int {
	return f.width
}

// Reset clears the value and the validation message.
func (f *Field) Reset() {
	f.textinput.Reset()
	f.errMsg = ""
}
