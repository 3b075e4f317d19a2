// Package contact provides the contact form view for the TUI.
package contact

import (
	"fmt"
	"net/mail"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/newsroom/internal/richtext"
)

// Field positions in tab order.
const (
	FieldName = iota
	FieldEmail
	FieldMessage
	fieldCount
)

// MessageLimit bounds the message length.
const MessageLimit = 1000

const intro = "Have a tip, a correction or feedback on our coverage? " +
	"Send us a note and the newsroom will get back to you."

// View is the contact page. Submissions are acknowledged in memory only.
type View struct {
	styles    *styles.Styles
	fields    [fieldCount]*input.Field
	focus     int
	capturing bool
	ack       string
	width     int
	height    int
}

// NewView creates a new contact view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{styles: s, width: 80}
	v.fields[FieldName] = input.NewField(s, "Name", "Your name")
	v.fields[FieldEmail] = input.NewField(s, "Email", "you@example.com")
	v.fields[FieldMessage] = input.NewField(s, "Message", "What would you like to tell us?")
	v.fields[FieldMessage].SetCharLimit(MessageLimit)
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Activate focuses the form so keystrokes go to its fields.
func (v *View) Activate() tea.Cmd {
	v.capturing = true
	return v.setFocus(v.focus)
}

// Deactivate blurs the form and hands keys back to the app.
func (v *View) Deactivate() {
	v.capturing = false
	for _, f := range v.fields {
		f.Blur()
	}
}

// Capturing reports whether the form has keyboard focus.
func (v *View) Capturing() bool {
	return v.capturing
}

// Focus returns the index of the focused field.
func (v *View) Focus() int {
	return v.focus
}

// Field returns the field at index i.
func (v *View) Field(i int) *input.Field {
	return v.fields[i]
}

// Acknowledgement returns the confirmation shown after a submission.
func (v *View) Acknowledgement() string {
	return v.ack
}

// Update handles messages for the contact view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
		return v, cmd
	}

	if !v.capturing {
		if keyMsg.String() == "enter" {
			return v, v.Activate()
		}
		return v, nil
	}

	switch keyMsg.String() {
	case "esc":
		v.Deactivate()
		return v, nil
	case "tab", "down":
		return v, v.setFocus((v.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return v, v.setFocus((v.focus + fieldCount - 1) % fieldCount)
	case "ctrl+s":
		return v, v.submit()
	case "enter":
		if v.focus < fieldCount-1 {
			return v, v.setFocus(v.focus + 1)
		}
		return v, v.submit()
	}

	v.ack = ""
	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

func (v *View) setFocus(i int) tea.Cmd {
	v.focus = i
	for j, f := range v.fields {
		if j != i {
			f.Blur()
		}
	}
	return v.fields[i].Focus()
}

// submit validates the form. On success it clears the fields and emits
// messages.ContactSubmitted.
func (v *View) submit() tea.Cmd {
	name := strings.TrimSpace(v.fields[FieldName].Value())
	email := strings.TrimSpace(v.fields[FieldEmail].Value())
	message := strings.TrimSpace(v.fields[FieldMessage].Value())

	errs := [fieldCount]string{}
	if name == "" {
		errs[FieldName] = "Name is required"
	}
	switch {
	case email == "":
		errs[FieldEmail] = "Email is required"
	case !validEmail(email):
		errs[FieldEmail] = "Enter a valid email address"
	}
	if message == "" {
		errs[FieldMessage] = "Message is required"
	}

	for i, e := range errs {
		v.fields[i].SetError(e)
	}
	for i, e := range errs {
		if e != "" {
			return v.setFocus(i)
		}
	}

	v.ack = fmt.Sprintf("Thank you, %s. Your message has been received.", name)
	for _, f := range v.fields {
		f.Reset()
	}
	v.focus = FieldName
	v.Deactivate()

	return func() tea.Msg {
		return messages.ContactSubmitted{Name: name, Email: email, Message: message}
	}
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// View renders the contact page.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Section.Render("CONTACT US"))
	b.WriteString("\n")
	b.WriteString(richtext.Paragraph(intro, v.width, v.styles.Normal))
	b.WriteString("\n\n")

	if v.ack != "" {
		b.WriteString(v.styles.Success.Render(v.ack))
		b.WriteString("\n\n")
	}

	for i, f := range v.fields {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.capturing {
		b.WriteString(v.styles.Help.Render("tab next field · ctrl+s send · esc done"))
	} else {
		b.WriteString(v.styles.Help.Render("Press enter to write to us."))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	fieldWidth := width - 2
	if fieldWidth > 72 {
		fieldWidth = 72
	}
	for _, f := range v.fields {
		f.SetWidth(fieldWidth)
	}
}
