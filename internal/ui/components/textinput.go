package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/upjobs/upjobs/internal/ui/theme"
)

// InputMode restricts which characters a TextInput accepts.
type InputMode int

const (
	// ModeText accepts anything.
	ModeText InputMode = iota
	// ModeDecimal accepts digits and at most one decimal point.
	ModeDecimal
	// ModeSecret accepts anything and masks the display.
	ModeSecret
)

// TextInput wraps bubbles/textinput with app styling and input modes.
type TextInput struct {
	Model     textinput.Model
	Mode      InputMode
	submitted bool
	valid     bool
}

// NewTextInput creates a styled input with the given mode.
func NewTextInput(placeholder string, mode InputMode, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	if mode == ModeSecret {
		ti.EchoMode = textinput.EchoPassword
	}

	return TextInput{
		Model: ti,
		Mode:  mode,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages, dropping characters the mode rejects.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Mode == ModeDecimal {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && !t.acceptsDecimalChar(key[0]) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) acceptsDecimalChar(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	// One decimal point, and not as the first character.
	if c == '.' {
		v := t.Model.Value()
		return v != "" && !strings.Contains(v, ".")
	}
	return false
}

// View renders the input, with a validity marker once submitted.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input text.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// FloatValue parses the input as a float. Empty input parses as zero,
// matching optional numeric fields.
func (t TextInput) FloatValue() (float64, error) {
	v := strings.TrimSpace(t.Model.Value())
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

// Submit marks the input submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Focus focuses the underlying model.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the underlying model.
func (t *TextInput) Blur() {
	t.Model.Blur()
}
