package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/upjobs/upjobs/internal/ui/theme"
)

// ChecklistItem is one toggleable entry.
type ChecklistItem struct {
	ID     string
	Label  string
	Detail string
}

// Checklist is a multi-select list with an upper bound on how many items
// can be checked at once. Toggling off is always allowed; toggling on is
// ignored once the bound is reached.
type Checklist struct {
	Items    []ChecklistItem
	Cursor   int
	MaxPicks int

	checked map[string]bool
	order   []string
}

// NewChecklist creates a checklist with the given bound. Pre-checked ids
// outside the items list are ignored.
func NewChecklist(items []ChecklistItem, maxPicks int, checked []string) Checklist {
	c := Checklist{
		Items:    items,
		MaxPicks: maxPicks,
		checked:  make(map[string]bool),
	}
	for _, id := range checked {
		for _, item := range items {
			if item.ID == id && !c.checked[id] {
				c.checked[id] = true
				c.order = append(c.order, id)
			}
		}
	}
	return c
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", " ":
		if c.Cursor < len(c.Items) {
			c.toggle(c.Items[c.Cursor].ID)
		}
	}

	return c, nil
}

func (c *Checklist) toggle(id string) {
	if c.checked[id] {
		delete(c.checked, id)
		for i, v := range c.order {
			if v == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
		return
	}
	if len(c.order) >= c.MaxPicks {
		return
	}
	c.checked[id] = true
	c.order = append(c.order, id)
}

// Checked returns the checked ids in the order they were picked.
func (c Checklist) Checked() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Count returns how many items are checked.
func (c Checklist) Count() int {
	return len(c.order)
}

// AtLimit reports whether the bound is reached.
func (c Checklist) AtLimit() bool {
	return len(c.order) >= c.MaxPicks
}

// View renders the checklist with a picked counter.
func (c Checklist) View() string {
	var s string

	for i, item := range c.Items {
		box := "[ ]"
		if c.checked[item.ID] {
			box = "[x]"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, box, item.Label)
		if item.Detail != "" {
			line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + item.Detail)
		}

		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case c.checked[item.ID]:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	counter := fmt.Sprintf("%d/%d selected", len(c.order), c.MaxPicks)
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if c.AtLimit() {
		style = lipgloss.NewStyle().Foreground(theme.Accent)
	}
	s += "\n" + style.Render(counter) + "\n"

	return s
}
