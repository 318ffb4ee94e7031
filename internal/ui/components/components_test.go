package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	default:
		return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
	}
}

func testItems() []ChecklistItem {
	return []ChecklistItem{
		{ID: "a", Label: "Alpha"},
		{ID: "b", Label: "Beta"},
		{ID: "c", Label: "Gamma"},
	}
}

func TestChecklist_ToggleAndBound(t *testing.T) {
	c := NewChecklist(testItems(), 2, nil)

	c, _ = c.Update(keyMsg("space")) // check a
	c, _ = c.Update(keyMsg("down"))
	c, _ = c.Update(keyMsg("space")) // check b
	if got := c.Checked(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("checked = %v", got)
	}
	if !c.AtLimit() {
		t.Error("limit not reported")
	}

	// At the bound, checking a third is ignored.
	c, _ = c.Update(keyMsg("down"))
	c, _ = c.Update(keyMsg("space"))
	if got := c.Checked(); len(got) != 2 {
		t.Fatalf("bound exceeded: %v", got)
	}

	// Unchecking at the bound always works, then re-checking does too.
	c, _ = c.Update(keyMsg("up"))
	c, _ = c.Update(keyMsg("space")) // uncheck b
	if c.Count() != 1 {
		t.Fatalf("count after uncheck = %d", c.Count())
	}
	c, _ = c.Update(keyMsg("down"))
	c, _ = c.Update(keyMsg("space")) // check c
	if got := c.Checked(); len(got) != 2 || got[1] != "c" {
		t.Fatalf("re-check after uncheck: %v", got)
	}
}

func TestChecklist_PreChecked(t *testing.T) {
	c := NewChecklist(testItems(), 2, []string{"b", "nope", "b"})
	if got := c.Checked(); len(got) != 1 || got[0] != "b" {
		t.Errorf("pre-checked = %v", got)
	}
}

func TestChoiceList_SubmitLocks(t *testing.T) {
	c := NewChoiceList("Pick one", []string{"one", "two", "three"})

	c, _ = c.Update(keyMsg("down"))
	c, _ = c.Update(keyMsg("enter"))
	if !c.Submitted || c.ChosenIndex != 1 {
		t.Fatalf("chosen = %d, submitted = %v", c.ChosenIndex, c.Submitted)
	}

	// Navigation after submit is ignored.
	c, _ = c.Update(keyMsg("down"))
	if c.Selected != 1 {
		t.Errorf("selection moved after submit: %d", c.Selected)
	}

	c.Reset("Next", []string{"x", "y"})
	if c.Submitted || c.ChosenIndex != -1 || c.Prompt != "Next" {
		t.Errorf("reset left state: %+v", c)
	}
}

func TestTextInput_DecimalMode(t *testing.T) {
	ti := NewTextInput("0.0", ModeDecimal, 10)

	for _, key := range []string{"4", ".", "5", ".", "x"} {
		ti, _ = ti.Update(keyMsg(key))
	}
	if ti.Value() != "4.5" {
		t.Errorf("value = %q, want 4.5", ti.Value())
	}

	got, err := ti.FloatValue()
	if err != nil || got != 4.5 {
		t.Errorf("float = %v, %v", got, err)
	}
}

func TestTextInput_DecimalRejectsLeadingDot(t *testing.T) {
	ti := NewTextInput("", ModeDecimal, 10)
	ti, _ = ti.Update(keyMsg("."))
	if ti.Value() != "" {
		t.Errorf("leading dot accepted: %q", ti.Value())
	}
}

func TestTextInput_EmptyFloatIsZero(t *testing.T) {
	ti := NewTextInput("", ModeDecimal, 10)
	got, err := ti.FloatValue()
	if err != nil || got != 0 {
		t.Errorf("empty value = %v, %v", got, err)
	}
}
