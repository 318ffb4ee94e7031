package disc

import "errors"

// ErrFinished rejects an answer after the last item has been scored.
var ErrFinished = errors.New("disc: questionnaire already finished")

// Result is the terminal output of a completed questionnaire.
type Result struct {
	Dominant Trait
	Scores   Scores
}

// Test walks a battery of items in order, tallying one trait per answer.
// Answers are accumulate-only: there is no rewinding a scored item.
type Test struct {
	items   []Item
	current int
	scores  Scores
}

// NewTest starts a test over the standard battery.
func NewTest() *Test {
	return NewTestWithItems(Battery())
}

// NewTestWithItems starts a test over a custom battery, for tests.
func NewTestWithItems(items []Item) *Test {
	return &Test{items: items}
}

// Current returns the active item, or nil when the test is finished.
func (t *Test) Current() *Item {
	if t.Finished() {
		return nil
	}
	return &t.items[t.current]
}

// Index returns the zero-based position of the active item.
func (t *Test) Index() int {
	return t.current
}

// Len returns the number of items in the battery.
func (t *Test) Len() int {
	return len(t.items)
}

// AtFirstItem reports whether no answer has been scored yet. Leaving the
// questionnaire (the wizard's back action) is only allowed here.
func (t *Test) AtFirstItem() bool {
	return t.current == 0
}

// Finished reports whether every item has been answered.
func (t *Test) Finished() bool {
	return t.current >= len(t.items)
}

// Answer scores the active item's option at the given index and advances.
// The returned Result is non-nil only on the final answer.
func (t *Test) Answer(optionIndex int) (*Result, error) {
	if t.Finished() {
		return nil, ErrFinished
	}
	if optionIndex < 0 || optionIndex >= NumTraits {
		return nil, errors.New("disc: option index out of range")
	}

	t.scores[t.items[t.current].Options[optionIndex].Trait]++
	t.current++

	if !t.Finished() {
		return nil, nil
	}
	return &Result{Dominant: t.scores.Dominant(), Scores: t.scores}, nil
}

// Scores returns the tally so far.
func (t *Test) Scores() Scores {
	return t.scores
}
