// Package disc implements the DISC behavioral questionnaire: a fixed
// battery of items whose answers tally into four trait counts, producing a
// dominant behavioral profile.
package disc

import "fmt"

// Trait is one of the four DISC behavioral traits. The zero value is
// Dominance; the declaration order doubles as the tie-break priority.
type Trait int

const (
	Dominance Trait = iota
	Influence
	Stability
	Conformity

	// NumTraits is the size of the trait alphabet.
	NumTraits = 4
)

// Traits lists all traits in tie-break priority order.
var Traits = [NumTraits]Trait{Dominance, Influence, Stability, Conformity}

// Symbol returns the one-letter trait symbol (D, I, S or C).
func (t Trait) Symbol() string {
	switch t {
	case Dominance:
		return "D"
	case Influence:
		return "I"
	case Stability:
		return "S"
	case Conformity:
		return "C"
	}
	return "?"
}

// String returns the full trait name.
func (t Trait) String() string {
	switch t {
	case Dominance:
		return "Dominance"
	case Influence:
		return "Influence"
	case Stability:
		return "Stability"
	case Conformity:
		return "Conformity"
	}
	return fmt.Sprintf("Trait(%d)", int(t))
}

// ParseTrait converts a one-letter symbol back into a Trait.
func ParseTrait(symbol string) (Trait, error) {
	switch symbol {
	case "D":
		return Dominance, nil
	case "I":
		return Influence, nil
	case "S":
		return Stability, nil
	case "C":
		return Conformity, nil
	}
	return 0, fmt.Errorf("disc: unknown trait symbol %q", symbol)
}

// Description returns the profile copy shown on the result screen.
func (t Trait) Description() string {
	switch t {
	case Dominance:
		return "Results-oriented, direct and determined. A natural fit for leadership and tech entrepreneurship."
	case Influence:
		return "Communicative, enthusiastic and persuasive. A natural fit for product management, marketing and UX."
	case Stability:
		return "Patient, reliable and cooperative. A natural fit for DevOps, QA and steady teamwork."
	case Conformity:
		return "Analytical, detail-driven and precise. A natural fit for data science, cybersecurity and backend work."
	}
	return ""
}

// Scores holds the per-trait answer tally. Indexing by Trait keeps the
// alphabet closed and exhaustive at compile time.
type Scores [NumTraits]int

// Of returns the count for the given trait.
func (s Scores) Of(t Trait) int {
	return s[t]
}

// Total returns the number of answers tallied.
func (s Scores) Total() int {
	sum := 0
	for _, n := range s {
		sum += n
	}
	return sum
}

// Dominant returns the trait with the highest count. Ties resolve to the
// earliest trait in D, I, S, C order.
func (s Scores) Dominant() Trait {
	best := Dominance
	for _, t := range Traits[1:] {
		if s[t] > s[best] {
			best = t
		}
	}
	return best
}
