package disc

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes a Trait as its one-letter symbol.
func (t Trait) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Symbol())
}

// UnmarshalJSON decodes a Trait from its one-letter symbol.
func (t *Trait) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTrait(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON encodes Scores as a symbol-keyed object: {"D":3,"I":4,...}.
func (s Scores) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, NumTraits)
	for _, t := range Traits {
		m[t.Symbol()] = s[t]
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes Scores from a symbol-keyed object. Unknown keys
// are rejected to keep the trait alphabet closed.
func (s *Scores) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out Scores
	for k, v := range m {
		t, err := ParseTrait(k)
		if err != nil {
			return fmt.Errorf("disc scores: %w", err)
		}
		out[t] = v
	}
	*s = out
	return nil
}
