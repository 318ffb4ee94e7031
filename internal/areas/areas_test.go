package areas

import "testing"

func TestToggle_AddRemove(t *testing.T) {
	var s Selection

	s = s.Toggle("dev")
	if !s.Contains("dev") || len(s) != 1 {
		t.Fatalf("after add: %v", s)
	}

	s = s.Toggle("dev")
	if s.Contains("dev") || len(s) != 0 {
		t.Fatalf("after remove: %v", s)
	}
}

func TestToggle_BoundNeverExceeded(t *testing.T) {
	ids := []string{"dev", "ia", "data", "ux", "cyber", "marketing", "cloud"}

	var s Selection
	for _, id := range ids {
		s = s.Toggle(id)
		if len(s) > MaxSelected {
			t.Fatalf("selection grew past %d: %v", MaxSelected, s)
		}
	}

	if len(s) != MaxSelected {
		t.Fatalf("len = %d, want %d", len(s), MaxSelected)
	}
	// Sixth and seventh adds were silently rejected.
	if s.Contains("marketing") || s.Contains("cloud") {
		t.Errorf("over-limit adds should be rejected: %v", s)
	}
}

func TestToggle_RemoveAlwaysAllowedAtLimit(t *testing.T) {
	s := Selection{"dev", "ia", "data", "ux", "cyber"}

	s = s.Toggle("data")
	if s.Contains("data") || len(s) != 4 {
		t.Fatalf("remove at limit failed: %v", s)
	}

	// Freed slot accepts a new id again.
	s = s.Toggle("cloud")
	if !s.Contains("cloud") || len(s) != 5 {
		t.Fatalf("re-add after remove failed: %v", s)
	}
}

func TestToggle_DoesNotMutateReceiver(t *testing.T) {
	orig := Selection{"dev", "ia"}
	_ = orig.Toggle("data")
	_ = orig.Toggle("dev")
	if len(orig) != 2 || orig[0] != "dev" || orig[1] != "ia" {
		t.Errorf("receiver mutated: %v", orig)
	}
}

func TestCanProceed(t *testing.T) {
	if (Selection{}).CanProceed() {
		t.Error("empty selection must not proceed")
	}
	if !(Selection{"dev"}).CanProceed() {
		t.Error("single selection should proceed")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Catalog() {
		if seen[a.ID] {
			t.Errorf("duplicate catalog id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestLabel(t *testing.T) {
	if got := Label("devops"); got != "DevOps" {
		t.Errorf("Label(devops) = %q", got)
	}
	if got := Label("nope"); got != "nope" {
		t.Errorf("Label(nope) = %q, want fallback to id", got)
	}
}
