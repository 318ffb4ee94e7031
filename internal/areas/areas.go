// Package areas holds the fixed catalog of tech career areas and the
// bounded selection rule used by the area-of-interest instrument.
package areas

// MaxSelected caps how many areas a user may pick.
const MaxSelected = 5

// Area describes one catalog entry. Demand and SalaryRange are display
// data carried alongside the id.
type Area struct {
	ID          string
	Label       string
	Demand      string
	SalaryRange string
}

// Catalog returns the fixed list of selectable areas.
func Catalog() []Area {
	return catalog
}

var catalog = []Area{
	{ID: "dev", Label: "Software Development", Demand: "High", SalaryRange: "R$ 8-25k"},
	{ID: "ia", Label: "Artificial Intelligence", Demand: "Very High", SalaryRange: "R$ 12-35k"},
	{ID: "data", Label: "Data Science", Demand: "High", SalaryRange: "R$ 10-28k"},
	{ID: "ux", Label: "UX/UI Design", Demand: "Medium-High", SalaryRange: "R$ 6-18k"},
	{ID: "cyber", Label: "Cybersecurity", Demand: "Very High", SalaryRange: "R$ 10-30k"},
	{ID: "marketing", Label: "Digital Marketing", Demand: "High", SalaryRange: "R$ 5-15k"},
	{ID: "blockchain", Label: "Blockchain", Demand: "Medium", SalaryRange: "R$ 10-25k"},
	{ID: "cloud", Label: "Cloud Computing", Demand: "High", SalaryRange: "R$ 9-22k"},
	{ID: "devops", Label: "DevOps", Demand: "High", SalaryRange: "R$ 10-25k"},
	{ID: "product", Label: "Product Management", Demand: "Medium-High", SalaryRange: "R$ 8-20k"},
}

// Label resolves an area id to its display label, falling back to the id
// itself for unknown entries.
func Label(id string) string {
	for _, a := range catalog {
		if a.ID == id {
			return a.Label
		}
	}
	return id
}

// Selection is an ordered set of selected area ids.
type Selection []string

// Contains reports whether id is selected.
func (s Selection) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle returns the selection with id flipped. Removing is always
// allowed; adding is silently rejected once MaxSelected is reached.
func (s Selection) Toggle(id string) Selection {
	for i, v := range s {
		if v == id {
			out := make(Selection, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	if len(s) >= MaxSelected {
		return s
	}
	out := make(Selection, len(s), len(s)+1)
	copy(out, s)
	return append(out, id)
}

// CanProceed reports whether the selection satisfies the forward gate.
func (s Selection) CanProceed() bool {
	return len(s) >= 1
}
