package portfolio

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// AllCategories is the category selection that disables category filtering.
const AllCategories = "all"

// Filter is the interactive state of a portfolio listing. The zero value
// behaves like NewFilter except that Category reads as empty; use
// NewFilter or ClearAll to get the canonical defaults.
type Filter struct {
	Query    string   `json:"query"`
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

func NewFilter() Filter {
	return Filter{Category: AllCategories, Skills: []string{}}
}

func (f *Filter) SetQuery(q string) {
	f.Query = q
}

func (f *Filter) SetCategory(id string) {
	if id == "" {
		id = AllCategories
	}
	f.Category = id
}

// ToggleSkill selects skill if it is not selected, otherwise deselects it.
func (f *Filter) ToggleSkill(skill string) {
	if i := slices.Index(f.Skills, skill); i >= 0 {
		f.Skills = slices.Delete(slices.Clone(f.Skills), i, i+1)
		return
	}
	f.Skills = append(slices.Clone(f.Skills), skill)
}

func (f *Filter) ClearAll() {
	*f = NewFilter()
}

func (f Filter) HasSkill(skill string) bool {
	return slices.Contains(f.Skills, skill)
}

// IsEmpty reports whether the filter lets every project through.
func (f Filter) IsEmpty() bool {
	return f.Query == "" && f.allCategories() && len(f.Skills) == 0
}

func (f Filter) allCategories() bool {
	return f.Category == "" || f.Category == AllCategories
}

// matcher holds the folded query so a view is computed with one fold per term.
type matcher struct {
	filter Filter
	query  string
	fold   cases.Caser
}

func newMatcher(f Filter) *matcher {
	m := &matcher{filter: f, fold: cases.Fold()}
	m.query = m.fold.String(f.Query)
	return m
}

func (m *matcher) category(c Category) bool {
	return m.filter.allCategories() || c.ID == m.filter.Category
}

func (m *matcher) project(p Project) bool {
	return m.matchesQuery(p) && m.matchesSkills(p)
}

func (m *matcher) matchesQuery(p Project) bool {
	if m.query == "" {
		return true
	}
	if m.contains(p.Title) || m.contains(p.Description) {
		return true
	}
	for _, tag := range p.Tags {
		if m.contains(tag) {
			return true
		}
	}
	return false
}

func (m *matcher) contains(s string) bool {
	return strings.Contains(m.fold.String(s), m.query)
}

// every selected skill must be present
func (m *matcher) matchesSkills(p Project) bool {
	for _, skill := range m.filter.Skills {
		if !p.HasSkill(skill) {
			return false
		}
	}
	return true
}
