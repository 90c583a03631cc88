package portfolio

import "slices"

// FilteredView returns the categories and projects that pass f, keeping
// the original order. Categories left without projects are dropped. The
// input is not modified.
func FilteredView(categories []Category, f Filter) []Category {
	m := newMatcher(f)
	view := make([]Category, 0, len(categories))

	for _, c := range categories {
		if !m.category(c) {
			continue
		}

		projects := make([]Project, 0, len(c.Projects))
		for _, p := range c.Projects {
			if m.project(p) {
				projects = append(projects, p)
			}
		}
		if len(projects) == 0 {
			continue
		}

		c.Projects = projects
		view = append(view, c)
	}

	return view
}

// SkillUniverse returns every distinct skill across all projects, sorted.
func SkillUniverse(categories []Category) []string {
	skills := []string{}
	for _, c := range categories {
		for _, p := range c.Projects {
			skills = append(skills, p.Skills...)
		}
	}
	slices.Sort(skills)
	return slices.Compact(skills)
}

func CountProjects(categories []Category) int {
	n := 0
	for _, c := range categories {
		n += len(c.Projects)
	}
	return n
}

// ComputeStats summarises the whole catalog, not a filtered view.
func ComputeStats(categories []Category) Stats {
	stats := Stats{
		TotalProjects: CountProjects(categories),
		Categories:    len(categories),
		Technologies:  len(SkillUniverse(categories)),
	}
	for _, c := range categories {
		for _, p := range c.Projects {
			if p.IsAward {
				stats.AwardWinning++
			}
		}
	}
	return stats
}

// CategoryOptions lists the category choices, "all" first.
func CategoryOptions(categories []Category) []Option {
	opts := make([]Option, 0, len(categories)+1)
	opts = append(opts, Option{ID: AllCategories, Name: "All Categories"})
	for _, c := range categories {
		opts = append(opts, Option{ID: c.ID, Name: c.Name})
	}
	return opts
}
