package portfolio

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	ErrEmptyCategoryID     = errors.New("category id cannot be empty")
	ErrDuplicateCategoryID = errors.New("duplicate category id")
	ErrEmptyProjectID      = errors.New("project id cannot be empty")
	ErrDuplicateProjectID  = errors.New("duplicate project id")
)

// Validate checks the identifier invariants of a catalog and reports
// every violation it finds.
func Validate(categories []Category) error {
	var err error
	seenCategories := make(map[string]struct{}, len(categories))

	for i, c := range categories {
		if c.ID == "" {
			err = multierr.Append(err, fmt.Errorf("categories[%d]: %w", i, ErrEmptyCategoryID))
		} else if _, dup := seenCategories[c.ID]; dup {
			err = multierr.Append(err, fmt.Errorf("category %q: %w", c.ID, ErrDuplicateCategoryID))
		}
		seenCategories[c.ID] = struct{}{}

		seenProjects := make(map[string]struct{}, len(c.Projects))
		for j, p := range c.Projects {
			if p.ID == "" {
				err = multierr.Append(err, fmt.Errorf("category %q: projects[%d]: %w", c.ID, j, ErrEmptyProjectID))
				continue
			}
			if _, dup := seenProjects[p.ID]; dup {
				err = multierr.Append(err, fmt.Errorf("category %q: project %q: %w", c.ID, p.ID, ErrDuplicateProjectID))
			}
			seenProjects[p.ID] = struct{}{}
		}
	}

	return err
}
