package catalog

import "errors"

var (
	// -- Lookups --
	ErrCategoryNotFound = errors.New("category not found")
	ErrProjectNotFound  = errors.New("project not found")

	// -- Sources --
	ErrUnsupportedFormat = errors.New("unsupported catalog file format")
	ErrUnknownSource     = errors.New("unknown catalog source")
)
