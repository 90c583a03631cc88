package catalog

import (
	"fmt"

	"portfolio-be/internal/config"
	"portfolio-be/internal/db"
)

// OpenRepository builds the repository selected by CATALOG_SOURCE. The
// returned func releases whatever the repository holds open.
func OpenRepository(cfg *config.Config) (Repository, func(), error) {
	switch cfg.CatalogSource {
	case config.SourceFile, "":
		return NewFileRepository(cfg.CatalogPath), func() {}, nil
	case config.SourcePostgres:
		database, err := db.NewDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		return NewRepository(database), func() { database.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.CatalogSource)
	}
}
