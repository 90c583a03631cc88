package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"portfolio-be/internal/logger"
	"portfolio-be/internal/portfolio"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// FileRepository reads the catalog from a YAML or JSON document of the form
// {"categories": [...]}.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Load(ctx context.Context) ([]portfolio.Category, error) {
	log := logger.ForMethod(ctx, "repository", "FileLoad").With(zap.String("path", r.path))
	log.Info("Load started")

	categories, err := ReadFile(r.path)
	if err != nil {
		log.Error("failed to read catalog file", zap.Error(err))
		return nil, err
	}

	if err := portfolio.Validate(categories); err != nil {
		log.Error("catalog file failed validation", zap.Error(err))
		return nil, fmt.Errorf("invalid catalog %s: %w", r.path, err)
	}

	log.Info("Load success", zap.Int("categories", len(categories)))
	return categories, nil
}

// ReadFile decodes a catalog document, picking the decoder by extension.
func ReadFile(path string) ([]portfolio.Category, error) {
	var unmarshal func([]byte, any) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	case ".json":
		unmarshal = json.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc portfolio.Catalog
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if doc.Categories == nil {
		doc.Categories = []portfolio.Category{}
	}
	return doc.Categories, nil
}
