package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio-be/internal/logger"
	"portfolio-be/internal/portfolio"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Repository supplies the static portfolio dataset.
type Repository interface {
	Load(ctx context.Context) ([]portfolio.Category, error)
}

type repository struct {
	db *sql.DB
}

// NewRepository returns a Repository backed by the Postgres catalog tables.
func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const (
	selectCategories = `
		SELECT c.id, c.name, c.description
		FROM categories c
		ORDER BY c.position ASC, c.id ASC
	`

	selectProjects = `
		SELECT p.category_id, p.id, p.title, p.description, p.tags, p.skills,
			p.is_award, p.github_url, p.live_url
		FROM projects p
		ORDER BY p.category_id, p.position ASC, p.id ASC
	`
)

func (r *repository) Load(ctx context.Context) ([]portfolio.Category, error) {
	log := logger.ForMethod(ctx, "repository", "Load")
	log.Info("Load started")

	categories, err := r.loadCategories(ctx)
	if err != nil {
		log.Error("DB query failed loadCategories", zap.Error(err))
		return nil, err
	}

	byCategory, err := r.loadProjects(ctx)
	if err != nil {
		log.Error("DB query failed loadProjects", zap.Error(err))
		return nil, err
	}

	attached := 0
	for i := range categories {
		categories[i].Projects = byCategory[categories[i].ID]
		if categories[i].Projects == nil {
			categories[i].Projects = []portfolio.Project{}
		}
		attached += len(categories[i].Projects)
		delete(byCategory, categories[i].ID)
	}

	for categoryID, orphans := range byCategory {
		log.Warn("projects reference unknown category",
			zap.String("category_id", categoryID),
			zap.Int("count", len(orphans)),
		)
	}

	if err := portfolio.Validate(categories); err != nil {
		log.Error("catalog rows failed validation", zap.Error(err))
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	log.Info("Load success",
		zap.Int("categories", len(categories)),
		zap.Int("projects", attached),
	)
	return categories, nil
}

func (r *repository) loadCategories(ctx context.Context) ([]portfolio.Category, error) {
	rows, err := r.db.QueryContext(ctx, selectCategories)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []portfolio.Category{}
	for rows.Next() {
		var c portfolio.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

func (r *repository) loadProjects(ctx context.Context) (map[string][]portfolio.Project, error) {
	rows, err := r.db.QueryContext(ctx, selectProjects)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	byCategory := make(map[string][]portfolio.Project)
	for rows.Next() {
		var (
			categoryID string
			p          portfolio.Project
			githubURL  sql.NullString
			liveURL    sql.NullString
		)
		err := rows.Scan(
			&categoryID,
			&p.ID,
			&p.Title,
			&p.Description,
			pq.Array(&p.Tags),
			pq.Array(&p.Skills),
			&p.IsAward,
			&githubURL,
			&liveURL,
		)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.GitHubURL = githubURL.String
		p.LiveURL = liveURL.String

		byCategory[categoryID] = append(byCategory[categoryID], p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return byCategory, nil
}
