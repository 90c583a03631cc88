package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"portfolio-be/internal/logger"
	"portfolio-be/internal/metrics"
	"portfolio-be/internal/portfolio"

	"go.uber.org/zap"
)

// Service serves filtered views over an in-memory copy of the catalog.
type Service interface {
	Reload(ctx context.Context) error
	Query(ctx context.Context, filter portfolio.Filter) *QueryResult
	Skills(ctx context.Context) []string
	Stats(ctx context.Context) portfolio.Stats
	Options(ctx context.Context) []portfolio.Option
	GetCategory(ctx context.Context, id string) (*portfolio.Category, error)
	GetProject(ctx context.Context, categoryID, projectID string) (*portfolio.Project, error)
	Health(ctx context.Context) Health
}

type QueryResult struct {
	Categories []portfolio.Category `json:"categories"`
	Matched    int                  `json:"matched"`
	Total      int                  `json:"total"`
	Filter     portfolio.Filter     `json:"filter"`
}

type Health struct {
	LoadedAt time.Time `json:"loaded_at"`
	Queries  uint64    `json:"queries"`
	Reloads  uint64    `json:"reloads"`
}

// snapshot is immutable once published.
type snapshot struct {
	categories []portfolio.Category
	skills     []string
	stats      portfolio.Stats
	options    []portfolio.Option
}

func newSnapshot(categories []portfolio.Category) *snapshot {
	return &snapshot{
		categories: categories,
		skills:     portfolio.SkillUniverse(categories),
		stats:      portfolio.ComputeStats(categories),
		options:    portfolio.CategoryOptions(categories),
	}
}

type service struct {
	repo Repository

	current  atomic.Pointer[snapshot]
	reloadMu sync.Mutex

	queries  metrics.Counter
	reloads  metrics.Counter
	loadedAt metrics.Stamp
	now      func() time.Time
}

// NewService creates a catalog service. Reads return empty data until the
// first successful Reload.
func NewService(repo Repository) Service {
	s := &service{repo: repo, now: time.Now}
	s.current.Store(newSnapshot([]portfolio.Category{}))
	return s
}

func (s *service) Reload(ctx context.Context) error {
	log := logger.ForMethod(ctx, "service", "Reload")
	log.Info("Reload started")

	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	timer := metrics.StartTimer()

	categories, err := s.repo.Load(ctx)
	if err != nil {
		log.Error("failed to load catalog", zap.Error(err))
		return fmt.Errorf("load catalog: %w", err)
	}

	if err := portfolio.Validate(categories); err != nil {
		log.Error("catalog failed validation", zap.Error(err))
		return fmt.Errorf("invalid catalog: %w", err)
	}

	snap := newSnapshot(categories)
	s.current.Store(snap)
	s.reloads.Inc()
	s.loadedAt.Mark(s.now())

	log.Info("Reload success",
		zap.Int("categories", snap.stats.Categories),
		zap.Int("projects", snap.stats.TotalProjects),
		zap.Int("skills", len(snap.skills)),
		zap.Duration("duration", timer.Duration()),
	)
	return nil
}

func (s *service) Query(ctx context.Context, filter portfolio.Filter) *QueryResult {
	log := logger.ForMethod(ctx, "service", "Query")
	s.queries.Inc()

	filter.SetCategory(filter.Category)
	if filter.Skills == nil {
		filter.Skills = []string{}
	}

	snap := s.current.Load()
	view := portfolio.FilteredView(snap.categories, filter)

	result := &QueryResult{
		Categories: view,
		Matched:    portfolio.CountProjects(view),
		Total:      snap.stats.TotalProjects,
		Filter:     filter,
	}

	log.Debug("Query success",
		zap.String("query", filter.Query),
		zap.String("category", filter.Category),
		zap.Strings("skills", filter.Skills),
		zap.Int("matched", result.Matched),
		zap.Int("categories", len(view)),
	)
	return result
}

func (s *service) Skills(ctx context.Context) []string {
	return s.current.Load().skills
}

func (s *service) Stats(ctx context.Context) portfolio.Stats {
	return s.current.Load().stats
}

func (s *service) Options(ctx context.Context) []portfolio.Option {
	return s.current.Load().options
}

func (s *service) GetCategory(ctx context.Context, id string) (*portfolio.Category, error) {
	for _, c := range s.current.Load().categories {
		if c.ID == id {
			return &c, nil
		}
	}

	logger.ForMethod(ctx, "service", "GetCategory").Info("category not found", zap.String("category_id", id))
	return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, id)
}

func (s *service) GetProject(ctx context.Context, categoryID, projectID string) (*portfolio.Project, error) {
	c, err := s.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	for _, p := range c.Projects {
		if p.ID == projectID {
			return &p, nil
		}
	}

	logger.ForMethod(ctx, "service", "GetProject").Info("project not found",
		zap.String("category_id", categoryID),
		zap.String("project_id", projectID),
	)
	return nil, fmt.Errorf("%w: %s/%s", ErrProjectNotFound, categoryID, projectID)
}

func (s *service) Health(ctx context.Context) Health {
	return Health{
		LoadedAt: s.loadedAt.Load(),
		Queries:  s.queries.Load(),
		Reloads:  s.reloads.Load(),
	}
}
