package handlers

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"portfolio-be/internal/catalog"
	"portfolio-be/internal/portfolio"
	"portfolio-be/internal/utils"
)

// ProjectHandler serves the read-only portfolio endpoints
type ProjectHandler struct {
	svc catalog.Service
}

func NewProjectHandler(svc catalog.Service) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// filterFromRequest reads q, category and skill. skill may repeat. A value
// that is not itself a known skill is split on commas, so "C,ROS" selects
// two skills while a skill whose name holds a comma still matches whole.
func filterFromRequest(r *http.Request, known []string) portfolio.Filter {
	values := r.URL.Query()

	f := portfolio.NewFilter()
	f.SetQuery(values.Get("q"))
	f.SetCategory(values.Get("category"))
	for _, raw := range values["skill"] {
		skills := []string{strings.TrimSpace(raw)}
		if _, found := slices.BinarySearch(known, skills[0]); !found {
			skills = utils.SplitCSV([]string{raw})
		}
		for _, skill := range skills {
			if skill != "" && !f.HasSkill(skill) {
				f.ToggleSkill(skill)
			}
		}
	}
	return f
}

// ListCategories handles GET /api/categories
func (h *ProjectHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	result := h.svc.Query(r.Context(), filterFromRequest(r, h.svc.Skills(r.Context())))
	respondJSON(w, http.StatusOK, result)
}

// ListOptions handles GET /api/categories/options
func (h *ProjectHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Options(r.Context()))
}

// GetCategory handles GET /api/categories/{id}
func (h *ProjectHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.svc.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Category not found")
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// GetProject handles GET /api/categories/{categoryID}/projects/{projectID}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.svc.GetProject(r.Context(), chi.URLParam(r, "categoryID"), chi.URLParam(r, "projectID"))
	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound):
		respondError(w, http.StatusNotFound, "Category not found")
		return
	case err != nil:
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// ListSkills handles GET /api/skills
func (h *ProjectHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"skills": h.svc.Skills(r.Context())})
}

// GetStats handles GET /api/stats
func (h *ProjectHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Stats(r.Context()))
}

// Health handles GET /api/health
func (h *ProjectHandler) Health(w http.ResponseWriter, r *http.Request) {
	health := h.svc.Health(r.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"loaded_at": health.LoadedAt,
		"queries":   health.Queries,
		"reloads":   health.Reloads,
	})
}
