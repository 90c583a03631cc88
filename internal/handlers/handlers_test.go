package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"portfolio-be/internal/auth"
	"portfolio-be/internal/catalog"
	"portfolio-be/internal/config"
	"portfolio-be/internal/middleware"
	"portfolio-be/internal/portfolio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	categories []portfolio.Category
	err        error
}

func (s *stubRepository) Load(ctx context.Context) ([]portfolio.Category, error) {
	return s.categories, s.err
}

func testCategories() []portfolio.Category {
	return []portfolio.Category{
		{
			ID:   "ev-systems",
			Name: "EV Systems",
			Projects: []portfolio.Project{
				{ID: "bms", Title: "Battery Management", Description: "balancing", Tags: []string{"battery"}, Skills: []string{"C", "STM32"}, IsAward: true},
				{ID: "charger", Title: "Onboard Charger", Tags: []string{"power"}, Skills: []string{"C"}},
			},
		},
		{
			ID:   "robotics",
			Name: "Robotics",
			Projects: []portfolio.Project{
				{ID: "rover", Title: "Rover", Tags: []string{"ros"}, Skills: []string{"Python"}},
			},
		},
	}
}

type testServer struct {
	router http.Handler
	repo   *stubRepository
	cfg    *config.Config
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	repo := &stubRepository{categories: testCategories()}
	svc := catalog.NewService(repo)
	require.NoError(t, svc.Reload(context.Background()))

	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "http://localhost:3000"
	}
	return &testServer{
		router: SetupRoutes(cfg, svc, middleware.NewRateLimiter("")),
		repo:   repo,
		cfg:    cfg,
	}
}

func (s *testServer) do(t *testing.T, method, target string, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type queryResponse struct {
	Categories []portfolio.Category `json:"categories"`
	Matched    int                  `json:"matched"`
	Total      int                  `json:"total"`
	Filter     portfolio.Filter     `json:"filter"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestListCategories(t *testing.T) {
	srv := newTestServer(t, &config.Config{})

	t.Run("No filter", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/categories", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		res := decode[queryResponse](t, w)
		assert.Len(t, res.Categories, 2)
		assert.Equal(t, 3, res.Matched)
		assert.Equal(t, 3, res.Total)
		assert.Equal(t, portfolio.AllCategories, res.Filter.Category)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Query matches tag", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/categories?q=POWER", "", nil)
		res := decode[queryResponse](t, w)
		require.Len(t, res.Categories, 1)
		assert.Equal(t, "charger", res.Categories[0].Projects[0].ID)
	})

	t.Run("Category filter", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/categories?category=robotics", "", nil)
		res := decode[queryResponse](t, w)
		require.Len(t, res.Categories, 1)
		assert.Equal(t, "robotics", res.Categories[0].ID)
	})

	t.Run("Skills use AND", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/categories?skill=C&skill=STM32", "", nil)
		res := decode[queryResponse](t, w)
		assert.Equal(t, 1, res.Matched)
		assert.Equal(t, []string{"C", "STM32"}, res.Filter.Skills)

		w = srv.do(t, "GET", "/api/categories?skill=C,STM32,C", "", nil)
		res = decode[queryResponse](t, w)
		assert.Equal(t, 1, res.Matched)
		assert.Equal(t, []string{"C", "STM32"}, res.Filter.Skills)
	})

	t.Run("No matches is an empty list", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/categories?skill=COBOL", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"categories":[]`)
	})
}

func TestLookups(t *testing.T) {
	srv := newTestServer(t, &config.Config{})

	t.Run("Category", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/categories/robotics", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Robotics", decode[portfolio.Category](t, w).Name)
	})

	t.Run("Category not found", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/categories/gardening", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Category not found"}`, w.Body.String())
	})

	t.Run("Project", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/categories/ev-systems/projects/bms", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		p := decode[portfolio.Project](t, w)
		assert.True(t, p.IsAward)
		assert.Contains(t, w.Body.String(), `"isAward":true`)
	})

	t.Run("Project not found", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/categories/ev-systems/projects/rover", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Project not found"}`, w.Body.String())
	})

	t.Run("Options", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/categories/options", "", nil)
		opts := decode[[]portfolio.Option](t, w)
		require.Len(t, opts, 3)
		assert.Equal(t, "All Categories", opts[0].Name)
	})

	t.Run("Skills", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/skills", "", nil)
		assert.JSONEq(t, `{"skills":["C","Python","STM32"]}`, w.Body.String())
	})

	t.Run("Stats", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/stats", "", nil)
		assert.JSONEq(t, `{"totalProjects":3,"awardWinning":1,"categories":2,"technologies":3}`, w.Body.String())
	})

	t.Run("Health", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/health", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]interface{}](t, w)
		assert.Equal(t, "ok", body["status"])
		assert.EqualValues(t, 1, body["reloads"])
	})

	t.Run("Unknown route", func(t *testing.T) {
		w := srv.do(t, "GET", "/api/nope", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Admin disabled", func(t *testing.T) {
		w := srv.do(t, "POST", "/api/admin/login", `{"username":"a","password":"b"}`, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdmin(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:         "testsecret",
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
	}
	srv := newTestServer(t, cfg)

	login := func(t *testing.T, body string) *httptest.ResponseRecorder {
		return srv.do(t, "POST", "/api/admin/login", body, map[string]string{"X-Device-ID": t.Name()})
	}

	t.Run("Login bad body", func(t *testing.T) {
		w := login(t, "{")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Login wrong password", func(t *testing.T) {
		w := login(t, `{"username":"admin","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Login unknown user", func(t *testing.T) {
		w := login(t, `{"username":"root","password":"hunter2"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("Login body too large", func(t *testing.T) {
		body := `{"username":"admin","password":"` + strings.Repeat("a", 2*maxLoginBodyBytes) + `"}`
		w := login(t, body)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.JSONEq(t, `{"error":"Request body too large"}`, w.Body.String())
	})

	t.Run("Reload without token", func(t *testing.T) {
		w := srv.do(t, "POST", "/api/admin/reload", "", map[string]string{"X-Device-ID": t.Name()})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Login and reload", func(t *testing.T) {
		w := login(t, `{"username":"admin","password":"hunter2"}`)
		require.Equal(t, http.StatusOK, w.Code)
		token := decode[map[string]string](t, w)["token"]
		require.NotEmpty(t, token)
		assert.NotEmpty(t, w.Result().Cookies())

		srv.repo.categories = append(testCategories(), portfolio.Category{
			ID:       "theoretical",
			Name:     "Theoretical",
			Projects: []portfolio.Project{{ID: "paper", Title: "Paper", Skills: []string{"MATLAB"}}},
		})

		w = srv.do(t, "POST", "/api/admin/reload", "", map[string]string{
			"Authorization": "Bearer " + token,
			"X-Device-ID":   t.Name(),
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, decode[portfolio.Stats](t, w).Categories)

		w = srv.do(t, "GET", "/api/skills", "", nil)
		assert.Contains(t, w.Body.String(), "MATLAB")
	})

	t.Run("Reload failure", func(t *testing.T) {
		token, err := auth.GenerateJWT(cfg.JWTSecret, "admin", auth.RoleAdmin, adminTokenTTL)
		require.NoError(t, err)

		srv.repo.err = errors.New("disk gone")
		defer func() { srv.repo.err = nil }()

		w := srv.do(t, "POST", "/api/admin/reload", "", map[string]string{
			"Authorization": "Bearer " + token,
			"X-Device-ID":   t.Name(),
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		// previous snapshot still served
		w = srv.do(t, "GET", "/api/stats", "", nil)
		assert.Equal(t, 3, decode[portfolio.Stats](t, w).Categories)
	})
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, &config.Config{CORSOrigin: "https://portfolio.example"})

	w := srv.do(t, "OPTIONS", "/api/categories", "", map[string]string{
		"Origin":                        "https://portfolio.example",
		"Access-Control-Request-Method": "GET",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://portfolio.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Body.String())

	w = srv.do(t, "GET", "/api/stats", "", map[string]string{"Origin": "https://portfolio.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://portfolio.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestFilterFromRequest(t *testing.T) {
	// sorted, as returned by the skill universe
	known := []string{"C", "Python", "STM32", "Signals, Systems"}

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"Comma separated", "/api/categories?skill=C,STM32", []string{"C", "STM32"}},
		{"Repeated", "/api/categories?skill=C&skill=Python&skill=C", []string{"C", "Python"}},
		{"Known skill with comma", "/api/categories?skill=" + url.QueryEscape("Signals, Systems"), []string{"Signals, Systems"}},
		{"Known skill with comma and another", "/api/categories?skill=" + url.QueryEscape("Signals, Systems") + "&skill=C", []string{"Signals, Systems", "C"}},
		{"Blank", "/api/categories?skill=&skill=,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filterFromRequest(httptest.NewRequest("GET", tt.target, nil), known)
			assert.Equal(t, tt.want, f.Skills)
			assert.Equal(t, portfolio.AllCategories, f.Category)
		})
	}
}
