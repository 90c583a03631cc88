package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"portfolio-be/internal/catalog"
	"portfolio-be/internal/config"
	"portfolio-be/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const dataset = `{"categories": [{"id": "robotics", "name": "Robotics", "projects": [
  {"id": "rover", "title": "Autonomous Rover", "description": "Path planning", "tags": ["ros"], "skills": ["ROS"]}
]}]}`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o600))
	return path
}

func TestNewServer(t *testing.T) {
	t.Cleanup(logger.Replace(zap.NewNop()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("Success", func(t *testing.T) {
		cfg := &config.Config{CatalogSource: config.SourceFile, CatalogPath: writeDataset(t)}

		router, closeCatalog, err := newServer(ctx, cfg)
		require.NoError(t, err)
		defer closeCatalog()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/categories?q=rover", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Autonomous Rover")
	})

	t.Run("Catalog load error", func(t *testing.T) {
		cfg := &config.Config{CatalogSource: config.SourceFile, CatalogPath: filepath.Join(t.TempDir(), "none.json")}

		_, _, err := newServer(ctx, cfg)
		assert.Error(t, err)
	})

	t.Run("Unknown source", func(t *testing.T) {
		_, _, err := newServer(ctx, &config.Config{CatalogSource: "s3"})
		assert.ErrorIs(t, err, catalog.ErrUnknownSource)
	})
}

func TestRun(t *testing.T) {
	origStart := startServerFunc
	defer func() { startServerFunc = origStart }()

	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CATALOG_SOURCE", "file")
	t.Setenv("CATALOG_PATH", writeDataset(t))

	t.Run("Success", func(t *testing.T) {
		var addr string
		startServerFunc = func(srv *http.Server) error {
			addr = srv.Addr
			return http.ErrServerClosed
		}

		assert.NoError(t, run())
		assert.Equal(t, ":9090", addr)
	})

	t.Run("Listen error", func(t *testing.T) {
		startServerFunc = func(srv *http.Server) error {
			return errors.New("address in use")
		}

		assert.EqualError(t, run(), "address in use")
	})
}
