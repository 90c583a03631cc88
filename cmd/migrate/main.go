package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"portfolio-be/internal/catalog"
	"portfolio-be/internal/config"
	"portfolio-be/internal/db"
	"portfolio-be/internal/portfolio"

	"github.com/lib/pq"
)

func main() {
	mode := flag.String("mode", "up", "migration mode: up, down or seed")
	file := flag.String("file", "data/projects.yaml", "dataset to load in seed mode")
	flag.Parse()

	cfg := config.LoadConfig()
	if cfg.DBURL == "" && cfg.DBHost == "" {
		log.Fatal("DB_URL or DB_HOST not set in environment")
	}

	database := db.InitDB(cfg)
	defer database.Close()

	if err := run(database, *mode, "./migrations", *file); err != nil {
		log.Fatal(err)
	}
}

func run(db *sql.DB, mode, migrationsDir, seedFile string) error {
	if mode == "seed" {
		categories, err := loadDataset(seedFile)
		if err != nil {
			return err
		}
		return seedCatalog(db, categories)
	}

	// Ensure schema_migrations table exists
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}
	slices.Sort(files)

	switch mode {
	case "up":
		return runMigrationsUp(db, files)
	case "down":
		return runMigrationsDown(db, files)
	default:
		return fmt.Errorf("unknown mode: %s (use 'up', 'down' or 'seed')", mode)
	}
}

func runMigrationsUp(db *sql.DB, files []string) error {
	for _, file := range files {
		version := filepath.Base(file)

		var exists bool
		err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			fmt.Printf("⏭ Skipping already applied migration: %s\n", version)
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		upSQL := extractMigrationPart(string(content), "Up")
		fmt.Printf("🚀 Applying migration: %s\n", version)

		if _, err := db.Exec(upSQL); err != nil {
			return fmt.Errorf("migration failed (%s): %w", version, err)
		}

		_, err = db.Exec(`INSERT INTO schema_migrations (version) VALUES ($1)`, version)
		if err != nil {
			return fmt.Errorf("failed to record migration version: %w", err)
		}
	}
	fmt.Println("✅ All new migrations applied successfully.")
	return nil
}

func runMigrationsDown(db *sql.DB, files []string) error {
	var lastVersion string
	err := db.QueryRow(`SELECT version FROM schema_migrations ORDER BY applied_at DESC LIMIT 1`).Scan(&lastVersion)
	if errors.Is(err, sql.ErrNoRows) {
		fmt.Println("⚠️  No migrations to roll back.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get last applied migration: %w", err)
	}

	idx := slices.IndexFunc(files, func(f string) bool { return filepath.Base(f) == lastVersion })
	if idx < 0 {
		return fmt.Errorf("migration file not found for version: %s", lastVersion)
	}
	filePath := files[idx]

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	downSQL := extractMigrationPart(string(content), "Down")
	fmt.Printf("🧹 Rolling back migration: %s\n", lastVersion)

	if _, err := db.Exec(downSQL); err != nil {
		return fmt.Errorf("rollback failed (%s): %w", filePath, err)
	}

	_, err = db.Exec(`DELETE FROM schema_migrations WHERE version = $1`, lastVersion)
	if err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}

	fmt.Println("✅ Rollback successful.")
	return nil
}

func extractMigrationPart(content string, section string) string {
	var part strings.Builder
	var inPart bool

	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "-- +migrate "+section) {
			inPart = true
			continue
		}
		if inPart && strings.HasPrefix(line, "-- +migrate") {
			break
		}
		if inPart {
			part.WriteString(line + "\n")
		}
	}
	return part.String()
}

func loadDataset(path string) ([]portfolio.Category, error) {
	categories, err := catalog.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := portfolio.Validate(categories); err != nil {
		return nil, fmt.Errorf("invalid dataset %s: %w", path, err)
	}
	return categories, nil
}

// seedCatalog replaces the catalog tables with categories. Slice order is
// stored in the position columns.
func seedCatalog(db *sql.DB, categories []portfolio.Category) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM projects`); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}
	if _, err = tx.Exec(`DELETE FROM categories`); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}

	projects := 0
	for i, c := range categories {
		_, err = tx.Exec(
			`INSERT INTO categories (id, name, description, position) VALUES ($1, $2, $3, $4)`,
			c.ID, c.Name, c.Description, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert category %s: %w", c.ID, err)
		}

		for j, p := range c.Projects {
			_, err = tx.Exec(`
				INSERT INTO projects
					(category_id, id, title, description, tags, skills, is_award, github_url, live_url, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				c.ID, p.ID, p.Title, p.Description,
				pq.Array(p.Tags), pq.Array(p.Skills), p.IsAward,
				nullString(p.GitHubURL), nullString(p.LiveURL), j,
			)
			if err != nil {
				return fmt.Errorf("failed to insert project %s/%s: %w", c.ID, p.ID, err)
			}
			projects++
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	fmt.Printf("🌱 Seeded %d categories, %d projects.\n", len(categories), projects)
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
