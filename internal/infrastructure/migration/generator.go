package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vnstore/paycore/internal/shared/logger"
)

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator creates empty migration files for both script layouts.
type Generator struct {
	scriptsPath      string
	gooseScriptsPath string
	logger           logger.Interface
	now              func() time.Time
}

func NewGenerator(scriptsPath, gooseScriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath:      scriptsPath,
		gooseScriptsPath: gooseScriptsPath,
		logger:           log.With("component", "migration.generator"),
		now:              time.Now,
	}
}

// CreateMigration writes NNNNNN_name.up.sql / .down.sql for golang-migrate
// and NNNNN_name.sql for goose, numbered after the highest existing version.
func (g *Generator) CreateMigration(name string) ([]string, error) {
	if !migrationNamePattern.MatchString(name) {
		return nil, fmt.Errorf("migration name must be snake_case, got %q", name)
	}

	next, err := nextVersion(g.scriptsPath)
	if err != nil {
		return nil, err
	}

	created := g.now().Format("2006-01-02 15:04:05")
	files := []struct {
		path    string
		content string
	}{
		{
			path:    filepath.Join(g.scriptsPath, fmt.Sprintf("%06d_%s.up.sql", next, name)),
			content: fmt.Sprintf("-- Migration: %s\n-- Created: %s\n\n", name, created),
		},
		{
			path:    filepath.Join(g.scriptsPath, fmt.Sprintf("%06d_%s.down.sql", next, name)),
			content: fmt.Sprintf("-- Rollback: %s\n-- Created: %s\n\n", name, created),
		},
		{
			path:    filepath.Join(g.gooseScriptsPath, fmt.Sprintf("%05d_%s.sql", next, name)),
			content: fmt.Sprintf("-- Migration: %s\n-- Created: %s\n\n-- +goose Up\n\n-- +goose Down\n", name, created),
		},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create scripts directory: %w", err)
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.path, err)
		}
		paths = append(paths, f.path)
	}

	g.logger.Infow("migration files created", "name", name, "version", next, "files", paths)
	return paths, nil
}

func nextVersion(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("failed to read scripts directory: %w", err)
	}
	highest := 0
	for _, e := range entries {
		prefix, _, ok := strings.Cut(e.Name(), "_")
		if e.IsDir() || !ok {
			continue
		}
		if v, err := strconv.Atoi(prefix); err == nil && v > highest {
			highest = v
		}
	}
	return highest + 1, nil
}
