package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"bookshelf/internal/rating"

	"github.com/pressly/goose/v3"
)

func repoMigrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// cmd/migrate -> repo root
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "db", "migrations")
}

func TestCollectMigrations_ParsesMigrationsDir(t *testing.T) {
	if _, err := goose.CollectMigrations(repoMigrationsDir(t), 0, goose.MaxVersion); err != nil {
		t.Fatalf("expected migrations to parse, got error: %v", err)
	}
}

func TestSQLMigrations_HaveGooseDirectives(t *testing.T) {
	dir := repoMigrationsDir(t)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", e.Name(), err)
		}
		for _, directive := range []string{"-- +goose Up", "-- +goose Down"} {
			if !strings.Contains(string(b), directive) {
				t.Errorf("%s missing %q", e.Name(), directive)
			}
		}
	}
}

func TestBooksMigration_RatingCheckMatchesBounds(t *testing.T) {
	b, err := os.ReadFile(filepath.Join(repoMigrationsDir(t), "00001_create_books.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	want := fmt.Sprintf("CHECK (rating BETWEEN %d AND %d)", rating.MinRating, rating.MaxRating)
	if !strings.Contains(string(b), want) {
		t.Errorf("books migration does not contain %q", want)
	}
}
