package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// ApplySchema runs the embedded DDL files in name order. Every statement is
// written to be re-runnable.
func ApplySchema(ctx context.Context, db DBTX) error {
	entries, err := fs.ReadDir(schemaFS, "schema")
	if err != nil {
		return fmt.Errorf("failed to read schema dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		ddl, err := schemaFS.ReadFile("schema/" + name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if _, err := db.Exec(ctx, string(ddl)); err != nil {
			return fmt.Errorf("failed to apply %s: %w", name, err)
		}
		slog.Debug("schema applied", "file", name)
	}
	return nil
}
