package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"storebot/internal/model"
)

// Seed inserts the default site settings, skipping keys that already exist
// so re-running startup never clobbers operator edits.
func Seed(ctx context.Context, db *sql.DB) error {
	seeded := 0
	for _, key := range model.SettingKeyOrder {
		res, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO site_settings (key, value) VALUES (?, ?)`,
			key, model.DefaultSettings[key])
		if err != nil {
			return fmt.Errorf("seeding setting %q: %w", key, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			seeded += int(n)
		}
	}
	if seeded > 0 {
		slog.Info("seeded default site settings", "count", seeded)
	}
	return nil
}
