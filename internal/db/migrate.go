package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are idempotent schema statements re-run on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS farm_states (
		session_id          TEXT PRIMARY KEY,
		crop                TEXT NOT NULL DEFAULT '',
		location            TEXT NOT NULL DEFAULT '',
		sowing_date         TEXT NOT NULL DEFAULT '',
		current_day_index   INTEGER NOT NULL DEFAULT 0,
		current_crop_stage  TEXT NOT NULL DEFAULT '',
		weather_risk        TEXT NOT NULL DEFAULT 'CLEAR',
		last_advisory       TEXT NOT NULL DEFAULT '',
		expected_pattern    TEXT NOT NULL DEFAULT '',
		soil_context        TEXT NOT NULL DEFAULT '{}',
		weather_forecast    TEXT NOT NULL DEFAULT '{}',
		weather_history     TEXT NOT NULL DEFAULT '[]',
		crop_calendar       TEXT NOT NULL DEFAULT '[]',
		today_actions       TEXT NOT NULL DEFAULT '[]',
		completed_actions   TEXT NOT NULL DEFAULT '[]',
		skipped_actions     TEXT NOT NULL DEFAULT '[]',
		delayed_actions     TEXT NOT NULL DEFAULT '[]',
		risk_events         TEXT NOT NULL DEFAULT '[]',
		risk_event          TEXT,
		confidence_scores   TEXT NOT NULL DEFAULT '{}',
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS market_prices (
		id          TEXT PRIMARY KEY,
		crop        TEXT NOT NULL,
		state       TEXT NOT NULL,
		month       INTEGER NOT NULL CHECK(month BETWEEN 1 AND 12),
		year        INTEGER NOT NULL,
		min_price   INTEGER NOT NULL,
		max_price   INTEGER NOT NULL,
		modal_price INTEGER NOT NULL,
		source      TEXT NOT NULL DEFAULT '',
		fetched_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_market_prices_crop_state
		ON market_prices(crop, state, year DESC, month DESC)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// ALTER TABLE statements added later may re-run against an
			// already-upgraded schema.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
