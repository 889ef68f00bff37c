package repositories

import (
	"context"
	"fmt"

	"github.com/stacdex/stacdex/internal/apperrors"
)

// schemaDDL bootstraps the tables this subsystem owns. Users are managed by
// the auth service; items.user_id is a plain column here.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS categories (
	id SERIAL PRIMARY KEY,
	name TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS status (
	id SERIAL PRIMARY KEY,
	name TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS grading_companies (
	id SERIAL PRIMARY KEY,
	name TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS conditions (
	id SERIAL PRIMARY KEY,
	name TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	category_id INTEGER REFERENCES categories(id),
	status_id INTEGER REFERENCES status(id),
	grading_company_id INTEGER REFERENCES grading_companies(id),
	condition_id INTEGER REFERENCES conditions(id),
	date_listed DATE,
	date_sold DATE,
	ebay_url TEXT,
	tags TEXT[],
	image_url TEXT,
	price_listed NUMERIC(12,2),
	market_value NUMERIC(12,2),
	player_name TEXT,
	team_name TEXT,
	year INTEGER,
	rookie BOOLEAN NOT NULL DEFAULT FALSE,
	brand TEXT,
	sub_brand TEXT,
	patch_count INTEGER,
	numbered_to INTEGER,
	autograph BOOLEAN NOT NULL DEFAULT FALSE,
	grade_value NUMERIC(4,1),
	date_created TIMESTAMP NOT NULL DEFAULT NOW()
);
`

// LookupFixtures is the seedable content of the four reference tables.
type LookupFixtures struct {
	Categories       []string `yaml:"categories"`
	Statuses         []string `yaml:"statuses"`
	GradingCompanies []string `yaml:"grading_companies"`
	Conditions       []string `yaml:"conditions"`
}

// EnsureSchema creates the lookup and items tables if they are missing
func (r *DBRepository) EnsureSchema(ctx context.Context) *apperrors.AppError {
	if _, err := r.db.ExecContext(ctx, schemaDDL); err != nil {
		return apperrors.Wrap(err, apperrors.ErrDatabase, "failed to create schema")
	}
	return nil
}

// SeedLookups inserts the fixture names into the reference tables. Existing
// names are left untouched, so seeding is idempotent.
func (r *DBRepository) SeedLookups(ctx context.Context, fixtures LookupFixtures) *apperrors.AppError {
	tables := []struct {
		table string
		names []string
	}{
		{"categories", fixtures.Categories},
		{"status", fixtures.Statuses},
		{"grading_companies", fixtures.GradingCompanies},
		{"conditions", fixtures.Conditions},
	}

	for _, t := range tables {
		query := fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) ON CONFLICT (name) DO NOTHING;`, t.table)
		for _, name := range t.names {
			if _, err := r.db.ExecContext(ctx, query, name); err != nil {
				return apperrors.Wrap(err, apperrors.ErrDatabase, fmt.Sprintf("failed to seed %s", t.table))
			}
		}
	}
	return nil
}
