package repository

import (
	"context"
	"fmt"
)

// user_id has no foreign key: accounts live in the users service database
var housesSchema = []string{`
CREATE TABLE IF NOT EXISTS houses (
	id            UUID PRIMARY KEY,
	owner_id      UUID NOT NULL,
	name          TEXT NOT NULL,
	location      TEXT NOT NULL,
	price         DOUBLE PRECISION NOT NULL CHECK (price > 0),
	bedrooms      INTEGER NOT NULL DEFAULT 0,
	description   TEXT NOT NULL DEFAULT '',
	image_url     TEXT NOT NULL DEFAULT '',
	images        TEXT NOT NULL DEFAULT '[]',
	contact_phone TEXT NOT NULL DEFAULT '',
	contact_email TEXT NOT NULL DEFAULT '',
	latitude      DOUBLE PRECISION,
	longitude     DOUBLE PRECISION,
	geohash       TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS favorites (
	user_id    UUID NOT NULL,
	house_id   UUID NOT NULL REFERENCES houses(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (user_id, house_id)
)`, `
CREATE INDEX IF NOT EXISTS favorites_user_created_idx ON favorites (user_id, created_at DESC)`,
}

// InitSchema creates the houses and favorites tables when they do not exist yet
func (r *HouseRepo) InitSchema(ctx context.Context) error {
	for _, stmt := range housesSchema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize houses schema: %w", err)
		}
	}
	return nil
}
