package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied at startup. Statements are idempotent so restarts are
// safe without a separate migration step.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username       TEXT NOT NULL UNIQUE,
		full_name      TEXT NOT NULL,
		email          TEXT NOT NULL UNIQUE,
		password_hash  TEXT NOT NULL,
		avatar_asset_id TEXT NOT NULL DEFAULT '',
		avatar_url     TEXT NOT NULL DEFAULT '',
		cover_asset_id TEXT NOT NULL DEFAULT '',
		cover_url      TEXT NOT NULL DEFAULT '',
		watch_history  UUID[] NOT NULL DEFAULT '{}',
		refresh_token  TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS videos (
		id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title          TEXT NOT NULL,
		description    TEXT NOT NULL,
		video_asset_id TEXT NOT NULL,
		video_url      TEXT NOT NULL,
		thumb_asset_id TEXT NOT NULL,
		thumb_url      TEXT NOT NULL,
		owner_id       UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		is_published   BOOLEAN NOT NULL DEFAULT TRUE,
		duration       DOUBLE PRECISION NOT NULL DEFAULT 0,
		views          BIGINT NOT NULL DEFAULT 0,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_videos_owner ON videos(owner_id)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		content    TEXT NOT NULL,
		video_id   UUID NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
		owner_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_video ON comments(video_id)`,

	`CREATE TABLE IF NOT EXISTS tweets (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		content    TEXT NOT NULL,
		owner_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tweets_owner ON tweets(owner_id)`,

	`CREATE TABLE IF NOT EXISTS playlists (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name        TEXT NOT NULL,
		description TEXT NOT NULL,
		owner_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		videos      UUID[] NOT NULL DEFAULT '{}',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_playlists_owner ON playlists(owner_id)`,

	`CREATE TABLE IF NOT EXISTS subscriptions (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		subscriber_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		channel_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (subscriber_id, channel_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_subscriptions_channel ON subscriptions(channel_id)`,

	// One row per (actor, target); kind says like or dislike. The unique
	// constraint is what makes the mutual-exclusivity invariant hold even
	// under concurrent toggles.
	`CREATE TABLE IF NOT EXISTS reactions (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id     UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		kind        TEXT NOT NULL CHECK (kind IN ('like', 'dislike')),
		target_kind TEXT NOT NULL CHECK (target_kind IN ('video', 'comment', 'tweet')),
		target_id   UUID NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, target_kind, target_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reactions_target ON reactions(target_kind, target_id)`,
}

// Migrate creates all tables and indexes if they do not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
