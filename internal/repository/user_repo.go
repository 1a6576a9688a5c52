package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sukomal07/videohub/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, username, full_name, email, password_hash,
	avatar_asset_id, avatar_url, cover_asset_id, cover_url,
	watch_history::text[], refresh_token, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Username, &u.FullName, &u.Email, &u.PasswordHash,
		&u.AvatarAssetID, &u.AvatarURL, &u.CoverAssetID, &u.CoverURL,
		&u.WatchHistory, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. Username and email uniqueness violations
// surface as Conflict.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (username, full_name, email, password_hash,
			avatar_asset_id, avatar_url, cover_asset_id, cover_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		u.Username, u.FullName, u.Email, u.PasswordHash,
		u.AvatarAssetID, u.AvatarURL, u.CoverAssetID, u.CoverURL,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	return translate(err, "create user")
}

// FindByID returns a single user by id.
func (r *UserRepo) FindByID(ctx context.Context, userID string) (*model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
	if err != nil {
		return nil, translate(err, "user")
	}
	return u, nil
}

// FindByUsername returns a single user by their case-normalized username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return nil, translate(err, "channel")
	}
	return u, nil
}

// FindByLogin returns a user matching either username or email.
func (r *UserRepo) FindByLogin(ctx context.Context, username, email string) (*model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $2`,
		username, email))
	if err != nil {
		return nil, translate(err, "user")
	}
	return u, nil
}

// UpdateProfile sets the mutable profile fields.
func (r *UserRepo) UpdateProfile(ctx context.Context, userID, fullName, email string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET full_name = $1, email = $2, updated_at = NOW()
		WHERE id = $3`, fullName, email, userID)
	if err != nil {
		return translate(err, "update profile")
	}
	if tag.RowsAffected() == 0 {
		return translate(errNoRows(), "user")
	}
	return nil
}

// UpdatePassword replaces the stored credential hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = NOW()
		WHERE id = $2`, passwordHash, userID)
	return translate(err, "update password")
}

// UpdateRefreshToken stores the single active refresh token. Pass the
// empty string to clear it (logout).
func (r *UserRepo) UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET refresh_token = $1, updated_at = NOW()
		WHERE id = $2`, refreshToken, userID)
	return translate(err, "update refresh token")
}

// UpdateAvatar replaces the avatar asset reference.
func (r *UserRepo) UpdateAvatar(ctx context.Context, userID, assetID, url string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET avatar_asset_id = $1, avatar_url = $2, updated_at = NOW()
		WHERE id = $3`, assetID, url, userID)
	return translate(err, "update avatar")
}

// UpdateCover replaces the cover image asset reference.
func (r *UserRepo) UpdateCover(ctx context.Context, userID, assetID, url string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET cover_asset_id = $1, cover_url = $2, updated_at = NOW()
		WHERE id = $3`, assetID, url, userID)
	return translate(err, "update cover")
}

// GetWatchHistory returns the stored history list, most recent first.
func (r *UserRepo) GetWatchHistory(ctx context.Context, userID string) ([]string, error) {
	var history []string
	err := r.pool.QueryRow(ctx,
		`SELECT watch_history::text[] FROM users WHERE id = $1`, userID).Scan(&history)
	if err != nil {
		return nil, translate(err, "user")
	}
	return history, nil
}

// SetWatchHistory writes the full history list back in one row update.
func (r *UserRepo) SetWatchHistory(ctx context.Context, userID string, history []string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET watch_history = $1::uuid[], updated_at = NOW()
		WHERE id = $2`, history, userID)
	return translate(err, "set watch history")
}

// SearchUsers matches users whose username or full name contains the
// query, case-insensitively, each with a derived subscriber count.
func (r *UserRepo) SearchUsers(ctx context.Context, query string) ([]model.SearchUserHit, error) {
	sql := `
		SELECT u.id, u.username, u.full_name, u.avatar_url,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id)
		FROM users u
		WHERE u.username ILIKE '%' || $1 || '%'
		   OR u.full_name ILIKE '%' || $1 || '%'`

	rows, err := r.pool.Query(ctx, sql, query)
	if err != nil {
		return nil, translate(err, "search users")
	}
	defer rows.Close()

	hits := []model.SearchUserHit{}
	for rows.Next() {
		var h model.SearchUserHit
		err := rows.Scan(&h.ID, &h.Username, &h.FullName, &h.AvatarURL, &h.TotalSubscribers)
		if err != nil {
			return nil, translate(err, "search users")
		}
		hits = append(hits, h)
	}
	return hits, translate(rows.Err(), "search users")
}

// Delete removes the user row. Owned videos, comments, tweets, playlists,
// subscriptions and given reactions go with it via foreign keys; reactions
// held by other users against the deleted user's content, and stale watch
// history or playlist entries for the deleted user's videos, are removed
// explicitly in the same transaction.
func (r *UserRepo) Delete(ctx context.Context, userID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return translate(err, "delete user")
	}
	defer tx.Rollback(ctx)

	steps := []string{
		`DELETE FROM reactions
		 WHERE target_kind = 'video'
		   AND target_id IN (SELECT id FROM videos WHERE owner_id = $1)`,
		`DELETE FROM reactions
		 WHERE target_kind = 'comment'
		   AND target_id IN (
			SELECT id FROM comments
			WHERE owner_id = $1
			   OR video_id IN (SELECT id FROM videos WHERE owner_id = $1))`,
		`DELETE FROM reactions
		 WHERE target_kind = 'tweet'
		   AND target_id IN (SELECT id FROM tweets WHERE owner_id = $1)`,
		`UPDATE users u SET watch_history = COALESCE(
			(SELECT array_agg(v ORDER BY ord)
			 FROM unnest(u.watch_history) WITH ORDINALITY AS t(v, ord)
			 WHERE v NOT IN (SELECT id FROM videos WHERE owner_id = $1)), '{}')
		 WHERE EXISTS (
			SELECT 1 FROM unnest(u.watch_history) v
			WHERE v IN (SELECT id FROM videos WHERE owner_id = $1))`,
		`UPDATE playlists p SET videos = COALESCE(
			(SELECT array_agg(v ORDER BY ord)
			 FROM unnest(p.videos) WITH ORDINALITY AS t(v, ord)
			 WHERE v NOT IN (SELECT id FROM videos WHERE owner_id = $1)), '{}')
		 WHERE EXISTS (
			SELECT 1 FROM unnest(p.videos) v
			WHERE v IN (SELECT id FROM videos WHERE owner_id = $1))`,
	}
	for _, stmt := range steps {
		if _, err := tx.Exec(ctx, stmt, userID); err != nil {
			return translate(err, "delete user")
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return translate(err, "delete user")
	}
	if tag.RowsAffected() == 0 {
		return translate(errNoRows(), "user")
	}

	return translate(tx.Commit(ctx), "delete user")
}

// OwnedAssetIDs returns every asset id referenced by the user's profile
// and videos, for cleanup before account deletion.
func (r *UserRepo) OwnedAssetIDs(ctx context.Context, userID string) ([]string, error) {
	var assets []string

	var avatarID, coverID string
	err := r.pool.QueryRow(ctx,
		`SELECT avatar_asset_id, cover_asset_id FROM users WHERE id = $1`,
		userID).Scan(&avatarID, &coverID)
	if err != nil {
		return nil, translate(err, "user")
	}
	for _, id := range []string{avatarID, coverID} {
		if id != "" {
			assets = append(assets, id)
		}
	}

	rows, err := r.pool.Query(ctx,
		`SELECT video_asset_id, thumb_asset_id FROM videos WHERE owner_id = $1`, userID)
	if err != nil {
		return nil, translate(err, "user assets")
	}
	defer rows.Close()

	for rows.Next() {
		var videoID, thumbID string
		if err := rows.Scan(&videoID, &thumbID); err != nil {
			return nil, translate(err, "user assets")
		}
		assets = append(assets, videoID, thumbID)
	}
	return assets, translate(rows.Err(), "user assets")
}
