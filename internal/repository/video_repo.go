package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sukomal07/videohub/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

const videoColumns = `id, title, description, video_asset_id, video_url,
	thumb_asset_id, thumb_url, owner_id, is_published, duration, views,
	created_at, updated_at`

func scanVideo(row interface{ Scan(...any) error }) (*model.Video, error) {
	var v model.Video
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.VideoAssetID, &v.VideoURL,
		&v.ThumbAssetID, &v.ThumbURL, &v.OwnerID, &v.IsPublished,
		&v.Duration, &v.Views, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserts a new video.
func (r *VideoRepo) Create(ctx context.Context, v *model.Video) error {
	query := `
		INSERT INTO videos (title, description, video_asset_id, video_url,
			thumb_asset_id, thumb_url, owner_id, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, is_published, views, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		v.Title, v.Description, v.VideoAssetID, v.VideoURL,
		v.ThumbAssetID, v.ThumbURL, v.OwnerID, v.Duration,
	).Scan(&v.ID, &v.IsPublished, &v.Views, &v.CreatedAt, &v.UpdatedAt)
	return translate(err, "create video")
}

// FindByID returns a single video by id.
func (r *VideoRepo) FindByID(ctx context.Context, videoID string) (*model.Video, error) {
	v, err := scanVideo(r.pool.QueryRow(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE id = $1`, videoID))
	if err != nil {
		return nil, translate(err, "video")
	}
	return v, nil
}

// Update sets the editable metadata fields.
func (r *VideoRepo) Update(ctx context.Context, videoID, title, description string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE videos SET title = $1, description = $2, updated_at = NOW()
		WHERE id = $3`, title, description, videoID)
	if err != nil {
		return translate(err, "update video")
	}
	if tag.RowsAffected() == 0 {
		return translate(errNoRows(), "video")
	}
	return nil
}

// TogglePublish flips the publication flag and returns the new value.
func (r *VideoRepo) TogglePublish(ctx context.Context, videoID string) (bool, error) {
	var published bool
	err := r.pool.QueryRow(ctx, `
		UPDATE videos SET is_published = NOT is_published, updated_at = NOW()
		WHERE id = $1
		RETURNING is_published`, videoID).Scan(&published)
	if err != nil {
		return false, translate(err, "video")
	}
	return published, nil
}

// IncrementViews adds one view. Views are a stored counter on the video
// row itself, not a derived count.
func (r *VideoRepo) IncrementViews(ctx context.Context, videoID string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE videos SET views = views + 1 WHERE id = $1`, videoID)
	return translate(err, "increment views")
}

// ListPublished returns all published videos with owner display fields.
func (r *VideoRepo) ListPublished(ctx context.Context) ([]model.VideoSummary, error) {
	query := `
		SELECT v.id, v.title, v.thumb_url, v.video_url, v.duration, v.views,
		       v.created_at, v.owner_id, u.full_name, u.avatar_url
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE v.is_published = true
		ORDER BY v.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "list videos")
	}
	defer rows.Close()

	summaries := []model.VideoSummary{}
	for rows.Next() {
		var s model.VideoSummary
		err := rows.Scan(&s.ID, &s.Title, &s.ThumbURL, &s.VideoURL, &s.Duration,
			&s.Views, &s.CreatedAt, &s.OwnerID, &s.OwnerName, &s.OwnerAvatar)
		if err != nil {
			return nil, translate(err, "list videos")
		}
		summaries = append(summaries, s)
	}
	return summaries, translate(rows.Err(), "list videos")
}

// ListByOwner returns the owner's videos, newest first, restricted fields.
func (r *VideoRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.VideoSummary, error) {
	query := `
		SELECT id, title, thumb_url, video_url, duration, views, created_at
		FROM videos
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, translate(err, "channel videos")
	}
	defer rows.Close()

	summaries := []model.VideoSummary{}
	for rows.Next() {
		var s model.VideoSummary
		err := rows.Scan(&s.ID, &s.Title, &s.ThumbURL, &s.VideoURL,
			&s.Duration, &s.Views, &s.CreatedAt)
		if err != nil {
			return nil, translate(err, "channel videos")
		}
		summaries = append(summaries, s)
	}
	return summaries, translate(rows.Err(), "channel videos")
}

// OwnerTotals returns the video count and summed views for a channel
// owner. Zero owned videos yields zeros, not an error.
func (r *VideoRepo) OwnerTotals(ctx context.Context, ownerID string) (count int, views int64, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(views), 0)
		FROM videos
		WHERE owner_id = $1`, ownerID).Scan(&count, &views)
	return count, views, translate(err, "channel stats")
}

// ResolveInOrder returns the videos for the given ids, joined with owner
// display fields, in the order the ids appear in the input list. Ids that
// no longer resolve are skipped.
func (r *VideoRepo) ResolveInOrder(ctx context.Context, ids []string) ([]model.VideoSummary, error) {
	if len(ids) == 0 {
		return []model.VideoSummary{}, nil
	}

	query := `
		SELECT v.id, v.title, v.thumb_url, v.video_url, v.duration, v.views,
		       v.created_at, u.full_name, u.avatar_url
		FROM unnest($1::uuid[]) WITH ORDINALITY AS m(id, ord)
		JOIN videos v ON v.id = m.id
		JOIN users u ON u.id = v.owner_id
		ORDER BY m.ord`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, translate(err, "resolve videos")
	}
	defer rows.Close()

	videos := []model.VideoSummary{}
	for rows.Next() {
		var s model.VideoSummary
		err := rows.Scan(&s.ID, &s.Title, &s.ThumbURL, &s.VideoURL, &s.Duration,
			&s.Views, &s.CreatedAt, &s.OwnerName, &s.OwnerAvatar)
		if err != nil {
			return nil, translate(err, "resolve videos")
		}
		videos = append(videos, s)
	}
	return videos, translate(rows.Err(), "resolve videos")
}

// SearchPublished matches published videos whose title contains the query,
// case-insensitively, joined with owner display fields.
func (r *VideoRepo) SearchPublished(ctx context.Context, query string) ([]model.VideoSummary, error) {
	sql := `
		SELECT v.id, v.title, v.thumb_url, v.video_url, v.duration, v.views,
		       v.created_at, u.full_name, u.avatar_url
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE v.is_published = true
		  AND v.title ILIKE '%' || $1 || '%'`

	rows, err := r.pool.Query(ctx, sql, query)
	if err != nil {
		return nil, translate(err, "search videos")
	}
	defer rows.Close()

	summaries := []model.VideoSummary{}
	for rows.Next() {
		var s model.VideoSummary
		err := rows.Scan(&s.ID, &s.Title, &s.ThumbURL, &s.VideoURL, &s.Duration,
			&s.Views, &s.CreatedAt, &s.OwnerName, &s.OwnerAvatar)
		if err != nil {
			return nil, translate(err, "search videos")
		}
		summaries = append(summaries, s)
	}
	return summaries, translate(rows.Err(), "search videos")
}

// Delete removes the video and, in the same transaction, every relation
// row that references it: reactions on the video, comments and the
// reactions on those comments, and any watch history or playlist entry.
func (r *VideoRepo) Delete(ctx context.Context, videoID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return translate(err, "delete video")
	}
	defer tx.Rollback(ctx)

	steps := []string{
		`DELETE FROM reactions
		 WHERE target_kind = 'comment'
		   AND target_id IN (SELECT id FROM comments WHERE video_id = $1)`,
		`DELETE FROM reactions
		 WHERE target_kind = 'video' AND target_id = $1::uuid`,
		`DELETE FROM comments WHERE video_id = $1`,
		`UPDATE users SET watch_history = array_remove(watch_history, $1::uuid)
		 WHERE $1::uuid = ANY(watch_history)`,
		`UPDATE playlists SET videos = array_remove(videos, $1::uuid)
		 WHERE $1::uuid = ANY(videos)`,
	}
	for _, stmt := range steps {
		if _, err := tx.Exec(ctx, stmt, videoID); err != nil {
			return translate(err, "delete video")
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM videos WHERE id = $1`, videoID)
	if err != nil {
		return translate(err, "delete video")
	}
	if tag.RowsAffected() == 0 {
		return translate(errNoRows(), "video")
	}

	return translate(tx.Commit(ctx), "delete video")
}
