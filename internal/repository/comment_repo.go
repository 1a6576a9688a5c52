package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sukomal07/videohub/internal/model"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

// Create inserts a new comment on a video.
func (r *CommentRepo) Create(ctx context.Context, c *model.Comment) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO comments (content, video_id, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		c.Content, c.VideoID, c.OwnerID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return translate(err, "create comment")
}

// FindByID returns a single comment by id.
func (r *CommentRepo) FindByID(ctx context.Context, commentID string) (*model.Comment, error) {
	var c model.Comment
	err := r.pool.QueryRow(ctx, `
		SELECT id, content, video_id, owner_id, created_at, updated_at
		FROM comments WHERE id = $1`, commentID,
	).Scan(&c.ID, &c.Content, &c.VideoID, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, translate(err, "comment")
	}
	return &c, nil
}

// Update replaces the comment content.
func (r *CommentRepo) Update(ctx context.Context, commentID, content string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE comments SET content = $1, updated_at = NOW()
		WHERE id = $2`, content, commentID)
	if err != nil {
		return translate(err, "update comment")
	}
	if tag.RowsAffected() == 0 {
		return translate(errNoRows(), "comment")
	}
	return nil
}

// ListByVideo returns a video's comments with their authors joined in,
// oldest first.
func (r *CommentRepo) ListByVideo(ctx context.Context, videoID string) ([]model.CommentWithOwner, error) {
	query := `
		SELECT c.id, c.content, c.video_id, c.owner_id, c.created_at, c.updated_at,
		       u.id, u.username, u.full_name, u.avatar_url, u.created_at
		FROM comments c
		JOIN users u ON u.id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at ASC`

	rows, err := r.pool.Query(ctx, query, videoID)
	if err != nil {
		return nil, translate(err, "list comments")
	}
	defer rows.Close()

	comments := []model.CommentWithOwner{}
	for rows.Next() {
		var c model.CommentWithOwner
		err := rows.Scan(
			&c.ID, &c.Content, &c.VideoID, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt,
			&c.Owner.ID, &c.Owner.Username, &c.Owner.FullName, &c.Owner.AvatarURL,
			&c.Owner.CreatedAt,
		)
		if err != nil {
			return nil, translate(err, "list comments")
		}
		comments = append(comments, c)
	}
	return comments, translate(rows.Err(), "list comments")
}

// Delete removes the comment and any reactions referencing it.
func (r *CommentRepo) Delete(ctx context.Context, commentID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return translate(err, "delete comment")
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM reactions
		WHERE target_kind = 'comment' AND target_id = $1::uuid`, commentID)
	if err != nil {
		return translate(err, "delete comment")
	}

	tag, err := tx.Exec(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return translate(err, "delete comment")
	}
	if tag.RowsAffected() == 0 {
		return translate(errNoRows(), "comment")
	}

	return translate(tx.Commit(ctx), "delete comment")
}
