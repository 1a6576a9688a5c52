package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sukomal07/videohub/internal/model"
)

type TweetRepo struct {
	pool *pgxpool.Pool
}

func NewTweetRepo(pool *pgxpool.Pool) *TweetRepo {
	return &TweetRepo{pool: pool}
}

// Create inserts a new tweet.
func (r *TweetRepo) Create(ctx context.Context, t *model.Tweet) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tweets (content, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`,
		t.Content, t.OwnerID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return translate(err, "create tweet")
}

// FindByID returns a single tweet by id.
func (r *TweetRepo) FindByID(ctx context.Context, tweetID string) (*model.Tweet, error) {
	var t model.Tweet
	err := r.pool.QueryRow(ctx, `
		SELECT id, content, owner_id, created_at, updated_at
		FROM tweets WHERE id = $1`, tweetID,
	).Scan(&t.ID, &t.Content, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, translate(err, "tweet")
	}
	return &t, nil
}

// Update replaces the tweet content.
func (r *TweetRepo) Update(ctx context.Context, tweetID, content string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE tweets SET content = $1, updated_at = NOW()
		WHERE id = $2`, content, tweetID)
	if err != nil {
		return translate(err, "update tweet")
	}
	if tag.RowsAffected() == 0 {
		return translate(errNoRows(), "tweet")
	}
	return nil
}

// ListByOwner returns the owner's tweets, newest first.
func (r *TweetRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Tweet, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, content, owner_id, created_at, updated_at
		FROM tweets
		WHERE owner_id = $1
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, translate(err, "list tweets")
	}
	defer rows.Close()

	tweets := []model.Tweet{}
	for rows.Next() {
		var t model.Tweet
		err := rows.Scan(&t.ID, &t.Content, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, translate(err, "list tweets")
		}
		tweets = append(tweets, t)
	}
	return tweets, translate(rows.Err(), "list tweets")
}

// Delete removes the tweet and any reactions referencing it.
func (r *TweetRepo) Delete(ctx context.Context, tweetID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return translate(err, "delete tweet")
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM reactions
		WHERE target_kind = 'tweet' AND target_id = $1::uuid`, tweetID)
	if err != nil {
		return translate(err, "delete tweet")
	}

	tag, err := tx.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, tweetID)
	if err != nil {
		return translate(err, "delete tweet")
	}
	if tag.RowsAffected() == 0 {
		return translate(errNoRows(), "tweet")
	}

	return translate(tx.Commit(ctx), "delete tweet")
}
