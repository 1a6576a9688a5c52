package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sukomal07/videohub/internal/model"
)

type SubscriptionRepo struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepo(pool *pgxpool.Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

// Exists reports whether subscriber currently follows channel.
func (r *SubscriptionRepo) Exists(ctx context.Context, subscriberID, channelID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM subscriptions
			WHERE subscriber_id = $1 AND channel_id = $2)`,
		subscriberID, channelID).Scan(&exists)
	return exists, translate(err, "subscription")
}

// Create inserts the (subscriber, channel) edge. A duplicate pair
// surfaces as Conflict via the unique constraint.
func (r *SubscriptionRepo) Create(ctx context.Context, subscriberID, channelID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO subscriptions (subscriber_id, channel_id)
		VALUES ($1, $2)`, subscriberID, channelID)
	return translate(err, "subscribe")
}

// Delete removes the edge and reports whether it existed.
func (r *SubscriptionRepo) Delete(ctx context.Context, subscriberID, channelID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM subscriptions
		WHERE subscriber_id = $1 AND channel_id = $2`, subscriberID, channelID)
	if err != nil {
		return false, translate(err, "unsubscribe")
	}
	return tag.RowsAffected() > 0, nil
}

// CountForChannel returns how many users follow the channel.
func (r *SubscriptionRepo) CountForChannel(ctx context.Context, channelID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`,
		channelID).Scan(&n)
	return n, translate(err, "subscriber count")
}

// CountForSubscriber returns how many channels the user follows.
func (r *SubscriptionRepo) CountForSubscriber(ctx context.Context, subscriberID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1`,
		subscriberID).Scan(&n)
	return n, translate(err, "subscription count")
}

// ListFollowings returns the channels a user follows, each resolved to
// its public profile, most recently followed first.
func (r *SubscriptionRepo) ListFollowings(ctx context.Context, subscriberID string) ([]model.Following, error) {
	query := `
		SELECT u.id, u.username, u.full_name, u.avatar_url, u.created_at,
		       s.created_at
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.pool.Query(ctx, query, subscriberID)
	if err != nil {
		return nil, translate(err, "followings")
	}
	defer rows.Close()

	followings := []model.Following{}
	for rows.Next() {
		var f model.Following
		err := rows.Scan(&f.Channel.ID, &f.Channel.Username, &f.Channel.FullName,
			&f.Channel.AvatarURL, &f.Channel.CreatedAt, &f.SubscribedAt)
		if err != nil {
			return nil, translate(err, "followings")
		}
		followings = append(followings, f)
	}
	return followings, translate(rows.Err(), "followings")
}
