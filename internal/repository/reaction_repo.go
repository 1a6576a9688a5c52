package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sukomal07/videohub/internal/apperr"
	"github.com/Sukomal07/videohub/internal/model"
)

type ReactionRepo struct {
	pool *pgxpool.Pool
}

func NewReactionRepo(pool *pgxpool.Pool) *ReactionRepo {
	return &ReactionRepo{pool: pool}
}

// targetTables maps a target kind to the table its existence check runs
// against. Only these three values ever reach the SQL below.
var targetTables = map[model.TargetKind]string{
	model.TargetVideo:   "videos",
	model.TargetComment: "comments",
	model.TargetTweet:   "tweets",
}

// TargetExists verifies the reaction target is a live entity.
func (r *ReactionRepo) TargetExists(ctx context.Context, targetKind model.TargetKind, targetID string) (bool, error) {
	table, ok := targetTables[targetKind]
	if !ok {
		return false, fmt.Errorf("target kind %q: %w", targetKind, apperr.ErrInvalidInput)
	}

	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)
	err := r.pool.QueryRow(ctx, query, targetID).Scan(&exists)
	return exists, translate(err, string(targetKind))
}

// DecideToggle is the reaction toggle state machine, shared by all three
// target kinds: toggling the kind that already exists removes it; any
// other starting state ends with a single reaction of the desired kind.
func DecideToggle(existing *model.ReactionKind, desired model.ReactionKind) model.ToggleState {
	if existing != nil && *existing == desired {
		return model.ToggleRemoved
	}
	return model.ToggleCreated
}

// Toggle flips the actor's reaction on a target. The row for the
// (actor, target) pair is locked for the duration of the transaction, and
// the unique constraint on (user_id, target_kind, target_id) guarantees at
// most one of like/dislike survives any interleaving; a concurrent insert
// that still collides surfaces as Conflict.
func (r *ReactionRepo) Toggle(ctx context.Context, actorID string, targetKind model.TargetKind, targetID string, desired model.ReactionKind) (model.ToggleState, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", translate(err, "toggle reaction")
	}
	defer tx.Rollback(ctx)

	var existing *model.ReactionKind
	var kind model.ReactionKind
	err = tx.QueryRow(ctx, `
		SELECT kind FROM reactions
		WHERE user_id = $1 AND target_kind = $2 AND target_id = $3
		FOR UPDATE`,
		actorID, targetKind, targetID).Scan(&kind)
	switch {
	case err == nil:
		existing = &kind
	case errors.Is(err, pgx.ErrNoRows):
		// no prior reaction
	default:
		return "", translate(err, "toggle reaction")
	}

	state := DecideToggle(existing, desired)
	if state == model.ToggleRemoved {
		_, err = tx.Exec(ctx, `
			DELETE FROM reactions
			WHERE user_id = $1 AND target_kind = $2 AND target_id = $3`,
			actorID, targetKind, targetID)
	} else {
		// Creates the reaction, or repoints an opposite-kind row in place.
		_, err = tx.Exec(ctx, `
			INSERT INTO reactions (user_id, kind, target_kind, target_id)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, target_kind, target_id)
			DO UPDATE SET kind = EXCLUDED.kind, created_at = NOW()`,
			actorID, desired, targetKind, targetID)
	}
	if err != nil {
		return "", translate(err, "toggle reaction")
	}

	if err := tx.Commit(ctx); err != nil {
		return "", translate(err, "toggle reaction")
	}
	return state, nil
}

// ListActors returns the public profiles of users holding a reaction of
// the given kind on the target.
func (r *ReactionRepo) ListActors(ctx context.Context, targetKind model.TargetKind, targetID string, kind model.ReactionKind) ([]model.PublicUser, error) {
	query := `
		SELECT u.id, u.username, u.full_name, u.avatar_url, u.created_at
		FROM reactions re
		JOIN users u ON u.id = re.user_id
		WHERE re.target_kind = $1 AND re.target_id = $2 AND re.kind = $3
		ORDER BY re.created_at ASC`

	rows, err := r.pool.Query(ctx, query, targetKind, targetID, kind)
	if err != nil {
		return nil, translate(err, "list reactions")
	}
	defer rows.Close()

	actors := []model.PublicUser{}
	for rows.Next() {
		var u model.PublicUser
		err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.AvatarURL, &u.CreatedAt)
		if err != nil {
			return nil, translate(err, "list reactions")
		}
		actors = append(actors, u)
	}
	return actors, translate(rows.Err(), "list reactions")
}

// CountByActor returns how many reactions of the given kind the user has
// given across all targets.
func (r *ReactionRepo) CountByActor(ctx context.Context, actorID string, kind model.ReactionKind) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM reactions WHERE user_id = $1 AND kind = $2`,
		actorID, kind).Scan(&n)
	return n, translate(err, "reaction count")
}
