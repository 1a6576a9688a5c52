package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sukomal07/videohub/internal/model"
)

type PlaylistRepo struct {
	pool *pgxpool.Pool
}

func NewPlaylistRepo(pool *pgxpool.Pool) *PlaylistRepo {
	return &PlaylistRepo{pool: pool}
}

const playlistColumns = `id, name, description, owner_id, videos::text[],
	created_at, updated_at`

func scanPlaylist(row interface{ Scan(...any) error }) (*model.Playlist, error) {
	var p model.Playlist
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.OwnerID, &p.Videos,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new empty playlist.
func (r *PlaylistRepo) Create(ctx context.Context, p *model.Playlist) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO playlists (name, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, videos::text[], created_at, updated_at`,
		p.Name, p.Description, p.OwnerID,
	).Scan(&p.ID, &p.Videos, &p.CreatedAt, &p.UpdatedAt)
	return translate(err, "create playlist")
}

// FindByID returns a single playlist by id.
func (r *PlaylistRepo) FindByID(ctx context.Context, playlistID string) (*model.Playlist, error) {
	p, err := scanPlaylist(r.pool.QueryRow(ctx,
		`SELECT `+playlistColumns+` FROM playlists WHERE id = $1`, playlistID))
	if err != nil {
		return nil, translate(err, "playlist")
	}
	return p, nil
}

// Update sets the name and description.
func (r *PlaylistRepo) Update(ctx context.Context, playlistID, name, description string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE playlists SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3`, name, description, playlistID)
	if err != nil {
		return translate(err, "update playlist")
	}
	if tag.RowsAffected() == 0 {
		return translate(errNoRows(), "playlist")
	}
	return nil
}

// SetVideos writes the ordered membership list back in one row update.
func (r *PlaylistRepo) SetVideos(ctx context.Context, playlistID string, videos []string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE playlists SET videos = $1::uuid[], updated_at = NOW()
		WHERE id = $2`, videos, playlistID)
	return translate(err, "set playlist videos")
}

// ListByOwner returns the owner's playlists, newest first.
func (r *PlaylistRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Playlist, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+playlistColumns+` FROM playlists
		 WHERE owner_id = $1
		 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, translate(err, "list playlists")
	}
	defer rows.Close()

	playlists := []model.Playlist{}
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, translate(err, "list playlists")
		}
		playlists = append(playlists, *p)
	}
	return playlists, translate(rows.Err(), "list playlists")
}

// Delete removes the playlist.
func (r *PlaylistRepo) Delete(ctx context.Context, playlistID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, playlistID)
	if err != nil {
		return translate(err, "delete playlist")
	}
	if tag.RowsAffected() == 0 {
		return translate(errNoRows(), "playlist")
	}
	return nil
}
