package model

import "time"

// Playlist is a stored playlist. Videos is an ordered list of video ids,
// most recently added first, with duplicates forbidden.
type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	Videos      []string  `json:"videos"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistDetail is the full playlist page: members resolved in stored
// order, with totals derived from the member set.
type PlaylistDetail struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedBy   string         `json:"createdBy"`
	TotalVideos int            `json:"totalVideos"`
	TotalViews  int64          `json:"totalViews"`
	Videos      []VideoSummary `json:"videos"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// PlaylistRequest is the API request body for creating or editing a playlist.
type PlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
