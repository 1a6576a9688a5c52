package model

import "time"

// Comment is a stored comment on a video.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	VideoID   string    `json:"videoId"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentWithOwner joins a comment with its author's public profile.
type CommentWithOwner struct {
	Comment
	Owner PublicUser `json:"owner"`
}

// CommentRequest is the API request body for creating or editing a comment.
type CommentRequest struct {
	Content string `json:"content"`
}
