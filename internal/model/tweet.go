package model

import "time"

// Tweet is a stored short text post.
type Tweet struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TweetRequest is the API request body for creating or editing a tweet.
type TweetRequest struct {
	Content string `json:"content"`
}
