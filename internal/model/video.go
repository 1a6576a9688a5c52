package model

import "time"

// Video is the stored video record. Asset ids reference objects in the
// asset store; only the URLs are rendered to clients.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoAssetID string    `json:"-"`
	VideoURL     string    `json:"videoUrl"`
	ThumbAssetID string    `json:"-"`
	ThumbURL     string    `json:"thumbnailUrl"`
	OwnerID      string    `json:"ownerId"`
	IsPublished  bool      `json:"isPublished"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VideoSummary is the restricted projection used by feeds, channel pages
// and search results.
type VideoSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ThumbURL    string    `json:"thumbnailUrl"`
	VideoURL    string    `json:"videoUrl"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	OwnerID     string    `json:"ownerId,omitempty"`
	OwnerName   string    `json:"ownerName,omitempty"`
	OwnerAvatar string    `json:"ownerAvatar,omitempty"`
}

// VideoDetail is the full video page: the video joined with its comments
// and reactions. Counts are set sizes over the joined rows, never stored.
type VideoDetail struct {
	Video
	Comments     []CommentWithOwner `json:"comments"`
	Likes        []PublicUser       `json:"likes"`
	Dislikes     []PublicUser       `json:"dislikes"`
	LikeCount    int                `json:"likeCount"`
	DislikeCount int                `json:"dislikeCount"`
	CommentCount int                `json:"totalCommentCount"`
}

// UploadVideoRequest carries the metadata fields of an upload; the media
// and thumbnail arrive as multipart files. Duration is reported by the
// uploading client in seconds.
type UploadVideoRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
}

// UpdateVideoRequest carries the editable video fields.
type UpdateVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
