package model

import "time"

// User is the stored account record. Credential and session fields never
// serialize to API responses.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	AvatarAssetID string    `json:"-"`
	AvatarURL     string    `json:"avatarUrl,omitempty"`
	CoverAssetID  string    `json:"-"`
	CoverURL      string    `json:"coverUrl,omitempty"`
	WatchHistory  []string  `json:"-"`
	RefreshToken  string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PublicUser is the restricted projection attached to joined views
// (comment owners, reaction actors, followed channels).
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChannelProfile is the API response for a channel page.
type ChannelProfile struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	FullName          string `json:"fullName"`
	AvatarURL         string `json:"avatarUrl,omitempty"`
	CoverURL          string `json:"coverUrl,omitempty"`
	SubscriberCount   int    `json:"subscriberCount"`
	ChannelSubscribed int    `json:"channelSubscribed"`
	IsSubscribed      bool   `json:"isSubscribed"`
}

// ChannelStats aggregates a channel owner's dashboard numbers. Like and
// dislike totals count reactions the owner has given.
type ChannelStats struct {
	TotalVideoViews  int64 `json:"totalVideoViews"`
	TotalSubscribers int   `json:"totalSubscribers"`
	TotalVideos      int   `json:"totalVideos"`
	TotalLikes       int   `json:"totalLikes"`
	TotalDislikes    int   `json:"totalDislikes"`
}

// RegisterRequest is the API request body for account creation.
type RegisterRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the API request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries the mutable profile fields.
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// ChangePasswordRequest is the API request body for a password change.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// AuthResponse is returned by login and refresh.
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
