package model

import "time"

// Subscription is an edge from a subscriber to a channel. The pair is
// unique: a user holds at most one subscription per channel.
type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriberId"`
	ChannelID    string    `json:"channelId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Following is a subscription resolved to the followed channel's public
// profile.
type Following struct {
	Channel      PublicUser `json:"owner"`
	SubscribedAt time.Time  `json:"subscribedAt"`
}

// SearchUserHit is a user match in search results.
type SearchUserHit struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	FullName         string `json:"fullName"`
	AvatarURL        string `json:"avatarUrl,omitempty"`
	TotalSubscribers int    `json:"totalSubscribers"`
}

// SearchResponse unions the two independent result sets of a search.
type SearchResponse struct {
	Users  []SearchUserHit `json:"users"`
	Videos []VideoSummary  `json:"videos"`
}
