package model

import "time"

// ReactionKind is the direction of a reaction.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// TargetKind identifies which entity a reaction applies to.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

// Opposite returns the other reaction kind.
func (k ReactionKind) Opposite() ReactionKind {
	if k == ReactionLike {
		return ReactionDislike
	}
	return ReactionLike
}

// Valid reports whether k is a known reaction kind.
func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// Valid reports whether t is a known target kind.
func (t TargetKind) Valid() bool {
	return t == TargetVideo || t == TargetComment || t == TargetTweet
}

// Reaction is a stored like or dislike. At most one row exists per
// (user, target) pair; kind says which direction it currently points.
type Reaction struct {
	ID         string       `json:"id"`
	UserID     string       `json:"userId"`
	Kind       ReactionKind `json:"kind"`
	TargetKind TargetKind   `json:"targetKind"`
	TargetID   string       `json:"targetId"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// ToggleState reports what a reaction toggle did.
type ToggleState string

const (
	// ToggleCreated: a reaction of the desired kind now exists (either new,
	// or replacing the opposite kind).
	ToggleCreated ToggleState = "created"
	// ToggleRemoved: the existing reaction of the desired kind was removed.
	ToggleRemoved ToggleState = "removed"
)

// ToggleResponse is the API response for a reaction toggle.
type ToggleResponse struct {
	State ToggleState `json:"state"`
	Kind  ReactionKind `json:"kind"`
}
