package model

import "testing"

func TestReactionKind_Opposite(t *testing.T) {
	if ReactionLike.Opposite() != ReactionDislike {
		t.Error("opposite of like should be dislike")
	}
	if ReactionDislike.Opposite() != ReactionLike {
		t.Error("opposite of dislike should be like")
	}
}

func TestReactionKind_Valid(t *testing.T) {
	for _, k := range []ReactionKind{ReactionLike, ReactionDislike} {
		if !k.Valid() {
			t.Errorf("%s should be valid", k)
		}
	}
	for _, k := range []ReactionKind{"", "love", "Like", "LIKE"} {
		if k.Valid() {
			t.Errorf("%q should be invalid", k)
		}
	}
}

func TestTargetKind_Valid(t *testing.T) {
	for _, k := range []TargetKind{TargetVideo, TargetComment, TargetTweet} {
		if !k.Valid() {
			t.Errorf("%s should be valid", k)
		}
	}
	for _, k := range []TargetKind{"", "user", "Video"} {
		if k.Valid() {
			t.Errorf("%q should be invalid", k)
		}
	}
}
