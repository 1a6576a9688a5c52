package repository

import (
	"testing"

	"github.com/Sukomal07/videohub/internal/model"
)

func kindPtr(k model.ReactionKind) *model.ReactionKind {
	return &k
}

func TestDecideToggle(t *testing.T) {
	tests := []struct {
		name     string
		existing *model.ReactionKind
		desired  model.ReactionKind
		want     model.ToggleState
	}{
		{"no reaction, like", nil, model.ReactionLike, model.ToggleCreated},
		{"no reaction, dislike", nil, model.ReactionDislike, model.ToggleCreated},
		{"like exists, like again", kindPtr(model.ReactionLike), model.ReactionLike, model.ToggleRemoved},
		{"dislike exists, dislike again", kindPtr(model.ReactionDislike), model.ReactionDislike, model.ToggleRemoved},
		{"like exists, dislike", kindPtr(model.ReactionLike), model.ReactionDislike, model.ToggleCreated},
		{"dislike exists, like", kindPtr(model.ReactionDislike), model.ReactionLike, model.ToggleCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideToggle(tt.existing, tt.desired)
			if got != tt.want {
				t.Errorf("DecideToggle(%v, %s) = %s, want %s",
					tt.existing, tt.desired, got, tt.want)
			}
		})
	}
}

// Two consecutive identical toggles must cancel out: the first creates,
// the second removes. Exercised here against the pure state machine.
func TestDecideToggle_DoubleToggleCancels(t *testing.T) {
	first := DecideToggle(nil, model.ReactionLike)
	if first != model.ToggleCreated {
		t.Fatalf("first toggle = %s, want created", first)
	}

	second := DecideToggle(kindPtr(model.ReactionLike), model.ReactionLike)
	if second != model.ToggleRemoved {
		t.Fatalf("second toggle = %s, want removed", second)
	}
}

// Any toggle sequence leaves at most one reaction, of the last desired
// kind when the sequence ends in "created".
func TestDecideToggle_InterleavedSequence(t *testing.T) {
	var existing *model.ReactionKind

	apply := func(desired model.ReactionKind) model.ToggleState {
		state := DecideToggle(existing, desired)
		if state == model.ToggleRemoved {
			existing = nil
		} else {
			k := desired
			existing = &k
		}
		return state
	}

	// like, dislike, dislike, like → ends with a single like
	apply(model.ReactionLike)
	apply(model.ReactionDislike)
	if existing == nil || *existing != model.ReactionDislike {
		t.Fatalf("after like,dislike: existing = %v, want dislike", existing)
	}
	apply(model.ReactionDislike)
	if existing != nil {
		t.Fatalf("after dislike toggle-off: existing = %v, want none", existing)
	}
	state := apply(model.ReactionLike)
	if state != model.ToggleCreated || existing == nil || *existing != model.ReactionLike {
		t.Fatalf("final like: state = %s, existing = %v", state, existing)
	}
}

func TestTargetTables_CoversAllKinds(t *testing.T) {
	for _, kind := range []model.TargetKind{model.TargetVideo, model.TargetComment, model.TargetTweet} {
		if _, ok := targetTables[kind]; !ok {
			t.Errorf("targetTables missing %s", kind)
		}
	}
	if len(targetTables) != 3 {
		t.Errorf("targetTables has %d entries, want 3", len(targetTables))
	}
}
