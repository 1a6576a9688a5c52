package orderedset

import (
	"reflect"
	"testing"
)

func TestPrepend_EmptyList(t *testing.T) {
	got := Prepend(nil, "v1")
	want := []string{"v1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Prepend(nil, v1) = %v, want %v", got, want)
	}
}

func TestPrepend_MovesExistingToFront(t *testing.T) {
	tests := []struct {
		name string
		list []string
		id   string
		want []string
	}{
		{"new id goes first", []string{"a", "b"}, "c", []string{"c", "a", "b"}},
		{"existing id moves to front", []string{"a", "b", "c"}, "b", []string{"b", "a", "c"}},
		{"id already at front stays", []string{"a", "b"}, "a", []string{"a", "b"}},
		{"heals duplicated entries", []string{"a", "b", "a", "c", "a"}, "a", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prepend(tt.list, tt.id)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Prepend(%v, %q) = %v, want %v", tt.list, tt.id, got, tt.want)
			}
		})
	}
}

func TestPrepend_NeverGrowsOnRepeat(t *testing.T) {
	list := []string{"a", "b", "c"}
	for range 10 {
		list = Prepend(list, "b")
	}
	if len(list) != 3 {
		t.Errorf("len = %d after repeated prepends, want 3", len(list))
	}
	if list[0] != "b" {
		t.Errorf("front = %q, want b", list[0])
	}
}

func TestPrepend_MostRecentAlwaysFirst(t *testing.T) {
	var list []string
	views := []string{"v1", "v2", "v1", "v3", "v2", "v2"}
	for _, v := range views {
		list = Prepend(list, v)
	}
	want := []string{"v2", "v3", "v1"}
	if !reflect.DeepEqual(list, want) {
		t.Errorf("after %v, list = %v, want %v", views, list, want)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name      string
		list      []string
		id        string
		want      []string
		wantFound bool
	}{
		{"removes single occurrence", []string{"a", "b", "c"}, "b", []string{"a", "c"}, true},
		{"preserves order of remainder", []string{"a", "b", "c", "d"}, "a", []string{"b", "c", "d"}, true},
		{"absent id reports false", []string{"a", "b"}, "z", []string{"a", "b"}, false},
		{"removes every occurrence", []string{"a", "b", "a"}, "a", []string{"b"}, true},
		{"empty list", nil, "a", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Remove(tt.list, tt.id)
			if !reflect.DeepEqual(got, tt.want) || found != tt.wantFound {
				t.Errorf("Remove(%v, %q) = %v, %v, want %v, %v",
					tt.list, tt.id, got, found, tt.want, tt.wantFound)
			}
		})
	}
}

func TestContains(t *testing.T) {
	list := []string{"a", "b"}
	if !Contains(list, "a") {
		t.Error("Contains(list, a) = false, want true")
	}
	if Contains(list, "z") {
		t.Error("Contains(list, z) = true, want false")
	}
	if Contains(nil, "a") {
		t.Error("Contains(nil, a) = true, want false")
	}
}
