// Package orderedset manipulates ordered id lists that forbid duplicates.
// Watch history and playlist membership both use it, so the
// remove-all-occurrences-then-prepend rule cannot drift between the two.
package orderedset

// Prepend returns list with id at position 0 and every prior occurrence of
// id removed. Duplicates already present in list (from older data) are
// healed as a side effect.
func Prepend(list []string, id string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, id)
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Remove returns list without any occurrence of id, preserving the relative
// order of the remainder, and reports whether id was present.
func Remove(list []string, id string) ([]string, bool) {
	out := make([]string, 0, len(list))
	found := false
	for _, v := range list {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	return out, found
}

// Contains reports whether id occurs in list.
func Contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
