package utils

import (
	"sort"
	"strings"
)

// NameSet is a case-insensitive set of file or folder names. The first
// spelling added for a name is the one reported by Names.
type NameSet map[string]string

// NewNameSet creates a set holding the given names
func NewNameSet(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, name := range names {
		set.Add(name)
	}
	return set
}

// FoldName returns the case-insensitive key of a name
func FoldName(name string) string {
	return strings.ToUpper(name)
}

// Add inserts a name, keeping an existing spelling if one is present
func (s NameSet) Add(name string) {
	key := FoldName(name)
	if _, ok := s[key]; !ok {
		s[key] = name
	}
}

// Contains reports whether the set holds name, ignoring case. A nil set is empty.
func (s NameSet) Contains(name string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[FoldName(name)]
	return ok
}

// Remove deletes name and reports whether it was present
func (s NameSet) Remove(name string) bool {
	key := FoldName(name)
	if _, ok := s[key]; !ok {
		return false
	}
	delete(s, key)
	return true
}

// Len returns the number of names in the set
func (s NameSet) Len() int {
	return len(s)
}

// Union adds every name of other to s
func (s NameSet) Union(other NameSet) {
	for _, name := range other {
		s.Add(name)
	}
}

// Clone returns an independent copy of the set
func (s NameSet) Clone() NameSet {
	clone := make(NameSet, len(s))
	for key, name := range s {
		clone[key] = name
	}
	return clone
}

// Names returns the names sorted case-insensitively
func (s NameSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, name := range s {
		names = append(names, name)
	}
	SortFold(names)
	return names
}

// CompareFold orders two names case-insensitively, falling back to an
// ordinal comparison so that the order is total.
func CompareFold(a, b string) int {
	if c := strings.Compare(FoldName(a), FoldName(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// SortFold sorts names in place, case-insensitively
func SortFold(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return CompareFold(names[i], names[j]) < 0
	})
}

// ContainsFold reports whether substr occurs in s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}
