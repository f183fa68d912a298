package util

import "sort"

// Set is an unordered collection of strings. List returns it sorted.
type Set struct {
	data map[string]struct{}
}

func NewSet() *Set {
	return &Set{
		data: make(map[string]struct{}),
	}
}

func (s Set) Length() int {
	return len(s.data)
}

func (s *Set) Add(item string) {
	s.data[item] = struct{}{}
}

func (s Set) List() []string {
	out := []string{}
	for v := range s.data {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
