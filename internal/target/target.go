// Package target holds the identities of classes a transformer asks the
// host pipeline to hand it.
package target

import (
	"slices"
	"strings"
)

// Target identifies one class by its internal name ("a/b/C").
// Targets are comparable and equal by name.
type Target struct {
	ClassName string
}

// Class returns the Target for an internal or dotted class name.
func Class(name string) Target {
	return Target{ClassName: strings.ReplaceAll(name, ".", "/")}
}

// Normalized returns t with a dotted class name converted to internal form.
func (t Target) Normalized() Target {
	return Class(t.ClassName)
}

// String returns the internal class name.
func (t Target) String() string {
	return t.ClassName
}

// Set is a collection of Targets unique by class name.
// The zero value is not usable; call NewSet.
type Set struct {
	items map[string]Target
}

// NewSet returns a Set holding the given targets.
func NewSet(targets ...Target) *Set {
	s := &Set{items: make(map[string]Target, len(targets))}
	s.Add(targets...)

	return s
}

// Add inserts targets, collapsing duplicates by name.
func (s *Set) Add(targets ...Target) {
	for _, t := range targets {
		s.items[t.ClassName] = t
	}
}

// Union returns a new set containing the members of s and other.
func (s *Set) Union(other *Set) *Set {
	out := NewSet(s.Slice()...)
	if other != nil {
		out.Add(other.Slice()...)
	}

	return out
}

// Contains reports whether a target with the given class name is present.
func (s *Set) Contains(className string) bool {
	_, ok := s.items[className]
	return ok
}

// Len returns the number of targets.
func (s *Set) Len() int {
	return len(s.items)
}

// Names returns the class names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.items))
	for name := range s.items {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Slice returns the targets ordered by class name.
func (s *Set) Slice() []Target {
	names := s.Names()
	out := make([]Target, len(names))

	for i, name := range names {
		out[i] = s.items[name]
	}

	return out
}
