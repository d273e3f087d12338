package set

import (
	"fmt"
	"strings"
)

// FiniteSet is an immutable, deduplicated collection of elements.
//
// Iteration order is stable: elements appear in the order they were first
// inserted. Construction collapses duplicates (by Element.Equal); nothing
// mutates a set after New returns, so concurrent reads are safe.
type FiniteSet struct {
	items []Element
}

// New returns a set initialized with the provided items, duplicates
// collapsed.
func New(items ...Element) *FiniteSet {
	s := &FiniteSet{
		items: make([]Element, 0, len(items)),
	}

	for _, item := range items {
		s.add(item)
	}

	return s
}

// Contains determines whether the provided items are in the set.
func (s *FiniteSet) Contains(items ...Element) bool {
	for _, item := range items {
		if s.indexOf(item) < 0 {
			return false
		}
	}

	return true
}

// Length returns the number of items in the set.
func (s *FiniteSet) Length() int {
	return len(s.items)
}

// ForEach iterates over items in stable order and executes the provided
// function against each item. Iteration stops when the function returns
// true.
func (s *FiniteSet) ForEach(fn func(Element) bool) {
	for _, item := range s.items {
		if fn(item) {
			break
		}
	}
}

// ToSlice returns the set as a slice, in stable order.
func (s *FiniteSet) ToSlice() []Element {
	items := make([]Element, len(s.items))
	copy(items, s.items)

	return items
}

// Pick returns an arbitrary element of the set. The choice is stable for a
// given set. The second return is false if the set is empty.
func (s *FiniteSet) Pick() (Element, bool) {
	if len(s.items) == 0 {
		return nil, false
	}

	return s.items[0], true
}

// IsSuperSet determines if every item in the provided set is in this set.
func (s *FiniteSet) IsSuperSet(other *FiniteSet) bool {
	return other.IsSubSet(s)
}

// IsSubSet determines if every item in this set is in the provided set.
func (s *FiniteSet) IsSubSet(other *FiniteSet) bool {
	for _, item := range s.items {
		if other.indexOf(item) < 0 {
			return false
		}
	}

	return true
}

// Equal determines if the two sets are equal.
//
// Note: If both sets have the same number of items and contain the same
// items, they're equal. Order is irrelevant. A FiniteSet is itself an
// Element, so sets of sets (coset partitions) compare the same way;
// anything that isn't a *FiniteSet is unequal.
func (s *FiniteSet) Equal(other Element) bool {
	o, ok := other.(*FiniteSet)
	if !ok {
		return false
	}

	if len(s.items) != len(o.items) {
		return false
	}

	return s.IsSubSet(o)
}

// Union returns a new set with all items present in either set.
func (s *FiniteSet) Union(other *FiniteSet) *FiniteSet {
	result := New(s.items...)

	for _, item := range other.items {
		result.add(item)
	}

	return result
}

// Intersect returns a new set containing only the items that exist in both
// sets.
func (s *FiniteSet) Intersect(other *FiniteSet) *FiniteSet {
	result := New()

	for _, item := range s.items {
		if other.indexOf(item) >= 0 {
			result.add(item)
		}
	}

	return result
}

// Difference returns a new set with items contained in this set that are
// not present in the provided set.
func (s *FiniteSet) Difference(other *FiniteSet) *FiniteSet {
	result := New()

	for _, item := range s.items {
		if other.indexOf(item) < 0 {
			result.add(item)
		}
	}

	return result
}

// Product returns the Cartesian product of the two sets as a new set of
// ordered pairs.
func (s *FiniteSet) Product(other *FiniteSet) *FiniteSet {
	result := &FiniteSet{
		items: make([]Element, 0, len(s.items)*len(other.items)),
	}

	for _, a := range s.items {
		for _, b := range other.items {
			result.items = append(result.items, NewPair(a, b))
		}
	}

	return result
}

// String provides a string representation of the set.
func (s *FiniteSet) String() string {
	items := make([]string, 0, len(s.items))

	for _, item := range s.items {
		items = append(items, fmt.Sprint(item))
	}

	return fmt.Sprintf("{%s}", strings.Join(items, ", "))
}

func (s *FiniteSet) add(item Element) {
	if s.indexOf(item) < 0 {
		s.items = append(s.items, item)
	}
}

func (s *FiniteSet) indexOf(item Element) int {
	for i, existing := range s.items {
		if existing.Equal(item) {
			return i
		}
	}

	return -1
}
