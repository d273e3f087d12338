package set

import (
	"fmt"
	"strconv"
	"strings"
)

// Element is a member of a FiniteSet. Identity is by value: two elements
// are the same iff Equal reports true. Implementations must make Equal an
// equivalence relation over the values that can meet in one set.
type Element interface {
	// Equal determines whether the provided element represents the same
	// value as this one.
	Equal(Element) bool

	// Provides a string representation of the element.
	String() string
}

// Ensure the provided element types satisfy set.Element at compile-time.
var (
	_ Element = Int(0)
	_ Element = Str("")
	_ Element = Pair{}
	_ Element = Perm(nil)
	_ Element = (*FiniteSet)(nil)
)

// Int is an integer element.
type Int int

func (i Int) Equal(other Element) bool {
	o, ok := other.(Int)
	return ok && i == o
}

func (i Int) String() string {
	return strconv.Itoa(int(i))
}

// Str is a string element.
type Str string

func (s Str) Equal(other Element) bool {
	o, ok := other.(Str)
	return ok && s == o
}

func (s Str) String() string {
	return string(s)
}

// Pair is an ordered pair of elements. Cartesian products are sets of
// pairs; nesting is ordered, so ((a, b), c) and (a, (b, c)) are distinct.
type Pair struct {
	Left  Element
	Right Element
}

// NewPair returns the ordered pair (left, right).
func NewPair(left, right Element) Pair {
	return Pair{Left: left, Right: right}
}

func (p Pair) Equal(other Element) bool {
	o, ok := other.(Pair)
	return ok && p.Left.Equal(o.Left) && p.Right.Equal(o.Right)
}

func (p Pair) String() string {
	return fmt.Sprintf("(%s, %s)", p.Left, p.Right)
}

// Perm is a permutation of 0..n-1 in one-line notation: the value at index
// i is the image of i.
type Perm []int

func (p Perm) Equal(other Element) bool {
	o, ok := other.(Perm)
	if !ok || len(p) != len(o) {
		return false
	}

	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}

	return true
}

func (p Perm) String() string {
	images := make([]string, 0, len(p))

	for _, v := range p {
		images = append(images, strconv.Itoa(v))
	}

	return "[" + strings.Join(images, " ") + "]"
}
