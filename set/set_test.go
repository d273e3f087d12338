package set

import (
	"testing"

	gofuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
)

func TestNewDeduplicates(t *testing.T) {
	s := New(Int(1), Int(2), Int(2), Int(1))
	assert.Equal(t, 2, s.Length())
}

func TestContains(t *testing.T) {
	s := New(Str("foo"), Str("bar"), Str("baz"))
	assert.True(t, s.Contains(Str("foo")))
	assert.True(t, s.Contains(Str("foo"), Str("bar")))
	assert.True(t, s.Contains(Str("foo"), Str("bar"), Str("baz")))
	assert.False(t, s.Contains(Str("qux")))
}

func TestIsSuperSet(t *testing.T) {
	s := New(Str("foo"), Str("bar"), Str("baz"))
	o := New(Str("foo"))
	assert.True(t, s.IsSuperSet(o))
}

func TestIsSubSet(t *testing.T) {
	s := New(Str("foo"))
	o := New(Str("foo"), Str("bar"), Str("baz"))
	assert.True(t, s.IsSubSet(o))
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		testName string
		s        *FiniteSet
		o        *FiniteSet
		want     bool
	}{
		{
			"not equal different length",
			New(Int(1)),
			New(Int(1), Int(2), Int(3)),
			false,
		},
		{
			"not equal same length",
			New(Int(1), Int(2), Int(4)),
			New(Int(1), Int(2), Int(3)),
			false,
		},
		{
			"equal regardless of order",
			New(Int(3), Int(1), Int(2)),
			New(Int(1), Int(2), Int(3)),
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Equal(tc.o))
		})
	}
}

func TestEqualNonSetElement(t *testing.T) {
	s := New(Int(1))
	assert.False(t, s.Equal(Int(1)))
}

func TestUnion(t *testing.T) {
	s := New(Int(1), Int(2))
	o := New(Int(2), Int(3))
	assert.True(t, s.Union(o).Equal(New(Int(1), Int(2), Int(3))))
}

func TestIntersect(t *testing.T) {
	s := New(Int(1), Int(2), Int(3))
	o := New(Int(2), Int(3), Int(4))
	assert.True(t, s.Intersect(o).Equal(New(Int(2), Int(3))))
}

func TestDifference(t *testing.T) {
	testCases := []struct {
		testName string
		s        *FiniteSet
		o        *FiniteSet
		want     *FiniteSet
	}{
		{
			"one item",
			New(Int(1), Int(2), Int(3)),
			New(Int(1), Int(2), Int(4)),
			New(Int(3)),
		},
		{
			"same items",
			New(Int(1), Int(2)),
			New(Int(1), Int(2)),
			New(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.True(t, tc.want.Equal(tc.s.Difference(tc.o)))
		})
	}
}

func TestProduct(t *testing.T) {
	s := New(Int(0), Int(1))
	o := New(Str("a"), Str("b"))

	p := s.Product(o)
	assert.Equal(t, 4, p.Length())
	assert.True(t, p.Contains(NewPair(Int(0), Str("a"))))
	assert.True(t, p.Contains(NewPair(Int(1), Str("b"))))
	assert.False(t, p.Contains(NewPair(Str("a"), Int(0))))
}

func TestPick(t *testing.T) {
	_, ok := New().Pick()
	assert.False(t, ok)

	e, ok := New(Int(7)).Pick()
	assert.True(t, ok)
	assert.True(t, e.Equal(Int(7)))
}

func TestStableOrder(t *testing.T) {
	s := New(Int(3), Int(1), Int(2), Int(1))
	assert.Equal(t, []Element{Int(3), Int(1), Int(2)}, s.ToSlice())
}

func TestSetsAsElements(t *testing.T) {
	coset1 := New(Int(0), Int(3))
	coset2 := New(Int(3), Int(0))
	coset3 := New(Int(1), Int(4))

	partition := New(coset1, coset2, coset3)
	assert.Equal(t, 2, partition.Length())
	assert.True(t, partition.Contains(New(Int(4), Int(1))))
}

func TestFuzzDeduplication(t *testing.T) {
	f := gofuzz.New()

	corpus := make([]Element, 0, 1000)
	for i := 0; i < 1000; i++ {
		var v string

		f.Fuzz(&v)
		corpus = append(corpus, Str(v))
	}

	s := New(corpus...)
	assert.LessOrEqual(t, s.Length(), len(corpus))
	assert.True(t, s.Contains(corpus...))

	// Re-inserting the whole corpus must be a no-op.
	assert.True(t, s.Equal(New(append(corpus, corpus...)...)))
}
