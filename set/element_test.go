package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementEquality(t *testing.T) {
	testCases := []struct {
		testName string
		a        Element
		b        Element
		want     bool
	}{
		{"equal ints", Int(3), Int(3), true},
		{"unequal ints", Int(3), Int(4), false},
		{"int vs str", Int(3), Str("3"), false},
		{"equal perms", Perm{1, 0, 2}, Perm{1, 0, 2}, true},
		{"unequal perms", Perm{1, 0, 2}, Perm{0, 1, 2}, false},
		{"different length perms", Perm{0, 1}, Perm{0, 1, 2}, false},
		{"equal pairs", NewPair(Int(1), Str("a")), NewPair(Int(1), Str("a")), true},
		{"swapped pairs", NewPair(Int(1), Int(2)), NewPair(Int(2), Int(1)), false},
		{
			"nested pairs are ordered",
			NewPair(NewPair(Int(1), Int(2)), Int(3)),
			NewPair(Int(1), NewPair(Int(2), Int(3))),
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
		})
	}
}

func TestElementString(t *testing.T) {
	assert.Equal(t, "7", Int(7).String())
	assert.Equal(t, "R1", Str("R1").String())
	assert.Equal(t, "[1 0 2]", Perm{1, 0, 2}.String())
	assert.Equal(t, "(1, a)", NewPair(Int(1), Str("a")).String())
	assert.Equal(t, "{1, 2}", New(Int(1), Int(2)).String())
}
