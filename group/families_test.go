package group

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdeusser/abstract/set"
)

func TestZnIsCyclic(t *testing.T) {
	for n := 1; n <= 8; n++ {
		g := mustZn(t, n)
		assert.Equal(t, n, g.Order())
		assert.True(t, g.IsCyclic())
		assert.True(t, g.IsAbelian())
	}
}

func TestSn(t *testing.T) {
	g, err := Sn(3)
	assert.NoError(t, err)
	assert.Equal(t, 6, g.Order())
	assert.True(t, g.Identity().Equal(set.Perm{0, 1, 2}))

	// Composition applies the right permutation first.
	got, err := g.Mul(set.Perm{1, 0, 2}, set.Perm{1, 2, 0})
	assert.NoError(t, err)
	assert.True(t, got.Equal(set.Perm{0, 2, 1}))
}

func TestDn(t *testing.T) {
	g, err := Dn(4)
	assert.NoError(t, err)
	assert.Equal(t, 8, g.Order())
	assert.False(t, g.IsAbelian())
	assert.False(t, g.IsCyclic())
	assert.True(t, g.Identity().Equal(set.Str("R0")))

	// A reflection is its own inverse.
	inv, err := g.Inverse(set.Str("S1"))
	assert.NoError(t, err)
	assert.True(t, inv.Equal(set.Str("S1")))

	// Rotation followed by reflection.
	got, err := g.Mul(set.Str("S2"), set.Str("R3"))
	assert.NoError(t, err)
	assert.True(t, got.Equal(set.Str("S3")))
}

func TestFamiliesRejectBadOrder(t *testing.T) {
	_, err := Zn(0)
	assert.ErrorIs(t, err, ErrBadOrder)

	_, err = Sn(0)
	assert.ErrorIs(t, err, ErrBadOrder)

	_, err = Dn(-1)
	assert.ErrorIs(t, err, ErrBadOrder)
}
