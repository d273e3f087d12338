package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdeusser/abstract/set"
)

func mod3Succ() *Fn {
	z3 := set.New(set.Int(0), set.Int(1), set.Int(2))
	return New(z3, z3, func(x set.Element) set.Element {
		return set.Int((int(x.(set.Int)) + 1) % 3)
	})
}

func TestApply(t *testing.T) {
	f := mod3Succ()

	y, err := f.Apply(set.Int(2))
	assert.NoError(t, err)
	assert.True(t, y.Equal(set.Int(0)))

	_, err = f.Apply(set.Int(5))
	assert.ErrorIs(t, err, ErrNotInDomain)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, mod3Succ().Validate())

	z3 := set.New(set.Int(0), set.Int(1), set.Int(2))
	escapes := New(z3, z3, func(x set.Element) set.Element {
		return set.Int(int(x.(set.Int)) + 1)
	})
	assert.ErrorIs(t, escapes.Validate(), ErrNotTotal)
}

func TestEqual(t *testing.T) {
	z3 := set.New(set.Int(0), set.Int(1), set.Int(2))

	testCases := []struct {
		testName string
		f        *Fn
		o        *Fn
		want     bool
	}{
		{
			"same rule shape",
			mod3Succ(),
			New(z3, z3, func(x set.Element) set.Element {
				return set.Int((int(x.(set.Int)) + 4) % 3)
			}),
			true,
		},
		{
			"different behavior",
			mod3Succ(),
			New(z3, z3, func(x set.Element) set.Element {
				return x
			}),
			false,
		},
		{
			"different domain",
			mod3Succ(),
			New(set.New(set.Int(0), set.Int(1)), z3, func(x set.Element) set.Element {
				return x
			}),
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.f.Equal(tc.o))
		})
	}
}

func TestNewDomains(t *testing.T) {
	f := mod3Succ()

	sub := set.New(set.Int(0))
	g := f.NewDomains(sub, sub)

	assert.True(t, g.Domain().Equal(sub))
	assert.True(t, g.Codomain().Equal(sub))

	// Same rule, new domain: applying outside the restricted domain fails
	// even though the original accepted it.
	_, err := g.Apply(set.Int(1))
	assert.ErrorIs(t, err, ErrNotInDomain)
}

func TestCompose(t *testing.T) {
	f := mod3Succ()

	ff, err := f.Compose(f)
	assert.NoError(t, err)

	y, err := ff.Apply(set.Int(2))
	assert.NoError(t, err)
	assert.True(t, y.Equal(set.Int(1)))

	z2 := set.New(set.Int(0), set.Int(1))
	g := New(z2, z2, func(x set.Element) set.Element { return x })

	_, err = f.Compose(g)
	assert.ErrorIs(t, err, ErrDomainMismatch)
}

func TestBijectivity(t *testing.T) {
	f := mod3Succ()
	assert.True(t, f.IsInjective())
	assert.True(t, f.IsSurjective())
	assert.True(t, f.IsBijective())

	z3 := set.New(set.Int(0), set.Int(1), set.Int(2))
	collapse := New(z3, z3, func(set.Element) set.Element {
		return set.Int(0)
	})
	assert.False(t, collapse.IsInjective())
	assert.False(t, collapse.IsSurjective())
}
