// Package group models finite groups: a finite set together with a binary
// operation satisfying the group axioms. Axioms are verified once at
// construction; a group that exists is valid and immutable thereafter.
package group

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rdeusser/abstract/function"
	"github.com/rdeusser/abstract/set"
)

var (
	ErrBadOperation    = errors.New("operation domain/codomain does not match the carrier set")
	ErrNotAssociative  = errors.New("operation is not associative")
	ErrNoIdentity      = errors.New("no identity element")
	ErrNoInverse       = errors.New("element has no inverse")
	ErrNotElement      = errors.New("element is not in the group")
	ErrEmptyGenerators = errors.New("generating set is empty")
	ErrNotSubset       = errors.New("elements are not a subset of the group")
	ErrNotNormal       = errors.New("not a normal subgroup")
)

// Group is a finite set with a verified group operation.
//
// Elements are plain set.Element values; they carry no reference back to
// the group. Callers pass the group explicitly to Mul, Inverse, Pow and
// friends.
type Group struct {
	s  *set.FiniteSet
	op *function.Fn

	// elems fixes an index for every element; table, identity and
	// inverses are in terms of those indices.
	elems    []set.Element
	table    [][]int
	identity int
	inverses []int
	abelian  bool

	logger *zap.Logger
}

// Option configures a Group.
type Option func(*Group)

// WithLogger sets the logger used by the exponential operations (subgroup
// enumeration, isomorphism search) to report progress at Debug level. The
// default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Group) {
		g.logger = logger
	}
}

// New constructs a group from a carrier set and a binary operation with
// domain s×s and codomain s, verifying closure, associativity, identity and
// inverses. Verification is exhaustive and stops at the first violation.
// Associativity costs O(n³); nothing is re-checked after construction.
func New(s *set.FiniteSet, op *function.Fn, opts ...Option) (*Group, error) {
	g := &Group{
		s:      s,
		op:     op,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if !op.Domain().Equal(s.Product(s)) || !op.Codomain().Equal(s) {
		return nil, ErrBadOperation
	}

	if err := op.Validate(); err != nil {
		return nil, err
	}

	g.elems = s.ToSlice()
	n := len(g.elems)

	// Tabulate the operation once; every axiom check and every derived
	// operation runs over indices into this table.
	g.table = make([][]int, n)
	for i := range g.elems {
		g.table[i] = make([]int, n)

		for j := range g.elems {
			v, err := op.Apply(set.NewPair(g.elems[i], g.elems[j]))
			if err != nil {
				return nil, err
			}

			g.table[i][j] = g.indexOf(v)
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if g.table[g.table[i][j]][k] != g.table[i][g.table[j][k]] {
					return nil, fmt.Errorf("%w: (%s, %s, %s)",
						ErrNotAssociative, g.elems[i], g.elems[j], g.elems[k])
				}
			}
		}
	}

	g.identity = -1
	for e := 0; e < n; e++ {
		isIdentity := true

		for a := 0; a < n; a++ {
			if g.table[e][a] != a || g.table[a][e] != a {
				isIdentity = false
				break
			}
		}

		if isIdentity {
			g.identity = e
			break
		}
	}

	if g.identity < 0 {
		return nil, ErrNoIdentity
	}

	g.inverses = make([]int, n)
	for a := 0; a < n; a++ {
		g.inverses[a] = -1

		for b := 0; b < n; b++ {
			if g.table[a][b] == g.identity && g.table[b][a] == g.identity {
				g.inverses[a] = b
				break
			}
		}

		if g.inverses[a] < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoInverse, g.elems[a])
		}
	}

	g.abelian = true
outer:
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.table[i][j] != g.table[j][i] {
				g.abelian = false
				break outer
			}
		}
	}

	g.logger.Debug("group verified",
		zap.Int("order", n),
		zap.Bool("abelian", g.abelian),
	)

	return g, nil
}

// Set returns the group's carrier set.
func (g *Group) Set() *set.FiniteSet {
	return g.s
}

// Op returns the group's binary operation.
func (g *Group) Op() *function.Fn {
	return g.op
}

// Order returns the number of elements in the group.
func (g *Group) Order() int {
	return len(g.elems)
}

// Identity returns the group's identity element.
func (g *Group) Identity() set.Element {
	return g.elems[g.identity]
}

// Contains determines whether the provided elements are in the group.
func (g *Group) Contains(items ...set.Element) bool {
	return g.s.Contains(items...)
}

// Elements returns the group's elements in stable order, identity first.
func (g *Group) Elements() []set.Element {
	result := make([]set.Element, 0, len(g.elems))
	result = append(result, g.elems[g.identity])

	for i, e := range g.elems {
		if i != g.identity {
			result = append(result, e)
		}
	}

	return result
}

// IsAbelian determines if the group is abelian. The property is computed
// once at construction.
func (g *Group) IsAbelian() bool {
	return g.abelian
}

// Mul returns a·b.
func (g *Group) Mul(a, b set.Element) (set.Element, error) {
	i, err := g.index(a)
	if err != nil {
		return nil, err
	}

	j, err := g.index(b)
	if err != nil {
		return nil, err
	}

	return g.elems[g.table[i][j]], nil
}

// Inverse returns the element b with a·b = b·a = identity.
func (g *Group) Inverse(a set.Element) (set.Element, error) {
	i, err := g.index(a)
	if err != nil {
		return nil, err
	}

	return g.elems[g.inverses[i]], nil
}

// Pow returns a raised to the nth power by binary exponentiation; negative
// exponents invert first.
func (g *Group) Pow(a set.Element, n int) (set.Element, error) {
	i, err := g.index(a)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		i = g.inverses[i]
		n = -n
	}

	result := g.identity
	base := i

	for n > 0 {
		if n%2 == 1 {
			result = g.table[result][base]
		}

		base = g.table[base][base]
		n /= 2
	}

	return g.elems[result], nil
}

// ElementOrder returns the order of a: the smallest k ≥ 1 with a^k equal to
// the identity. It is also the order of the subgroup a alone generates.
func (g *Group) ElementOrder(a set.Element) (int, error) {
	i, err := g.index(a)
	if err != nil {
		return 0, err
	}

	k := 1
	for cur := i; cur != g.identity; k++ {
		cur = g.table[cur][i]
	}

	return k, nil
}

// Equal determines if the two groups are equal: same carrier set and
// pointwise-equal operation.
func (g *Group) Equal(other *Group) bool {
	if g == other {
		return true
	}

	return g.s.Equal(other.s) && g.op.Equal(other.op)
}

// String provides a short description of the group.
func (g *Group) String() string {
	return fmt.Sprintf("group of order %d", len(g.elems))
}

func (g *Group) index(a set.Element) (int, error) {
	i := g.indexOf(a)
	if i < 0 {
		return 0, fmt.Errorf("%w: %s", ErrNotElement, a)
	}

	return i, nil
}

func (g *Group) indexOf(a set.Element) int {
	for i, e := range g.elems {
		if e.Equal(a) {
			return i
		}
	}

	return -1
}
