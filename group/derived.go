package group

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rdeusser/abstract/function"
	"github.com/rdeusser/abstract/set"
)

// newFn wraps a rule as a binary operation over carrier: domain
// carrier×carrier, codomain carrier.
func newFn(carrier *set.FiniteSet, rule func(set.Element) set.Element) *function.Fn {
	return function.New(carrier.Product(carrier), carrier, rule)
}

// Generate returns the smallest subgroup containing the provided elements,
// computed by iterative closure under the operation. The closure reaches a
// fixed point because the ambient group is finite. The restricted operation
// is rebound to the closed set and the result is verified by ordinary
// construction.
func (g *Group) Generate(elems ...set.Element) (*Group, error) {
	if len(elems) == 0 {
		return nil, ErrEmptyGenerators
	}

	seed := make([]int, 0, len(elems))

	for _, e := range elems {
		i := g.indexOf(e)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotSubset, e)
		}

		seed = append(seed, i)
	}

	return g.subgroupFromIndices(g.closure(seed))
}

// Generators returns a small generating set, greedily built: while the
// subgroup generated so far is proper, any element outside it is added.
// Each addition at least doubles the generated subgroup, so the result has
// at most ⌊log₂|G|⌋+1 elements. The identity is dropped unless the group is
// trivial.
func (g *Group) Generators() []set.Element {
	gens := []int{g.identity}
	covered := g.closure(gens)

	for len(covered) < len(g.elems) {
		in := make([]bool, len(g.elems))
		for _, i := range covered {
			in[i] = true
		}

		for i := range g.elems {
			if !in[i] {
				gens = append(gens, i)
				break
			}
		}

		covered = g.closure(gens)
	}

	if len(g.elems) != 1 {
		gens = gens[1:]
	}

	result := make([]set.Element, 0, len(gens))
	for _, i := range gens {
		result = append(result, g.elems[i])
	}

	return result
}

// Subgroups returns every subgroup of the group, found by breadth-first
// closure over the subgroup lattice: starting from the trivial subgroup,
// each known subgroup is extended by every outside element until a round
// discovers nothing new. Worst-case cost is exponential in the group order.
func (g *Group) Subgroups() ([]*Group, error) {
	n := len(g.elems)

	seen := map[string][]int{}
	key := func(indices []int) string {
		bits := make([]byte, n)
		for _, i := range indices {
			bits[i] = 1
		}
		return string(bits)
	}

	trivial := g.closure([]int{g.identity})
	seen[key(trivial)] = trivial
	frontier := [][]int{trivial}

	for round := 1; len(frontier) > 0; round++ {
		var next [][]int

		for _, sg := range frontier {
			in := make([]bool, n)
			for _, i := range sg {
				in[i] = true
			}

			for i := 0; i < n; i++ {
				if in[i] {
					continue
				}

				extended := g.closure(append(append([]int{}, sg...), i))
				k := key(extended)

				if _, ok := seen[k]; !ok {
					seen[k] = extended
					next = append(next, extended)
				}
			}
		}

		g.logger.Debug("subgroup lattice round",
			zap.Int("round", round),
			zap.Int("known", len(seen)),
			zap.Int("new", len(next)),
		)

		frontier = next
	}

	result := make([]*Group, 0, len(seen))

	for _, indices := range seen {
		sg, err := g.subgroupFromIndices(indices)
		if err != nil {
			return nil, err
		}

		result = append(result, sg)
	}

	return result, nil
}

// IsSubgroupOf determines if g is a subgroup of other: g's elements are a
// subset of other's and the two operations agree on every pair of g's
// elements.
func (g *Group) IsSubgroupOf(other *Group) bool {
	if !g.s.IsSubSet(other.s) {
		return false
	}

	for i, a := range g.elems {
		oi := other.indexOf(a)

		for j, b := range g.elems {
			oj := other.indexOf(b)

			if !g.elems[g.table[i][j]].Equal(other.elems[other.table[oi][oj]]) {
				return false
			}
		}
	}

	return true
}

// IsNormalSubgroupOf determines if g is a normal subgroup of other: a
// subgroup whose left and right cosets coincide for every ambient element.
func (g *Group) IsNormalSubgroupOf(other *Group) bool {
	if !g.IsSubgroupOf(other) {
		return false
	}

	for xi := range other.elems {
		left := make([]set.Element, 0, len(g.elems))
		right := make([]set.Element, 0, len(g.elems))

		for _, h := range g.elems {
			hi := other.indexOf(h)
			left = append(left, other.elems[other.table[xi][hi]])
			right = append(right, other.elems[other.table[hi][xi]])
		}

		if !set.New(left...).Equal(set.New(right...)) {
			return false
		}
	}

	return true
}

// Product returns the Cartesian product of the two groups, with the
// component-wise operation over pairs. The result is verified by ordinary
// construction.
func (g *Group) Product(other *Group) (*Group, error) {
	productSet := g.s.Product(other.s)

	rule := func(x set.Element) set.Element {
		ab := x.(set.Pair).Left.(set.Pair)
		cd := x.(set.Pair).Right.(set.Pair)

		l := g.elems[g.table[g.indexOf(ab.Left)][g.indexOf(cd.Left)]]
		r := other.elems[other.table[other.indexOf(ab.Right)][other.indexOf(cd.Right)]]

		return set.NewPair(l, r)
	}

	return New(productSet, newFn(productSet, rule), WithLogger(g.logger))
}

// Quotient returns the quotient group g/n. It returns ErrNotNormal unless n
// is a normal subgroup of g. Elements of the quotient are cosets (finite
// sets); coset multiplication goes through an arbitrary representative of
// the left operand, which normality makes independent of the choice.
func (g *Group) Quotient(n *Group) (*Group, error) {
	if !n.IsNormalSubgroupOf(g) {
		return nil, ErrNotNormal
	}

	cosets := make([]set.Element, 0, len(g.elems))
	for gi := range g.elems {
		cosets = append(cosets, g.cosetOf(gi, n))
	}

	partition := set.New(cosets...)

	rule := func(x set.Element) set.Element {
		left := x.(set.Pair).Left.(*set.FiniteSet)
		right := x.(set.Pair).Right.(*set.FiniteSet)

		rep, _ := left.Pick()
		ri := g.indexOf(rep)

		product := make([]set.Element, 0, right.Length())
		right.ForEach(func(k set.Element) bool {
			product = append(product, g.elems[g.table[ri][g.indexOf(k)]])
			return false
		})

		return set.New(product...)
	}

	return New(partition, newFn(partition, rule), WithLogger(g.logger))
}

// IsCyclic determines if some single element generates the whole group.
func (g *Group) IsCyclic() bool {
	for i := range g.elems {
		order, _ := g.ElementOrder(g.elems[i])
		if order == len(g.elems) {
			return true
		}
	}

	return false
}

// closure returns the indices of the smallest subset containing seed that
// is closed under the operation, in ascending index order.
func (g *Group) closure(seed []int) []int {
	in := make([]bool, len(g.elems))
	for _, i := range seed {
		in[i] = true
	}

	for changed := true; changed; {
		changed = false

		for i := range g.elems {
			if !in[i] {
				continue
			}

			for j := range g.elems {
				if in[j] && !in[g.table[i][j]] {
					in[g.table[i][j]] = true
					changed = true
				}
			}
		}
	}

	result := make([]int, 0, len(g.elems))
	for i, ok := range in {
		if ok {
			result = append(result, i)
		}
	}

	return result
}

// subgroupFromIndices rebinds the ambient operation to the closed subset at
// the provided indices and verifies the result as an ordinary group.
func (g *Group) subgroupFromIndices(indices []int) (*Group, error) {
	elems := make([]set.Element, 0, len(indices))
	for _, i := range indices {
		elems = append(elems, g.elems[i])
	}

	sub := set.New(elems...)

	return New(sub, g.op.NewDomains(sub.Product(sub), sub), WithLogger(g.logger))
}

// cosetOf returns the left coset of n by the element at index gi.
func (g *Group) cosetOf(gi int, n *Group) *set.FiniteSet {
	members := make([]set.Element, 0, len(n.elems))

	for _, h := range n.elems {
		members = append(members, g.elems[g.table[gi][g.indexOf(h)]])
	}

	return set.New(members...)
}
