package group

import (
	"go.uber.org/zap"

	"github.com/rdeusser/abstract/function"
	"github.com/rdeusser/abstract/set"
)

// FindIsomorphism searches for an isomorphism from g to other and returns
// the witnessing homomorphism, or nil if the groups are not isomorphic. The
// nil result is definite: the search is exhaustive over all candidate
// generator assignments and always terminates for finite groups.
//
// The search assigns a minimal generating set of g to every ordered tuple
// of distinct elements of other, then tries to extend each partial mapping
// to all of g by closing it under the homomorphism law. Worst-case time is
// superpolynomial, but small generating sets prune most of the space.
func (g *Group) FindIsomorphism(other *Group) *Homomorphism {
	if len(g.elems) != len(other.elems) || g.abelian != other.abelian {
		return nil
	}

	gens := make([]int, 0)
	for _, e := range g.Generators() {
		gens = append(gens, g.indexOf(e))
	}

	candidates := 0

	var search func(assigned []int, used []bool) *Homomorphism
	search = func(assigned []int, used []bool) *Homomorphism {
		if len(assigned) == len(gens) {
			candidates++

			if mapping := g.extendMapping(other, gens, assigned); mapping != nil {
				if h := g.witness(other, mapping); h != nil {
					g.logger.Debug("isomorphism found",
						zap.Int("candidates", candidates),
					)
					return h
				}
			}

			return nil
		}

		for b := range other.elems {
			if used[b] {
				continue
			}

			used[b] = true
			if h := search(append(assigned, b), used); h != nil {
				return h
			}
			used[b] = false
		}

		return nil
	}

	h := search(make([]int, 0, len(gens)), make([]bool, len(other.elems)))
	if h == nil {
		g.logger.Debug("isomorphism search exhausted",
			zap.Int("candidates", candidates),
		)
	}

	return h
}

// IsIsomorphic determines if the two groups are isomorphic.
func (g *Group) IsIsomorphic(other *Group) bool {
	return g.FindIsomorphism(other) != nil
}

// extendMapping grows the partial map sending gens[i] to assigned[i] into a
// total map from g to other, forcing images via the homomorphism law:
// whenever x and y are mapped, x·y must map to f(x)·f(y). It returns the
// completed index mapping, or nil when a pair contradicts an already-forced
// image or two elements are forced onto the same image.
func (g *Group) extendMapping(other *Group, gens, assigned []int) []int {
	n := len(g.elems)

	mapping := make([]int, n)
	for i := range mapping {
		mapping[i] = -1
	}

	taken := make([]bool, n)

	for i, a := range gens {
		mapping[a] = assigned[i]
		taken[assigned[i]] = true
	}

	mapped := make([]int, 0, n)
	for i := range mapping {
		if mapping[i] >= 0 {
			mapped = append(mapped, i)
		}
	}

	for {
		// One closure pass: every product of already-mapped elements
		// either confirms the map or forces a new image.
		pending := make(map[int]int)

		for _, x := range mapped {
			for _, y := range mapped {
				p := g.table[x][y]
				q := other.table[mapping[x]][mapping[y]]

				if mapping[p] >= 0 {
					if mapping[p] != q {
						return nil
					}
					continue
				}

				if forced, ok := pending[p]; ok {
					if forced != q {
						return nil
					}
					continue
				}

				pending[p] = q
			}
		}

		if len(mapped) == n {
			return mapping
		}

		if len(pending) == 0 {
			// Stalled: the mapped set is closed but does not cover g.
			return nil
		}

		// The new images and the fixed images together must stay
		// collision-free before any of them commit.
		for _, q := range pending {
			if taken[q] {
				return nil
			}
			taken[q] = true
		}

		for p, q := range pending {
			mapping[p] = q
			mapped = append(mapped, p)
		}
	}
}

// witness builds the homomorphism realizing a completed index mapping.
func (g *Group) witness(other *Group, mapping []int) *Homomorphism {
	rule := func(x set.Element) set.Element {
		return other.elems[mapping[g.indexOf(x)]]
	}

	h, err := NewHomomorphism(g, other, function.New(g.s, other.s, rule))
	if err != nil {
		return nil
	}

	return h
}
