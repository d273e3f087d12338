package group

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rdeusser/abstract/set"
)

var ErrBadOrder = errors.New("n must be at least 1")

// Zn returns the cyclic group of order n: integers 0..n-1 under addition
// modulo n.
func Zn(n int, opts ...Option) (*Group, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}

	elems := make([]set.Element, 0, n)
	for i := 0; i < n; i++ {
		elems = append(elems, set.Int(i))
	}

	carrier := set.New(elems...)

	rule := func(x set.Element) set.Element {
		p := x.(set.Pair)
		return set.Int((int(p.Left.(set.Int)) + int(p.Right.(set.Int))) % n)
	}

	return New(carrier, newFn(carrier, rule), opts...)
}

// Sn returns the symmetric group on n symbols, of order n!: all
// permutations of 0..n-1 under composition.
func Sn(n int, opts ...Option) (*Group, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}

	elems := make([]set.Element, 0)
	for _, p := range permutations(n) {
		elems = append(elems, set.Perm(p))
	}

	carrier := set.New(elems...)

	rule := func(x set.Element) set.Element {
		p := x.(set.Pair).Left.(set.Perm)
		q := x.(set.Pair).Right.(set.Perm)

		composed := make(set.Perm, n)
		for i := range composed {
			composed[i] = p[q[i]]
		}

		return composed
	}

	return New(carrier, newFn(carrier, rule), opts...)
}

// Dn returns the dihedral group of order 2n: the rotations R0..Rn-1 and
// reflections S0..Sn-1 of a regular n-gon.
func Dn(n int, opts ...Option) (*Group, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}

	elems := make([]set.Element, 0, 2*n)
	for _, l := range []string{"R", "S"} {
		for i := 0; i < n; i++ {
			elems = append(elems, set.Str(fmt.Sprintf("%s%d", l, i)))
		}
	}

	carrier := set.New(elems...)

	rule := func(x set.Element) set.Element {
		a := string(x.(set.Pair).Left.(set.Str))
		b := string(x.(set.Pair).Right.(set.Str))

		x1, _ := strconv.Atoi(a[1:])
		x2, _ := strconv.Atoi(b[1:])

		if a[0] == 'R' {
			if b[0] == 'R' {
				return set.Str(fmt.Sprintf("R%d", (x1+x2)%n))
			}
			return set.Str(fmt.Sprintf("S%d", (x1+x2)%n))
		}
		if b[0] == 'R' {
			return set.Str(fmt.Sprintf("S%d", ((x1-x2)%n+n)%n))
		}
		return set.Str(fmt.Sprintf("R%d", ((x1-x2)%n+n)%n))
	}

	return New(carrier, newFn(carrier, rule), opts...)
}

// permutations returns every permutation of 0..n-1 in one-line notation.
func permutations(n int) [][]int {
	current := make([]int, n)
	for i := range current {
		current[i] = i
	}

	var result [][]int

	var permute func(k int)
	permute = func(k int) {
		if k == n {
			p := make([]int, n)
			copy(p, current)
			result = append(result, p)
			return
		}

		for i := k; i < n; i++ {
			current[k], current[i] = current[i], current[k]
			permute(k + 1)
			current[k], current[i] = current[i], current[k]
		}
	}

	permute(0)

	return result
}
