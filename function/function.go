// Package function models total functions between finite sets.
package function

import (
	"errors"
	"fmt"

	"github.com/rdeusser/abstract/set"
)

var (
	ErrNotInDomain    = errors.New("element is not in the domain")
	ErrNotTotal       = errors.New("rule maps outside the codomain")
	ErrDomainMismatch = errors.New("domains are incompatible for composition")
)

// Fn is a total function from one finite set (the domain) to another (the
// codomain), given by a rule.
//
// Totality of the rule is not enforced at construction. Anything promoting
// an Fn to underpin algebraic structure must call Validate first; once
// Validate has passed the function never changes, so it need not be checked
// again.
type Fn struct {
	domain   *set.FiniteSet
	codomain *set.FiniteSet
	rule     func(set.Element) set.Element
}

// New returns the function given by rule from domain to codomain.
func New(domain, codomain *set.FiniteSet, rule func(set.Element) set.Element) *Fn {
	return &Fn{
		domain:   domain,
		codomain: codomain,
		rule:     rule,
	}
}

// Domain returns the function's domain.
func (f *Fn) Domain() *set.FiniteSet {
	return f.domain
}

// Codomain returns the function's codomain.
func (f *Fn) Codomain() *set.FiniteSet {
	return f.codomain
}

// Validate checks that the rule is total: defined on every domain element
// and landing in the codomain.
func (f *Fn) Validate() error {
	var err error

	f.domain.ForEach(func(x set.Element) bool {
		y := f.rule(x)
		if y == nil || !f.codomain.Contains(y) {
			err = fmt.Errorf("%w: rule(%s)", ErrNotTotal, x)
			return true
		}
		return false
	})

	return err
}

// Apply evaluates the function at x. It returns ErrNotInDomain if x is not
// a domain element.
func (f *Fn) Apply(x set.Element) (set.Element, error) {
	if !f.domain.Contains(x) {
		return nil, fmt.Errorf("%w: %s", ErrNotInDomain, x)
	}

	return f.rule(x), nil
}

// Equal determines if the two functions are equal: same domain, same
// codomain, and agreement at every domain element. Pointwise comparison is
// expensive but well-defined for finite domains.
func (f *Fn) Equal(other *Fn) bool {
	if !f.domain.Equal(other.domain) || !f.codomain.Equal(other.codomain) {
		return false
	}

	agree := true

	f.domain.ForEach(func(x set.Element) bool {
		if !f.rule(x).Equal(other.rule(x)) {
			agree = false
			return true
		}
		return false
	})

	return agree
}

// NewDomains rebinds the underlying rule to a new domain/codomain pair
// without re-deriving the rule. Used to restrict a group operation to a
// subset closed under it.
func (f *Fn) NewDomains(domain, codomain *set.FiniteSet) *Fn {
	return New(domain, codomain, f.rule)
}

// Compose returns f after inner, i.e. x -> f(inner(x)). The inner
// function's codomain must equal f's domain.
func (f *Fn) Compose(inner *Fn) (*Fn, error) {
	if !inner.codomain.Equal(f.domain) {
		return nil, ErrDomainMismatch
	}

	return New(inner.domain, f.codomain, func(x set.Element) set.Element {
		return f.rule(inner.rule(x))
	}), nil
}

// Image returns the range of the function as a set.
func (f *Fn) Image() *set.FiniteSet {
	images := make([]set.Element, 0, f.domain.Length())

	f.domain.ForEach(func(x set.Element) bool {
		images = append(images, f.rule(x))
		return false
	})

	return set.New(images...)
}

// IsInjective determines if distinct domain elements have distinct images.
func (f *Fn) IsInjective() bool {
	return f.Image().Length() == f.domain.Length()
}

// IsSurjective determines if every codomain element is an image.
func (f *Fn) IsSurjective() bool {
	return f.codomain.IsSubSet(f.Image())
}

// IsBijective determines if the function is both injective and surjective.
func (f *Fn) IsBijective() bool {
	return f.IsInjective() && f.IsSurjective()
}
