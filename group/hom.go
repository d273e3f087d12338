package group

import (
	"errors"
	"fmt"

	"github.com/rdeusser/abstract/function"
	"github.com/rdeusser/abstract/set"
)

var (
	ErrBadMapping      = errors.New("mapping domain/codomain does not match the groups")
	ErrNotHomomorphism = errors.New("mapping violates the homomorphism law")
)

// Homomorphism is a structure-preserving map between two groups:
// f(a·b) = f(a)·f(b) for all a, b in the domain. The law is verified once
// at construction.
type Homomorphism struct {
	domain   *Group
	codomain *Group
	fn       *function.Fn
}

// NewHomomorphism constructs a homomorphism from domain to codomain given
// by fn, whose domain and codomain must be the groups' carrier sets. The
// mapping must land inside the codomain group and satisfy the homomorphism
// law over every pair of domain elements.
func NewHomomorphism(domain, codomain *Group, fn *function.Fn) (*Homomorphism, error) {
	if !fn.Domain().Equal(domain.s) || !fn.Codomain().Equal(codomain.s) {
		return nil, ErrBadMapping
	}

	if err := fn.Validate(); err != nil {
		return nil, err
	}

	n := len(domain.elems)

	// Index the images once; the law check then runs over the two groups'
	// operation tables.
	images := make([]int, n)
	for i, a := range domain.elems {
		y, err := fn.Apply(a)
		if err != nil {
			return nil, err
		}

		images[i] = codomain.indexOf(y)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if codomain.table[images[i]][images[j]] != images[domain.table[i][j]] {
				return nil, fmt.Errorf("%w: f(%s·%s)",
					ErrNotHomomorphism, domain.elems[i], domain.elems[j])
			}
		}
	}

	return &Homomorphism{
		domain:   domain,
		codomain: codomain,
		fn:       fn,
	}, nil
}

// Domain returns the homomorphism's domain group.
func (h *Homomorphism) Domain() *Group {
	return h.domain
}

// Codomain returns the homomorphism's codomain group.
func (h *Homomorphism) Codomain() *Group {
	return h.codomain
}

// Fn returns the underlying total function.
func (h *Homomorphism) Fn() *function.Fn {
	return h.fn
}

// Apply evaluates the homomorphism at x.
func (h *Homomorphism) Apply(x set.Element) (set.Element, error) {
	return h.fn.Apply(x)
}

// Kernel returns the subgroup of domain elements mapping to the codomain's
// identity. It is never empty: the domain's identity always belongs, and
// the homomorphism law makes the kernel closed under the operation.
func (h *Homomorphism) Kernel() (*Group, error) {
	e := h.codomain.Identity()

	members := make([]set.Element, 0, len(h.domain.elems))
	for _, a := range h.domain.elems {
		y, err := h.fn.Apply(a)
		if err != nil {
			return nil, err
		}

		if y.Equal(e) {
			members = append(members, a)
		}
	}

	ker := set.New(members...)

	return New(ker, h.domain.op.NewDomains(ker.Product(ker), ker), WithLogger(h.domain.logger))
}

// Image returns the range of the homomorphism as a subgroup of the
// codomain.
func (h *Homomorphism) Image() (*Group, error) {
	img := h.fn.Image()

	return New(img, h.codomain.op.NewDomains(img.Product(img), img), WithLogger(h.codomain.logger))
}

// IsIsomorphism determines if the homomorphism is bijective.
func (h *Homomorphism) IsIsomorphism() bool {
	return h.fn.IsBijective()
}
