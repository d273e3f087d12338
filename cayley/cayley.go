// Package cayley renders the multiplication table of a finite group.
package cayley

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/scylladb/go-set/strset"

	"github.com/rdeusser/abstract/group"
	"github.com/rdeusser/abstract/set"
)

// The identity is always labeled e; the remaining elements take the rest
// of the alphabet in enumeration order.
const defaultAlphabet = "eabcdfghijklmnopqrstuvwxyz"

var (
	ErrTooManyElements = errors.New("group is too big for the default alphabet; provide labels")
	ErrDuplicateLabels = errors.New("labels are not distinct")
)

type options struct {
	labels   func(set.Element) string
	colorize bool
}

// Option configures a rendering.
type Option func(*options)

// WithLabels sets a caller-supplied labeling function, replacing the
// default one-letter alphabet. Labels must be distinct across the group's
// elements.
func WithLabels(fn func(set.Element) string) Option {
	return func(o *options) {
		o.labels = fn
	}
}

// WithColor renders the legend and the table headers in color.
func WithColor() Option {
	return func(o *options) {
		o.colorize = true
	}
}

// Render returns the group's Cayley table: a legend mapping labels to
// elements, followed by the bordered multiplication grid with the identity
// row and column first.
//
// Rendering a group with more elements than the default alphabet fails
// with ErrTooManyElements unless WithLabels is provided.
func Render(g *group.Group, opts ...Option) (string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	elems := g.Elements()

	labels, err := labelsFor(elems, o.labels)
	if err != nil {
		return "", err
	}

	width := 0
	for _, l := range labels {
		if len(l) > width {
			width = len(l)
		}
	}

	header := func(s string) string {
		if o.colorize {
			return color.New(color.FgCyan).Sprint(s)
		}
		return s
	}

	var b strings.Builder

	for i, l := range labels {
		fmt.Fprintf(&b, "%s: %s\n", header(pad(l, width)), elems[i])
	}
	b.WriteString("\n")

	border := strings.Repeat(strings.Repeat("-", width+2)+"+", len(elems)+1) + "\n"

	b.WriteString(strings.Repeat(" ", width+2) + "|")
	for _, l := range labels {
		b.WriteString(" " + header(pad(l, width)) + " |")
	}
	b.WriteString("\n" + border)

	for i, row := range elems {
		b.WriteString(" " + header(pad(labels[i], width)) + " |")

		for _, col := range elems {
			product, err := g.Mul(row, col)
			if err != nil {
				return "", err
			}

			b.WriteString(" " + pad(labels[indexOf(elems, product)], width) + " |")
		}

		b.WriteString("\n" + border)
	}

	return b.String(), nil
}

// labelsFor assigns a label to each element, erroring on collisions or an
// overrun of the default alphabet.
func labelsFor(elems []set.Element, custom func(set.Element) string) ([]string, error) {
	labels := make([]string, 0, len(elems))

	if custom == nil {
		if len(elems) > len(defaultAlphabet) {
			return nil, ErrTooManyElements
		}

		for i := range elems {
			labels = append(labels, string(defaultAlphabet[i]))
		}

		return labels, nil
	}

	for _, e := range elems {
		labels = append(labels, custom(e))
	}

	if strset.New(labels...).Size() != len(labels) {
		return nil, ErrDuplicateLabels
	}

	return labels, nil
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-len(s))
}

func indexOf(elems []set.Element, x set.Element) int {
	for i, e := range elems {
		if e.Equal(x) {
			return i
		}
	}

	return -1
}
