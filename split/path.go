package split

import (
	"fmt"
	"strings"
)

// Direction indicates which branch of a split an individual must
// belong to: the one carrying the variant or the one lacking it.
type Direction uint8

const (
	// Without selects individuals lacking the variant.
	Without Direction = 0
	// With selects individuals carrying the variant.
	With Direction = 1
)

func (d Direction) String() string {
	if d == With {
		return "with"
	}
	return "without"
}

/*
Path is the ordered sequence of variant-presence constraints that
identifies a decision-tree node: each step records the variant a split
was made on and the direction taken. The zero value is the empty path
of the root node, which constrains nothing.

Paths are never mutated in place: Extend returns fresh copies, so a
path held by one tree node remains valid however its descendants are
developed.
*/
type Path struct {
	variants   []string
	directions []Direction
}

/*
NewPath takes a slice of variant names and a slice of directions of the
same length and returns a path with one constraint per position, or an
error if the slices are not aligned. The slices are copied.
*/
func NewPath(variants []string, directions []Direction) (Path, error) {
	if len(variants) != len(directions) {
		return Path{}, fmt.Errorf("building split path: %d variants for %d directions", len(variants), len(directions))
	}
	vs := make([]string, len(variants))
	copy(vs, variants)
	ds := make([]Direction, len(directions))
	copy(ds, directions)
	return Path{vs, ds}, nil
}

// Len returns the number of constraints on the path.
func (p Path) Len() int {
	return len(p.variants)
}

// At returns the variant name and direction of the constraint at the
// given position on the path.
func (p Path) At(i int) (string, Direction) {
	return p.variants[i], p.directions[i]
}

// Variants returns a slice with the names of the variants already
// split on along the path.
func (p Path) Variants() []string {
	variants := make([]string, len(p.variants))
	copy(variants, p.variants)
	return variants
}

/*
Extend takes a variant name and returns two new paths: the given path
plus a With constraint on the variant, and the given path plus a
Without constraint on it. The returned paths share no backing storage
with the receiver or with each other.

The variant is accepted as-is: not splitting twice on the same variant
along a path is the caller's responsibility.
*/
func (p Path) Extend(variant string) (with, without Path) {
	with = p.extend(variant, With)
	without = p.extend(variant, Without)
	return with, without
}

func (p Path) extend(variant string, d Direction) Path {
	variants := make([]string, len(p.variants)+1)
	copy(variants, p.variants)
	variants[len(p.variants)] = variant
	directions := make([]Direction, len(p.directions)+1)
	copy(directions, p.directions)
	directions[len(p.directions)] = d
	return Path{variants, directions}
}

func (p Path) String() string {
	if p.Len() == 0 {
		return "(root)"
	}
	steps := make([]string, len(p.variants))
	for i, v := range p.variants {
		steps[i] = fmt.Sprintf("%s=%d", v, p.directions[i])
	}
	return strings.Join(steps, " > ")
}
