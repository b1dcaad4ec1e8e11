package id3

import (
	"context"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
)

/*
Pruner is an interface wrapping the Prune method, that can be used
to decide whether a partition is good enough to become part of a tree
or if it must be pruned instead.

The Prune method takes a context, the distribution of the node being
partitioned and the selected partition and returns a boolean: true to
indicate the partition must be pruned, false to allow its adding to the
tree and further development.
*/
type Pruner interface {
	Prune(ctx context.Context, parent genome.Distribution, p *Partition) (bool, error)
}

/*
PrunerFunc wraps a function with the Prune method signature to implement
the Pruner interface
*/
type PrunerFunc func(ctx context.Context, parent genome.Distribution, p *Partition) (bool, error)

/*
Prune takes a context.Context, the distribution of the node being
partitioned and a partition and invokes the PrunerFunc with those
parameters to return its boolean result.
*/
func (pf PrunerFunc) Prune(ctx context.Context, parent genome.Distribution, p *Partition) (bool, error) {
	return pf(ctx, parent, p)
}

/*
DefaultPruner returns a Pruner whose Prune method prunes partitions
with a non-positive score: splits that do not improve on the node they
partition.
*/
func DefaultPruner() Pruner {
	return FixedScorePruner(0.0)
}

/*
FixedScorePruner takes a scoreThreshold float64 value and returns a
Pruner whose Prune method returns whether the scoreThreshold is greater
or equal to the received partition's score
*/
func FixedScorePruner(scoreThreshold float64) Pruner {
	return PrunerFunc(func(ctx context.Context, parent genome.Distribution, p *Partition) (bool, error) {
		return scoreThreshold >= p.score, nil
	})
}

/*
NoPruner returns a Pruner whose Prune method always returns false, that
is, never prunes.
*/
func NoPruner() Pruner {
	return PrunerFunc(func(ctx context.Context, parent genome.Distribution, p *Partition) (bool, error) {
		return false, nil
	})
}
