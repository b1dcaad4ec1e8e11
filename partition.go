package id3

import (
	"context"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
	"github.com/CanDIG/ID3-Sickkids-Project/queue"
	"github.com/CanDIG/ID3-Sickkids-Project/split"
	"github.com/CanDIG/ID3-Sickkids-Project/tree"
)

/*
Partition represents the split of a node's eligible rows on a variant
into a with-variant branch and a without-variant branch, with the score
the split obtained.
*/
type Partition struct {
	Variant string
	Tasks   []*queue.Task
	score   float64
}

// Score returns the score the partition's variant obtained.
func (p *Partition) Score() float64 {
	return p.score
}

/*
NewPartition takes a variant name, the split path of the node being
partitioned and the with/without distributions the variant produces
over the node's eligible rows, and returns a partition splitting the
node on that variant with the score the given scorer assigns to it.
Each branch gets the node's path extended with the corresponding
direction, so sibling paths share no storage.
*/
func NewPartition(variant string, path split.Path, parent, with, without genome.Distribution, sc Scorer) *Partition {
	wPath, woPath := path.Extend(variant)
	wTask := &queue.Task{
		Node: &tree.Node{Criterion: &tree.Criterion{Variant: variant, Direction: split.With}, Path: wPath},
		Path: wPath,
	}
	woTask := &queue.Task{
		Node: &tree.Node{Criterion: &tree.Criterion{Variant: variant, Direction: split.Without}, Path: woPath},
		Path: woPath,
	}
	return &Partition{variant, []*queue.Task{wTask, woTask}, sc.Score(parent, with, without)}
}

/*
bestPartition evaluates every available variant of the task against the
node's distribution and returns the highest-scoring unpruned partition,
or nil if no variant yields a usable split.

A single CandidateCounts call provides the with-variant distribution of
every candidate; variants whose split would leave either branch empty
are discarded. Ties keep the first candidate in available order.
*/
func bestPartition(ctx context.Context, task *queue.Task, eng *split.Engine, dist genome.Distribution, sc Scorer, p Pruner) (*Partition, error) {
	counts, err := eng.CandidateCounts(task.Path)
	if err != nil {
		return nil, err
	}
	var selected *Partition
	for _, variant := range task.AvailableVariants {
		column, err := eng.Matrix().VariantIndex(variant)
		if err != nil {
			return nil, err
		}
		with := counts[column]
		without := dist.Minus(with)
		if with.Total() == 0 || without.Total() == 0 {
			continue
		}
		part := NewPartition(variant, task.Path, dist, with, without, sc)
		if selected == nil || part.score > selected.score {
			selected = part
		}
	}
	if selected == nil {
		return nil, nil
	}
	pruned, err := p.Prune(ctx, dist, selected)
	if err != nil {
		return nil, err
	}
	if pruned {
		return nil, nil
	}
	return selected, nil
}
