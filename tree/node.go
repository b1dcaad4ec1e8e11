package tree

import (
	"fmt"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
	"github.com/CanDIG/ID3-Sickkids-Project/split"
)

/*
Criterion is the variant-presence constraint a node imposes on the
individuals it covers: the variant its parent split on and the branch
direction taken.
*/
type Criterion struct {
	Variant   string
	Direction split.Direction
}

/*
SatisfiedBy takes a sample and returns whether its presence of the
criterion's variant matches the criterion's direction, or an error if
the presence cannot be determined.
*/
func (c *Criterion) SatisfiedBy(s genome.Sample) (bool, error) {
	has, err := s.HasVariant(c.Variant)
	if err != nil {
		return false, err
	}
	return has == (c.Direction == split.With), nil
}

func (c *Criterion) String() string {
	return fmt.Sprintf("%s %s", c.Direction, c.Variant)
}

/*
Node is a node of the tree
*/
type Node struct {
	// An ID to identify the node
	ID string
	// The ID for the parent of the node in the tree
	ParentID string
	// An slice with the IDs of the nodes directly under this node
	SubtreeIDs []string
	// The ancestry prediction for individuals that satisfied the node
	// constraints from the root of the tree down to this node.
	Prediction *Prediction
	// The constraint this node imposes on individuals, nil on the root.
	// For growing trees it is the criterion that applied to the parent
	// node's eligible rows produces this node's rows.
	// For fully-grown trees it selects this node when predicting the
	// ancestry of an individual that satisfies it.
	Criterion *Criterion
	// The variant on which nodes directly under this node impose a
	// constraint, empty on leaves. For growing trees it is the variant
	// that splits the eligible rows into the sets for the nodes below,
	// whereas for fully-grown trees it is the variant to ask about next
	// on the individual being predicted.
	SplitVariant string
	// The split path identifying the node: the criteria of its
	// ancestors plus its own, in root-to-node order.
	Path split.Path
}
