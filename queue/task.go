package queue

import (
	"fmt"

	"github.com/CanDIG/ID3-Sickkids-Project/split"
	"github.com/CanDIG/ID3-Sickkids-Project/tree"
)

// Task represents a tree.Node to be developed
// on a tree.Tree.
type Task struct {
	// The node to be developed
	Node *tree.Node
	// The split path identifying the node, whose
	// constraints define the matrix rows eligible
	// at the node.
	Path split.Path
	// The names of the variants that can still be
	// used to split the node into branches. It
	// excludes the variants used in ancestor nodes.
	AvailableVariants []string
}

// ID returns a string that identifies the
// task, the ID of its Node.
func (t *Task) ID() string {
	return t.Node.ID
}

func (t *Task) String() string {
	return fmt.Sprintf("{Task %s}", t.Node.ID)
}
