package id3

import (
	"context"
	"time"

	"github.com/CanDIG/ID3-Sickkids-Project/queue"
	"github.com/CanDIG/ID3-Sickkids-Project/split"
	"github.com/CanDIG/ID3-Sickkids-Project/tree"
)

// Seed takes a context, a split engine, a queue and a node store and
// sets everything up so that workers that consume from the queue
// afterwards grow a tree that predicts ancestry according to the
// genotype data behind the engine.
// Specifically it will create the root node of the tree on the node
// store and push a task to branch it out on the queue, with the empty
// split path and every matrix variant available for splitting.
// The function returns the tree that can be grown or an error if the
// node cannot be created on the store, or the task pushed to the queue
// (in the amount of time allowed by the given context).
func Seed(ctx context.Context, eng *split.Engine, q queue.Queue, ns tree.NodeStore) (*tree.Tree, error) {
	n := &tree.Node{}
	err := ns.Create(ctx, n)
	if err != nil {
		return nil, err
	}
	task := &queue.Task{Node: n, AvailableVariants: eng.Matrix().Variants()}
	t := tree.New(n.ID, ns)
	err = q.Push(ctx, task)
	if err != nil {
		ns.Delete(ctx, n)
		return nil, err
	}
	return t, nil
}

// BranchOut takes a context, a task, a tree, a split engine, a scorer
// and a pruner, develops the node in the task over the rows eligible
// under the task's split path and returns a set of tasks to develop
// the resulting children nodes or an error.
//
// Every available variant is evaluated with a single pass over the
// matrix: the engine's candidate scan yields the with-variant
// distribution of each candidate, and the without-variant distribution
// is the node's distribution minus it.
func BranchOut(ctx context.Context, task *queue.Task, t *tree.Tree, eng *split.Engine, sc Scorer, p Pruner) (tasks []*queue.Task, e error) {
	dist, err := eng.Distribution(task.Path)
	if err != nil {
		return nil, err
	}
	prediction, err := tree.NewPrediction(dist)
	if err != nil && err != tree.ErrCannotPredictFromEmptyDistribution {
		return nil, err
	}
	defer func() {
		err := t.NodeStore.Store(ctx, task.Node)
		if e == nil {
			e = err
		}
	}()
	task.Node.Prediction = prediction
	if len(task.AvailableVariants) == 0 || dist.Populations() <= 1 {
		return nil, nil
	}
	selectedPartition, err := bestPartition(ctx, task, eng, dist, sc, p)
	if err != nil {
		return nil, err
	}
	if selectedPartition == nil {
		return nil, nil
	}
	task.Node.SplitVariant = selectedPartition.Variant
	stAvailableVariants := make([]string, 0, len(task.AvailableVariants)-1)
	for _, v := range task.AvailableVariants {
		if v != selectedPartition.Variant {
			stAvailableVariants = append(stAvailableVariants, v)
		}
	}
	stNodeIDs := make([]string, 0, len(selectedPartition.Tasks))
	for _, st := range selectedPartition.Tasks {
		st.Node.ParentID = task.Node.ID
		err = t.NodeStore.Create(ctx, st.Node)
		if err != nil {
			return nil, err
		}
		stNodeIDs = append(stNodeIDs, st.Node.ID)
		st.AvailableVariants = stAvailableVariants
	}
	task.Node.SubtreeIDs = stNodeIDs
	return selectedPartition.Tasks, nil
}

// Work takes a context, a tree, a split engine, a queue, a scorer, a
// pruner and an emptyQueueSleep duration and enters a loop in which
// it:
//   - pulls a task from the queue,
//   - branches its node out into new subnodes using BranchOut
//   - pushes the tasks for the new subnodes into the queue
//   - marks the task as completed on the queue
//
// If at some point no task can be pulled from the queue and
// the sum of tasks running and pending on the queue is 0, the
// worker ends returning nil. If no task can be pulled but the
// sum is not 0, then the worker will sleep for the given
// emptyQueueSleep duration and then retry.
//
// Work will return a non-nil error if the given context
// times out or is cancelled, if BranchOut returns a non-nil
// error or if an operation with the given queue returns a
// non-nil error.
func Work(ctx context.Context, t *tree.Tree, eng *split.Engine, q queue.Queue, sc Scorer, p Pruner, emptyQueueSleep time.Duration) error {
	for {
		task, tctx, tcf, err := q.Pull(ctx)
		if err != nil {
			return err
		}
		if task == nil {
			r, pending, err := q.Count(ctx)
			if err != nil {
				return err
			}
			if r+pending == 0 {
				break
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(emptyQueueSleep):
			}
			continue
		}
		mctx, cancel := mergeCtxCancel(tctx, ctx)
		err = workTask(mctx, task, t, eng, q, sc, p)
		cancel()
		tcf()
		if err != nil {
			return err
		}
		err = ctx.Err()
		if err != nil {
			return err
		}
	}
	return nil
}

func workTask(ctx context.Context, task *queue.Task, t *tree.Tree, eng *split.Engine, q queue.Queue, sc Scorer, p Pruner) error {
	defer func() {
		q.Drop(ctx, task.ID())
	}()
	tasks, err := BranchOut(ctx, task, t, eng, sc, p)
	if err != nil {
		return err
	}
	for _, st := range tasks {
		err = q.Push(ctx, st)
		if err != nil {
			return err
		}
	}
	return q.Complete(ctx, task.ID())
}

func mergeCtxCancel(ctx1, ctx2 context.Context) (context.Context, context.CancelFunc) {
	mctx, cancel := context.WithCancel(ctx1)
	go func() {
		select {
		case <-mctx.Done():
		case <-ctx2.Done():
			cancel()
		}
	}()
	return mctx, cancel
}
