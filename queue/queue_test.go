package queue_test

import (
	"context"
	"testing"

	"github.com/CanDIG/ID3-Sickkids-Project/queue"
	"github.com/CanDIG/ID3-Sickkids-Project/tree"
	"github.com/stretchr/testify/require"
)

func testTask(id string) *queue.Task {
	return &queue.Task{Node: &tree.Node{ID: id}}
}

func TestPullOnEmptyQueue(t *testing.T) {
	ctx := context.Background()
	q := queue.New()
	task, taskCtx, cancel, err := q.Pull(ctx)
	require.NoError(t, err)
	require.Nil(t, task)
	require.Nil(t, taskCtx)
	require.Nil(t, cancel)
}

func TestPushPullComplete(t *testing.T) {
	ctx := context.Background()
	q := queue.New()
	require.NoError(t, q.Push(ctx, testTask("1")))

	pending, running, err := q.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, pending)
	require.Equal(t, 0, running)

	task, taskCtx, cancel, err := q.Pull(ctx)
	require.NoError(t, err)
	require.NotNil(t, task)
	require.NotNil(t, taskCtx)
	require.NotNil(t, cancel)
	require.Equal(t, "1", task.ID())

	pending, running, err = q.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, pending)
	require.Equal(t, 1, running)

	require.NoError(t, q.Complete(ctx, task.ID()))
	pending, running, err = q.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, pending)
	require.Equal(t, 0, running)
}

func TestPullOrderIsFIFO(t *testing.T) {
	ctx := context.Background()
	q := queue.New()
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, q.Push(ctx, testTask(id)))
	}
	for _, id := range []string{"1", "2", "3"} {
		task, _, _, err := q.Pull(ctx)
		require.NoError(t, err)
		require.NotNil(t, task)
		require.Equal(t, id, task.ID())
	}
}

func TestDropRequeuesRunningTask(t *testing.T) {
	ctx := context.Background()
	q := queue.New()
	require.NoError(t, q.Push(ctx, testTask("1")))

	task, _, _, err := q.Pull(ctx)
	require.NoError(t, err)
	require.NotNil(t, task)

	require.NoError(t, q.Drop(ctx, task.ID()))
	pending, running, err := q.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, pending)
	require.Equal(t, 0, running)

	again, _, _, err := q.Pull(ctx)
	require.NoError(t, err)
	require.NotNil(t, again)
	require.Equal(t, task.ID(), again.ID())
}

func TestDropAfterCompleteIsANoop(t *testing.T) {
	ctx := context.Background()
	q := queue.New()
	require.NoError(t, q.Push(ctx, testTask("1")))

	task, _, _, err := q.Pull(ctx)
	require.NoError(t, err)
	require.NoError(t, q.Complete(ctx, task.ID()))
	require.NoError(t, q.Drop(ctx, task.ID()))

	pending, running, err := q.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, pending)
	require.Equal(t, 0, running)
}

func TestStopCancelsTaskContexts(t *testing.T) {
	ctx := context.Background()
	q := queue.New()
	require.NoError(t, q.Push(ctx, testTask("1")))

	_, taskCtx, _, err := q.Pull(ctx)
	require.NoError(t, err)
	require.NoError(t, taskCtx.Err())

	require.NoError(t, q.Stop(ctx))
	require.Error(t, taskCtx.Err())
}

func TestQueueHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	q := queue.New()
	require.Error(t, q.Push(ctx, testTask("1")))
}

func TestWaitFor(t *testing.T) {
	ctx := context.Background()
	q := queue.New()
	require.NoError(t, queue.WaitFor(ctx, q))

	require.NoError(t, q.Push(ctx, testTask("1")))
	done := make(chan error, 1)
	go func() {
		done <- queue.WaitFor(ctx, q)
	}()
	task, _, _, err := q.Pull(ctx)
	require.NoError(t, err)
	require.NoError(t, q.Complete(ctx, task.ID()))
	require.NoError(t, <-done)
}

func TestWaitForHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := queue.New()
	require.NoError(t, q.Push(ctx, testTask("1")))
	cancel()
	require.Error(t, queue.WaitFor(ctx, q))
}
