/*
Package json provides a task codec that represents tasks as JSON
objects, for queue backends that need to serialize them.
*/
package json

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CanDIG/ID3-Sickkids-Project/queue"
	"github.com/CanDIG/ID3-Sickkids-Project/split"
	"github.com/CanDIG/ID3-Sickkids-Project/tree"
)

/*
TaskEncodeDecoder is an interface for objects
that allow encoding tasks as slices of bytes and decoding
them back to tasks. It is used to serialize tasks into a
representation to store on an external queue backend.
*/
type TaskEncodeDecoder interface {

	//Encode receives a *queue.Task
	//and returns a slice of bytes with the task encoded or an
	//error if the encoding could not be performed for
	//some reason. Its counterpart is Decode.
	Encode(context.Context, *queue.Task) ([]byte, error)

	//Decode receives a slice of bytes
	//and returns a *queue.Task decoded from the slice of bytes
	//or an error if the decoding could not be performed
	//for some reason.
	Decode(context.Context, []byte) (*queue.Task, error)
}

type jsonEncodeDecoder struct {
	ns tree.NodeStore
}

type jsonTask struct {
	NodeID            string            `json:"id"`
	PathVariants      []string          `json:"pv"`
	PathDirections    []split.Direction `json:"pd"`
	AvailableVariants []string          `json:"av"`
}

/*
New takes a tree.NodeStore and returns a TaskEncodeDecoder that
represents tasks as JSON objects holding the task's node id, split path
and available variants. Nodes themselves are not serialized: decoding
retrieves them from the given node store by id.
*/
func New(ns tree.NodeStore) TaskEncodeDecoder {
	return &jsonEncodeDecoder{ns}
}

func (jed *jsonEncodeDecoder) Encode(ctx context.Context, t *queue.Task) ([]byte, error) {
	jt := &jsonTask{NodeID: t.ID(), AvailableVariants: t.AvailableVariants}
	for i := 0; i < t.Path.Len(); i++ {
		v, d := t.Path.At(i)
		jt.PathVariants = append(jt.PathVariants, v)
		jt.PathDirections = append(jt.PathDirections, d)
	}
	return json.Marshal(jt)
}

func (jed *jsonEncodeDecoder) Decode(ctx context.Context, data []byte) (*queue.Task, error) {
	jt := &jsonTask{}
	err := json.Unmarshal(data, jt)
	if err != nil {
		return nil, fmt.Errorf("decoding task from json: %v", err)
	}
	t := &queue.Task{AvailableVariants: jt.AvailableVariants}
	t.Node, err = jed.ns.Get(ctx, jt.NodeID)
	if err != nil {
		return nil, fmt.Errorf("decoding json task: getting task node: %v", err)
	}
	if t.Node == nil {
		return nil, fmt.Errorf("decoding json task: could not get node %q from node store", jt.NodeID)
	}
	t.Path, err = split.NewPath(jt.PathVariants, jt.PathDirections)
	if err != nil {
		return nil, fmt.Errorf("decoding json task: %v", err)
	}
	return t, nil
}
