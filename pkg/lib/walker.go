package lib

import "github.com/pg-sharding/nullscan/pkg/plan"

// PreOrderWalker visits a node, then its children in order. A node reachable
// through several parents is visited once per walk.
type PreOrderWalker[C any] struct {
	disp Dispatcher[C]
}

func NewPreOrderWalker[C any](disp Dispatcher[C]) *PreOrderWalker[C] {
	return &PreOrderWalker[C]{disp: disp}
}

// StartWalking walks from every root in order, threading ctx through the
// dispatcher, and hands ctx back. The first dispatch error stops the walk.
func (w *PreOrderWalker[C]) StartWalking(roots []plan.Node, ctx C) (C, error) {
	visited := map[plan.Node]struct{}{}
	for _, nd := range roots {
		if nd == nil {
			continue
		}
		if err := w.walk(nd, nil, visited, ctx); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

func (w *PreOrderWalker[C]) walk(nd plan.Node, stack []plan.Node, visited map[plan.Node]struct{}, ctx C) error {
	if _, ok := visited[nd]; ok {
		return nil
	}
	visited[nd] = struct{}{}

	stack = append(stack, nd)
	if err := w.disp.Dispatch(nd, stack[:len(stack):len(stack)], ctx); err != nil {
		return err
	}
	for _, child := range nd.Children() {
		if err := w.walk(child, stack, visited, ctx); err != nil {
			return err
		}
	}
	return nil
}
