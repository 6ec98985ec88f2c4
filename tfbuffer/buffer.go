package tfbuffer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/underwave-robotics/tfbridge/transform"
)

type edgeKey struct {
	parent, child transform.FrameID
}

// Buffer stores the latest value of every frame-tree edge.
type Buffer struct {
	mu      sync.RWMutex
	edges   map[edgeKey]transform.RigidTransform
	updated chan struct{} // closed and replaced on every write
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{
		edges:   map[edgeKey]transform.RigidTransform{},
		updated: make(chan struct{}),
	}
}

// SendStatic stores a batch of edges atomically: a concurrent lookup sees
// either none or all of them.
func (b *Buffer) SendStatic(edges []transform.RigidTransform) {
	b.mu.Lock()
	for _, e := range edges {
		b.edges[edgeKey{e.Parent, e.Child}] = e
	}
	b.notifyLocked()
	b.mu.Unlock()
}

// SendDynamic stores one edge, superseding any previous value for the same
// parent/child pair.
func (b *Buffer) SendDynamic(e transform.RigidTransform) {
	b.mu.Lock()
	b.edges[edgeKey{e.Parent, e.Child}] = e
	b.notifyLocked()
	b.mu.Unlock()
}

func (b *Buffer) notifyLocked() {
	close(b.updated)
	b.updated = make(chan struct{})
}

// Edges returns a snapshot of the current graph, for debugging surfaces.
func (b *Buffer) Edges() []transform.RigidTransform {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]transform.RigidTransform, 0, len(b.edges))
	for _, e := range b.edges {
		out = append(out, e)
	}
	return out
}

// LookupTransform resolves parent←child at the given time, waiting up to
// timeout for the graph to connect. The returned transform is stamped with
// the requested time. Unresolvable or timed-out lookups wrap
// transform.ErrTransformUnavailable.
func (b *Buffer) LookupTransform(ctx context.Context, parent, child transform.FrameID, at time.Time, timeout time.Duration) (transform.RigidTransform, error) {
	deadline := time.Now().Add(timeout)
	for {
		b.mu.RLock()
		t, ok := b.resolveLocked(parent, child)
		updated := b.updated
		b.mu.RUnlock()
		if ok {
			t.Stamp = at
			return t, nil
		}

		remain := time.Until(deadline)
		if remain <= 0 {
			return transform.RigidTransform{}, fmt.Errorf("lookup %s←%s: %w", parent, child, transform.ErrTransformUnavailable)
		}
		timer := time.NewTimer(remain)
		select {
		case <-ctx.Done():
			timer.Stop()
			return transform.RigidTransform{}, fmt.Errorf("lookup %s←%s: %v: %w", parent, child, ctx.Err(), transform.ErrTransformUnavailable)
		case <-timer.C:
			return transform.RigidTransform{}, fmt.Errorf("lookup %s←%s: %w", parent, child, transform.ErrTransformUnavailable)
		case <-updated:
			timer.Stop()
		}
	}
}

// resolveLocked searches for a path from child to parent, composing edges
// along the way (inverting edges traversed child→parent).
func (b *Buffer) resolveLocked(parent, child transform.FrameID) (transform.RigidTransform, bool) {
	identity := transform.RigidTransform{Parent: parent, Child: child, Rotation: transform.Identity()}
	if parent == child {
		return identity, true
	}

	type node struct {
		frame transform.FrameID
		acc   transform.RigidTransform // frame←child
	}
	visited := map[transform.FrameID]bool{child: true}
	queue := []node{{frame: child, acc: transform.RigidTransform{Parent: child, Child: child, Rotation: transform.Identity()}}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for k, e := range b.edges {
			var next transform.FrameID
			var acc transform.RigidTransform
			switch n.frame {
			case k.child:
				next, acc = k.parent, transform.Compose(e, n.acc)
			case k.parent:
				next, acc = k.child, transform.Compose(e.Invert(), n.acc)
			default:
				continue
			}
			if visited[next] {
				continue
			}
			if next == parent {
				return acc, true
			}
			visited[next] = true
			queue = append(queue, node{frame: next, acc: acc})
		}
	}
	return transform.RigidTransform{}, false
}
