package inspect

import (
	"github.com/signadot/tony-format/go-inspect/debug"
)

// Expand materializes pending members into described children and shows
// the children content region. With a Scheduler, materialization happens on
// a deferred turn behind a loading placeholder. Expanding a node which has
// no expand affordance does nothing; re-expanding never re-describes.
func (n *Node) Expand() *Node {
	return n.expand(false)
}

func (n *Node) expand(sync bool) *Node {
	if !n.expandable {
		return n
	}
	switch {
	case len(n.pending) == 0:
	case sync || n.sched == nil:
		n.materialize(n.gen)
	case !n.scheduled:
		n.scheduleMaterialize()
	}
	n.expanded = true
	n.view.SetToggle(n, ToggleExpanded)
	n.view.SetContent(n, true)
	return n
}

// Collapse hides the children content region, keeping the children.
func (n *Node) Collapse() *Node {
	if !n.expandable {
		return n
	}
	n.expanded = false
	n.view.SetToggle(n, ToggleCollapsed)
	n.view.SetContent(n, false)
	return n
}

// Toggle collapses n when its content is shown and expands it otherwise.
func (n *Node) Toggle() *Node {
	if n.expanded {
		return n.Collapse()
	}
	return n.Expand()
}

func (n *Node) scheduleMaterialize() {
	gen := n.gen
	n.scheduled = true
	n.loading = true
	n.view.SetLoading(n, true)
	if debug.Expand() {
		debug.Logf("expand %s: deferring %d members\n", n, len(n.pending))
	}
	n.sched.Defer(func() {
		n.materialize(gen)
		n.sched.Defer(func() {
			if n.gen != gen || !n.loading {
				return
			}
			n.loading = false
			n.view.SetLoading(n, false)
		})
	})
}

// materialize turns pending members into described children, one at a
// time, so that every member is either pending or a child at all times. It
// does nothing if n was re-described or un-described since gen.
func (n *Node) materialize(gen uint64) {
	if n.gen != gen {
		if debug.Expand() {
			debug.Logf("expand %s: stale materialization dropped\n", n)
		}
		return
	}
	for len(n.pending) > 0 {
		p := n.pending[0]
		child := n.newChild(p.Name)
		n.children = append(n.children, child)
		n.pending[0] = Pending{}
		n.pending = n.pending[1:]
		if _, err := child.Describe(p.Value, p.Name); err != nil && debug.Expand() {
			debug.Logf("expand %s: %v\n", child, err)
		}
		if n.gen != gen {
			return
		}
	}
	n.pending = nil
	n.scheduled = false
	if debug.Expand() {
		debug.Logf("expand %s: %d children\n", n, len(n.children))
	}
}
