package inspect

import (
	"github.com/signadot/tony-format/go-inspect/debug"
	"github.com/signadot/tony-format/go-inspect/ipath"
)

// NavigatePath splits p with ipath.Split and calls Navigate.
func (n *Node) NavigatePath(p string, withFilter, deferred bool) {
	n.Navigate(ipath.Split(p), withFilter, deferred)
}

// Navigate expands n and then, for the first segment, the child named
// exactly by it, and so on down the path. With withFilter, each level with a
// filter affordance is filtered by its segment. A segment matching no child
// ends the walk.
//
// With deferred and a Scheduler, each level runs on its own deferred turn,
// after the expansion of the level above; otherwise the walk is
// synchronous.
func (n *Node) Navigate(segs []string, withFilter, deferred bool) {
	if debug.Navigate() {
		debug.Logf("navigate %s: %v\n", n, segs)
	}
	if !deferred || n.sched == nil {
		n.expand(true)
		n.navigateStep(segs, withFilter, false)
		return
	}
	n.Expand()
	gen := n.gen
	n.sched.Defer(func() {
		if n.gen != gen {
			return
		}
		n.navigateStep(segs, withFilter, true)
	})
}

func (n *Node) navigateStep(segs []string, withFilter, deferred bool) {
	if len(segs) == 0 {
		return
	}
	seg := segs[0]
	child := n.ChildByName(seg)
	if withFilter && n.filterable {
		n.SetFilter(seg)
	}
	if child == nil {
		if debug.Navigate() {
			debug.Logf("navigate %s: no child %q\n", n, seg)
		}
		return
	}
	child.Navigate(segs[1:], withFilter, deferred)
}
