package inspect

import (
	"strings"

	"github.com/signadot/tony-format/go-inspect/debug"
)

// Matches reports whether a child named name is shown under filter query q.
func Matches(q, name string) bool {
	return q == "" || strings.Contains(strings.ToLower(name), strings.ToLower(q))
}

// Visible reports whether n is shown under its parent's filter. Roots are
// always visible.
func (n *Node) Visible() bool {
	return n.parent == nil || Matches(n.parent.filter, n.name)
}

// Filter returns the filter text applied to n's direct children.
func (n *Node) Filter() string { return n.filter }

// SetFilter filters the direct children of n by name. Grandchildren are
// governed by their own parents' filters.
func (n *Node) SetFilter(q string) {
	n.filter = q
	if debug.Filter() {
		debug.Logf("filter %s: %q\n", n, q)
	}
	for _, c := range n.children {
		n.view.SetVisible(c, c.Visible())
	}
	if n.Described() {
		n.view.SetLabel(n, n.Label())
	}
}
