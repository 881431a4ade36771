package inspect

import (
	"slices"

	"github.com/google/uuid"
	"github.com/signadot/tony-format/go-inspect/classify"
	"github.com/signadot/tony-format/go-inspect/ipath"
)

// UnnamedName is the name of a node created without one.
const UnnamedName = "?unnamed?"

// Pending is a member which has been enumerated but not yet turned into a
// child node.
type Pending struct {
	Name  string
	Value any
}

// Node is one level of an inspector tree. A parent owns its children; the
// parent link is only read for the parent's current filter text.
//
// Node is not safe for concurrent use. All methods, and the callbacks a
// Scheduler runs for a tree, must run on one goroutine at a time.
type Node struct {
	id     string
	name   string
	parent *Node

	intro classify.Introspector
	view  View
	sched Scheduler

	category  classify.Category
	typeLabel string
	scalar    string
	hint      string
	count     *int
	fullText  string
	err       error

	children []*Node
	pending  []Pending

	filter     string
	expandable bool
	filterable bool
	expanded   bool
	loading    bool

	// gen changes on every description and un-description so deferred
	// work can tell whether the members it was scheduled for still exist.
	gen       uint64
	scheduled bool
	sub       Subscription
}

// New returns an undescribed root node.
func New(name string, opts ...Option) *Node {
	cfg := newConfig(opts)
	n := &Node{
		intro: cfg.intro,
		view:  cfg.view,
		sched: cfg.sched,
	}
	n.init(name)
	return n
}

func (n *Node) newChild(name string) *Node {
	c := &Node{
		parent: n,
		intro:  n.intro,
		view:   n.view,
		sched:  n.sched,
	}
	c.init(name)
	c.view.SetVisible(c, c.Visible())
	return c
}

func (n *Node) init(name string) {
	n.id = uuid.NewString()
	n.name = name
	if n.name == "" {
		n.name = UnnamedName
	}
	n.view.Attach(n)
}

// ID is a unique handle for n, stable for its lifetime.
func (n *Node) ID() string { return n.id }

func (n *Node) Name() string { return n.name }

// Parent returns the owning node, nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Category returns classify.Unclassified until n is described.
func (n *Node) Category() classify.Category { return n.category }

// Described reports whether n currently holds a description.
func (n *Node) Described() bool { return n.category != classify.Unclassified }

// TypeLabel is the display type name; empty for null and undefined values.
func (n *Node) TypeLabel() string { return n.typeLabel }

// Scalar is the display value of leaf categories, empty for aggregates.
func (n *Node) Scalar() string { return n.scalar }

// Hint is the auxiliary annotation of the value, if any.
func (n *Node) Hint() string { return n.hint }

// Count returns the member count or string length, when applicable.
func (n *Node) Count() (int, bool) {
	if n.count == nil {
		return 0, false
	}
	return *n.count, true
}

// FullText is the complete text of a string too long for its scalar display.
func (n *Node) FullText() string { return n.fullText }

// Err returns the error of the last description, if it failed.
func (n *Node) Err() error { return n.err }

// Children returns the materialized children in member order.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// Pending returns the members not yet materialized, in member order.
func (n *Node) Pending() []Pending { return slices.Clone(n.pending) }

// Expandable reports whether the expand affordance is shown.
func (n *Node) Expandable() bool { return n.expandable }

// Filterable reports whether the filter affordance is shown.
func (n *Node) Filterable() bool { return n.filterable }

// Expanded reports whether the children content region is shown.
func (n *Node) Expanded() bool { return n.expanded }

// Loading reports whether the loading placeholder is shown.
func (n *Node) Loading() bool { return n.loading }

// ChildByName returns the first materialized child named exactly name.
func (n *Node) ChildByName(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Path returns the path from the root to n, suitable for Navigate.
func (n *Node) Path() string {
	var segs []string
	for x := n; x.parent != nil; x = x.parent {
		segs = append(segs, x.name)
	}
	slices.Reverse(segs)
	return ipath.Join(segs)
}

func (n *Node) String() string {
	if n.parent == nil {
		return n.name
	}
	return n.Root().name + ":" + n.Path()
}

// Root returns the root of the tree holding n.
func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Label returns the current label content of n.
func (n *Node) Label() Label {
	if !n.Described() {
		return Label{}
	}
	l := Label{
		Name:  n.name,
		Type:  n.typeLabel,
		Value: n.scalar,
		Hint:  n.hint,
	}
	if n.count != nil {
		c := *n.count
		l.Count = &c
	}
	if n.filterable {
		l.Filter = true
		l.FilterText = n.filter
	}
	return l
}
