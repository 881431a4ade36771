package render

import (
	"slices"

	"github.com/signadot/tony-format/go-inspect/classify"
	"github.com/signadot/tony-format/go-inspect/inspect"
)

type region struct {
	node     *inspect.Node
	visible  bool
	toggle   inspect.Toggle
	label    inspect.Label
	content  bool
	fullText string
	loading  bool
	handlers *inspect.Handlers
}

// Screen is a retained text view of inspector trees. It implements
// inspect.View and inspect.Container; WriteTo renders what is visible.
type Screen struct {
	regions map[string]*region
	roots   []*inspect.Node

	color  func(classify.Category, Part, string) string
	indent int
	hints  bool
}

type Option func(*Screen)

func WithColors(c *Colors) Option {
	return func(s *Screen) { s.color = c.Color }
}

func Indent(n int) Option {
	return func(s *Screen) { s.indent = n }
}

// Hints controls whether value hints are rendered after labels.
func Hints(v bool) Option {
	return func(s *Screen) { s.hints = v }
}

func NewScreen(opts ...Option) *Screen {
	s := &Screen{
		regions: map[string]*region{},
		indent:  2,
		hints:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Roots returns the inserted roots in display order.
func (s *Screen) Roots() []*inspect.Node {
	return slices.Clone(s.roots)
}

func (s *Screen) Insert(n *inspect.Node, mode inspect.InsertMode) {
	s.insertAt(n, mode, -1)
}

// Anchor returns a Container which inserts before or after root. Top and
// bottom insertions go to the screen.
func (s *Screen) Anchor(root *inspect.Node) inspect.Container {
	return anchor{s: s, root: root}
}

type anchor struct {
	s    *Screen
	root *inspect.Node
}

func (a anchor) Insert(n *inspect.Node, mode inspect.InsertMode) {
	a.s.insertAt(n, mode, slices.Index(a.s.roots, a.root))
}

func (s *Screen) insertAt(n *inspect.Node, mode inspect.InsertMode, at int) {
	s.roots = slices.DeleteFunc(s.roots, func(r *inspect.Node) bool { return r == n })
	switch {
	case mode == inspect.InsertTop:
		s.roots = slices.Insert(s.roots, 0, n)
	case mode == inspect.InsertBefore && at >= 0:
		s.roots = slices.Insert(s.roots, at, n)
	case mode == inspect.InsertAfter && at >= 0:
		s.roots = slices.Insert(s.roots, min(at+1, len(s.roots)), n)
	default:
		s.roots = append(s.roots, n)
	}
}

// Remove takes root off the screen and drops its regions.
func (s *Screen) Remove(root *inspect.Node) {
	root.Undescribe()
	s.Detach(root)
}

func (s *Screen) region(n *inspect.Node) *region {
	r := s.regions[n.ID()]
	if r == nil {
		r = &region{node: n, visible: true}
		s.regions[n.ID()] = r
	}
	return r
}

func (s *Screen) Attach(n *inspect.Node) {
	s.regions[n.ID()] = &region{node: n, visible: true}
}

func (s *Screen) Detach(n *inspect.Node) {
	delete(s.regions, n.ID())
	s.roots = slices.DeleteFunc(s.roots, func(r *inspect.Node) bool { return r == n })
}

func (s *Screen) SetVisible(n *inspect.Node, visible bool)    { s.region(n).visible = visible }
func (s *Screen) SetToggle(n *inspect.Node, t inspect.Toggle) { s.region(n).toggle = t }
func (s *Screen) SetLabel(n *inspect.Node, l inspect.Label)   { s.region(n).label = l }
func (s *Screen) SetContent(n *inspect.Node, shown bool)      { s.region(n).content = shown }
func (s *Screen) SetFullText(n *inspect.Node, text string)    { s.region(n).fullText = text }
func (s *Screen) SetLoading(n *inspect.Node, loading bool)    { s.region(n).loading = loading }

func (s *Screen) Subscribe(n *inspect.Node, h inspect.Handlers) inspect.Subscription {
	r := s.region(n)
	r.handlers = &h
	return inspect.SubscriptionFunc(func() {
		if r.handlers == &h {
			r.handlers = nil
		}
	})
}

// Click delivers a toggle click to n. It reports whether a handler was
// registered.
func (s *Screen) Click(n *inspect.Node) bool {
	r := s.regions[n.ID()]
	if r == nil || r.handlers == nil || !r.toggle.Shown {
		return false
	}
	r.handlers.Toggle()
	return true
}

// Type delivers new filter input text to n. It reports whether n shows a
// filter input.
func (s *Screen) Type(n *inspect.Node, text string) bool {
	r := s.regions[n.ID()]
	if r == nil || r.handlers == nil || !r.label.Filter {
		return false
	}
	r.handlers.Filter(text)
	return true
}
