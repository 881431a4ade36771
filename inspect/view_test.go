package inspect

type region struct {
	visible  bool
	toggle   Toggle
	label    Label
	content  bool
	fullText string
	loading  bool
}

// recView records the latest state of every region.
type recView struct {
	regions  map[string]*region
	handlers map[string]Handlers
	subs     map[string]int
	closes   map[string]int
	detached int
}

func newRecView() *recView {
	return &recView{
		regions:  map[string]*region{},
		handlers: map[string]Handlers{},
		subs:     map[string]int{},
		closes:   map[string]int{},
	}
}

func (v *recView) Attach(n *Node) { v.regions[n.ID()] = &region{visible: true} }
func (v *recView) Detach(n *Node) {
	delete(v.regions, n.ID())
	v.detached++
}
func (v *recView) SetVisible(n *Node, b bool)    { v.regions[n.ID()].visible = b }
func (v *recView) SetToggle(n *Node, t Toggle)   { v.regions[n.ID()].toggle = t }
func (v *recView) SetLabel(n *Node, l Label)     { v.regions[n.ID()].label = l }
func (v *recView) SetContent(n *Node, b bool)    { v.regions[n.ID()].content = b }
func (v *recView) SetFullText(n *Node, s string) { v.regions[n.ID()].fullText = s }
func (v *recView) SetLoading(n *Node, b bool)    { v.regions[n.ID()].loading = b }
func (v *recView) Subscribe(n *Node, h Handlers) Subscription {
	v.subs[n.ID()]++
	v.handlers[n.ID()] = h
	return SubscriptionFunc(func() {
		v.closes[n.ID()]++
		delete(v.handlers, n.ID())
	})
}

func (v *recView) region(n *Node) *region { return v.regions[n.ID()] }

// fifo is a Scheduler whose turns are run explicitly.
type fifo struct {
	q []func()
}

func (f *fifo) Defer(fn func()) { f.q = append(f.q, fn) }

func (f *fifo) step() int {
	turn := f.q
	f.q = nil
	for _, fn := range turn {
		fn()
	}
	return len(turn)
}

func (f *fifo) drain() {
	for f.step() > 0 {
	}
}
