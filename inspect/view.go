package inspect

// View is the presentation layer an inspector tree drives. Each node owns a
// container region holding a toggle, a label, a children content region and
// an optional full text region. The view keys its regions by Node.ID.
type View interface {
	// Attach creates the regions of n.
	Attach(n *Node)
	// Detach destroys the regions of n, which has left its tree.
	Detach(n *Node)
	// SetVisible shows or hides the container region of n.
	SetVisible(n *Node, visible bool)
	SetToggle(n *Node, t Toggle)
	// SetLabel replaces the label of n. The zero Label clears it.
	SetLabel(n *Node, l Label)
	// SetContent shows or hides the children content region of n.
	SetContent(n *Node, shown bool)
	// SetFullText sets the overflow text of a long string; "" clears it.
	SetFullText(n *Node, text string)
	// SetLoading shows or removes the loading placeholder of n.
	SetLoading(n *Node, loading bool)
	// Subscribe registers the toggle click and filter change handlers of n.
	Subscribe(n *Node, h Handlers) Subscription
}

// Toggle is the expand/collapse affordance.
type Toggle struct {
	Shown bool
	Glyph string
	Class string
}

var (
	ToggleHidden    = Toggle{}
	ToggleCollapsed = Toggle{Shown: true, Glyph: "+", Class: "plus"}
	ToggleExpanded  = Toggle{Shown: true, Glyph: "—", Class: "minus"}
)

// Label is the structured content of a node's label region.
type Label struct {
	Name  string
	Type  string
	Count *int
	Value string
	// Hint is an auxiliary annotation such as the timestamp reading of an
	// integer.
	Hint string
	// Filter is set when the filter input is shown after the label.
	Filter     bool
	FilterText string
}

// Handlers are the callbacks a view invokes on user interaction.
type Handlers struct {
	Toggle func()
	Filter func(text string)
}

// Subscription is a registration of Handlers. Close releases it.
type Subscription interface {
	Close()
}

// SubscriptionFunc adapts a function to Subscription.
type SubscriptionFunc func()

func (f SubscriptionFunc) Close() { f() }

// Scheduler runs callbacks on a later turn of the caller's event loop, in
// the order they were deferred.
type Scheduler interface {
	Defer(f func())
}

type nopView struct{}

func (nopView) Attach(*Node)              {}
func (nopView) Detach(*Node)              {}
func (nopView) SetVisible(*Node, bool)    {}
func (nopView) SetToggle(*Node, Toggle)   {}
func (nopView) SetLabel(*Node, Label)     {}
func (nopView) SetContent(*Node, bool)    {}
func (nopView) SetFullText(*Node, string) {}
func (nopView) SetLoading(*Node, bool)    {}
func (nopView) Subscribe(*Node, Handlers) Subscription {
	return SubscriptionFunc(func() {})
}
