package inspect

import (
	"fmt"

	"github.com/signadot/tony-format/go-inspect/classify"
)

type config struct {
	name      string
	view      View
	sched     Scheduler
	intro     classify.Introspector
	container Container
	mode      InsertMode
}

type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.view == nil {
		cfg.view = nopView{}
	}
	if cfg.intro == nil {
		cfg.intro = classify.Default
	}
	return cfg
}

// WithView sets the view a tree drives. The default view discards
// everything.
func WithView(v View) Option {
	return func(c *config) { c.view = v }
}

// WithScheduler defers materialization and deferred navigation through s.
// Without a scheduler all work is synchronous.
func WithScheduler(s Scheduler) Option {
	return func(c *config) { c.sched = s }
}

// WithIntrospector replaces classify.Default.
func WithIntrospector(i classify.Introspector) Option {
	return func(c *config) { c.intro = i }
}

// Named sets the name of the root created by Into.
func Named(name string) Option {
	return func(c *config) { c.name = name }
}

// In inserts the root created by Into into container, using mode.
func In(container Container, mode InsertMode) Option {
	return func(c *config) {
		c.container = container
		c.mode = mode
	}
}

// InsertMode is where a root is inserted relative to its container.
type InsertMode int

const (
	InsertBottom InsertMode = iota
	InsertTop
	InsertBefore
	InsertAfter
)

func (m InsertMode) String() string {
	switch m {
	case InsertBottom:
		return "bottom"
	case InsertTop:
		return "top"
	case InsertBefore:
		return "before"
	case InsertAfter:
		return "after"
	default:
		return fmt.Sprintf("<insert mode %d>", int(m))
	}
}

func ParseInsertMode(s string) (InsertMode, error) {
	switch s {
	case "", "bottom":
		return InsertBottom, nil
	case "top":
		return InsertTop, nil
	case "before":
		return InsertBefore, nil
	case "after":
		return InsertAfter, nil
	default:
		return 0, fmt.Errorf("unknown insertion mode %q, expected top, bottom, before or after", s)
	}
}

// Container receives the root nodes created by Into.
type Container interface {
	Insert(n *Node, mode InsertMode)
}

// Into creates a root node for v, inserts it into the configured container
// and describes v. The root is returned even when description fails.
func Into(v any, opts ...Option) (*Node, error) {
	cfg := newConfig(opts)
	root := New(cfg.name, opts...)
	if cfg.container != nil {
		cfg.container.Insert(root, cfg.mode)
	}
	_, err := root.Describe(v, "")
	return root, err
}
