// Package inspect builds navigable, collapsible inspector trees over
// arbitrary Go values.
//
// A Node is described with a value: leaf values get a scalar display,
// aggregates get their members enumerated as pending. Members only become
// child nodes, classified and described in turn, when the node is expanded.
// Each node filters its direct children by a case-insensitive substring of
// their names, and Navigate expands (and optionally filters) a whole path.
//
// # Usage
//
//	root, err := inspect.Into(v, inspect.Named("config"), inspect.WithView(screen))
//	root.NavigatePath("servers[0].addr", true, false)
//
// Presentation is delegated to a View; deferred work to a Scheduler. See
// github.com/signadot/tony-format/go-inspect/render and
// github.com/signadot/tony-format/go-inspect/sched.
package inspect
