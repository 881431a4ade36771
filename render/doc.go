// Package render is a text view for inspector trees.
//
// # Usage
//
//	screen := render.NewScreen(render.WithColors(render.NewColors()))
//	root, err := inspect.Into(v,
//	    inspect.WithView(screen),
//	    inspect.In(screen, inspect.InsertBottom))
//	root.Expand()
//	screen.WriteTo(os.Stdout)
//
// Each visible node renders as one line:
//
//	— name type(count) : value - filter: [text]  # hint
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-inspect/inspect - inspector trees
package render
