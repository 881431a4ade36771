package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-inspect/inspect"
	"github.com/signadot/tony-format/go-inspect/render"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readFiles(args, cc.In)
	if err != nil {
		return err
	}
	return viewDocs(cfg, cc.Out, docs)
}

func viewDocs(cfg *ViewConfig, w io.Writer, docs []document) error {
	if err := patchDocs(cfg.Patch, docs); err != nil {
		return err
	}
	screen := render.NewScreen(cfg.screenOpts(w)...)
	for i, doc := range docs {
		v := doc.data
		if cfg.E != "" {
			res, err := doc.eval(cfg.E)
			if err != nil {
				return fmt.Errorf("error evaluating %q on document %d: %w", cfg.E, i, err)
			}
			v = res
		}
		root, err := inspect.Into(v,
			inspect.Named(docName(cfg.N, i, len(docs))),
			inspect.WithView(screen),
			inspect.In(screen, inspect.InsertBottom))
		if err != nil {
			return fmt.Errorf("error inspecting document %d: %w", i, err)
		}
		if cfg.All {
			expandAll(root, maxExpandDepth)
		}
		if cfg.P != "" {
			root.NavigatePath(cfg.P, cfg.F, false)
		}
	}
	if _, err := screen.WriteTo(w); err != nil {
		return fmt.Errorf("error writing: %w", err)
	}
	return nil
}

func docName(name string, i, n int) string {
	if name == "" {
		name = "doc"
	}
	if n == 1 {
		return name
	}
	return fmt.Sprintf("%s%d", name, i)
}

// maxExpandDepth bounds -all on self-referencing values.
const maxExpandDepth = 64

// expandAll expands n and its descendants, depth levels down.
func expandAll(n *inspect.Node, depth int) {
	if depth <= 0 || !n.Expandable() {
		return
	}
	n.Expand()
	for _, c := range n.Children() {
		expandAll(c, depth-1)
	}
}
