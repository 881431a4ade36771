package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-inspect/inspect"
	"github.com/signadot/tony-format/go-inspect/ipath"
	"github.com/signadot/tony-format/go-inspect/render"
	"github.com/signadot/tony-format/go-inspect/sched"
)

const browseHelp = `commands:
  open <path>           expand the node at path
  close <path>          collapse the node at path
  filter <path> [text]  filter the children of the node at path
  nav <path>            navigate to path
  navf <path>           navigate to path, filtering each level
  show                  render the screen
  quit                  end the session
`

func browse(cfg *BrowseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Browse.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: browse requires at least one file", cli.ErrUsage)
	}
	for _, arg := range args {
		if arg == "-" {
			return fmt.Errorf("%w: browse reads commands from stdin, documents must be files", cli.ErrUsage)
		}
	}
	docs, err := readFiles(args, nil)
	if err != nil {
		return err
	}
	if err := patchDocs(cfg.Patch, docs); err != nil {
		return err
	}
	s, err := newSession(render.NewScreen(cfg.screenOpts(cc.Out)...), cc.Out, docs)
	if err != nil {
		return err
	}
	return s.run(cc.In)
}

// session is a line driven browsing session. Every tree shares one queue,
// which is drained after each command.
type session struct {
	screen *render.Screen
	queue  *sched.Queue
	roots  []*inspect.Node
	out    io.Writer
}

func newSession(screen *render.Screen, w io.Writer, docs []document) (*session, error) {
	s := &session{
		screen: screen,
		queue:  sched.NewQueue(),
		out:    w,
	}
	for i, doc := range docs {
		root, err := inspect.Into(doc.data,
			inspect.Named(docName("doc", i, len(docs))),
			inspect.WithView(screen),
			inspect.WithScheduler(s.queue),
			inspect.In(screen, inspect.InsertBottom))
		if err != nil {
			return nil, fmt.Errorf("error inspecting document %d of %s: %w", i, doc.src, err)
		}
		s.roots = append(s.roots, root)
	}
	return s, nil
}

func (s *session) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		quit, err := s.exec(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// exec runs one command line and drains the deferred work it caused. It
// reports whether the session should end.
func (s *session) exec(line string) (bool, error) {
	defer s.queue.Drain()
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	switch cmd {
	case "":
		return false, nil
	case "quit", "q":
		return true, nil
	case "help", "?":
		_, err := io.WriteString(s.out, browseHelp)
		return false, err
	case "show", "s":
		_, err := s.screen.WriteTo(s.out)
		return false, err
	case "open", "close":
		n, err := s.find(rest)
		if err != nil {
			return false, err
		}
		if cmd == "open" {
			n.Expand()
		} else {
			n.Collapse()
		}
		return false, nil
	case "filter":
		p, text, _ := strings.Cut(rest, " ")
		n, err := s.find(p)
		if err != nil {
			return false, err
		}
		if !n.Filterable() {
			return false, fmt.Errorf("%s has no filter", n.Path())
		}
		n.SetFilter(text)
		return false, nil
	case "nav", "navf":
		segs := ipath.Split(rest)
		if len(segs) == 0 {
			return false, fmt.Errorf("%s requires a path", cmd)
		}
		root := s.root(segs[0])
		if root == nil {
			return false, fmt.Errorf("no document %q", segs[0])
		}
		root.Navigate(segs[1:], cmd == "navf", true)
		return false, nil
	default:
		return false, fmt.Errorf("unknown command %q, try help", cmd)
	}
}

func (s *session) root(name string) *inspect.Node {
	for _, r := range s.roots {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// find resolves p against materialized nodes, its first segment naming a
// document.
func (s *session) find(p string) (*inspect.Node, error) {
	segs := ipath.Split(p)
	if len(segs) == 0 {
		return nil, fmt.Errorf("missing path")
	}
	n := s.root(segs[0])
	for _, seg := range segs[1:] {
		if n == nil {
			break
		}
		n = n.ChildByName(seg)
	}
	if n == nil {
		return nil, fmt.Errorf("no node at %q", p)
	}
	return n, nil
}
