package render

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/tony-format/go-inspect/classify"
	"github.com/signadot/tony-format/go-inspect/inspect"
)

// LoadingText is shown in place of children still being materialized.
const LoadingText = "Loading..."

// WriteTo renders every visible node of every root to w, one line per
// node, children indented under expanded parents.
func (s *Screen) WriteTo(w io.Writer) (int64, error) {
	buf := &bytes.Buffer{}
	for _, root := range s.roots {
		s.writeNode(buf, root, 0)
	}
	return buf.WriteTo(w)
}

// String renders the screen without colors.
func (s *Screen) String() string {
	plain := *s
	plain.color = nil
	buf := &bytes.Buffer{}
	plain.WriteTo(buf)
	return buf.String()
}

func (s *Screen) paint(cat classify.Category, p Part, v string) string {
	if s.color == nil {
		return v
	}
	return s.color(cat, p, v)
}

func (s *Screen) writeNode(buf *bytes.Buffer, n *inspect.Node, depth int) {
	r := s.regions[n.ID()]
	if r == nil || !r.visible {
		return
	}
	cat := n.Category()
	pad := strings.Repeat(" ", depth*s.indent)
	buf.WriteString(pad)
	if r.toggle.Shown {
		buf.WriteString(s.paint(cat, TogglePart, r.toggle.Glyph))
	} else {
		buf.WriteByte(' ')
	}
	buf.WriteByte(' ')
	s.writeLabel(buf, cat, r.label)
	if r.label.Name == "" {
		buf.WriteString(s.paint(cat, NamePart, n.Name()))
	}
	buf.WriteByte('\n')
	if !r.content {
		return
	}
	inner := strings.Repeat(" ", (depth+1)*s.indent)
	if r.loading {
		buf.WriteString(inner + s.paint(cat, LoadingPart, LoadingText) + "\n")
	}
	if r.fullText != "" {
		for _, ln := range strings.Split(r.fullText, "\n") {
			buf.WriteString(inner + "  " + s.paint(cat, FullTextPart, ln) + "\n")
		}
	}
	for _, c := range n.Children() {
		s.writeNode(buf, c, depth+1)
	}
}

func (s *Screen) writeLabel(buf *bytes.Buffer, cat classify.Category, l inspect.Label) {
	if l.Name == "" {
		return
	}
	buf.WriteString(s.paint(cat, NamePart, l.Name))
	if l.Type != "" {
		buf.WriteString(" " + s.paint(cat, TypePart, l.Type))
	}
	if l.Count != nil {
		buf.WriteString("(" + s.paint(cat, SizePart, strconv.Itoa(*l.Count)) + ")")
	}
	if l.Value != "" {
		buf.WriteString(" : " + s.paint(cat, ValuePart, l.Value))
	}
	if l.Filter {
		buf.WriteString(" - filter: " + s.paint(cat, FilterPart, "["+l.FilterText+"]"))
	}
	if s.hints && l.Hint != "" {
		buf.WriteString("  " + s.paint(cat, HintPart, "# "+l.Hint))
	}
}
