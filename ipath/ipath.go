// Package ipath splits and joins the dotted/indexed paths used to navigate
// inspector trees.
//
// A path is a sequence of member names separated by '.', '[' or ']':
//
//	"a.b[0].c" → ["a", "b", "0", "c"]
//
// A segment containing delimiters can be written in single quotes, with
// a backslash escaping a quote:
//
//	"'f[3]'[2]" → ["f[3]", "2"]
package ipath

import (
	"fmt"
	"strings"
)

const delims = ".[]"

// Split splits p into its segments. Empty segments are dropped, so "a[0]"
// and "a.0" both yield ["a", "0"]. An unterminated quote extends to the end
// of p.
func Split(p string) []string {
	var (
		res []string
		buf strings.Builder
		has bool
	)
	flush := func() {
		if has {
			res = append(res, buf.String())
		}
		buf.Reset()
		has = false
	}
	for i := 0; i < len(p); i++ {
		c := p[i]
		switch {
		case c == '\'':
			i = readQuoted(p, i+1, &buf)
			has = true
		case strings.IndexByte(delims, c) != -1:
			flush()
		default:
			buf.WriteByte(c)
			has = true
		}
	}
	flush()
	return res
}

// readQuoted appends the quoted text starting at p[i:] to buf and returns
// the index of the closing quote.
func readQuoted(p string, i int, buf *strings.Builder) int {
	for ; i < len(p); i++ {
		c := p[i]
		switch {
		case c == '\\' && i+1 < len(p) && p[i+1] == '\'':
			buf.WriteByte('\'')
			i++
		case c == '\'':
			return i
		default:
			buf.WriteByte(c)
		}
	}
	return i
}

// Join is the inverse of Split: index segments are bracketed, other
// segments are dotted and quoted when they contain delimiters.
func Join(segs []string) string {
	var buf strings.Builder
	for i, s := range segs {
		switch {
		case isIndex(s):
			fmt.Fprintf(&buf, "[%s]", s)
			continue
		case i > 0:
			buf.WriteByte('.')
		}
		buf.WriteString(Quote(s))
	}
	return buf.String()
}

// Quote quotes s if Split would not return it as a single segment.
func Quote(s string) string {
	if s != "" && !strings.ContainsAny(s, delims+"'") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
