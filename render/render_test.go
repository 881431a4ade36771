package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/go-inspect/inspect"
	"github.com/signadot/tony-format/go-inspect/sched"
)

func into(t *testing.T, s *Screen, v any, name string, opts ...inspect.Option) *inspect.Node {
	t.Helper()
	opts = append([]inspect.Option{
		inspect.Named(name),
		inspect.WithView(s),
		inspect.In(s, inspect.InsertBottom),
	}, opts...)
	root, err := inspect.Into(v, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestWriteNavigated(t *testing.T) {
	s := NewScreen()
	root := into(t, s, map[string]any{"a": map[string]any{"b": 42}, "x": "hi"}, "doc")
	if got, want := s.String(), "+ doc map[string]interface {}(2) - filter: []\n"; got != want {
		t.Fatalf("collapsed:\n%s\nwant:\n%s", got, want)
	}
	root.NavigatePath("a.b", true, false)
	want := strings.Join([]string{
		"— doc map[string]interface {}(2) - filter: [a]",
		"  — a map[string]interface {}(1) - filter: [b]",
		"      b int : 42  # Unix timestamp: Thu, 01 Jan 1970 00:00:42 GMT",
		"",
	}, "\n")
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWriteLoading(t *testing.T) {
	s := NewScreen()
	q := sched.NewQueue()
	root := into(t, s, []int{1, 2}, "l", inspect.WithScheduler(q))
	root.Expand()
	want := "— l []int(2) - filter: []\n  Loading...\n"
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Errorf("before materialization (-want +got):\n%s", diff)
	}
	q.Drain()
	want = "— l []int(2) - filter: []\n    0 int : 1  # Unix timestamp: Thu, 01 Jan 1970 00:00:01 GMT\n    1 int : 2  # Unix timestamp: Thu, 01 Jan 1970 00:00:02 GMT\n"
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Errorf("after drain (-want +got):\n%s", diff)
	}
}

func TestWriteFullText(t *testing.T) {
	s := NewScreen(Hints(false), Indent(4))
	long := strings.Repeat("x", 31)
	root := into(t, s, long, "s")
	s.Click(root)
	want := `— s string(31) : "` + strings.Repeat("x", 27) + `..."` + "\n      " + long + "\n"
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestClickAndType(t *testing.T) {
	s := NewScreen(Hints(false))
	root := into(t, s, map[string]int{"one": 1, "two": 2}, "m")
	if !s.Click(root) || !root.Expanded() {
		t.Fatal("click did not expand")
	}
	if !s.Type(root, "tw") {
		t.Fatal("no filter input")
	}
	want := "— m map[string]int(2) - filter: [tw]\n    two int : 2\n"
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	one := root.ChildByName("one")
	if s.Click(one) || s.Type(one, "x") {
		t.Error("leaf accepted input")
	}
	s.Click(root)
	if root.Expanded() {
		t.Error("second click did not collapse")
	}
	root.Undescribe()
	if s.Click(root) {
		t.Error("click delivered after undescribe")
	}
}

func TestInsertModes(t *testing.T) {
	s := NewScreen()
	a := into(t, s, 1, "a")
	b, _ := inspect.Into(2, inspect.Named("b"), inspect.WithView(s), inspect.In(s, inspect.InsertTop))
	c, _ := inspect.Into(3, inspect.Named("c"), inspect.WithView(s), inspect.In(s.Anchor(a), inspect.InsertBefore))
	d, _ := inspect.Into(4, inspect.Named("d"), inspect.WithView(s), inspect.In(s.Anchor(b), inspect.InsertAfter))
	names := func() []string {
		var res []string
		for _, r := range s.Roots() {
			res = append(res, r.Name())
		}
		return res
	}
	if diff := cmp.Diff([]string{"b", "d", "c", "a"}, names()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	s.Remove(c)
	s.Remove(d)
	if diff := cmp.Diff([]string{"b", "a"}, names()); diff != "" {
		t.Errorf("after remove (-want +got):\n%s", diff)
	}
}

func TestColors(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	s := NewScreen(WithColors(NewColors()))
	into(t, s, "100%", "pct")
	buf := &bytes.Buffer{}
	if _, err := s.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("no escape codes in %q", buf.String())
	}
	if !strings.Contains(buf.String(), "100%") {
		t.Errorf("percent lost in %q", buf.String())
	}
	if strings.Contains(s.String(), "\x1b[") {
		t.Error("String() is colored")
	}
}
