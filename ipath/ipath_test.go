package ipath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a.b", []string{"a", "b"}},
		{"a[0]", []string{"a", "0"}},
		{"a[0].b", []string{"a", "0", "b"}},
		{"[1][2]", []string{"1", "2"}},
		{"a..b", []string{"a", "b"}},
		{"'f[3]'[2]", []string{"f[3]", "2"}},
		{`'it\'s'.x`, []string{"it's", "x"}},
		{"''", []string{""}},
		{"'open", []string{"open"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := Split(tt.path)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		segs []string
		want string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a.b"},
		{[]string{"a", "0", "b"}, "a[0].b"},
		{[]string{"0"}, "[0]"},
		{[]string{"f[3]", "2"}, "'f[3]'[2]"},
		{[]string{"a", "x.y"}, "a.'x.y'"},
		{[]string{"it's"}, `'it\'s'`},
	}
	for _, tt := range tests {
		got := Join(tt.segs)
		if got != tt.want {
			t.Errorf("Join(%q) = %q, want %q", tt.segs, got, tt.want)
		}
		if len(tt.segs) == 0 {
			continue
		}
		if diff := cmp.Diff(tt.segs, Split(got)); diff != "" {
			t.Errorf("Split(Join(%q)) (-want +got):\n%s", tt.segs, diff)
		}
	}
}
