package inspect

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/signadot/tony-format/go-inspect/classify"
	"github.com/signadot/tony-format/go-inspect/debug"
)

const (
	// MaxScalarLen is the longest string shown whole in a label.
	MaxScalarLen = 30
	// TruncatedLen is how much of a longer string the label keeps.
	TruncatedLen = 27
	Ellipsis     = "..."

	// UTCLayout formats dates and timestamp hints.
	UTCLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

	// ReadFailurePrefix starts the placeholder of a member which could not
	// be read.
	ReadFailurePrefix = "??: "
)

// Describe classifies v and makes n display it, replacing any previous
// description and all descendants. A non-empty name renames n. Members of
// aggregates are queued as pending and only materialized by Expand.
func (n *Node) Describe(v any, name string) (*Node, error) {
	n.Undescribe()
	if name != "" {
		n.name = name
	}
	c := n.intro.Classify(v)
	if debug.Describe() {
		debug.Logf("describe %s as %s\n", n, c)
	}
	switch c {
	case classify.Function, classify.PlainObject, classify.ViewElement,
		classify.KeyedMap, classify.Array:
		n.enqueue(c, n.intro.Members(v, c))
		count := len(n.pending)
		n.count = &count
		n.expandable = count > 0

	case classify.Boolean:
		if indirect(v).Bool() {
			n.scalar = "true"
		} else {
			n.scalar = "false"
		}

	case classify.Number:
		n.scalar, n.hint = formatNumber(v)

	case classify.Date:
		t := indirect(v).Interface().(time.Time)
		n.scalar = t.UTC().Format(UTCLayout)

	case classify.Null, classify.Undefined:
		n.scalar = c.String()

	case classify.String:
		s := indirect(v).String()
		count := utf8.RuneCountInString(s)
		n.count = &count
		small := s
		if count > MaxScalarLen {
			small = string([]rune(s)[:TruncatedLen]) + Ellipsis
			n.fullText = s
			n.expandable = true
		}
		n.scalar = strconv.Quote(small)

	default:
		n.err = &classify.UnsupportedTypeError{Category: c, Value: v}
		return n, n.err
	}
	n.category = c
	n.typeLabel = n.intro.TypeName(v, c)
	n.filterable = n.expandable && c != classify.String && c != classify.Function

	n.view.SetLabel(n, n.Label())
	n.view.SetContent(n, false)
	if n.expandable {
		n.view.SetToggle(n, ToggleCollapsed)
	} else {
		n.view.SetToggle(n, ToggleHidden)
	}
	if n.fullText != "" {
		n.view.SetFullText(n, n.fullText)
	}
	n.subscribe()
	return n, nil
}

// Undescribe returns n to its undescribed state. Children are un-described
// and destroyed before n's own display is cleared.
func (n *Node) Undescribe() *Node {
	n.unsubscribe()
	for _, c := range n.children {
		c.Undescribe()
		n.view.Detach(c)
	}
	n.gen++
	n.children = nil
	n.pending = nil
	n.scheduled = false

	n.category = classify.Unclassified
	n.typeLabel = ""
	n.scalar = ""
	n.hint = ""
	n.count = nil
	n.fullText = ""
	n.err = nil
	n.filter = ""
	n.expandable = false
	n.filterable = false
	n.expanded = false
	n.loading = false

	n.view.SetLoading(n, false)
	n.view.SetContent(n, false)
	n.view.SetFullText(n, "")
	n.view.SetToggle(n, ToggleHidden)
	n.view.SetLabel(n, Label{})
	return n
}

func (n *Node) enqueue(c classify.Category, members []classify.Member) {
	skipEmpty := c == classify.PlainObject || c == classify.ViewElement
	n.pending = make([]Pending, 0, len(members))
	for _, m := range members {
		if skipEmpty && m.Name == "" {
			continue
		}
		v, err := m.Read()
		if err != nil {
			v = ReadFailurePrefix + err.Error()
		}
		n.pending = append(n.pending, Pending{Name: m.Name, Value: v})
	}
}

func (n *Node) subscribe() {
	if n.sub != nil {
		return
	}
	n.sub = n.view.Subscribe(n, Handlers{
		Toggle: func() { n.Toggle() },
		Filter: n.SetFilter,
	})
}

func (n *Node) unsubscribe() {
	if n.sub == nil {
		return
	}
	n.sub.Close()
	n.sub = nil
}

func indirect(v any) reflect.Value {
	if rv, ok := v.(reflect.Value); ok {
		v = rv.Interface()
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}

// maxTimestamp bounds the seconds for which a timestamp hint is given.
const maxTimestamp = 8.64e12

// formatNumber returns the literal of a number and, for integers, a hint
// reading it as a Unix timestamp.
func formatNumber(v any) (string, string) {
	var (
		lit   string
		secs  float64
		isInt bool
	)
	rv := indirect(v)
	switch {
	case rv.Type() == reflect.TypeFor[json.Number]():
		lit = rv.String()
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			secs, isInt = float64(i), true
		} else if f, err := strconv.ParseFloat(lit, 64); err == nil {
			secs, isInt = f, isWhole(f)
		}
	case rv.CanInt():
		i := rv.Int()
		lit = strconv.FormatInt(i, 10)
		secs, isInt = float64(i), true
	case rv.CanUint():
		u := rv.Uint()
		lit = strconv.FormatUint(u, 10)
		secs, isInt = float64(u), true
	case rv.CanFloat():
		f := rv.Float()
		lit = formatFloat(f, rv.Type().Bits())
		secs, isInt = f, isWhole(f)
	case rv.CanComplex():
		lit = strconv.FormatComplex(rv.Complex(), 'g', -1, rv.Type().Bits())
	}
	if strings.HasPrefix(lit, ".") {
		lit = "0" + lit
	}
	if !isInt || math.Abs(secs) > maxTimestamp {
		return lit, ""
	}
	t := time.Unix(int64(secs), 0)
	return lit, "Unix timestamp: " + t.UTC().Format(UTCLayout)
}

func isWhole(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

// formatFloat uses plain notation except for very large or small
// magnitudes, whose exponent is written without zero padding.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	abs := math.Abs(f)
	if abs == 0 || (abs < 1e21 && abs >= 1e-6) {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	lit := strconv.FormatFloat(f, 'g', -1, bits)
	mant, exp, ok := strings.Cut(lit, "e")
	if !ok {
		return lit
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
