package classify

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/goccy/go-yaml"
)

// Element is implemented by values owned by a presentation layer. They are
// passed through opaquely and enumerated like plain objects.
type Element interface {
	InspectElement()
}

// Entry is one key/value pair of a Keyed value.
type Entry struct {
	Key   string
	Value any
}

// Keyed is implemented by associative containers which keep their own
// iteration order.
type Keyed interface {
	Entries() []Entry
}

// Object is implemented by values which enumerate their own members.
// Member may fail, in which case the failure is shown in place of the
// member value.
type Object interface {
	MemberNames() []string
	Member(name string) (any, error)
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undef is the value of category Undefined.
var Undef any = undefined{}

// Member describes one member of an aggregate value. Read is called at most
// once, when the owning value is described.
type Member struct {
	Name string
	Read func() (any, error)
}

// Introspector is the value introspection capability used by inspectors.
type Introspector interface {
	// Classify maps v to exactly one category.
	Classify(v any) Category
	// Members enumerates the members of v, which has category c, in
	// display order.
	Members(v any, c Category) []Member
	// TypeName returns a display name for the type of v, or "" when the
	// category carries no type.
	TypeName(v any, c Category) string
}

// Default is the reflection based Introspector without a Namespace.
var Default Introspector = &Reflect{}

// Classify classifies v with the Default introspector.
func Classify(v any) Category {
	return Default.Classify(v)
}

var (
	timeType     = reflect.TypeFor[time.Time]()
	numberType   = reflect.TypeFor[json.Number]()
	mapSliceType = reflect.TypeFor[yaml.MapSlice]()
)

// Reflect is an Introspector built on package reflect.
type Reflect struct {
	// Names resolves display names of anonymous struct types. It may be nil.
	Names *Namespace
}

func (r *Reflect) Classify(v any) Category {
	switch x := v.(type) {
	case nil:
		return Null
	case undefined:
		return Undefined
	case reflect.Value:
		if !x.IsValid() {
			return Undefined
		}
		if x.CanInterface() {
			return r.Classify(x.Interface())
		}
	}
	orig := reflect.ValueOf(v)
	rv := indirect(orig)
	kind := rv.Kind()

	switch {
	case kind == reflect.String && rv.Type() != numberType:
		return String
	case isNumber(rv):
		return Number
	case kind == reflect.Func && !rv.IsNil():
		return Function
	case isArray(orig, rv):
		return Array
	case isElement(orig):
		return ViewElement
	case isKeyed(orig, rv):
		return KeyedMap
	case rv.Type() == timeType:
		return Date
	case kind == reflect.Bool:
		return Boolean
	case isNil(rv):
		return Null
	default:
		return PlainObject
	}
}

// indirect follows non-nil pointers.
func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}

func isNumber(rv reflect.Value) bool {
	if rv.Type() == numberType {
		return true
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

func isArray(orig, rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Array:
	case reflect.Slice:
		if rv.IsNil() {
			return false
		}
	default:
		return false
	}
	// ordered associative slices classify as maps
	if rv.Type() == mapSliceType {
		return false
	}
	_, keyed := orig.Interface().(Keyed)
	return !keyed
}

func isElement(orig reflect.Value) bool {
	if isNil(orig) {
		return false
	}
	_, ok := orig.Interface().(Element)
	return ok
}

func isKeyed(orig, rv reflect.Value) bool {
	if isNil(rv) {
		return false
	}
	if _, ok := orig.Interface().(Keyed); ok {
		return true
	}
	return rv.Kind() == reflect.Map || rv.Type() == mapSliceType
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	case reflect.Invalid:
		return true
	default:
		return false
	}
}
