package classify

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// SourceMember is the name of the synthesized member holding the textual
// form of a function.
const SourceMember = "source"

func (r *Reflect) Members(v any, c Category) []Member {
	if x, ok := v.(reflect.Value); ok && x.IsValid() && x.CanInterface() {
		v = x.Interface()
	}
	orig := reflect.ValueOf(v)
	rv := indirect(orig)
	switch c {
	case Function:
		return []Member{{
			Name: SourceMember,
			Read: func() (any, error) { return FuncSource(rv), nil },
		}}
	case Array:
		return indexMembers(rv)
	case KeyedMap:
		return keyedMembers(v, rv)
	case ViewElement, PlainObject:
		if o, ok := v.(Object); ok {
			return objectMembers(o)
		}
		switch rv.Kind() {
		case reflect.Struct:
			return fieldMembers(rv)
		case reflect.Map:
			return keyedMembers(v, rv)
		}
		return nil
	default:
		return nil
	}
}

func indexMembers(rv reflect.Value) []Member {
	n := rv.Len()
	res := make([]Member, n)
	for i := range n {
		res[i] = Member{
			Name: strconv.Itoa(i),
			Read: func() (any, error) { return read(rv.Index(i)) },
		}
	}
	return res
}

func keyedMembers(v any, rv reflect.Value) []Member {
	if k, ok := v.(Keyed); ok {
		return entryMembers(k.Entries())
	}
	if rv.Type() == mapSliceType {
		ms := rv.Interface().(yaml.MapSlice)
		res := make([]Member, len(ms))
		for i := range ms {
			item := ms[i]
			res[i] = Member{
				Name: fmt.Sprint(item.Key),
				Read: func() (any, error) { return item.Value, nil },
			}
		}
		return res
	}
	if rv.Kind() != reflect.Map {
		return nil
	}
	type mapKey struct {
		name string
		key  reflect.Value
	}
	keys := make([]mapKey, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key()
		keys = append(keys, mapKey{name: keyString(k), key: k})
	}
	slices.SortStableFunc(keys, func(a, b mapKey) int {
		return strings.Compare(a.name, b.name)
	})
	res := make([]Member, len(keys))
	for i, k := range keys {
		res[i] = Member{
			Name: k.name,
			Read: func() (any, error) { return read(rv.MapIndex(k.key)) },
		}
	}
	return res
}

func keyString(k reflect.Value) string {
	if k.CanInterface() {
		return fmt.Sprint(k.Interface())
	}
	return k.String()
}

func entryMembers(entries []Entry) []Member {
	res := make([]Member, len(entries))
	for i, e := range entries {
		res[i] = Member{
			Name: e.Key,
			Read: func() (any, error) { return e.Value, nil },
		}
	}
	return res
}

func objectMembers(o Object) []Member {
	names := o.MemberNames()
	res := make([]Member, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		res = append(res, Member{
			Name: name,
			Read: func() (any, error) { return o.Member(name) },
		})
	}
	return res
}

// fieldMembers lists exported fields, including fields promoted from
// embedded structs in place of the embedded struct itself. An embedded
// struct promoting no exported field, such as time.Time, is listed itself.
func fieldMembers(rv reflect.Value) []Member {
	var res []Member
	fields := reflect.VisibleFields(rv.Type())
	for _, f := range fields {
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && indirectType(f.Type).Kind() == reflect.Struct && promotes(f, fields) {
			continue
		}
		index := f.Index
		res = append(res, Member{
			Name: f.Name,
			Read: func() (any, error) {
				fv, err := rv.FieldByIndexErr(index)
				if err != nil {
					return nil, err
				}
				return read(fv)
			},
		})
	}
	return res
}

// promotes reports whether embedded field f contributes an exported field
// to fields.
func promotes(f reflect.StructField, fields []reflect.StructField) bool {
	for _, g := range fields {
		if g.IsExported() && len(g.Index) > len(f.Index) && slices.Equal(g.Index[:len(f.Index)], f.Index) {
			return true
		}
	}
	return false
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// read returns the interface value of rv, turning reflection panics into
// errors.
func read(rv reflect.Value) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	if !rv.IsValid() {
		return Undef, nil
	}
	if !rv.CanInterface() {
		return nil, fmt.Errorf("cannot read unexported value of type %s", rv.Type())
	}
	return rv.Interface(), nil
}

// FuncSource returns the textual form of a function value: its qualified
// name and definition site when the runtime knows them, its signature
// otherwise.
func FuncSource(rv reflect.Value) string {
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return "<nil func>"
	}
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return rv.Type().String()
	}
	file, line := fn.FileLine(fn.Entry())
	if file == "" {
		return fn.Name() + " " + rv.Type().String()
	}
	return fmt.Sprintf("%s %s (%s:%d)", fn.Name(), rv.Type(), file, line)
}
