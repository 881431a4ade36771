package classify

import (
	"reflect"
	"sync"
)

// GenericObjectName is the type name shown when no better name resolves.
const GenericObjectName = "Object"

// Namespace is a registry of named types used to give a name to values of
// anonymous struct type. A value whose type is an anonymous struct is shown
// under the first registered name whose type it is assignable to.
type Namespace struct {
	mu    sync.RWMutex
	names []string
	types []reflect.Type
}

func NewNamespace() *Namespace {
	return &Namespace{}
}

// Register binds name to the type of v. v may itself be a reflect.Type.
func (ns *Namespace) Register(name string, v any) *Namespace {
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	if t == nil || name == "" {
		return ns
	}
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.names = append(ns.names, name)
	ns.types = append(ns.types, t)
	return ns
}

// Lookup returns the first registered name whose type t is assignable to.
func (ns *Namespace) Lookup(t reflect.Type) (string, bool) {
	if ns == nil || t == nil {
		return "", false
	}
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	for i, nt := range ns.types {
		if nt == t || nt.Name() == "" {
			continue
		}
		if t.AssignableTo(nt) {
			return ns.names[i], true
		}
	}
	return "", false
}

func (r *Reflect) TypeName(v any, c Category) string {
	switch c {
	case Null, Undefined, Unclassified:
		return ""
	}
	if x, ok := v.(reflect.Value); ok && x.IsValid() && x.CanInterface() {
		v = x.Interface()
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	if c != PlainObject && c != ViewElement {
		return t.String()
	}
	return r.objectName(t)
}

// objectName resolves the display name of an object type. Named types show
// as themselves; anonymous structs go through the Namespace and otherwise
// show as GenericObjectName.
func (r *Reflect) objectName(t reflect.Type) string {
	prefix := ""
	base := t
	for base.Kind() == reflect.Pointer {
		prefix += "*"
		base = base.Elem()
	}
	if base.Name() != "" {
		return t.String()
	}
	if base.Kind() != reflect.Struct {
		return t.String()
	}
	if name, ok := r.Names.Lookup(base); ok {
		return prefix + name
	}
	return GenericObjectName
}
