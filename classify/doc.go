// Package classify maps arbitrary Go values to a closed set of display
// categories and enumerates their members.
//
// # Usage
//
//	c := classify.Classify(v) // classify.PlainObject, classify.Array, ...
//
//	// enumerate members with a namespace for anonymous struct types
//	r := &classify.Reflect{Names: classify.NewNamespace().Register("Point", Point{})}
//	for _, m := range r.Members(v, r.Classify(v)) {
//	    val, err := m.Read()
//	    ...
//	}
//
// # Resolution order
//
// The first matching category wins: Undefined, String, Number, Function,
// Array, ViewElement, KeyedMap, Date, Boolean, Null, PlainObject.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-inspect/inspect - inspector trees
package classify
