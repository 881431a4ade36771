package classify

import "fmt"

// Category is the closed set of renderable type categories.
type Category int

const (
	Unclassified Category = iota
	Undefined
	String
	Number
	Function
	Array
	ViewElement
	KeyedMap
	Date
	Boolean
	Null
	PlainObject
)

func (c Category) String() string {
	s, ok := map[Category]string{
		Unclassified: "Unclassified",
		Undefined:    "undefined",
		String:       "String",
		Number:       "Number",
		Function:     "Function",
		Array:        "Array",
		ViewElement:  "Element",
		KeyedMap:     "Map",
		Date:         "Date",
		Boolean:      "Boolean",
		Null:         "null",
		PlainObject:  "Object",
	}[c]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown category %d>", int(c))
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(d []byte) error {
	for _, cc := range Categories() {
		if cc.String() == string(d) {
			*c = cc
			return nil
		}
	}
	return fmt.Errorf("unrecognized category %q", d)
}

// Categories returns the category set in resolution order.
func Categories() []Category {
	return []Category{
		Undefined,
		String,
		Number,
		Function,
		Array,
		ViewElement,
		KeyedMap,
		Date,
		Boolean,
		Null,
		PlainObject,
	}
}

// Valid reports whether c is one of Categories().
func (c Category) Valid() bool {
	return c >= Undefined && c <= PlainObject
}

// IsAggregate reports whether values of category c may carry members.
func (c Category) IsAggregate() bool {
	switch c {
	case Function, Array, ViewElement, KeyedMap, PlainObject:
		return true
	default:
		return false
	}
}

// Filterable reports whether members of category c can be filtered by name.
func (c Category) Filterable() bool {
	switch c {
	case Array, ViewElement, KeyedMap, PlainObject:
		return true
	default:
		return false
	}
}
