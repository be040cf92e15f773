// Package jsonview implements the lazy Json-kind chain access of spec.md
// §4.6: member and index lookups into a Json value parse the fragment on
// the spot and re-wrap the result as a new Json value (or materialize a
// primitive), without ever calling the host.
package jsonview

import (
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/go-jsexpr/jsexpr/internal/value"
)

// Get resolves a `.ident`/`[expr]` chain segment against a Json-kind
// receiver. name is the already-stringified member name (spec.md §4.6:
// computed access stringifies its subexpression first, then behaves like
// `.ident`). A miss yields Undefined rather than an error.
func Get(raw string, name string) value.Value {
	r := gjson.Parse(raw)
	switch {
	case r.IsObject():
		return getObjectMember(r, name)
	case r.IsArray():
		return getArrayElement(r, name)
	default:
		return value.Undefined()
	}
}

func getObjectMember(r gjson.Result, name string) value.Value {
	child := r.Get(gjson.Escape(name))
	if !child.Exists() {
		return value.Undefined()
	}
	return wrap(child)
}

func getArrayElement(r gjson.Result, name string) value.Value {
	idx, err := strconv.Atoi(name)
	if err != nil || idx < 0 {
		return value.Undefined()
	}
	elems := r.Array()
	if idx >= len(elems) {
		return value.Undefined()
	}
	return wrap(elems[idx])
}

// wrap converts a gjson.Result into a Value: scalars materialize directly,
// objects and arrays stay lazy as a new Json-kind Value over their raw
// span.
func wrap(r gjson.Result) value.Value {
	switch r.Type {
	case gjson.Null:
		return value.Null()
	case gjson.False:
		return value.Bool(false)
	case gjson.True:
		return value.Bool(true)
	case gjson.Number:
		return value.Float(r.Num)
	case gjson.String:
		return value.String(r.Str)
	case gjson.JSON:
		return value.JSON(r.Raw)
	default:
		return value.Undefined()
	}
}
