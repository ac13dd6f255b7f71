// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package message

import (
	"maps"
	"slices"
	"strconv"

	"github.com/H0llyW00dzZ/fastcall/src/dynamic"
	"github.com/H0llyW00dzZ/fastcall/src/jsonvalue"
)

// ParamsKind identifies which shape a [Params] value holds.
type ParamsKind uint8

const (
	// ParamsArray holds an ordered list of positional arguments.
	ParamsArray ParamsKind = iota
	// ParamsObject holds keyword arguments by name.
	ParamsObject
	// ParamsString holds a single scalar, passed as one positional argument.
	ParamsString
)

func (k ParamsKind) String() string {
	switch k {
	case ParamsArray:
		return "array"
	case ParamsObject:
		return "object"
	case ParamsString:
		return "string"
	default:
		return "ParamsKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Params is the parameter member of a [Message]. Exactly one shape is active.
// The zero Params is an empty positional list.
type Params struct {
	kind   ParamsKind
	scalar string
	array  []jsonvalue.Value
	object map[string]jsonvalue.Value
}

// StringParams returns scalar params holding s.
func StringParams(s string) Params {
	return Params{kind: ParamsString, scalar: s}
}

// ArrayParams returns positional params holding values in order.
func ArrayParams(values ...jsonvalue.Value) Params {
	return Params{kind: ParamsArray, array: slices.Clone(values)}
}

// ObjectParams returns keyword params holding a copy of entries.
func ObjectParams(entries map[string]jsonvalue.Value) Params {
	object := maps.Clone(entries)
	if object == nil {
		object = make(map[string]jsonvalue.Value)
	}
	return Params{kind: ParamsObject, object: object}
}

// paramsFrom selects the shape matching the wire form of v.
func paramsFrom(v jsonvalue.Value) (Params, bool) {
	switch v.Kind() {
	case jsonvalue.KindString:
		return StringParams(v.Text()), true
	case jsonvalue.KindArray:
		return Params{kind: ParamsArray, array: v.Items()}, true
	case jsonvalue.KindObject:
		return ObjectParams(v.Entries()), true
	default:
		return Params{}, false
	}
}

// Kind returns the active shape.
func (p Params) Kind() ParamsKind { return p.kind }

// Scalar returns the string of [ParamsString] params, or "".
func (p Params) Scalar() string { return p.scalar }

// Positional returns a copy of the values of [ParamsArray] params, or nil.
func (p Params) Positional() []jsonvalue.Value {
	if p.kind != ParamsArray {
		return nil
	}
	return slices.Clone(p.array)
}

// Keyword returns a copy of the entries of [ParamsObject] params, or nil.
func (p Params) Keyword() map[string]jsonvalue.Value {
	if p.kind != ParamsObject {
		return nil
	}
	return maps.Clone(p.object)
}

// clone returns p with its own copy of the argument containers.
func (p Params) clone() Params {
	p.array = p.Positional()
	p.object = p.Keyword()
	return p
}

// Len returns the number of arguments the params materialize into.
func (p Params) Len() int {
	switch p.kind {
	case ParamsArray:
		return len(p.array)
	case ParamsObject:
		return len(p.object)
	case ParamsString:
		return 1
	default:
		return 0
	}
}

// with returns p after adding v.
//
//   - object: name is inserted, replacing any earlier value
//   - array: v is appended and name is not used
//   - string: the params become an array, see [promote]
func (p Params) with(name string, v jsonvalue.Value) Params {
	switch p.kind {
	case ParamsObject:
		if p.object == nil {
			p.object = make(map[string]jsonvalue.Value)
		}
		p.object[name] = v
		return p
	case ParamsArray:
		p.array = append(p.array, v)
		return p
	case ParamsString:
		return promote(p.scalar, v)
	default:
		panic("message: invalid params kind " + p.kind.String())
	}
}

// promote is the one-way transition from scalar params to positional params:
// the scalar becomes the first argument and v the second.
func promote(scalar string, v jsonvalue.Value) Params {
	return Params{kind: ParamsArray, array: []jsonvalue.Value{jsonvalue.String(scalar), v}}
}

// materialize converts p into positional and keyword arguments. Both results
// are non-nil and at most one is non-empty.
func (p Params) materialize() ([]dynamic.Value, map[string]dynamic.Value) {
	switch p.kind {
	case ParamsString:
		return []dynamic.Value{dynamic.String(p.scalar)}, make(map[string]dynamic.Value)
	case ParamsArray:
		return dynamic.ConvertAll(p.array), make(map[string]dynamic.Value)
	case ParamsObject:
		return make([]dynamic.Value, 0), dynamic.ConvertMap(p.object)
	default:
		panic("message: invalid params kind " + p.kind.String())
	}
}

// value returns p in its wire form.
func (p Params) value() jsonvalue.Value {
	switch p.kind {
	case ParamsString:
		return jsonvalue.String(p.scalar)
	case ParamsArray:
		return jsonvalue.Array(p.array...)
	case ParamsObject:
		return jsonvalue.Object(p.object)
	default:
		panic("message: invalid params kind " + p.kind.String())
	}
}

// MarshalJSON implements [json.Marshaler], writing the active shape.
func (p Params) MarshalJSON() ([]byte, error) {
	return p.value().MarshalJSON()
}

// UnmarshalJSON implements [json.Unmarshaler]. The shape is chosen from the
// JSON text; any other kind of value, null included, is a [*DecodeError].
func (p *Params) UnmarshalJSON(data []byte) error {
	v, err := jsonvalue.Parse(data)
	if err != nil {
		return syntaxError(err)
	}
	parsed, ok := paramsFrom(v)
	if !ok {
		return fieldError("params", ErrParamsShape, "got "+v.Kind().String())
	}
	*p = parsed
	return nil
}
