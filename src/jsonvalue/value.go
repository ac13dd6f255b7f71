// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonvalue

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/fastcall/src/internal/helper/jsonrpc"
)

// Kind identifies which shape a [Value] holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a JSON value. The zero Value is null.
//
// Only the field matching kind is meaningful. Number values store their
// literal in text.
type Value struct {
	kind   Kind
	b      bool
	text   string
	array  []Value
	object map[string]Value
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a JSON number with an integer literal.
func Int(i int64) Value {
	return Value{kind: KindNumber, text: strconv.FormatInt(i, 10)}
}

// Float returns a JSON number whose literal always has a fraction or an
// exponent, so it reads back as floating-point. NaN and infinities have no
// JSON form and yield null.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return Value{kind: KindNumber, text: s}
}

// String returns a JSON string.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Array returns a JSON array holding items in order.
func Array(items ...Value) Value {
	if len(items) == 0 {
		items = nil
	}
	return Value{kind: KindArray, array: items}
}

// Object returns a JSON object holding a copy of entries.
func Object(entries map[string]Value) Value {
	if len(entries) == 0 {
		return Value{kind: KindObject}
	}
	return Value{kind: KindObject, object: maps.Clone(entries)}
}

// Parse parses data as exactly one JSON value.
//
// Trailing non-whitespace input is rejected. Numbers keep their literal form.
func Parse(data []byte) (Value, error) {
	var raw any
	if err := jsonrpc.Unmarshal(data, &raw); err != nil {
		return Value{}, err
	}
	return FromInterface(raw), nil
}

// FromInterface builds a Value from the output of an [encoding/json] decode
// into an interface value made with UseNumber. Plain float64 and integer
// types are accepted as well, for values built by hand.
func FromInterface(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(v)
	case json.Number:
		return Value{kind: KindNumber, text: v.String()}
	case float64:
		return Float(v)
	case int:
		return Int(int64(v))
	case int64:
		return Int(v)
	case string:
		return String(v)
	case []any:
		items := make([]Value, len(v))
		for i, item := range v {
			items[i] = FromInterface(item)
		}
		return Array(items...)
	case map[string]any:
		entries := make(map[string]Value, len(v))
		for k, item := range v {
			entries[k] = FromInterface(item)
		}
		return Value{kind: KindObject, object: entries}.normalized()
	default:
		panic(fmt.Sprintf("jsonvalue: unsupported type %T", raw))
	}
}

func (v Value) normalized() Value {
	if v.kind == KindObject && len(v.object) == 0 {
		v.object = nil
	}
	return v
}

// Kind returns the shape of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean held by v, or false.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Number returns the number literal held by v, or "".
func (v Value) Number() json.Number {
	if v.kind != KindNumber {
		return ""
	}
	return json.Number(v.text)
}

// Text returns the string held by v, or "".
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return v.text
}

// Items returns a copy of the elements of an array, or nil.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return slices.Clone(v.array)
}

// Entries returns a copy of the members of an object, or nil.
func (v Value) Entries() map[string]Value {
	if v.kind != KindObject {
		return nil
	}
	return maps.Clone(v.object)
}

// Len returns the number of elements of an array or members of an object.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.array)
	case KindObject:
		return len(v.object)
	default:
		return 0
	}
}

// Interface returns v in the form [encoding/json] produces with UseNumber:
// nil, bool, json.Number, string, []any or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return json.Number(v.text)
	case KindString:
		return v.text
	case KindArray:
		items := make([]any, len(v.array))
		for i, item := range v.array {
			items[i] = item.Interface()
		}
		return items
	case KindObject:
		entries := make(map[string]any, len(v.object))
		for k, item := range v.object {
			entries[k] = item.Interface()
		}
		return entries
	default:
		panic("jsonvalue: invalid kind " + v.kind.String())
	}
}

// MarshalJSON implements [json.Marshaler]. Number literals are written as they
// were read and strings are not HTML-escaped.
func (v Value) MarshalJSON() ([]byte, error) {
	return jsonrpc.Marshal(v.Interface())
}

// UnmarshalJSON implements [json.Unmarshaler] with the rules of [Parse].
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns the compact JSON text of v.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return "<invalid: " + err.Error() + ">"
	}
	return string(data)
}
