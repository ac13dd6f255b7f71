// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dynamic

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/fastcall/src/internal/helper/gc"
)

// Kind identifies which shape a [Value] holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "str",
	KindList:   "list",
	KindMap:    "dict",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a dynamically typed value. The zero Value is null.
//
// Empty lists and maps are stored as nil so that equal values compare equal
// with reflect.DeepEqual.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	m    map[string]Value
}

// Null returns the "no value" sentinel.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List returns an ordered sequence of items.
func List(items ...Value) Value {
	if len(items) == 0 {
		items = nil
	}
	return Value{kind: KindList, list: items}
}

// Map returns a mapping holding a copy of entries.
func Map(entries map[string]Value) Value {
	if len(entries) == 0 {
		return Value{kind: KindMap}
	}
	return Value{kind: KindMap, m: maps.Clone(entries)}
}

// Kind returns the shape of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null sentinel.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean held by v, or false.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Int returns the integer held by v, or 0.
func (v Value) Int() int64 {
	if v.kind != KindInt {
		return 0
	}
	return v.i
}

// Float returns the float held by v, or 0.
func (v Value) Float() float64 {
	if v.kind != KindFloat {
		return 0
	}
	return v.f
}

// Text returns the string held by v, or "".
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// Items returns a copy of the elements of a list, or nil.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return slices.Clone(v.list)
}

// Entries returns a copy of the entries of a map, or nil.
func (v Value) Entries() map[string]Value {
	if v.kind != KindMap {
		return nil
	}
	return maps.Clone(v.m)
}

// Len returns the length of a list or map, or 0.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.m)
	default:
		return 0
	}
}

// Interface returns v as plain Go values for a host runtime: nil, bool,
// int64, float64, string, []any or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindList:
		items := make([]any, len(v.list))
		for i, item := range v.list {
			items[i] = item.Interface()
		}
		return items
	case KindMap:
		entries := make(map[string]any, len(v.m))
		for k, item := range v.m {
			entries[k] = item.Interface()
		}
		return entries
	default:
		panic("dynamic: invalid kind " + v.kind.String())
	}
}

// String renders v as a literal. Floats always show a fraction or exponent,
// strings are quoted and map keys are sorted, so the output is stable.
func (v Value) String() string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	v.writeTo(buf)
	return buf.String()
}

func (v Value) writeTo(buf gc.Buffer) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		buf.WriteString(formatFloat(v.f))
	case KindString:
		buf.WriteString(strconv.Quote(v.s))
	case KindList:
		buf.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				buf.WriteString(", ")
			}
			item.writeTo(buf)
		}
		buf.WriteByte(']')
	case KindMap:
		WriteMap(buf, v.m)
	default:
		panic("dynamic: invalid kind " + v.kind.String())
	}
}

// WriteMap writes entries to buf in the literal form used by [Value.String],
// with keys in sorted order.
func WriteMap(buf gc.Buffer, entries map[string]Value) {
	buf.WriteByte('{')
	for i, k := range slices.Sorted(maps.Keys(entries)) {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Quote(k))
		buf.WriteString(": ")
		entries[k].writeTo(buf)
	}
	buf.WriteByte('}')
}

// WriteList writes items to buf in the literal form used by [Value.String].
func WriteList(buf gc.Buffer, items []Value) {
	List(items...).writeTo(buf)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
