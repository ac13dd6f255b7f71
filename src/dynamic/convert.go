// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dynamic

import (
	"github.com/H0llyW00dzZ/fastcall/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/fastcall/src/jsonvalue"
)

// Convert maps a JSON value onto a dynamic value.
//
// Number literals without a fraction or exponent that fit in int64 become
// [KindInt]; all other numbers become [KindFloat]. Arrays keep their order and
// object keys are copied unchanged. Convert never fails; nesting depth is
// bounded only by the stack.
func Convert(v jsonvalue.Value) Value {
	switch v.Kind() {
	case jsonvalue.KindNull:
		return Null()
	case jsonvalue.KindBool:
		return Bool(v.Bool())
	case jsonvalue.KindNumber:
		n := v.Number()
		if i, ok := jsonrpc.Integer(n); ok {
			return Int(i)
		}
		return Float(jsonrpc.Float(n))
	case jsonvalue.KindString:
		return String(v.Text())
	case jsonvalue.KindArray:
		return List(ConvertAll(v.Items())...)
	case jsonvalue.KindObject:
		return Map(ConvertMap(v.Entries()))
	default:
		panic("dynamic: invalid JSON kind " + v.Kind().String())
	}
}

// ConvertAll converts each element of values, keeping order. The result is
// never nil.
func ConvertAll(values []jsonvalue.Value) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = Convert(v)
	}
	return out
}

// ConvertMap converts each value of entries. The result is never nil.
func ConvertMap(entries map[string]jsonvalue.Value) map[string]Value {
	out := make(map[string]Value, len(entries))
	for k, v := range entries {
		out[k] = Convert(v)
	}
	return out
}
