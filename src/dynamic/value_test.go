// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dynamic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{name: "null", value: Null(), expected: "null"},
		{name: "bool", value: Bool(false), expected: "false"},
		{name: "int", value: Int(-3), expected: "-3"},
		{name: "whole float", value: Float(1), expected: "1.0"},
		{name: "float", value: Float(0.25), expected: "0.25"},
		{name: "big float", value: Float(1e21), expected: "1e+21"},
		{name: "nan", value: Float(math.NaN()), expected: "nan"},
		{name: "negative inf", value: Float(math.Inf(-1)), expected: "-inf"},
		{name: "quoted string", value: String(`say "hi"`), expected: `"say \"hi\""`},
		{name: "list", value: List(Int(1), String("a"), Null()), expected: `[1, "a", null]`},
		{name: "empty list", value: List(), expected: "[]"},
		{
			name:     "map sorted",
			value:    Map(map[string]Value{"b": Int(2), "a": Float(1)}),
			expected: `{"a": 1.0, "b": 2}`,
		},
		{name: "empty map", value: Map(nil), expected: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestValueInterface(t *testing.T) {
	v := Map(map[string]Value{
		"n": Int(42),
		"f": Float(1),
		"l": List(Bool(true), Null(), String("s")),
		"m": Map(nil),
	})

	assert.Equal(t, map[string]any{
		"n": int64(42),
		"f": 1.0,
		"l": []any{true, nil, "s"},
		"m": map[string]any{},
	}, v.Interface())
}

func TestAccessors(t *testing.T) {
	assert.Equal(t, int64(7), Int(7).Int())
	assert.Equal(t, 0.5, Float(0.5).Float())
	assert.Equal(t, "x", String("x").Text())
	assert.True(t, Bool(true).Bool())
	assert.True(t, Null().IsNull())

	// Accessors on the wrong kind return the zero value.
	assert.Zero(t, Float(7).Int())
	assert.Zero(t, Int(7).Float())
	assert.Empty(t, Int(1).Text())
	assert.Nil(t, String("x").Items())
	assert.Nil(t, List().Entries())
	assert.Equal(t, 0, Int(1).Len())
}

func TestMapCopiesInput(t *testing.T) {
	entries := map[string]Value{"a": Int(1)}
	m := Map(entries)
	entries["b"] = Int(2)
	assert.Equal(t, 1, m.Len())

	got := m.Entries()
	delete(got, "a")
	assert.Equal(t, 1, m.Len())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "dict", KindMap.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
