// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package message

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/H0llyW00dzZ/fastcall/src/dynamic"
	"github.com/H0llyW00dzZ/fastcall/src/jsonvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   ParamsKind
		args   []dynamic.Value
		kwargs map[string]dynamic.Value
	}{
		{
			name:  "object params become kwargs",
			input: `{"jsonrpc":"2.0","id":"1","method":"add","params":{"a":1,"b":2.5,"c":[true,null]}}`,
			kind:  ParamsObject,
			args:  []dynamic.Value{},
			kwargs: map[string]dynamic.Value{
				"a": dynamic.Int(1),
				"b": dynamic.Float(2.5),
				"c": dynamic.List(dynamic.Bool(true), dynamic.Null()),
			},
		},
		{
			name:   "array params become args in order",
			input:  `{"jsonrpc":"2.0","id":"2","method":"add","params":[3,"x",{"k":"v"}]}`,
			kind:   ParamsArray,
			args:   []dynamic.Value{dynamic.Int(3), dynamic.String("x"), dynamic.Map(map[string]dynamic.Value{"k": dynamic.String("v")})},
			kwargs: map[string]dynamic.Value{},
		},
		{
			name:   "string params become one arg",
			input:  `{"jsonrpc":"2.0","id":"3","method":"echo","params":"x"}`,
			kind:   ParamsString,
			args:   []dynamic.Value{dynamic.String("x")},
			kwargs: map[string]dynamic.Value{},
		},
		{
			name:   "empty object",
			input:  `{"jsonrpc":"2.0","id":"4","method":"m","params":{}}`,
			kind:   ParamsObject,
			args:   []dynamic.Value{},
			kwargs: map[string]dynamic.Value{},
		},
		{
			name:   "empty array",
			input:  `{"jsonrpc":"2.0","id":"5","method":"m","params":[]}`,
			kind:   ParamsArray,
			args:   []dynamic.Value{},
			kwargs: map[string]dynamic.Value{},
		},
		{
			name:   "unknown members ignored",
			input:  `{"jsonrpc":"2.0","id":"6","method":"m","params":[],"extra":{"x":1}}`,
			kind:   ParamsArray,
			args:   []dynamic.Value{},
			kwargs: map[string]dynamic.Value{},
		},
		{
			name:   "repeated unknown member and keyword keep last",
			input:  `{"jsonrpc":"2.0","id":"7","method":"m","params":{"a":1,"a":2},"x":1,"x":2}`,
			kind:   ParamsObject,
			args:   []dynamic.Value{},
			kwargs: map[string]dynamic.Value{"a": dynamic.Int(2)},
		},
		{
			name:   "surrogate pair",
			input:  `{"jsonrpc":"2.0","id":"8","method":"m","params":["\ud83d\ude00"]}`,
			kind:   ParamsArray,
			args:   []dynamic.Value{dynamic.String("\U0001F600")},
			kwargs: map[string]dynamic.Value{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := DecodeString(tt.input)
			require.NoError(t, err)

			assert.Equal(t, "2.0", msg.JSONRPC())
			assert.Equal(t, tt.kind, msg.Params().Kind())

			args, kwargs := msg.Args()
			require.NotNil(t, args)
			require.NotNil(t, kwargs)
			assert.Equal(t, tt.args, args)
			assert.Equal(t, tt.kwargs, kwargs)
		})
	}
}

func TestDecode_Fields(t *testing.T) {
	msg, err := DecodeString(`{"method":"sum","params":[],"id":"req-9","jsonrpc":"1.9"}`)
	require.NoError(t, err)
	assert.Equal(t, "1.9", msg.JSONRPC())
	assert.Equal(t, "req-9", msg.ID())
	assert.Equal(t, "sum", msg.Method())
}

func TestDecode_Error(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
		field    string
		code     int
	}{
		{name: "invalid JSON", input: `{"jsonrpc":`, sentinel: ErrSyntax, code: CodeParseError},
		{name: "empty input", input: ``, sentinel: ErrSyntax, code: CodeParseError},
		{name: "trailing data", input: `{"jsonrpc":"2.0","id":"1","method":"m","params":[]} {}`, sentinel: ErrSyntax, code: CodeParseError},
		{name: "not an object", input: `[1,2]`, sentinel: ErrNotObject, code: CodeInvalidRequest},
		{name: "params number", input: `{"jsonrpc":"2.0","id":"1","method":"m","params":5}`, sentinel: ErrParamsShape, field: "params", code: CodeInvalidRequest},
		{name: "params null", input: `{"jsonrpc":"2.0","id":"1","method":"m","params":null}`, sentinel: ErrParamsShape, field: "params", code: CodeInvalidRequest},
		{name: "params bool", input: `{"jsonrpc":"2.0","id":"1","method":"m","params":true}`, sentinel: ErrParamsShape, field: "params", code: CodeInvalidRequest},
		{name: "params missing", input: `{"jsonrpc":"2.0","id":"1","method":"m"}`, sentinel: ErrMissingField, field: "params", code: CodeInvalidRequest},
		{name: "id missing", input: `{"jsonrpc":"2.0","method":"m","params":[]}`, sentinel: ErrMissingField, field: "id", code: CodeInvalidRequest},
		{name: "method missing", input: `{"jsonrpc":"2.0","id":"1","params":[]}`, sentinel: ErrMissingField, field: "method", code: CodeInvalidRequest},
		{name: "jsonrpc missing", input: `{"id":"1","method":"m","params":[]}`, sentinel: ErrMissingField, field: "jsonrpc", code: CodeInvalidRequest},
		{name: "numeric id", input: `{"jsonrpc":"2.0","id":1,"method":"m","params":[]}`, sentinel: ErrFieldType, field: "id", code: CodeInvalidRequest},
		{name: "null method", input: `{"jsonrpc":"2.0","id":"1","method":null,"params":[]}`, sentinel: ErrFieldType, field: "method", code: CodeInvalidRequest},
		{name: "lone surrogate", input: `{"jsonrpc":"2.0","id":"1","method":"m","params":["\ud800"]}`, sentinel: ErrSyntax, code: CodeParseError},
		{name: "invalid UTF-8", input: "{\"jsonrpc\":\"2.0\",\"id\":\"1\",\"method\":\"m\",\"params\":[\"\xff\"]}", sentinel: ErrSyntax, code: CodeParseError},
		{name: "duplicate params", input: `{"jsonrpc":"2.0","id":"1","method":"m","params":5,"params":[]}`, sentinel: ErrDuplicateField, field: "params", code: CodeInvalidRequest},
		{name: "duplicate id", input: `{"id":"1","jsonrpc":"2.0","id":"2","method":"m","params":[]}`, sentinel: ErrDuplicateField, field: "id", code: CodeInvalidRequest},
		{name: "duplicate escaped name", input: `{"jsonrpc":"2.0","id":"1","method":"m","\u006dethod":"n","params":[]}`, sentinel: ErrDuplicateField, field: "method", code: CodeInvalidRequest},
		{name: "field names are case-sensitive", input: `{"jsonrpc":"2.0","ID":"1","method":"m","params":[]}`, sentinel: ErrMissingField, field: "id", code: CodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := DecodeString(tt.input)
			require.Error(t, err)
			assert.Nil(t, msg)
			assert.ErrorIs(t, err, tt.sentinel)

			var de *DecodeError
			require.True(t, errors.As(err, &de), "expected *DecodeError, got %T", err)
			assert.Equal(t, tt.field, de.Field)
			assert.Equal(t, tt.code, de.Code())
			assert.NotNil(t, errors.Unwrap(err), "diagnostic must be kept")
		})
	}
}

func TestNew(t *testing.T) {
	kw := New("abc", true)
	assert.Equal(t, "2.0", kw.JSONRPC())
	assert.Equal(t, "abc", kw.ID())
	assert.Equal(t, DefaultMethod, kw.Method())
	assert.Equal(t, ParamsObject, kw.Params().Kind())
	assert.Equal(t, 0, kw.Params().Len())

	pos := New("abc", false)
	assert.Equal(t, ParamsArray, pos.Params().Kind())
	assert.Equal(t, 0, pos.Params().Len())
}

func TestSetParam_Keyword(t *testing.T) {
	msg := New("abc", true)
	require.NoError(t, msg.SetParam("k", "42"))

	args, kwargs := msg.Args()
	assert.Empty(t, args)
	assert.Equal(t, map[string]dynamic.Value{"k": dynamic.Int(42)}, kwargs)
	assert.Equal(t, dynamic.KindInt, kwargs["k"].Kind(), "integer must not become a float")
}

func TestSetParam_KeywordOverwrite(t *testing.T) {
	msg := New("abc", true)
	require.NoError(t, msg.SetParam("k", "1"))
	require.NoError(t, msg.SetParam("other", `"x"`))
	require.NoError(t, msg.SetParam("k", "1.5"))

	_, kwargs := msg.Args()
	assert.Equal(t, map[string]dynamic.Value{
		"k":     dynamic.Float(1.5),
		"other": dynamic.String("x"),
	}, kwargs)
}

func TestSetParam_PositionalIgnoresName(t *testing.T) {
	msg := New("abc", false)
	require.NoError(t, msg.SetParam("ignored", `"v"`))

	args, kwargs := msg.Args()
	assert.Equal(t, []dynamic.Value{dynamic.String("v")}, args)
	assert.Empty(t, kwargs)
}

func TestSetParam_StringTransition(t *testing.T) {
	msg, err := DecodeString(`{"jsonrpc":"2.0","id":"1","method":"m","params":"s"}`)
	require.NoError(t, err)
	require.Equal(t, ParamsString, msg.Params().Kind())

	require.NoError(t, msg.SetParam("n", "1"))
	assert.Equal(t, ParamsArray, msg.Params().Kind())
	args, kwargs := msg.Args()
	assert.Equal(t, []dynamic.Value{dynamic.String("s"), dynamic.Int(1)}, args)
	assert.Empty(t, kwargs)

	require.NoError(t, msg.SetParam("n", "2"))
	args, _ = msg.Args()
	assert.Equal(t, []dynamic.Value{dynamic.String("s"), dynamic.Int(1), dynamic.Int(2)}, args)
}

func TestSetParam_InvalidLeavesParamsUnchanged(t *testing.T) {
	inputs := []string{"{", "", "1 2", "nope", `{"a":}`, `"\ud800"`, "\"\xff\""}

	for _, build := range []struct {
		name string
		msg  func(t *testing.T) *Message
	}{
		{"keyword", func(t *testing.T) *Message {
			m := New("abc", true)
			require.NoError(t, m.SetParam("a", "1"))
			return m
		}},
		{"positional", func(t *testing.T) *Message {
			m := New("abc", false)
			require.NoError(t, m.SetParam("", "1"))
			return m
		}},
		{"string", func(t *testing.T) *Message {
			m, err := DecodeString(`{"jsonrpc":"2.0","id":"1","method":"m","params":"s"}`)
			require.NoError(t, err)
			return m
		}},
	} {
		for _, raw := range inputs {
			t.Run(build.name+"/"+raw, func(t *testing.T) {
				msg := build.msg(t)
				beforeArgs, beforeKwargs := msg.Args()
				beforeKind := msg.Params().Kind()

				err := msg.SetParam("a", raw)
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrSyntax)

				var de *DecodeError
				require.ErrorAs(t, err, &de)
				assert.Equal(t, "a", de.Field)
				assert.Equal(t, CodeInvalidParams, de.Code())

				afterArgs, afterKwargs := msg.Args()
				assert.Equal(t, beforeKind, msg.Params().Kind())
				assert.Equal(t, beforeArgs, afterArgs)
				assert.Equal(t, beforeKwargs, afterKwargs)
			})
		}
	}
}

func TestParamsAccessorDoesNotAlias(t *testing.T) {
	msg := New("abc", true)
	require.NoError(t, msg.SetParam("a", "1"))

	snapshot := msg.Params()
	require.NoError(t, msg.SetParam("b", "2"))

	assert.Equal(t, 1, snapshot.Len(), "earlier Params must not see later mutation")
	assert.Equal(t, 2, msg.Params().Len())
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "positional",
			input:    `{"jsonrpc":"2.0","id":"1","method":"add","params":[1,2.0]}`,
			expected: `Message{jsonrpc: "2.0", id: "1", method: "add", args: [1, 2.0], kwargs: {}}`,
		},
		{
			name:     "keyword sorted",
			input:    `{"jsonrpc":"2.0","id":"x","method":"f","params":{"b":"two","a":null}}`,
			expected: `Message{jsonrpc: "2.0", id: "x", method: "f", args: [], kwargs: {"a": null, "b": "two"}}`,
		},
		{
			name:     "scalar",
			input:    `{"jsonrpc":"2.0","id":"s","method":"echo","params":"hi"}`,
			expected: `Message{jsonrpc: "2.0", id: "s", method: "echo", args: ["hi"], kwargs: {}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := DecodeString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, msg.String())
		})
	}
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	inputs := []string{
		`{"jsonrpc":"2.0","id":"1","method":"add","params":[1,2.0,1e3,"<tag>"]}`,
		`{"jsonrpc":"2.0","id":"2","method":"kw","params":{"a":{"b":[null,false]},"n":-7}}`,
		`{"jsonrpc":"2.0","id":"3","method":"echo","params":"scalar"}`,
		`{"jsonrpc":"2.0","id":"4","method":"none","params":[]}`,
		`{"jsonrpc":"2.0","id":"5","method":"none","params":{}}`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			msg, err := DecodeString(input)
			require.NoError(t, err)

			data, err := json.Marshal(msg)
			require.NoError(t, err)
			assert.JSONEq(t, input, string(data))

			again, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, msg, again)
		})
	}
}

func TestMarshalJSON_KeepsNumberLiterals(t *testing.T) {
	msg := New("abc", false)
	require.NoError(t, msg.SetParam("", "2.0"))
	require.NoError(t, msg.SetParam("", "2"))

	data, err := msg.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"jsonrpc":"2.0","id":"abc","method":"method","params":[2.0,2]}`, string(data))
}

func TestMarshalJSON_NoHTMLEscaping(t *testing.T) {
	msg := New("<id>", true)
	require.NoError(t, msg.SetParam("k", `"<a&b>"`))

	data, err := msg.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"jsonrpc":"2.0","id":"<id>","method":"method","params":{"k":"<a&b>"}}`, string(data))
}

func TestNewRequest(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		args   []dynamic.Value
		kwargs map[string]dynamic.Value
	}{
		{
			name:   "string",
			params: StringParams("s"),
			args:   []dynamic.Value{dynamic.String("s")},
			kwargs: map[string]dynamic.Value{},
		},
		{
			name:   "array",
			params: ArrayParams(jsonvalue.Int(1), jsonvalue.Float(2)),
			args:   []dynamic.Value{dynamic.Int(1), dynamic.Float(2)},
			kwargs: map[string]dynamic.Value{},
		},
		{
			name:   "object",
			params: ObjectParams(map[string]jsonvalue.Value{"a": jsonvalue.Bool(true)}),
			args:   []dynamic.Value{},
			kwargs: map[string]dynamic.Value{"a": dynamic.Bool(true)},
		},
		{
			name:   "zero params",
			args:   []dynamic.Value{},
			kwargs: map[string]dynamic.Value{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewRequest("7", "call", tt.params)
			assert.Equal(t, "2.0", msg.JSONRPC())
			assert.Equal(t, "7", msg.ID())
			assert.Equal(t, "call", msg.Method())
			assert.Equal(t, tt.params.Kind(), msg.Params().Kind())

			args, kwargs := msg.Args()
			assert.Equal(t, tt.args, args)
			assert.Equal(t, tt.kwargs, kwargs)
		})
	}
}

func TestNewRequest_StringPromotes(t *testing.T) {
	msg := NewRequest("1", "echo", StringParams("s"))
	require.NoError(t, msg.SetParam("ignored", "3"))

	assert.Equal(t, ParamsArray, msg.Params().Kind())
	args, _ := msg.Args()
	assert.Equal(t, []dynamic.Value{dynamic.String("s"), dynamic.Int(3)}, args)
	assert.Equal(t, `Message{jsonrpc: "2.0", id: "1", method: "echo", args: ["s", 3], kwargs: {}}`, msg.String())
}

func TestNewRequest_DoesNotAlias(t *testing.T) {
	params := ObjectParams(map[string]jsonvalue.Value{"a": jsonvalue.Int(1)})
	msg := NewRequest("1", "m", params)
	require.NoError(t, msg.SetParam("b", "2"))

	assert.Equal(t, 1, params.Len(), "caller params must not see later changes")
	assert.Equal(t, 2, msg.Params().Len())
}

func TestUnmarshalJSON(t *testing.T) {
	var holder struct {
		Message Message `json:"message"`
	}
	err := json.Unmarshal([]byte(`{"message":{"jsonrpc":"2.0","id":"1","method":"m","params":{"k":1}}}`), &holder)
	require.NoError(t, err)
	assert.Equal(t, "m", holder.Message.Method())

	_, kwargs := holder.Message.Args()
	assert.Equal(t, dynamic.Int(1), kwargs["k"])

	var bad Message
	err = json.Unmarshal([]byte(`{"jsonrpc":"2.0","id":"1","method":"m"}`), &bad)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Equal(t, Message{}, bad, "failed decode must not modify the message")
}
