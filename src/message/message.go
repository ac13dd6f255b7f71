// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package message

import (
	"strconv"

	"github.com/H0llyW00dzZ/fastcall/src/dynamic"
	"github.com/H0llyW00dzZ/fastcall/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/fastcall/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/fastcall/src/jsonvalue"
	"github.com/mark3labs/mcp-go/mcp"
)

// DefaultMethod is the method name given to messages built with [New].
// Callers are expected to treat such a message as a template.
const DefaultMethod = "method"

// envelopeFields are the members every message carries.
var envelopeFields = []string{"jsonrpc", "id", "method", "params"}

// Message is a decoded JSON-RPC style request.
//
// The version, id and method are fixed once the message exists; only the
// parameters change, through [Message.SetParam].
type Message struct {
	jsonrpc string
	id      string
	method  string
	params  Params
}

// New returns a message with the given id, version "2.0", method
// [DefaultMethod] and empty parameters: keyword parameters when keyword is
// true, positional parameters otherwise.
func New(id string, keyword bool) *Message {
	params := ArrayParams()
	if keyword {
		params = ObjectParams(nil)
	}
	return &Message{
		jsonrpc: mcp.JSONRPC_VERSION,
		id:      id,
		method:  DefaultMethod,
		params:  params,
	}
}

// NewRequest returns a message with version "2.0" and a copy of params. It is
// the only way besides [Decode] to build a message with scalar string params.
func NewRequest(id, method string, params Params) *Message {
	return &Message{
		jsonrpc: mcp.JSONRPC_VERSION,
		id:      id,
		method:  method,
		params:  params.clone(),
	}
}

// Decode decodes a message from JSON text.
//
// The text must be one JSON object with string members "jsonrpc", "id" and
// "method" and a "params" member that is a string, array or object. Member
// names are case-sensitive, each may appear only once, and unknown members are
// ignored. Text that is not valid UTF-8 or holds an unpaired surrogate escape
// is rejected rather than repaired. On failure the
// returned error is a [*DecodeError] and no message is produced.
func Decode(data []byte) (*Message, error) {
	v, err := jsonvalue.Parse(data)
	if err != nil {
		return nil, syntaxError(err)
	}
	if v.Kind() == jsonvalue.KindObject {
		if name, dup := jsonrpc.DuplicateKey(data, envelopeFields...); dup {
			return nil, fieldError(name, ErrDuplicateField, name)
		}
	}
	return fromValue(v)
}

// DecodeString is like [Decode] but takes a string.
func DecodeString(text string) (*Message, error) {
	return Decode([]byte(text))
}

func fromValue(v jsonvalue.Value) (*Message, error) {
	if v.Kind() != jsonvalue.KindObject {
		return nil, &DecodeError{err: wrapKind(ErrNotObject, v.Kind())}
	}
	members := v.Entries()

	m := &Message{}
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"jsonrpc", &m.jsonrpc},
		{"id", &m.id},
		{"method", &m.method},
	} {
		member, ok := members[f.name]
		if !ok {
			return nil, fieldError(f.name, ErrMissingField, f.name)
		}
		if member.Kind() != jsonvalue.KindString {
			return nil, fieldError(f.name, ErrFieldType, "got "+member.Kind().String())
		}
		*f.dst = member.Text()
	}

	member, ok := members["params"]
	if !ok {
		return nil, fieldError("params", ErrMissingField, "params")
	}
	params, ok := paramsFrom(member)
	if !ok {
		return nil, fieldError("params", ErrParamsShape, "got "+member.Kind().String())
	}
	m.params = params

	return m, nil
}

// JSONRPC returns the protocol version string.
func (m *Message) JSONRPC() string { return m.jsonrpc }

// ID returns the request identifier.
func (m *Message) ID() string { return m.id }

// Method returns the method name.
func (m *Message) Method() string { return m.method }

// Params returns a copy of the parameters.
func (m *Message) Params() Params { return m.params.clone() }

// SetParam parses raw as a single JSON value and adds it to the parameters.
//
// With keyword parameters the value is stored under name, replacing any
// earlier value. With positional parameters it is appended and name is not
// used. With a scalar string parameter the parameters become positional,
// holding the scalar followed by the value; later calls then append.
//
// If raw is not valid JSON a [*DecodeError] is returned and the parameters
// are left unchanged.
func (m *Message) SetParam(name, raw string) error {
	v, err := jsonvalue.Parse([]byte(raw))
	if err != nil {
		return paramError(name, err)
	}
	m.params = m.params.with(name, v)
	return nil
}

// Args returns the parameters as call arguments: a positional list and a
// keyword map. Both are always non-nil; which one is filled depends on the
// shape of the parameters.
func (m *Message) Args() (args []dynamic.Value, kwargs map[string]dynamic.Value) {
	return m.params.materialize()
}

// String renders the message for diagnostics, for example:
//
//	Message{jsonrpc: "2.0", id: "1", method: "add", args: [1, 2], kwargs: {}}
//
// It is not a wire format.
func (m *Message) String() string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	args, kwargs := m.Args()

	buf.WriteString("Message{jsonrpc: ")
	buf.WriteString(strconv.Quote(m.jsonrpc))
	buf.WriteString(", id: ")
	buf.WriteString(strconv.Quote(m.id))
	buf.WriteString(", method: ")
	buf.WriteString(strconv.Quote(m.method))
	buf.WriteString(", args: ")
	dynamic.WriteList(buf, args)
	buf.WriteString(", kwargs: ")
	dynamic.WriteMap(buf, kwargs)
	buf.WriteByte('}')

	return buf.String()
}

// wire is the encoded layout of a message.
type wire struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  Params `json:"params"`
}

// MarshalJSON implements [json.Marshaler]. Parameters are written in their
// active shape, number literals are kept as decoded and strings are not
// HTML-escaped, so decoding the output yields an equal message.
func (m *Message) MarshalJSON() ([]byte, error) {
	return jsonrpc.Marshal(wire{
		JSONRPC: m.jsonrpc,
		ID:      m.id,
		Method:  m.method,
		Params:  m.params,
	})
}

// UnmarshalJSON implements [json.Unmarshaler] with the rules of [Decode].
// m is only modified when decoding succeeds.
func (m *Message) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}
