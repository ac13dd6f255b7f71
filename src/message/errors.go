// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package message

import (
	"errors"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/fastcall/src/jsonvalue"
	"github.com/mark3labs/mcp-go/mcp"
)

var (
	// ErrSyntax indicates that the input is not exactly one valid JSON value.
	ErrSyntax = errors.New("message: invalid JSON")

	// ErrNotObject indicates that a message is not a JSON object.
	ErrNotObject = errors.New("message: not a JSON object")

	// ErrMissingField indicates that a required member is absent.
	ErrMissingField = errors.New("message: missing required field")

	// ErrFieldType indicates that jsonrpc, id or method is not a JSON string.
	ErrFieldType = errors.New("message: field must be a string")

	// ErrDuplicateField indicates that jsonrpc, id, method or params appears
	// more than once.
	ErrDuplicateField = errors.New("message: duplicate field")

	// ErrParamsShape indicates that params is not a string, array or object.
	ErrParamsShape = errors.New("message: params must be a string, array or object")

	// ErrSchema indicates that a message failed envelope schema validation.
	ErrSchema = errors.New("message: schema validation failed")
)

// Standard [JSON-RPC 2.0] error codes reported by [DecodeError.Code].
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification#error_object
const (
	CodeParseError     = mcp.PARSE_ERROR
	CodeInvalidRequest = mcp.INVALID_REQUEST
	CodeInvalidParams  = mcp.INVALID_PARAMS
)

// DecodeError reports malformed or shape-mismatched JSON text.
//
// It is the only error kind returned by this package. The underlying
// diagnostic is available through [errors.Unwrap], and the sentinel errors
// above can be matched with [errors.Is].
type DecodeError struct {
	// Field names the member or parameter being decoded, if any.
	Field string
	// Details lists every problem found by [Validate].
	Details []string

	param bool
	err   error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("message: failed to decode ")
	switch {
	case e.param:
		fmt.Fprintf(&b, "parameter %q", e.Field)
	case e.Field != "":
		fmt.Fprintf(&b, "field %q", e.Field)
	default:
		b.WriteString("JSON")
	}
	b.WriteString(": ")
	b.WriteString(e.err.Error())
	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.err }

// Code returns the JSON-RPC error code a server would answer with:
// [CodeParseError] for invalid JSON text, [CodeInvalidParams] for a
// parameter value rejected by [Message.SetParam], and [CodeInvalidRequest]
// for a message with the wrong shape.
func (e *DecodeError) Code() int {
	switch {
	case errors.Is(e.err, ErrSyntax) && !e.param:
		return CodeParseError
	case e.param:
		return CodeInvalidParams
	default:
		return CodeInvalidRequest
	}
}

// syntaxError wraps a parser diagnostic.
func syntaxError(err error) *DecodeError {
	return &DecodeError{err: fmt.Errorf("%w: %w", ErrSyntax, err)}
}

// fieldError reports a problem with one envelope member.
func fieldError(field string, sentinel error, detail string) *DecodeError {
	return &DecodeError{Field: field, err: fmt.Errorf("%w: %s", sentinel, detail)}
}

// paramError reports a SetParam value that is not valid JSON.
func paramError(name string, err error) *DecodeError {
	return &DecodeError{Field: name, param: true, err: fmt.Errorf("%w: %w", ErrSyntax, err)}
}

// wrapKind attaches the offending JSON kind to a sentinel.
func wrapKind(sentinel error, kind jsonvalue.Kind) error {
	return fmt.Errorf("%w: got %s", sentinel, kind)
}
