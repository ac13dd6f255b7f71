// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package message

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// EnvelopeSchema is the JSON Schema a message must satisfy.
const EnvelopeSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "fastcall message",
	"type": "object",
	"required": ["jsonrpc", "id", "method", "params"],
	"properties": {
		"jsonrpc": {"type": "string"},
		"id": {"type": "string"},
		"method": {"type": "string"},
		"params": {"type": ["string", "array", "object"]}
	}
}`

var envelopeSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(EnvelopeSchema))
})

// Validate checks data against [EnvelopeSchema] without building a message.
//
// Where [Decode] stops at the first problem, Validate reports all of them in
// [DecodeError.Details]. It returns nil exactly for data that [Decode]
// accepts; a problem the schema cannot express, such as a repeated member, is
// returned as the [Decode] error.
func Validate(data []byte) error {
	schema, err := envelopeSchema()
	if err != nil {
		return fmt.Errorf("message: compile envelope schema: %w", err)
	}

	// gojsonschema decodes with its own loader; check the text strictly first
	// so malformed text is rejected the same way Decode rejects it.
	_, decodeErr := Decode(data)
	if decodeErr != nil {
		var de *DecodeError
		if errors.As(decodeErr, &de) && de.Code() == CodeParseError {
			return decodeErr
		}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return syntaxError(err)
	}
	if result.Valid() {
		return decodeErr
	}

	details := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		details = append(details, re.String())
	}
	return &DecodeError{
		Details: details,
		err:     fmt.Errorf("%w: %s", ErrSchema, strings.Join(details, "; ")),
	}
}
