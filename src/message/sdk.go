// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package message

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
)

// Request converts m into a request of the [MCP Go SDK] so it can be handed
// to a dispatcher built on that SDK. The conversion goes through the wire
// form, so the SDK's own version check applies.
//
// [MCP Go SDK]: https://github.com/modelcontextprotocol/go-sdk
func (m *Message) Request() (*jsonrpc.Request, error) {
	data, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}

	msg, err := jsonrpc.DecodeMessage(data)
	if err != nil {
		return nil, fmt.Errorf("message: convert to SDK request: %w", err)
	}

	req, ok := msg.(*jsonrpc.Request)
	if !ok {
		return nil, fmt.Errorf("message: convert to SDK request: got %T", msg)
	}
	return req, nil
}

// FromRequest builds a message from an [MCP Go SDK] request. The request must
// satisfy the same rules as [Decode]: a string id and params present.
//
// [MCP Go SDK]: https://github.com/modelcontextprotocol/go-sdk
func FromRequest(req *jsonrpc.Request) (*Message, error) {
	data, err := jsonrpc.EncodeMessage(req)
	if err != nil {
		return nil, fmt.Errorf("message: encode SDK request: %w", err)
	}
	return Decode(data)
}
