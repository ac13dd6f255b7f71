// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package message models a single decoded [JSON-RPC 2.0] style request and
// exposes its parameters the way a dynamic-language call expects them: a
// positional argument list and a keyword argument map.
//
// A [Message] is decoded from text with [Decode] or built with [New]. Its
// parameters are a [Params] value holding exactly one of three shapes, chosen
// by the wire form of the "params" member:
//
//   - a JSON string, treated as a single positional argument
//   - a JSON array of positional arguments
//   - a JSON object of keyword arguments
//
// [Message.SetParam] adds a parameter from raw JSON text and [Message.Args]
// converts the parameters into [dynamic.Value] form for a call site.
//
// A Message is not safe for concurrent mutation; it is owned by one caller at a time.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
// [dynamic.Value]: https://pkg.go.dev/github.com/H0llyW00dzZ/fastcall/src/dynamic#Value
package message
