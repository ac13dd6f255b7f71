// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc provides helper functions for reading [JSON-RPC 2.0] payloads.
// It includes strict single-value decoding (numbers kept as [encoding/json.Number],
// trailing data, invalid UTF-8 and unpaired surrogate escapes rejected),
// duplicate member detection, non-escaping encoding, and classification of number literals into integer and
// floating-point forms, which the value converter relies on to keep integers
// from silently turning into floats.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package jsonrpc
