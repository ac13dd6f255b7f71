// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package dynamic provides Value, the generic runtime value handed to a
// dynamic-language call site, and Convert, which maps a [jsonvalue.Value]
// onto it.
//
// Conversion keeps integers and floats apart: an integer literal that fits in
// int64 becomes [KindInt], every other number becomes [KindFloat]. The
// conversion is total and has no side effects.
//
// [jsonvalue.Value]: https://pkg.go.dev/github.com/H0llyW00dzZ/fastcall/src/jsonvalue#Value
package dynamic
