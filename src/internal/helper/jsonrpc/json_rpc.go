// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/fastcall/src/internal/helper/gc"
)

var (
	// ErrTrailingData is returned by [Unmarshal] when input continues after the
	// first complete JSON value.
	ErrTrailingData = errors.New("jsonrpc: invalid character after top-level value")

	// ErrInvalidUTF8 is returned by [Unmarshal] for input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("jsonrpc: invalid UTF-8 in input")

	// ErrLoneSurrogate is returned by [Unmarshal] for a \u escape naming half of
	// a UTF-16 surrogate pair without the other half.
	ErrLoneSurrogate = errors.New("jsonrpc: lone surrogate in \\u escape")
)

// Unmarshal decodes exactly one JSON value from data into v.
//
// Unlike [json.Unmarshal], numbers decoded into an interface value are kept as
// [json.Number] so their literal form survives. Leading and trailing whitespace
// is allowed; any other trailing input is an error.
//
// Parameters:
//   - data: Raw JSON text
//   - v: Destination, as for json.Unmarshal
//
// Input that [encoding/json] would repair with U+FFFD is rejected instead:
// invalid UTF-8 bytes and unpaired surrogate escapes.
//
// Returns:
//   - error: Syntax error, [io.ErrUnexpectedEOF] for empty input, [ErrTrailingData],
//     [ErrInvalidUTF8] or [ErrLoneSurrogate]
func Unmarshal(data []byte, v any) error {
	if err := checkText(data); err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTrailingData, err)
		}
		return ErrTrailingData
	}

	return nil
}

// Integer reports whether the number literal n is an exact integer that fits
// in int64, returning its value if so.
//
// A literal with a fraction or an exponent is never an integer, even when its
// value is whole ("1.0", "1e2"). Integer literals outside the int64 range are
// not integers either; callers treat them as floating-point.
//
// Parameters:
//   - n: A valid JSON number literal
//
// Returns:
//   - int64: The integer value when ok is true
//   - bool: Whether n is an int64 integer literal
func Integer(n json.Number) (int64, bool) {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		return 0, false
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Float returns the floating-point value of the number literal n.
//
// Literals beyond the float64 range saturate to ±Inf, matching
// [strconv.ParseFloat]; the range error is dropped so conversion stays total.
func Float(n json.Number) float64 {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f
		}
		return 0
	}
	return f
}

// checkText rejects input that would not decode losslessly.
func checkText(data []byte) error {
	if !utf8.Valid(data) {
		return ErrInvalidUTF8
	}

	// A backslash only occurs inside strings in valid JSON; anything else is
	// left to the decoder to report.
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			continue
		}
		i++
		if i >= len(data) || data[i] != 'u' {
			continue
		}
		r, ok := hexRune(data, i+1)
		if !ok {
			continue
		}
		start := i - 1
		i += 4

		switch {
		case !utf16.IsSurrogate(r):
		case r < 0xDC00:
			if i+6 < len(data) && data[i+1] == '\\' && data[i+2] == 'u' {
				if low, ok := hexRune(data, i+3); ok && low >= 0xDC00 && low <= 0xDFFF {
					i += 6
					continue
				}
			}
			return fmt.Errorf("%w at offset %d", ErrLoneSurrogate, start)
		default:
			return fmt.Errorf("%w at offset %d", ErrLoneSurrogate, start)
		}
	}
	return nil
}

// hexRune reads four hex digits at data[at:].
func hexRune(data []byte, at int) (rune, bool) {
	if at+4 > len(data) {
		return 0, false
	}
	n, err := strconv.ParseUint(string(data[at:at+4]), 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}

// DuplicateKey reports the first member name that occurs twice in the
// top-level JSON object in data. When keys are given only those names are
// checked. Names are compared after unescaping, as [json.Unmarshal] does.
//
// Parameters:
//   - data: Raw JSON text, already known to be a valid object
//   - keys: Member names to check (optional)
//
// Returns:
//   - string: The repeated name
//   - bool: Whether a repeated name was found
func DuplicateKey(data []byte, keys ...string) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return "", false
	}

	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return "", false
		}
		key, ok := tok.(string)
		if !ok {
			return "", false
		}

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return "", false
		}

		if len(keys) > 0 && !slices.Contains(keys, key) {
			continue
		}
		if seen[key] {
			return key, true
		}
		seen[key] = true
	}
	return "", false
}

// Marshal encodes v like [json.Marshal] but leaves '<', '>' and '&' unescaped,
// so string values are written as they were read.
func Marshal(v any) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	// Encode terminates with a newline.
	data := gc.Copy(buf)
	return data[:len(data)-1], nil
}
