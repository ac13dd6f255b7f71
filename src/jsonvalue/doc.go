// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonvalue provides Value, an explicitly tagged representation of a
// decoded JSON value. Numbers keep their literal text, so whether a parameter
// was sent as 42 or 42.0 is still known when it is converted for a caller.
package jsonvalue
