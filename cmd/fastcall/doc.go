// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// fastcall is a command-line tool for decoding JSON-RPC style request
// messages into the positional and keyword arguments of a call.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/fastcall/cmd/fastcall@latest
//
// # Usage
//
//	fastcall decode [FILE|-] [--format text|json|table] [--validate]
//	fastcall new [--id ID] [--positional] [--param NAME=RAW ...] [--format ...]
//	fastcall validate [FILE|-]
//
// # Global Flags
//
//	-c, --config   Config file (.json, .yaml, .yml, .json5)
//	    --version  Print the version
//
// # Environment
//
//	FASTCALL_CONFIG_FILE  Config file used when --config is not given
//	FASTCALL_FORMAT       Default output format (text, json, table)
//	FASTCALL_LOG_FORMAT   Log format on stderr (cli, json)
//
// # Examples
//
// Decode a request from stdin:
//
//	echo '{"jsonrpc":"2.0","id":"1","method":"add","params":[1,2.0]}' | fastcall decode
//
// Show keyword arguments as a markdown table:
//
//	fastcall decode request.json --format table
//
// Build a request with keyword parameters:
//
//	fastcall new --id 1 --param a=1 --param b='"two"' --format json
//
// List every problem of a malformed request:
//
//	fastcall validate broken.json
package main
