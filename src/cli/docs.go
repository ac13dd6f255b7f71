// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for fastcall.
// It implements a Cobra-based CLI with three commands: decode renders a
// message read from a file or stdin, new builds a message from parameters
// given as raw JSON, and validate reports every schema violation of a
// message. Output can be plain text, JSON or a markdown table.
package cli
