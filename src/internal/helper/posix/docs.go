// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers that behave the same on every
// operating system.
//
// Key functions:
//   - CommandName: the program name from argv, used as the CLI usage name
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
