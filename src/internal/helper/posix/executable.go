// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"strings"
)

// DefaultCommandName is returned when argv carries no program name.
const DefaultCommandName = "fastcall"

// CommandName returns the program name from argv without directories or a
// trailing ".exe".
//
// Both '/' and '\' separate path components, so a Windows path yields the
// same name on every system:
//   - "/usr/local/bin/fastcall" -> "fastcall"
//   - "C:\bin\fastcall.exe" -> "fastcall"
//   - empty argv or "" -> [DefaultCommandName]
func CommandName(argv []string) string {
	if len(argv) == 0 {
		return DefaultCommandName
	}

	parts := strings.FieldsFunc(argv[0], func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return DefaultCommandName
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" {
		return DefaultCommandName
	}
	return name
}
