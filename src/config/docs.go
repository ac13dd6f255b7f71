// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads settings for the fastcall command-line tool from a
// JSON, YAML or JSON5 file and the environment.
package config
