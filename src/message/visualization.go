// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package message

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTable renders the materialized arguments as a markdown table.
//
// Positional arguments are listed by index, keyword arguments by name in
// sorted order. Each row shows the argument's dynamic kind and value.
//
// Returns:
//   - string: Markdown table, or a short note when there are no arguments
func (m *Message) RenderTable() string {
	args, kwargs := m.Args()
	if len(args) == 0 && len(kwargs) == 0 {
		return "No parameters"
	}

	var rows [][]string
	for i, arg := range args {
		rows = append(rows, []string{strconv.Itoa(i), arg.Kind().String(), escapeCell(arg.String())})
	}
	for _, name := range slices.Sorted(maps.Keys(kwargs)) {
		arg := kwargs[name]
		rows = append(rows, []string{escapeCell(name), arg.Kind().String(), escapeCell(arg.String())})
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Argument", "Kind", "Value"})
	table.Bulk(rows)
	table.Render()

	return buf.String()
}

// escapeCell keeps a pipe inside cell text from ending the markdown cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
