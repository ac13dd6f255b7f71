// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/fastcall/src/config"
	"github.com/H0llyW00dzZ/fastcall/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/fastcall/src/message"
	"github.com/spf13/cobra"
)

// readInput reads the named file, or the command's stdin when no file or "-"
// is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if err := cmd.Context().Err(); err != nil {
		return nil, err
	}

	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("cli: error opening input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("cli: error reading input: %w", err)
	}
	return gc.Copy(buf), nil
}

// writeMessage writes msg to w in the given output format.
func writeMessage(w io.Writer, msg *message.Message, format string) error {
	switch format {
	case config.FormatJSON:
		data, err := msg.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cli: error encoding message: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case config.FormatTable:
		_, err := fmt.Fprintf(w, "%s %q (id %q, %s params)\n\n%s\n",
			msg.JSONRPC(), msg.Method(), msg.ID(), msg.Params().Kind(), msg.RenderTable())
		return err
	default:
		_, err := fmt.Fprintln(w, msg.String())
		return err
	}
}
