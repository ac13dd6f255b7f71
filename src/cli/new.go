// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/fastcall/src/message"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newNewCommand(opts *options) *cobra.Command {
	var (
		id         string
		format     string
		positional bool
		params     []string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Build a message from raw JSON parameters",
		Long: `New builds an empty message and adds each --param in order.

With keyword params (the default) every --param is NAME=RAW. With --positional
every --param is RAW and is appended.`,
		Example: `  fastcall new --id 1 --param a=1 --param b='"two"'
  fastcall new --positional --param 1 --param 2.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(cmd, format, opts)
			if err != nil {
				return err
			}

			keyword := opts.config.Defaults.Keyword
			if cmd.Flags().Changed("positional") {
				keyword = !positional
			}
			if id == "" {
				id = uuid.NewString()
			}

			msg := message.New(id, keyword)
			for _, param := range params {
				name, raw := "", param
				if keyword {
					var ok bool
					name, raw, ok = strings.Cut(param, "=")
					if !ok || name == "" {
						return fmt.Errorf("%w: %q", ErrInvalidParam, param)
					}
				}
				if err := msg.SetParam(name, raw); err != nil {
					return fmt.Errorf("cli: %w", err)
				}
			}
			opts.log.Printf("built message id=%q with %d params", msg.ID(), msg.Params().Len())

			return writeMessage(cmd.OutOrStdout(), msg, format)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "message id (default: random UUID)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json or table (default from config)")
	cmd.Flags().BoolVarP(&positional, "positional", "p", false, "build positional params instead of keyword params")
	cmd.Flags().StringArrayVar(&params, "param", nil, "parameter as NAME=RAW, or RAW with --positional (repeatable)")

	return cmd
}
