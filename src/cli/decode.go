// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/H0llyW00dzZ/fastcall/src/message"
	"github.com/spf13/cobra"
)

func newDecodeCommand(opts *options) *cobra.Command {
	var (
		format   string
		validate bool
	)

	cmd := &cobra.Command{
		Use:   "decode [FILE|-]",
		Short: "Decode a message and show its call arguments",
		Long: `Decode reads one JSON-RPC style message from FILE, or stdin when FILE is
omitted or "-", and prints its positional and keyword arguments.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(cmd, format, opts)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("validate") {
				validate = opts.config.Defaults.Validate
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if validate {
				if err := message.Validate(data); err != nil {
					return fmt.Errorf("cli: %w", err)
				}
			}

			msg, err := message.Decode(data)
			if err != nil {
				return fmt.Errorf("cli: %w", err)
			}
			opts.log.Printf("decoded message id=%q method=%q params=%s", msg.ID(), msg.Method(), msg.Params().Kind())

			return writeMessage(cmd.OutOrStdout(), msg, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json or table (default from config)")
	cmd.Flags().BoolVar(&validate, "validate", false, "check the message against the envelope schema first")

	return cmd
}
