// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/fastcall/src/message"
	"github.com/spf13/cobra"
)

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE|-]",
		Short: "Report every schema violation of a message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			err = message.Validate(data)
			if err == nil {
				fmt.Fprintln(out, "valid")
				return nil
			}

			var de *message.DecodeError
			if errors.As(err, &de) && len(de.Details) > 0 {
				for _, detail := range de.Details {
					fmt.Fprintf(out, "- %s\n", detail)
				}
				opts.log.Printf("validation found %d problems", len(de.Details))
				return fmt.Errorf("%w: %d problems", ErrInvalidMessage, len(de.Details))
			}
			return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
		},
	}
}
