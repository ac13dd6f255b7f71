// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/fastcall/src/config"
	"github.com/H0llyW00dzZ/fastcall/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/fastcall/src/logger"
	"github.com/spf13/cobra"
)

var (
	// ErrInvalidFormat indicates an unknown --format value.
	ErrInvalidFormat = errors.New("cli: unknown output format")

	// ErrInvalidParam indicates a keyword --param without a name.
	ErrInvalidParam = errors.New("cli: keyword parameter must be NAME=RAW")

	// ErrInvalidMessage indicates that validate found problems.
	ErrInvalidMessage = errors.New("cli: message is not valid")
)

// options is the state shared by the commands of one invocation.
type options struct {
	configPath string
	config     *config.Config
	log        logger.Logger
}

// NewRootCommand builds the fastcall command tree. log receives diagnostics;
// when the configuration selects JSON logging it is replaced by a JSON logger
// on the command's error stream.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	opts := &options{log: log}

	rootCmd := &cobra.Command{
		Use:           posix.CommandName(os.Args),
		Short:         "Decode JSON-RPC style messages into call arguments",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.config = cfg

			if cfg.Log.Format == config.LogFormatJSON {
				opts.log = logger.NewJSONLogger(cmd.ErrOrStderr(), cfg.Log.Silent)
			} else if opts.log == nil {
				opts.log = logger.New(cfg.Log.Format, cmd.ErrOrStderr(), cfg.Log.Silent)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"config file (.json, .yaml, .yml, .json5; default: $"+config.EnvConfigFile+")")

	rootCmd.AddCommand(
		newDecodeCommand(opts),
		newNewCommand(opts),
		newValidateCommand(opts),
	)

	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// resolveFormat returns the --format flag when set, else the configured default.
func resolveFormat(cmd *cobra.Command, flag string, opts *options) (string, error) {
	format := opts.config.Defaults.Format
	if cmd.Flags().Changed("format") {
		format = flag
	}
	if !config.ValidFormat(format) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	return format, nil
}
