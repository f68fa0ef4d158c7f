package main

import (
	"context"
	"io"
	"time"

	"github.com/metalagman/genbridge"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	timeout time.Duration
	debug   bool
	envFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "genbridge",
		Short:         "Bridge one JSON request on stdin to the Gemini generateContent API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBridge(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.Flags().DurationVar(&opts.timeout, "timeout", 0, "request wait bound (overrides GENBRIDGE_TIMEOUT)")
	root.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	root.Flags().StringVar(&opts.envFile, "env-file", "", "path to a .env file to load before resolving credentials")

	root.AddCommand(newQuickstartCmd())

	return root
}

func runBridge(ctx context.Context, opts *rootOptions, in io.Reader, out io.Writer) error {
	cfg, err := loadConfig(opts.envFile)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel, opts.debug)

	timeout := cfg.Timeout
	if opts.timeout > 0 {
		timeout = opts.timeout
	}

	bridge := genbridge.NewBridge(logger, genbridge.WithTimeout(timeout))

	if err := bridge.Run(ctx, in, out); err != nil {
		logger.Error().Err(err).Msg("invocation failed")

		return err
	}

	return nil
}
