package main

import (
	"bufio"
	"fmt"
	"furl/internal/config"
	"furl/internal/input"
	"furl/internal/runner"
	"furl/pkg/logger"
	"furl/pkg/metrics"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// runPattern reads the tokens, runs the pattern over them and prints one line
// per output record.
func runPattern(cmd *cobra.Command, cfg *config.Config, pattern string, args []string) error {
	ctx := cmd.Context()

	var stdin io.Reader
	if cfg.Input.Stdin && !input.IsTerminal(os.Stdin) {
		stdin = cmd.InOrStdin()
	}

	tokens, err := input.Tokens(args, stdin, cfg.Input.MaxTokenSize)
	if err != nil {
		return err //nolint: wrapcheck
	}

	rec, err := metrics.New(otel.GetMeterProvider())
	if err != nil {
		return err //nolint: wrapcheck
	}

	opts, err := runner.NewOptions(cfg)
	if err != nil {
		return err //nolint: wrapcheck
	}

	batch, err := runner.New(rec, opts).Run(ctx, pattern, tokens)
	if err != nil {
		return err //nolint: wrapcheck
	}
	logger.Debug(ctx, "batch processed",
		zap.String("mode", batch.Mode),
		zap.Int("tokens", len(tokens)),
		zap.Int("dropped", batch.Dropped))

	w := bufio.NewWriter(cmd.OutOrStdout())
	for line := range batch.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	return nil
}
