// Package main provides the furl command line. The root command decomposes,
// templates or dedups URLs; the serve subcommand exposes the same engine over
// HTTP.
package main

import (
	"context"
	"fmt"
	"furl/internal/config"
	"furl/internal/furl"
	"furl/pkg/logger"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint: gochecknoglobals

// app carries the loaded configuration from the root's pre-run hook to the
// command being executed.
type app struct {
	configPath       string
	strict           bool
	privateNeedsRoot bool
	suffixMode       string
	dedupMode        string

	cfg *config.Config
}

// load reads the config file or environment, then applies the flags the user
// set explicitly, so flags win over both.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Domain.Strict = a.strict
	}
	if flags.Changed("private-needs-root") {
		cfg.Domain.PrivateNeedsRoot = a.privateNeedsRoot
	}
	if flags.Changed("suffix-mode") {
		cfg.Domain.SuffixMode = a.suffixMode
	}
	if flags.Changed("dedup-mode") {
		cfg.Dedup.Mode = a.dedupMode
	}
	if err := cfg.Validate(); err != nil {
		return err //nolint: wrapcheck
	}

	var opts []logger.Option
	if cfg.LogLevel != "" {
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	logger.Setup(cfg.Environment, opts...)

	a.cfg = cfg

	return nil
}

// longHelp lists the fields and placeholders accepted in patterns.
func longHelp() string {
	var b strings.Builder
	b.WriteString(`furl reads URLs from its arguments and, when it is not a terminal, from
standard input. The pattern selects the output:

  dedup         merge URLs of the same page family, printing one per family
  <field>       print one field per URL, skipping URLs where it is empty
  <template>    render a template per URL

Fields:
`)
	for _, f := range furl.Fields() {
		fmt.Fprintf(&b, "  %-14s %s (%s)\n", f.Name, f.Help, strings.Join(f.Aliases, ", "))
	}

	b.WriteString("\nTemplate placeholders:\n")
	for _, f := range furl.Placeholders() {
		fmt.Fprintf(&b, "  %%%c  %s\n", f.Code, f.Help)
	}
	b.WriteString("  %%  a literal %\n")

	return b.String()
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "furl <pattern> [url...]",
		Short:         "Decompose, template and dedup URLs",
		Long:          longHelp(),
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPattern(cmd, a.cfg, args[0], args[1:])
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path (optional)")
	flags.BoolVar(&a.strict, "strict", false, "drop URLs whose host is not a registrable domain")
	flags.BoolVar(&a.privateNeedsRoot, "private-needs-root", false, "require an apex below private suffixes too")
	flags.StringVar(&a.suffixMode, "suffix-mode", string(furl.SuffixLastLabel),
		"tld field definition: last-label or public")
	flags.StringVar(&a.dedupMode, "dedup-mode", config.DedupAdjacent, "dedup grouping: adjacent or cluster")

	rootCmd.AddCommand(newServeCommand(a))

	return rootCmd
}

// main builds the root Cobra command and executes the CLI.
func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := newRootCommand(&app{}).ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
