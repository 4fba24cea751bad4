package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/gocp/pkg/config"
	"github.com/walteh/gocp/pkg/cp"
	"github.com/walteh/gocp/pkg/log"
	"github.com/walteh/gocp/pkg/prompt"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	recursive   bool
	override    bool
	interactive bool
	verbose     bool
	exclude     []string
	configFile  string
	debug       bool
)

// defaultConfigFiles are probed in order when --config is not given.
var defaultConfigFiles = []string{".gocp.yaml", ".gocp.yml", ".gocp.hcl"}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gocp [flags] SOURCE DESTINATION",
		Short: "Copy files and directories",
		Long: `gocp copies a single file, or recursively copies a directory tree,
with policies for overwrite confirmation and verbosity.

Copying a directory requires -r. When the destination file already exists,
the default is to refuse; -o replaces it and -i asks per file. Exclude
patterns are matched against source-relative paths.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "copy directories recursively")
	cmd.Flags().BoolVarP(&override, "override", "o", false, "override destination files if they already exist")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "confirm overrides manually")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print informational messages")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "glob pattern of entries to skip (repeatable)")
	cmd.Flags().StringVar(&configFile, "config", "", "defaults file path (.gocp.yaml or .gocp.hcl)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("override", "interactive")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	// Set up structured logging, separate from -v user output
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = cmd.ErrOrStderr()
	})).Level(level).With().Timestamp().Logger()
	ctx := zlog.WithContext(cmd.Context())

	// Apply defaults file, then build the policy
	if err := applyDefaults(ctx, cmd); err != nil {
		return err
	}
	policy, err := config.NewPolicy(recursive, override, interactive, verbose, exclude)
	if err != nil {
		return err
	}

	logger := log.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), policy.Verbose)

	opts := cp.Options{
		Policy:   policy,
		Reporter: logger,
	}
	if policy.Overwrite == config.OverwriteAsk {
		opts.Prompter = prompt.NewInteractive()
	}

	op, err := cp.New(opts)
	if err != nil {
		return err
	}

	return op.Run(ctx, cp.Request{Source: args[0], Dest: args[1]})
}

// applyDefaults loads the defaults file (if any) and fills in option values
// the user did not set explicitly on the command line.
func applyDefaults(ctx context.Context, cmd *cobra.Command) error {
	path := configFile
	if path == "" {
		for _, candidate := range defaultConfigFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return nil
		}
	}

	f, err := config.Load(ctx, path)
	if err != nil {
		return errors.Errorf("loading defaults: %w", err)
	}

	flags := cmd.Flags()
	if f.Recursive != nil && !flags.Changed("recursive") {
		recursive = *f.Recursive
	}
	if f.Override != nil && !flags.Changed("override") {
		override = *f.Override
	}
	if f.Interactive != nil && !flags.Changed("interactive") {
		interactive = *f.Interactive
	}
	if f.Verbose != nil && !flags.Changed("verbose") {
		verbose = *f.Verbose
	}
	exclude = append(exclude, f.Exclude...)

	return nil
}

func main() {
	errLogger := log.New(os.Stdout, os.Stderr, false)

	// An interrupt mid-copy leaves whatever was partially written in place.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		errLogger.Warning("interrupted, destination may be incomplete")
		os.Exit(130)
	}()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		errLogger.Errorf("%v", err)
		os.Exit(1)
	}
}
