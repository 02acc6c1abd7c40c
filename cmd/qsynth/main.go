// Package main is the entry point for the qsynth command.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/michaelquigley/df/dl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/synthfront/qsynth/internal/cmdline"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const trimPrefix = "github.com/synthfront/"

func init() {
	dl.Init(dl.DefaultOptions().SetLevel(slog.LevelInfo).SetTrimPrefix(trimPrefix))
}

var rootCmd = newRootCommand().cmd

var verbose bool

func init() {
	rootCmd.PersistentPreRun = setVerbose
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setVerbose switches to debug logging. The root command parses its own
// arguments, so it looks for -v itself.
func setVerbose(cmd *cobra.Command, args []string) {
	if cmd == rootCmd {
		for _, arg := range args {
			if arg == "-v" || arg == "--verbose" {
				verbose = true
			}
		}
	}
	if verbose {
		dl.Init(dl.DefaultOptions().SetLevel(slog.LevelDebug).SetTrimPrefix(trimPrefix))
		slog.Debug("qsynth", "version", version, "commit", commit, "built", date)
	}
}

// handleError prints command errors. Usage errors were already printed by
// the argument parser.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var ue *cmdline.UsageError
	if errors.As(err, &ue) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

func main() {
	err := fang.Execute(context.Background(), rootCmd,
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
		fang.WithVersion(version),
		fang.WithCommit(commit),
		fang.WithErrorHandler(handleError),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
	if err != nil {
		var ue *cmdline.UsageError
		if errors.As(err, &ue) {
			os.Exit(1)
		}
		dl.Fatal(err)
	}
}
