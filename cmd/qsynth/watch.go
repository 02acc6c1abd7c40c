package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/synthfront/qsynth/internal/config/notify"
	"github.com/synthfront/qsynth/internal/config/watcher"
)

func init() {
	rootCmd.AddCommand(newWatchCommand().cmd)
}

type watchCommand struct {
	cmd *cobra.Command
}

func newWatchCommand() *watchCommand {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the engines whenever the settings file changes",
		Args:  cobra.NoArgs,
	}
	out := &watchCommand{cmd: cmd}
	cmd.RunE = out.run
	return out
}

func (cmd *watchCommand) run(c *cobra.Command, _ []string) error {
	opts, err := openOptions()
	if err != nil {
		return err
	}
	path := opts.Store().Path()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "error creating settings directory for '%s'", path)
	}

	w, err := watcher.New(watcher.WithLogger(slog.Default()))
	if err != nil {
		return errors.Wrap(err, "error starting watcher")
	}
	defer func() { _ = w.Close() }()

	if err := w.Watch(path); err != nil {
		return errors.Wrapf(err, "error watching '%s'", path)
	}

	out := c.OutOrStdout()
	sub := opts.Notifier().Subscribe(func(change notify.Change) {
		if change.Type != notify.ChangeReload {
			return
		}
		if err := printYAML(out, engineViews(opts)); err != nil {
			slog.Error("cannot print engines", "error", err)
		}
	})
	defer sub.Unsubscribe()

	w.Reload(opts, func(ev watcher.Event, err error) {
		if err != nil {
			slog.Warn("settings reload failed", "path", ev.Path, "error", err)
			return
		}
		slog.Debug("settings reloaded", "path", ev.Path, "op", ev.Op.String())
	})

	slog.Info("watching settings", "path", path)
	if err := printYAML(out, engineViews(opts)); err != nil {
		return err
	}

	<-c.Context().Done()
	return nil
}
