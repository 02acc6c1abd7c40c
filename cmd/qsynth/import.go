package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/synthfront/qsynth/internal/config"
	"github.com/synthfront/qsynth/internal/config/notify"
	"github.com/synthfront/qsynth/internal/engine"
	"github.com/synthfront/qsynth/internal/setup"
)

func init() {
	rootCmd.AddCommand(newImportCommand().cmd)
}

type importCommand struct {
	cmd *cobra.Command
}

func newImportCommand() *importCommand {
	cmd := &cobra.Command{
		Use:   "import <name> <setup.yaml>",
		Short: "Store a YAML setup as a named engine",
		Long: "Reads a setup with the fields 'qsynth' prints under 'setup:'.\n" +
			"Fields missing from the file keep their defaults.",
		Args: cobra.ExactArgs(2),
	}
	out := &importCommand{cmd: cmd}
	cmd.RunE = out.run
	return out
}

func (cmd *importCommand) run(c *cobra.Command, args []string) (err error) {
	name, file := args[0], args[1]

	s, err := readSetup(file)
	if err != nil {
		return err
	}

	opts, err := openOptions()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := opts.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "error saving settings")
		}
	}()

	subs := reportEngineChanges(opts.Notifier(), c.OutOrStdout())
	defer func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}()

	_, err = importEngine(opts, name, s)
	return err
}

// reportEngineChanges prints the engine list after each change and a
// line for each engine rename.
func reportEngineChanges(n *notify.Notifier, w io.Writer) []*notify.Subscription {
	return []*notify.Subscription{
		n.SubscribePath("Engines", func(change notify.Change) {
			if change.Type == notify.ChangeSet {
				fmt.Fprintf(w, "engines: %v\n", change.NewValue)
			}
		}),
		n.SubscribePath("Engine", func(change notify.Change) {
			if change.Type == notify.ChangeRename {
				fmt.Fprintf(w, "renamed engine '%v' to '%v'\n", change.OldValue, change.NewValue)
			}
		}),
	}
}

// readSetup decodes a YAML setup over the defaults.
func readSetup(file string) (*setup.Setup, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading '%s'", file)
	}
	s := setup.New()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrapf(err, "error parsing '%s'", file)
	}
	return s, nil
}

// importEngine stores s as the named engine, renaming it when the
// display name differs. A display name that belongs to another listed
// engine is an error.
func importEngine(opts *config.Options, name string, s *setup.Setup) (*engine.Engine, error) {
	if s.DisplayName == "" {
		s.DisplayName = name
	}
	if s.DisplayName != name && slices.Contains(opts.Engines(), s.DisplayName) {
		return nil, errors.Errorf("engine '%s' already exists", s.DisplayName)
	}
	e := engine.New(name, s, nil)
	opts.NewEngine(e)
	opts.RenameEngine(e)
	opts.SaveSetup(s, e.Name())
	return e, nil
}
