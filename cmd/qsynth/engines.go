package main

import (
	"github.com/spf13/cobra"

	"github.com/synthfront/qsynth/internal/config"
	"github.com/synthfront/qsynth/internal/setup"
)

func init() {
	rootCmd.AddCommand(newEnginesCommand().cmd)
}

type enginesCommand struct {
	cmd *cobra.Command
}

func newEnginesCommand() *enginesCommand {
	cmd := &cobra.Command{
		Use:   "engines",
		Short: "List the stored engines and their setups",
		Args:  cobra.NoArgs,
	}
	out := &enginesCommand{cmd: cmd}
	cmd.RunE = out.run
	return out
}

// engineView is one engine as printed.
type engineView struct {
	Name    string       `yaml:"name"`
	Default bool         `yaml:"default,omitempty"`
	Setup   *setup.Setup `yaml:"setup"`
}

func (cmd *enginesCommand) run(c *cobra.Command, _ []string) error {
	opts, err := openOptions()
	if err != nil {
		return err
	}
	return printYAML(c.OutOrStdout(), engineViews(opts))
}

func engineViews(opts *config.Options) []engineView {
	def := opts.DefaultSetup()
	views := []engineView{{Name: def.DisplayName, Default: true, Setup: def}}
	for _, name := range opts.Engines() {
		s := setup.New()
		opts.LoadSetup(s, name)
		views = append(views, engineView{Name: name, Setup: s})
	}
	return views
}
