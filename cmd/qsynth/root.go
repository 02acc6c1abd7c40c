package main

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/synthfront/qsynth/internal/cmdline"
	"github.com/synthfront/qsynth/internal/config"
	"github.com/synthfront/qsynth/internal/config/loader"
	"github.com/synthfront/qsynth/internal/config/store"
	"github.com/synthfront/qsynth/internal/engine"
	"github.com/synthfront/qsynth/internal/setup"
)

type rootCommand struct {
	cmd *cobra.Command
}

func newRootCommand() *rootCommand {
	cmd := &cobra.Command{
		Use:   "qsynth [options] [soundfonts] [midifiles]",
		Short: "A fluidsynth front-end",
		Long: "Applies the command line to the default engine's stored setup and prints the result.\n" +
			"Run 'qsynth --help' for the synthesizer options.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
	}
	out := &rootCommand{cmd: cmd}
	cmd.RunE = out.run
	return out
}

func (cmd *rootCommand) run(c *cobra.Command, args []string) (err error) {
	opts, err := openOptions()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := opts.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "error saving settings")
		}
	}()

	parser := cmdline.New(
		cmdline.WithProgram("qsynth"),
		cmdline.WithVersion(version),
		cmdline.WithOutput(c.ErrOrStderr()),
		cmdline.WithLogger(slog.Default()),
	)

	s := opts.DefaultSetup()
	if err := parser.Parse(args, s); err != nil {
		if errors.Is(err, cmdline.ErrHelp) || errors.Is(err, cmdline.ErrVersion) {
			return nil
		}
		return err
	}
	// The engine keeps its previous value for every rejected setting.
	if err := s.Realize(); err != nil {
		slog.Warn("some settings were not applied", "error", err)
	}

	e := engine.NewDefault(s, engine.NewMemorySynth(s.MidiChannels))
	if err := opts.LoadPreset(e, s.DefPreset); err != nil {
		slog.Warn("default preset not loaded", "preset", s.DefPreset, "error", err)
	}
	slog.Debug("default engine ready", "engine", e.Name(), "id", e.ID,
		"soundfonts", len(s.SoundFonts), "midi_files", len(s.MidiFiles))

	return printYAML(c.OutOrStdout(), setupView{
		Setup:          s,
		EngineSettings: s.EngineSettings().Changed(),
	})
}

// setupView is the effective setup as printed.
type setupView struct {
	Setup *setup.Setup `yaml:"setup"`

	// Engine settings that differ from the engine defaults.
	EngineSettings map[string]any `yaml:"engine_settings,omitempty"`
}

// openOptions opens the settings file and loads the options from it.
func openOptions() (*config.Options, error) {
	path := loader.SettingsPath()
	st, err := store.Open(path, store.WithLogger(slog.Default()))
	if err != nil {
		return nil, errors.Wrapf(err, "error opening settings '%s'", path)
	}
	return config.New(st, config.WithVersion(version), config.WithLogger(slog.Default())), nil
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "error writing output")
	}
	return enc.Close()
}
