package main

import (
	"log/slog"
	"slices"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/synthfront/qsynth/internal/config/registry"
)

func init() {
	rootCmd.AddCommand(newSettingsCommand().cmd)
}

type settingsCommand struct {
	cmd *cobra.Command
}

func newSettingsCommand() *settingsCommand {
	cmd := &cobra.Command{
		Use:   "settings [section...]",
		Short: "List the engine settings accepted by -o",
		Long: "Lists the engine settings by section with their type, range and the value\n" +
			"the default engine's stored setup gives them.",
		Args: cobra.ArbitraryArgs,
	}
	out := &settingsCommand{cmd: cmd}
	cmd.RunE = out.run
	return out
}

// settingView is one engine setting as printed.
type settingView struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Value   any      `yaml:"value"`
	Default any      `yaml:"default"`
	Min     *float64 `yaml:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty"`
	Options []string `yaml:"options,omitempty"`
}

func (cmd *settingsCommand) run(c *cobra.Command, args []string) error {
	opts, err := openOptions()
	if err != nil {
		return err
	}

	s := opts.DefaultSetup()
	if err := s.Realize(); err != nil {
		slog.Warn("some settings were not applied", "error", err)
	}

	views, err := settingViews(s.EngineSettings(), args)
	if err != nil {
		return err
	}
	return printYAML(c.OutOrStdout(), views)
}

// settingViews groups the settings of the named sections, or of every
// section when none is named.
func settingViews(r *registry.Registry, sections []string) (map[string][]settingView, error) {
	known := r.Sections()
	if len(sections) == 0 {
		sections = known
	}

	views := make(map[string][]settingView, len(sections))
	for _, section := range sections {
		if !slices.Contains(known, section) {
			return nil, errors.Errorf("unknown settings section '%s'", section)
		}
		settings := r.Section(section)
		sort.Slice(settings, func(i, j int) bool { return settings[i].Name < settings[j].Name })

		list := make([]settingView, 0, len(settings))
		for _, st := range settings {
			value, _ := r.Value(st.Name)
			list = append(list, settingView{
				Name:    st.Name,
				Type:    st.Type.String(),
				Value:   value,
				Default: st.Default,
				Min:     st.Minimum,
				Max:     st.Maximum,
				Options: st.Options,
			})
		}
		views[section] = list
	}
	return views, nil
}
