package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/synthfront/qsynth/internal/config/store"
	"github.com/synthfront/qsynth/internal/engine"
	"github.com/synthfront/qsynth/internal/setup"
)

// presetGroup returns the group holding an engine's presets.
func (o *Options) presetGroup(e *engine.Engine) store.Scope {
	if e.IsDefault() {
		return o.store.Group("/Preset")
	}
	return o.store.Group("/Engine").Group(e.Name()).Group("Preset")
}

// presetScope returns the group holding the channel entries of a preset.
// The sentinel and empty names address the unnamed preset.
func (o *Options) presetScope(e *engine.Engine, name string) store.Scope {
	sc := o.presetGroup(e)
	if isNamedPreset(name) {
		sc = sc.Group(name)
	}
	return sc
}

func isNamedPreset(name string) bool {
	return name != "" && name != setup.DefaultPresetName
}

// checkPresetName rejects named presets whose group would overlap the
// unnamed preset's Chan<N> entries or nest inside another preset.
func checkPresetName(name string) error {
	if !isNamedPreset(name) {
		return nil
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q contains '/'", ErrInvalidPresetName, name)
	}
	if n, ok := strings.CutPrefix(name, "Chan"); ok && n != "" {
		if _, err := strconv.Atoi(n); err == nil {
			return fmt.Errorf("%w: %q is a channel key", ErrInvalidPresetName, name)
		}
	}
	return nil
}

// LoadPreset applies a stored preset to the engine's synth, then resets
// programs on every channel. Stored entries for channels the synth does
// not have, or that cannot be read, are skipped.
func (o *Options) LoadPreset(e *engine.Engine, name string) error {
	if e == nil || e.Synth() == nil || e.Setup() == nil {
		return ErrNoEngine
	}
	if err := checkPresetName(name); err != nil {
		return err
	}
	if isNamedPreset(name) && !e.Setup().HasPreset(name) {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}

	synth := e.Synth()
	sc := o.presetScope(e, name)

	for i := 0; i < synth.Channels(); i++ {
		key := store.ListKey("Chan", i+1)
		entry := sc.String(key, "")
		if entry == "" {
			continue
		}
		ch, bank, prog, ok := parseChannelEntry(entry)
		if !ok || ch != i {
			o.logger.Debug("skipping preset entry", "preset", name, "key", key, "entry", entry)
			continue
		}
		if err := synth.BankSelect(ch, bank); err != nil {
			o.logger.Debug("bank select failed", "channel", ch, "bank", bank, "error", err)
		}
		if err := synth.ProgramChange(ch, prog); err != nil {
			o.logger.Debug("program change failed", "channel", ch, "program", prog, "error", err)
		}
	}

	if err := synth.ProgramReset(); err != nil {
		return fmt.Errorf("resetting programs: %w", err)
	}
	o.logger.Debug("preset loaded", "engine", e.Name(), "preset", name)
	return nil
}

// SavePreset stores the preset currently selected on each of the synth's
// channels. A new name goes to the front of the setup's preset list.
func (o *Options) SavePreset(e *engine.Engine, name string) error {
	if e == nil || e.Synth() == nil || e.Setup() == nil {
		return ErrNoEngine
	}
	if err := checkPresetName(name); err != nil {
		return err
	}

	s := e.Setup()
	if isNamedPreset(name) && !s.HasPreset(name) {
		s.Presets = append([]string{name}, s.Presets...)
	}

	synth := e.Synth()
	sc := o.presetScope(e, name)

	channels := synth.Channels()
	for i := 0; i < channels; i++ {
		p, ok := synth.ChannelPreset(i)
		if !ok {
			continue
		}
		sc.SetValue(store.ListKey("Chan", i+1), formatChannelEntry(i, engine.Bank(synth, p), p.Program))
	}
	sc.PruneList(channels+1, "Chan")

	o.notifier.NotifySet(sc.Path(), nil, name)
	o.logger.Debug("preset saved", "engine", e.Name(), "preset", name, "channels", channels)
	return nil
}

// DeletePreset removes a named preset from the setup's list and the
// store. The unnamed preset cannot be deleted.
func (o *Options) DeletePreset(e *engine.Engine, name string) error {
	if e == nil || e.Setup() == nil {
		return ErrNoEngine
	}
	if !isNamedPreset(name) {
		return nil
	}
	if err := checkPresetName(name); err != nil {
		return err
	}
	if !e.Setup().RemovePreset(name) {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}

	group := o.presetGroup(e)
	group.Remove(name)

	o.notifier.NotifyDelete(group.Group(name).Path(), name)
	o.logger.Debug("preset deleted", "engine", e.Name(), "preset", name)
	return nil
}

// parseChannelEntry reads "channel:bank:program".
func parseChannelEntry(entry string) (ch, bank, prog int, ok bool) {
	fields := strings.Split(entry, ":")
	if len(fields) != 3 {
		return 0, 0, 0, false
	}
	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}

func formatChannelEntry(ch, bank, prog int) string {
	return strconv.Itoa(ch) + ":" + strconv.Itoa(bank) + ":" + strconv.Itoa(prog)
}
