// Package config persists qsynth's preferences and engine setups.
//
// Options is the single owner of the settings store. It loads the default
// engine's setup, the display options, the defaults group and the list of
// named engines when created, and writes them back on Close. In between it
// manages named engines, channel preset snapshots and GUI widget state.
//
// # Store layout
//
//	/Options/*                                  display and runtime options
//	/Defaults/{SoundFontDir,PresetPreview}
//	/Engines/Engine<N>                          named engines, in order
//	/Settings/*, /SoundFonts/*, /Presets/*      the default engine
//	/Engine/<name>/Settings/*                   a named engine
//	/Engine/<name>/SoundFonts/{SoundFont<N>,BankOffset<N>}
//	/Engine/<name>/Presets/{DefPreset,Preset<N>}
//	/Engine/<name>/Preset/<preset>/Chan<N>      "channel:bank:program"
//	/History/<widget>/Item<N>
//	/Geometry/<widget>/{x,y,width,height,visible}
//	/Program/Version
//
// Lists are stored as numbered keys starting at 1 and end at the first
// missing or empty entry.
//
// # Basic Usage
//
//	st, err := store.Open(loader.SettingsPath())
//	if err != nil {
//	    return err
//	}
//	opts := config.New(st, config.WithLogger(logger))
//	defer opts.Close()
//
//	s := opts.DefaultSetup()
//	if err := cmdline.New().Parse(os.Args[1:], s); err != nil {
//	    return err
//	}
//
// Options is not safe for concurrent use.
package config
