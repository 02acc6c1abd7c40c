package config

import (
	"github.com/synthfront/qsynth/internal/config/store"
	"github.com/synthfront/qsynth/internal/setup"
)

// LoadSetup fills s from the store. An empty name loads the default
// engine's setup from the top level; any other name loads from
// /Engine/<name>. Values missing from the store take their defaults and
// the soundfont and preset lists are replaced. MidiFiles is left alone.
func (o *Options) LoadSetup(s *setup.Setup, name string) {
	if s == nil {
		return
	}
	sc := o.engineScope(name)

	displayName := name
	if displayName == "" {
		displayName = setup.DefaultDisplayName
	}

	st := sc.Group("Settings")
	s.DisplayName = st.String("DisplayName", displayName)
	s.MidiIn = st.Bool("MidiIn", true)
	s.MidiDriver = st.String("MidiDriver", "alsa_seq")
	s.MidiDevice = st.String("MidiDevice", "")
	s.MidiChannels = st.Int("MidiChannels", 16)
	s.AlsaName = st.String("AlsaName", "pid")
	s.AudioDriver = st.String("AudioDriver", "jack")
	s.AudioDevice = st.String("AudioDevice", "")
	s.JackName = st.String("JackName", "qsynth")
	s.JackAutoConnect = st.Bool("JackAutoConnect", true)
	s.JackMulti = st.Bool("JackMulti", false)
	s.AudioChannels = st.Int("AudioChannels", 1)
	s.AudioGroups = st.Int("AudioGroups", 1)
	s.AudioBufSize = st.Int("AudioBufSize", 64)
	s.AudioBufCount = st.Int("AudioBufCount", 2)
	s.SampleFormat = st.String("SampleFormat", setup.SampleFormat16Bits)
	s.SampleRate = st.Float("SampleRate", 44100.0)
	s.Polyphony = st.Int("Polyphony", 256)
	s.ReverbActive = st.Bool("ReverbActive", true)
	s.ReverbRoom = st.Float("ReverbRoom", 0.2)
	s.ReverbDamp = st.Float("ReverbDamp", 0.0)
	s.ReverbWidth = st.Float("ReverbWidth", 0.5)
	s.ReverbLevel = st.Float("ReverbLevel", 0.9)
	s.ChorusActive = st.Bool("ChorusActive", true)
	s.ChorusNr = st.Int("ChorusNr", 3)
	s.ChorusLevel = st.Float("ChorusLevel", 2.0)
	s.ChorusSpeed = st.Float("ChorusSpeed", 0.3)
	s.ChorusDepth = st.Float("ChorusDepth", 8.0)
	s.ChorusType = setup.ChorusType(st.Int("ChorusType", int(setup.ChorusSine)))
	s.LadspaActive = st.Bool("LadspaActive", false)
	s.Gain = st.Float("Gain", 1.0)
	s.Server = st.Bool("Server", false)
	s.MidiDump = st.Bool("MidiDump", false)
	s.Verbose = st.Bool("Verbose", false)

	// SoundFont<N> and BankOffset<N> are read in lockstep, so the two
	// stay aligned even when an offset is missing.
	sf := sc.Group("SoundFonts")
	s.SoundFonts = nil
	for i := 1; ; i++ {
		path := sf.String(store.ListKey("SoundFont", i), "")
		if path == "" {
			break
		}
		s.AddSoundFont(path, sf.String(store.ListKey("BankOffset", i), ""))
	}

	presets := sc.Group("Presets")
	s.DefPreset = presets.String("DefPreset", setup.DefaultPresetName)
	s.Presets = presets.ReadList("Preset")

	o.logger.Debug("setup loaded", "engine", name, "display", s.DisplayName)
}

// SaveSetup writes s to the store under the scope LoadSetup reads. Stale
// trailing list entries are removed.
func (o *Options) SaveSetup(s *setup.Setup, name string) {
	if s == nil {
		return
	}
	sc := o.engineScope(name)

	presets := sc.Group("Presets")
	presets.SetValue("DefPreset", s.DefPreset)
	presets.WriteList("Preset", s.Presets)

	sf := sc.Group("SoundFonts")
	n := 0
	for _, font := range s.SoundFonts {
		if font.Path == "" {
			break
		}
		n++
		sf.SetValue(store.ListKey("SoundFont", n), font.Path)
		sf.SetValue(store.ListKey("BankOffset", n), font.BankOffset)
	}
	sf.PruneList(n+1, "SoundFont", "BankOffset")

	st := sc.Group("Settings")
	st.SetValue("DisplayName", s.DisplayName)
	st.SetValue("MidiIn", s.MidiIn)
	st.SetValue("MidiDriver", s.MidiDriver)
	st.SetValue("MidiDevice", s.MidiDevice)
	st.SetValue("MidiChannels", s.MidiChannels)
	st.SetValue("AlsaName", s.AlsaName)
	st.SetValue("AudioDriver", s.AudioDriver)
	st.SetValue("AudioDevice", s.AudioDevice)
	st.SetValue("JackName", s.JackName)
	st.SetValue("JackAutoConnect", s.JackAutoConnect)
	st.SetValue("JackMulti", s.JackMulti)
	st.SetValue("AudioChannels", s.AudioChannels)
	st.SetValue("AudioGroups", s.AudioGroups)
	st.SetValue("AudioBufSize", s.AudioBufSize)
	st.SetValue("AudioBufCount", s.AudioBufCount)
	st.SetValue("SampleFormat", s.SampleFormat)
	st.SetValue("SampleRate", s.SampleRate)
	st.SetValue("Polyphony", s.Polyphony)
	st.SetValue("ReverbActive", s.ReverbActive)
	st.SetValue("ReverbRoom", s.ReverbRoom)
	st.SetValue("ReverbDamp", s.ReverbDamp)
	st.SetValue("ReverbWidth", s.ReverbWidth)
	st.SetValue("ReverbLevel", s.ReverbLevel)
	st.SetValue("ChorusActive", s.ChorusActive)
	st.SetValue("ChorusNr", s.ChorusNr)
	st.SetValue("ChorusLevel", s.ChorusLevel)
	st.SetValue("ChorusSpeed", s.ChorusSpeed)
	st.SetValue("ChorusDepth", s.ChorusDepth)
	st.SetValue("ChorusType", int(s.ChorusType))
	st.SetValue("LadspaActive", s.LadspaActive)
	st.SetValue("Gain", s.Gain)
	st.SetValue("Server", s.Server)
	st.SetValue("MidiDump", s.MidiDump)
	st.SetValue("Verbose", s.Verbose)

	o.logger.Debug("setup saved", "engine", name, "soundfonts", n, "presets", len(s.Presets))
}
