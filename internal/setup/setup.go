// Package setup holds the configuration of one synthesizer instance.
package setup

import (
	"errors"
	"fmt"
	"sort"

	"github.com/synthfront/qsynth/internal/config/registry"
)

const (
	// DefaultPresetName marks "no preset selected".
	DefaultPresetName = "(default)"

	// DefaultDisplayName names the default engine when nothing else does.
	DefaultDisplayName = "Qsynth1"
)

// Sample formats accepted by the audio driver.
const (
	SampleFormat16Bits = "16bits"
	SampleFormatFloat  = "float"
)

// ChorusType is the chorus modulation waveform.
type ChorusType int

const (
	ChorusSine ChorusType = iota
	ChorusTriangle
)

// SoundFont is a soundfont file and its bank offset. An empty BankOffset
// means no offset.
type SoundFont struct {
	Path       string `yaml:"path"`
	BankOffset string `yaml:"bank_offset,omitempty"`
}

// Setup is one synthesizer instance's configuration.
type Setup struct {
	DisplayName string `yaml:"display_name"`

	MidiIn       bool   `yaml:"midi_in"`
	MidiDriver   string `yaml:"midi_driver"`
	MidiDevice   string `yaml:"midi_device,omitempty"`
	MidiChannels int    `yaml:"midi_channels"`
	AlsaName     string `yaml:"alsa_name"`

	AudioDriver     string  `yaml:"audio_driver"`
	AudioDevice     string  `yaml:"audio_device,omitempty"`
	JackName        string  `yaml:"jack_name"`
	JackAutoConnect bool    `yaml:"jack_auto_connect"`
	JackMulti       bool    `yaml:"jack_multi"`
	AudioChannels   int     `yaml:"audio_channels"`
	AudioGroups     int     `yaml:"audio_groups"`
	AudioBufSize    int     `yaml:"audio_buf_size"`
	AudioBufCount   int     `yaml:"audio_buf_count"`
	SampleFormat    string  `yaml:"sample_format"`
	SampleRate      float64 `yaml:"sample_rate"`

	Polyphony int `yaml:"polyphony"`

	ReverbActive bool    `yaml:"reverb_active"`
	ReverbRoom   float64 `yaml:"reverb_room"`
	ReverbDamp   float64 `yaml:"reverb_damp"`
	ReverbWidth  float64 `yaml:"reverb_width"`
	ReverbLevel  float64 `yaml:"reverb_level"`

	ChorusActive bool       `yaml:"chorus_active"`
	ChorusNr     int        `yaml:"chorus_nr"`
	ChorusLevel  float64    `yaml:"chorus_level"`
	ChorusSpeed  float64    `yaml:"chorus_speed"`
	ChorusDepth  float64    `yaml:"chorus_depth"`
	ChorusType   ChorusType `yaml:"chorus_type"`

	LadspaActive bool    `yaml:"ladspa_active"`
	Gain         float64 `yaml:"gain"`
	Server       bool    `yaml:"server"`
	MidiDump     bool    `yaml:"midi_dump"`
	Verbose      bool    `yaml:"verbose"`

	SoundFonts []SoundFont `yaml:"soundfonts"`
	MidiFiles  []string    `yaml:"midi_files,omitempty"`
	DefPreset  string      `yaml:"def_preset"`
	Presets    []string    `yaml:"presets"`

	// Engine options given by name, applied after the typed fields.
	EngineOptions map[string]string `yaml:"engine_options,omitempty"`

	settings *registry.Registry
}

// New creates a Setup with every field at its default.
func New() *Setup {
	s := &Setup{}
	s.Reset()
	return s
}

// Reset restores every field to its default. The display name and the
// lists are cleared.
func (s *Setup) Reset() {
	settings := s.settings
	*s = Setup{
		MidiIn:       true,
		MidiDriver:   "alsa_seq",
		MidiChannels: 16,
		AlsaName:     "pid",

		AudioDriver:     "jack",
		JackName:        "qsynth",
		JackAutoConnect: true,
		AudioChannels:   1,
		AudioGroups:     1,
		AudioBufSize:    64,
		AudioBufCount:   2,
		SampleFormat:    SampleFormat16Bits,
		SampleRate:      44100.0,

		Polyphony: 256,

		ReverbActive: true,
		ReverbRoom:   0.2,
		ReverbDamp:   0.0,
		ReverbWidth:  0.5,
		ReverbLevel:  0.9,

		ChorusActive: true,
		ChorusNr:     3,
		ChorusLevel:  2.0,
		ChorusSpeed:  0.3,
		ChorusDepth:  8.0,
		ChorusType:   ChorusSine,

		Gain: 1.0,

		DefPreset: DefaultPresetName,

		settings: settings,
	}
}

// Paths returns the soundfont file paths in order.
func (s *Setup) Paths() []string {
	paths := make([]string, len(s.SoundFonts))
	for i, sf := range s.SoundFonts {
		paths[i] = sf.Path
	}
	return paths
}

// BankOffsets returns the soundfont bank offsets, index-aligned with Paths.
func (s *Setup) BankOffsets() []string {
	offsets := make([]string, len(s.SoundFonts))
	for i, sf := range s.SoundFonts {
		offsets[i] = sf.BankOffset
	}
	return offsets
}

// AddSoundFont appends a soundfont.
func (s *Setup) AddSoundFont(path, bankOffset string) {
	s.SoundFonts = append(s.SoundFonts, SoundFont{Path: path, BankOffset: bankOffset})
}

// HasPreset reports whether name is in the preset list.
func (s *Setup) HasPreset(name string) bool {
	return indexOf(s.Presets, name) >= 0
}

// RemovePreset drops name from the preset list.
func (s *Setup) RemovePreset(name string) bool {
	i := indexOf(s.Presets, name)
	if i < 0 {
		return false
	}
	s.Presets = append(s.Presets[:i], s.Presets[i+1:]...)
	return true
}

func indexOf(list []string, name string) int {
	for i, item := range list {
		if item == name {
			return i
		}
	}
	return -1
}

// EngineSettings returns the engine settings, creating them on first use.
func (s *Setup) EngineSettings() *registry.Registry {
	if s.settings == nil {
		s.settings = registry.NewWithDefaults()
	}
	return s.settings
}

// SetEngineOption assigns a named engine setting from its text form and
// remembers it so Realize applies it over the typed fields.
func (s *Setup) SetEngineOption(name, value string) error {
	if err := s.EngineSettings().Set(name, value); err != nil {
		return err
	}
	if s.EngineOptions == nil {
		s.EngineOptions = make(map[string]string)
	}
	s.EngineOptions[name] = value
	return nil
}

// Realize copies the typed fields into the engine settings, then applies
// the named engine options. It reports every setting that was rejected.
func (s *Setup) Realize() error {
	r := s.EngineSettings()
	var errs []error

	num := func(name string, v float64) { errs = append(errs, r.SetNum(name, v)) }
	integer := func(name string, v int) { errs = append(errs, r.SetInt(name, v)) }
	str := func(name, v string) { errs = append(errs, r.SetStr(name, v)) }
	toggle := func(name string, v bool) { integer(name, boolInt(v)) }

	str("midi.driver", s.MidiDriver)
	if device := "midi." + s.MidiDriver + ".device"; s.MidiDevice != "" && r.Has(device) {
		str(device, s.MidiDevice)
	}
	integer("synth.midi-channels", s.MidiChannels)
	str("midi.alsa_seq.id", s.AlsaName)

	str("audio.driver", s.AudioDriver)
	if device := "audio." + s.AudioDriver + ".device"; s.AudioDevice != "" && r.Has(device) {
		str(device, s.AudioDevice)
	}
	str("audio.jack.id", s.JackName)
	toggle("audio.jack.autoconnect", s.JackAutoConnect)
	if s.JackMulti {
		str("audio.jack.multi", "yes")
	} else {
		str("audio.jack.multi", "no")
	}
	integer("synth.audio-channels", s.AudioChannels)
	integer("synth.audio-groups", s.AudioGroups)
	integer("audio.period-size", s.AudioBufSize)
	integer("audio.periods", s.AudioBufCount)
	str("audio.sample-format", s.SampleFormat)
	num("synth.sample-rate", s.SampleRate)

	integer("synth.polyphony", s.Polyphony)

	toggle("synth.reverb.active", s.ReverbActive)
	num("synth.reverb.room-size", s.ReverbRoom)
	num("synth.reverb.damp", s.ReverbDamp)
	num("synth.reverb.width", s.ReverbWidth)
	num("synth.reverb.level", s.ReverbLevel)

	toggle("synth.chorus.active", s.ChorusActive)
	integer("synth.chorus.nr", s.ChorusNr)
	num("synth.chorus.level", s.ChorusLevel)
	num("synth.chorus.speed", s.ChorusSpeed)
	num("synth.chorus.depth", s.ChorusDepth)

	toggle("synth.ladspa.active", s.LadspaActive)
	num("synth.gain", s.Gain)
	toggle("synth.dump", s.MidiDump)
	toggle("synth.verbose", s.Verbose)

	names := make([]string, 0, len(s.EngineOptions))
	for name := range s.EngineOptions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.Set(name, s.EngineOptions[name]); err != nil {
			errs = append(errs, fmt.Errorf("engine option: %w", err))
		}
	}

	return errors.Join(errs...)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
