package registry

// RegisterDefaults registers the built-in engine settings.
func (r *Registry) RegisterDefaults() {
	// Synth settings
	r.MustRegister(Setting{
		Name:        "synth.gain",
		Type:        TypeNumeric,
		Default:     0.2,
		Description: "Master gain",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(10),
	})

	r.MustRegister(Setting{
		Name:        "synth.polyphony",
		Type:        TypeInteger,
		Default:     256,
		Description: "Maximum number of simultaneous voices",
		Minimum:     MinValue(1),
		Maximum:     MaxValue(65535),
	})

	r.MustRegister(Setting{
		Name:        "synth.midi-channels",
		Type:        TypeInteger,
		Default:     16,
		Description: "Number of MIDI channels",
		Minimum:     MinValue(16),
		Maximum:     MaxValue(256),
	})

	r.MustRegister(Setting{
		Name:        "synth.audio-channels",
		Type:        TypeInteger,
		Default:     1,
		Description: "Number of stereo audio channels",
		Minimum:     MinValue(1),
		Maximum:     MaxValue(128),
	})

	r.MustRegister(Setting{
		Name:        "synth.audio-groups",
		Type:        TypeInteger,
		Default:     1,
		Description: "Number of audio groups",
		Minimum:     MinValue(1),
		Maximum:     MaxValue(128),
	})

	r.MustRegister(Setting{
		Name:        "synth.sample-rate",
		Type:        TypeNumeric,
		Default:     44100.0,
		Description: "Sample rate of the synthesizer",
		Minimum:     MinValue(8000),
		Maximum:     MaxValue(96000),
	})

	r.MustRegister(Setting{
		Name:        "synth.device-id",
		Type:        TypeInteger,
		Default:     0,
		Description: "Device ID for SYSEX messages",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(126),
	})

	r.MustRegister(Setting{
		Name:        "synth.cpu-cores",
		Type:        TypeInteger,
		Default:     1,
		Description: "Number of rendering threads",
		Minimum:     MinValue(1),
		Maximum:     MaxValue(256),
	})

	for _, toggle := range []struct {
		name, desc string
		def        int
	}{
		{"synth.reverb.active", "Reverb effect", 1},
		{"synth.chorus.active", "Chorus effect", 1},
		{"synth.ladspa.active", "LADSPA effects unit", 0},
		{"synth.dump", "Dump MIDI events", 0},
		{"synth.verbose", "Print MIDI events", 0},
		{"synth.lock-memory", "Lock sample memory", 1},
	} {
		r.MustRegister(Setting{
			Name:        toggle.name,
			Type:        TypeInteger,
			Default:     toggle.def,
			Description: toggle.desc,
			Minimum:     MinValue(0),
			Maximum:     MaxValue(1),
		})
	}

	// Reverb
	r.MustRegister(Setting{
		Name:        "synth.reverb.room-size",
		Type:        TypeNumeric,
		Default:     0.2,
		Description: "Reverb room size",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(1),
	})

	r.MustRegister(Setting{
		Name:        "synth.reverb.damp",
		Type:        TypeNumeric,
		Default:     0.0,
		Description: "Reverb damping",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(1),
	})

	r.MustRegister(Setting{
		Name:        "synth.reverb.width",
		Type:        TypeNumeric,
		Default:     0.5,
		Description: "Reverb width",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(100),
	})

	r.MustRegister(Setting{
		Name:        "synth.reverb.level",
		Type:        TypeNumeric,
		Default:     0.9,
		Description: "Reverb output level",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(1),
	})

	// Chorus
	r.MustRegister(Setting{
		Name:        "synth.chorus.nr",
		Type:        TypeInteger,
		Default:     3,
		Description: "Chorus voice count",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(99),
	})

	r.MustRegister(Setting{
		Name:        "synth.chorus.level",
		Type:        TypeNumeric,
		Default:     2.0,
		Description: "Chorus output level",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(10),
	})

	r.MustRegister(Setting{
		Name:        "synth.chorus.speed",
		Type:        TypeNumeric,
		Default:     0.3,
		Description: "Chorus modulation speed in Hz",
		Minimum:     MinValue(0.1),
		Maximum:     MaxValue(5),
	})

	r.MustRegister(Setting{
		Name:        "synth.chorus.depth",
		Type:        TypeNumeric,
		Default:     8.0,
		Description: "Chorus modulation depth in ms",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(256),
	})

	// Audio
	r.MustRegister(Setting{
		Name:        "audio.driver",
		Type:        TypeString,
		Default:     "jack",
		Description: "The audio driver",
	})

	r.MustRegister(Setting{
		Name:        "audio.period-size",
		Type:        TypeInteger,
		Default:     64,
		Description: "Size of each audio buffer",
		Minimum:     MinValue(64),
		Maximum:     MaxValue(8192),
	})

	r.MustRegister(Setting{
		Name:        "audio.periods",
		Type:        TypeInteger,
		Default:     2,
		Description: "Number of audio buffers",
		Minimum:     MinValue(2),
		Maximum:     MaxValue(64),
	})

	r.MustRegister(Setting{
		Name:        "audio.sample-format",
		Type:        TypeString,
		Default:     "16bits",
		Description: "Audio sample format",
		Options:     []string{"16bits", "float"},
	})

	r.MustRegister(Setting{
		Name:        "audio.jack.id",
		Type:        TypeString,
		Default:     "qsynth",
		Description: "JACK client name",
	})

	r.MustRegister(Setting{
		Name:        "audio.jack.autoconnect",
		Type:        TypeInteger,
		Default:     0,
		Description: "Connect JACK outputs to the physical ports",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(1),
	})

	r.MustRegister(Setting{
		Name:        "audio.jack.multi",
		Type:        TypeString,
		Default:     "no",
		Description: "One JACK port per audio channel",
		Options:     []string{"yes", "no"},
	})

	r.MustRegister(Setting{
		Name:        "audio.alsa.device",
		Type:        TypeString,
		Default:     "default",
		Description: "ALSA audio device",
	})

	r.MustRegister(Setting{
		Name:        "audio.oss.device",
		Type:        TypeString,
		Default:     "/dev/dsp",
		Description: "OSS audio device",
	})

	// MIDI
	r.MustRegister(Setting{
		Name:        "midi.driver",
		Type:        TypeString,
		Default:     "alsa_seq",
		Description: "The MIDI driver",
	})

	r.MustRegister(Setting{
		Name:        "midi.alsa_seq.id",
		Type:        TypeString,
		Default:     "pid",
		Description: "ALSA sequencer client name",
	})

	r.MustRegister(Setting{
		Name:        "midi.alsa_seq.device",
		Type:        TypeString,
		Default:     "default",
		Description: "ALSA sequencer device",
	})

	r.MustRegister(Setting{
		Name:        "midi.alsa.device",
		Type:        TypeString,
		Default:     "default",
		Description: "ALSA raw MIDI device",
	})

	r.MustRegister(Setting{
		Name:        "midi.oss.device",
		Type:        TypeString,
		Default:     "/dev/midi",
		Description: "OSS MIDI device",
	})

	r.MustRegister(Setting{
		Name:        "midi.autoconnect",
		Type:        TypeInteger,
		Default:     0,
		Description: "Connect MIDI inputs automatically",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(1),
	})

	// Player and server
	r.MustRegister(Setting{
		Name:        "player.reset-synth",
		Type:        TypeInteger,
		Default:     1,
		Description: "Reset the synth when a new MIDI file starts",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(1),
	})

	r.MustRegister(Setting{
		Name:        "player.timing-source",
		Type:        TypeString,
		Default:     "sample",
		Description: "MIDI file player timing source",
		Options:     []string{"sample", "system"},
	})

	r.MustRegister(Setting{
		Name:        "shell.port",
		Type:        TypeInteger,
		Default:     9800,
		Description: "Command server TCP port",
		Minimum:     MinValue(1),
		Maximum:     MaxValue(65535),
	})
}
