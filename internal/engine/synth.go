package engine

// Preset identifies the instrument selected on a channel.
type Preset struct {
	// SoundFontID is the engine's identifier of the soundfont holding the
	// preset.
	SoundFontID int
	Bank        int
	Program     int
	Name        string
}

// Synth is the surface of a running synthesizer that presets need.
type Synth interface {
	// Channels returns the number of MIDI channels.
	Channels() int

	// BankSelect selects the bank on a channel for the next program change.
	BankSelect(channel, bank int) error

	// ProgramChange selects a program on a channel.
	ProgramChange(channel, program int) error

	// ProgramReset re-applies the selected program on every channel.
	ProgramReset() error

	// ChannelPreset returns the preset currently resolved on a channel.
	ChannelPreset(channel int) (Preset, bool)
}

// BankOffsetter is implemented by synths that shift the bank numbers of
// a soundfont.
type BankOffsetter interface {
	BankOffset(soundFontID int) int
}

// Bank returns the bank of p as stored in presets: the preset's own bank
// plus the soundfont's bank offset when synth supports offsets.
func Bank(synth Synth, p Preset) int {
	if bo, ok := synth.(BankOffsetter); ok {
		return p.Bank + bo.BankOffset(p.SoundFontID)
	}
	return p.Bank
}
