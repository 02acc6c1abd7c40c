package engine

import (
	"fmt"
	"sync"
)

// MemorySoundFontID is the soundfont every MemorySynth preset comes from.
const MemorySoundFontID = 1

const maxProgram = 16383

type memChannel struct {
	bank     int
	program  int
	selected bool
}

// MemorySynth is a Synth that keeps channel state in memory.
type MemorySynth struct {
	mu       sync.Mutex
	channels []memChannel
	offsets  map[int]int
	resets   int
}

// NewMemorySynth creates a synth with the given number of channels.
func NewMemorySynth(channels int) *MemorySynth {
	if channels < 0 {
		channels = 0
	}
	return &MemorySynth{
		channels: make([]memChannel, channels),
		offsets:  make(map[int]int),
	}
}

// Channels returns the number of MIDI channels.
func (m *MemorySynth) Channels() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.channels)
}

// BankSelect selects the bank on a channel.
func (m *MemorySynth) BankSelect(channel, bank int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(channel, bank); err != nil {
		return err
	}
	m.channels[channel].bank = bank
	return nil
}

// ProgramChange selects a program on a channel.
func (m *MemorySynth) ProgramChange(channel, program int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(channel, program); err != nil {
		return err
	}
	m.channels[channel].program = program
	m.channels[channel].selected = true
	return nil
}

// ProgramReset counts resets; the selected programs are already current.
func (m *MemorySynth) ProgramReset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets++
	return nil
}

// ChannelPreset returns the preset on a channel once a program has been
// selected. The bank is reported without the soundfont's bank offset.
func (m *MemorySynth) ChannelPreset(channel int) (Preset, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if channel < 0 || channel >= len(m.channels) || !m.channels[channel].selected {
		return Preset{}, false
	}
	ch := m.channels[channel]
	bank := ch.bank - m.offsets[MemorySoundFontID]
	return Preset{
		SoundFontID: MemorySoundFontID,
		Bank:        bank,
		Program:     ch.program,
		Name:        fmt.Sprintf("Bank %d Program %d", bank, ch.program),
	}, true
}

// BankOffset returns the bank offset of a soundfont.
func (m *MemorySynth) BankOffset(soundFontID int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.offsets[soundFontID]
}

// SetBankOffset sets the bank offset of a soundfont.
func (m *MemorySynth) SetBankOffset(soundFontID, offset int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offsets[soundFontID] = offset
}

// State returns the raw bank and program of a channel and whether a
// program was ever selected on it.
func (m *MemorySynth) State(channel int) (bank, program int, selected bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if channel < 0 || channel >= len(m.channels) {
		return 0, 0, false
	}
	ch := m.channels[channel]
	return ch.bank, ch.program, ch.selected
}

// Resets returns how many times ProgramReset was called.
func (m *MemorySynth) Resets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resets
}

func (m *MemorySynth) check(channel, value int) error {
	if channel < 0 || channel >= len(m.channels) {
		return fmt.Errorf("%w: %d", ErrChannelOutOfRange, channel)
	}
	if value < 0 || value > maxProgram {
		return fmt.Errorf("%w: %d", ErrInvalidProgram, value)
	}
	return nil
}
