package engine

import "errors"

// Errors returned by synth operations.
var (
	// ErrChannelOutOfRange indicates a MIDI channel outside the synth.
	ErrChannelOutOfRange = errors.New("channel out of range")

	// ErrInvalidProgram indicates a bank or program number outside 0..16383.
	ErrInvalidProgram = errors.New("invalid bank or program")
)
