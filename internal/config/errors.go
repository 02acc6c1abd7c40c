package config

import "errors"

// Errors returned by preset operations.
var (
	// ErrNoEngine indicates a missing engine, synth or setup.
	ErrNoEngine = errors.New("no engine")

	// ErrPresetNotFound indicates a preset name missing from the setup's
	// preset list.
	ErrPresetNotFound = errors.New("preset not found")

	// ErrInvalidPresetName indicates a preset name that would share a
	// store key with a channel entry or another preset.
	ErrInvalidPresetName = errors.New("invalid preset name")
)
