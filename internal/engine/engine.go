package engine

import (
	"github.com/google/uuid"

	"github.com/synthfront/qsynth/internal/setup"
)

// Engine is a named synthesizer instance. The setup and synth are
// borrowed; the engine does not own them.
type Engine struct {
	// ID identifies this running instance in log records.
	ID string

	name      string
	setup     *setup.Setup
	synth     Synth
	isDefault bool
}

// New creates a named engine.
func New(name string, s *setup.Setup, synth Synth) *Engine {
	return &Engine{
		ID:    uuid.New().String(),
		name:  name,
		setup: s,
		synth: synth,
	}
}

// NewDefault creates the default engine. Its name is the setup's
// display name, falling back to setup.DefaultDisplayName.
func NewDefault(s *setup.Setup, synth Synth) *Engine {
	name := setup.DefaultDisplayName
	if s != nil && s.DisplayName != "" {
		name = s.DisplayName
	}
	e := New(name, s, synth)
	e.isDefault = true
	return e
}

// Name returns the engine's current name.
func (e *Engine) Name() string {
	return e.name
}

// SetName renames the engine.
func (e *Engine) SetName(name string) {
	e.name = name
}

// Setup returns the engine's configuration, or nil.
func (e *Engine) Setup() *setup.Setup {
	return e.setup
}

// Synth returns the running synthesizer, or nil.
func (e *Engine) Synth() Synth {
	return e.synth
}

// IsDefault reports whether this is the default engine.
func (e *Engine) IsDefault() bool {
	return e.isDefault
}
