// Package engine wraps a running synthesizer instance.
//
// An Engine pairs a Setup with the live Synth it configures. Exactly one
// engine is the default one: it has no name of its own, keeps its
// settings at the top of the settings store, and is never listed among
// the named engines.
//
// The synthesizer itself is reached only through the Synth interface:
//
//	synth := engine.NewMemorySynth(16)
//	e := engine.New("Piano", setup.New(), synth)
//	e.Synth().ProgramChange(0, 5)
//
// MemorySynth is an in-process Synth that records channel state; it backs
// the command-line tool and the tests.
package engine
