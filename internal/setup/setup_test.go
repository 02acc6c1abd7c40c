package setup

import (
	"errors"
	"reflect"
	"testing"

	"github.com/synthfront/qsynth/internal/config/registry"
)

func TestNew_Defaults(t *testing.T) {
	s := New()

	if !s.MidiIn || s.MidiDriver != "alsa_seq" || s.MidiChannels != 16 || s.AlsaName != "pid" {
		t.Errorf("MIDI defaults wrong: %+v", s)
	}
	if s.AudioDriver != "jack" || s.JackName != "qsynth" || !s.JackAutoConnect || s.JackMulti {
		t.Errorf("audio defaults wrong: %+v", s)
	}
	if s.AudioBufSize != 64 || s.AudioBufCount != 2 || s.SampleFormat != SampleFormat16Bits || s.SampleRate != 44100 {
		t.Errorf("buffer defaults wrong: %+v", s)
	}
	if s.ReverbRoom != 0.2 || s.ReverbWidth != 0.5 || s.ReverbLevel != 0.9 {
		t.Errorf("reverb defaults wrong: %+v", s)
	}
	if s.ChorusNr != 3 || s.ChorusLevel != 2.0 || s.ChorusSpeed != 0.3 || s.ChorusDepth != 8.0 {
		t.Errorf("chorus defaults wrong: %+v", s)
	}
	if s.DefPreset != DefaultPresetName {
		t.Errorf("DefPreset = %q", s.DefPreset)
	}
	if s.DisplayName != "" || len(s.SoundFonts) != 0 || len(s.Presets) != 0 {
		t.Error("New should start with empty name and lists")
	}
}

func TestReset_KeepsEngineSettings(t *testing.T) {
	s := New()
	r := s.EngineSettings()
	s.Polyphony = 32
	s.AddSoundFont("a.sf2", "")

	s.Reset()

	if s.Polyphony != 256 || len(s.SoundFonts) != 0 {
		t.Errorf("Reset did not restore defaults: %+v", s)
	}
	if s.EngineSettings() != r {
		t.Error("Reset should keep the engine settings registry")
	}
}

func TestSoundFonts_Aligned(t *testing.T) {
	s := New()
	s.AddSoundFont("a.sf2", "")
	s.AddSoundFont("b.sf2", "100")

	paths, offsets := s.Paths(), s.BankOffsets()
	if len(paths) != len(offsets) {
		t.Fatalf("len(Paths)=%d len(BankOffsets)=%d", len(paths), len(offsets))
	}
	if !reflect.DeepEqual(paths, []string{"a.sf2", "b.sf2"}) {
		t.Errorf("Paths = %v", paths)
	}
	if !reflect.DeepEqual(offsets, []string{"", "100"}) {
		t.Errorf("BankOffsets = %v", offsets)
	}
}

func TestPresets_HasRemove(t *testing.T) {
	s := New()
	s.Presets = []string{"a", "b"}

	if !s.HasPreset("b") || s.HasPreset("c") {
		t.Error("HasPreset wrong")
	}
	if !s.RemovePreset("a") || s.RemovePreset("a") {
		t.Error("RemovePreset wrong")
	}
	if !reflect.DeepEqual(s.Presets, []string{"b"}) {
		t.Errorf("Presets = %v", s.Presets)
	}
}

func TestRealize(t *testing.T) {
	s := New()
	s.Polyphony = 128
	s.SampleRate = 48000
	s.ReverbActive = false
	s.JackMulti = true
	s.AudioDriver = "alsa"
	s.AudioDevice = "hw:1"

	if err := s.Realize(); err != nil {
		t.Fatalf("Realize failed: %v", err)
	}

	r := s.EngineSettings()
	if v, _ := r.Value("synth.polyphony"); v != 128 {
		t.Errorf("synth.polyphony = %v", v)
	}
	if v, _ := r.Value("synth.sample-rate"); v != 48000.0 {
		t.Errorf("synth.sample-rate = %v", v)
	}
	if v, _ := r.Value("synth.reverb.active"); v != 0 {
		t.Errorf("synth.reverb.active = %v", v)
	}
	if v, _ := r.Value("audio.jack.multi"); v != "yes" {
		t.Errorf("audio.jack.multi = %v", v)
	}
	if v, _ := r.Value("audio.alsa.device"); v != "hw:1" {
		t.Errorf("audio.alsa.device = %v", v)
	}
}

func TestRealize_EngineOptionsWin(t *testing.T) {
	s := New()
	if err := s.SetEngineOption("synth.polyphony", "512"); err != nil {
		t.Fatal(err)
	}
	if err := s.Realize(); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.EngineSettings().Value("synth.polyphony"); v != 512 {
		t.Errorf("synth.polyphony = %v, want 512", v)
	}
}

func TestRealize_ReportsRejectedFields(t *testing.T) {
	s := New()
	s.Polyphony = 0
	s.SampleFormat = "24bits"

	err := s.Realize()
	var ve *registry.ValueError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValueError, got %v", err)
	}
}

func TestSetEngineOption_Unknown(t *testing.T) {
	s := New()
	err := s.SetEngineOption("synth.bogus", "1")
	if !errors.Is(err, registry.ErrUnknownSetting) {
		t.Errorf("expected ErrUnknownSetting, got %v", err)
	}
	if len(s.EngineOptions) != 0 {
		t.Error("rejected option must not be remembered")
	}
}
