package sniff

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Headers for test files.
const (
	SoundFontHeader = "RIFF\x10\x00\x00\x00sfbkLIST"
	MidiHeader      = "MThd\x00\x00\x00\x06\x00\x01\x00\x02\x01\xe0"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Kind
	}{
		{"soundfont", SoundFontHeader, SoundFont},
		{"midi", MidiHeader, MidiFile},
		{"wave", "RIFF\x10\x00\x00\x00WAVEfmt ", Unknown},
		{"short riff", "RIFF\x10\x00", Unknown},
		{"short midi", "MTh", Unknown},
		{"empty", "", Unknown},
		{"text", "hello world, not music", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(strings.NewReader(tt.data)); got != tt.want {
				t.Errorf("Detect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()
	sf := filepath.Join(dir, "piano.sf2")
	mid := filepath.Join(dir, "song.mid")
	if err := os.WriteFile(sf, []byte(SoundFontHeader), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(mid, []byte(MidiHeader), 0644); err != nil {
		t.Fatal(err)
	}

	if got := DetectFile(sf); got != SoundFont {
		t.Errorf("piano.sf2 = %v, want soundfont", got)
	}
	if got := DetectFile(mid); got != MidiFile {
		t.Errorf("song.mid = %v, want MIDI file", got)
	}
	if got := DetectFile(filepath.Join(dir, "missing.sf2")); got != Unknown {
		t.Errorf("missing file = %v, want unknown", got)
	}
	if got := DetectFile(dir); got != Unknown {
		t.Errorf("directory = %v, want unknown", got)
	}
}

func TestKind_String(t *testing.T) {
	if SoundFont.String() != "soundfont" || MidiFile.String() != "midi" || Unknown.String() != "unknown" {
		t.Error("Kind.String wrong")
	}
}
