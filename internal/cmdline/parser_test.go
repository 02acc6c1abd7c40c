package cmdline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/synthfront/qsynth/internal/config/registry"
	"github.com/synthfront/qsynth/internal/setup"
	"github.com/synthfront/qsynth/internal/sniff"
)

// byExtension classifies paths by name so tests need no files.
func byExtension(path string) sniff.Kind {
	switch filepath.Ext(path) {
	case ".sf2":
		return sniff.SoundFont
	case ".mid":
		return sniff.MidiFile
	default:
		return sniff.Unknown
	}
}

func newTestParser(out *bytes.Buffer) *Parser {
	return New(WithOutput(out), WithProgram("qsynth"), WithVersion("1.0.0"), WithDetector(byExtension))
}

func TestParse_Example(t *testing.T) {
	var out bytes.Buffer
	s := setup.New()

	if err := newTestParser(&out).Parse([]string{"-K", "8", "-r=48000", "song.sf2"}, s); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if s.MidiChannels != 8 {
		t.Errorf("MidiChannels = %d, want 8", s.MidiChannels)
	}
	if s.SampleRate != 48000 {
		t.Errorf("SampleRate = %v, want 48000", s.SampleRate)
	}
	if !reflect.DeepEqual(s.Paths(), []string{"song.sf2"}) {
		t.Errorf("soundfonts = %v", s.Paths())
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestParse_SoundFontOverride(t *testing.T) {
	var out bytes.Buffer
	s := setup.New()
	s.AddSoundFont("a.sf2", "100")

	if err := newTestParser(&out).Parse([]string{"b.sf2", "c.sf2"}, s); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(s.Paths(), []string{"b.sf2", "c.sf2"}) {
		t.Errorf("soundfonts = %v", s.Paths())
	}
	if !reflect.DeepEqual(s.BankOffsets(), []string{"", ""}) {
		t.Errorf("bank offsets = %v", s.BankOffsets())
	}
}

func TestParse_NoSoundFontKeepsLoaded(t *testing.T) {
	var out bytes.Buffer
	s := setup.New()
	s.AddSoundFont("a.sf2", "")

	if err := newTestParser(&out).Parse([]string{"song.mid", "-v"}, s); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.Paths(), []string{"a.sf2"}) {
		t.Errorf("soundfonts = %v", s.Paths())
	}
	if !reflect.DeepEqual(s.MidiFiles, []string{"song.mid"}) {
		t.Errorf("midi files = %v", s.MidiFiles)
	}
	if !s.Verbose {
		t.Error("Verbose not set")
	}
}

func TestParse_Switches(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"off", false},
		{"0", false},
		{"no", false},
		{"on", true},
		{"1", true},
		{"yes", true},
		{"OFF", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var out bytes.Buffer
			s := setup.New()
			s.ReverbActive = !tt.want
			s.ChorusActive = !tt.want

			args := []string{"--reverb=" + tt.value, "-C", tt.value}
			if err := newTestParser(&out).Parse(args, s); err != nil {
				t.Fatal(err)
			}
			if s.ReverbActive != tt.want {
				t.Errorf("ReverbActive = %v, want %v", s.ReverbActive, tt.want)
			}
			if s.ChorusActive != tt.want {
				t.Errorf("ChorusActive = %v, want %v", s.ChorusActive, tt.want)
			}
		})
	}
}

func TestParse_AllOptions(t *testing.T) {
	var out bytes.Buffer
	s := setup.New()

	args := []string{
		"-n", "-m", "oss", "--audio-driver=alsa", "-j",
		"-L", "2", "--audio-groups=2", "-z", "128", "-c=4",
		"-g", "0.5", "-s", "-i", "-d", "--verbose",
	}
	if err := newTestParser(&out).Parse(args, s); err != nil {
		t.Fatal(err)
	}

	if s.MidiIn || s.MidiDriver != "oss" || s.AudioDriver != "alsa" || !s.JackAutoConnect {
		t.Errorf("driver options wrong: %+v", s)
	}
	if s.AudioChannels != 2 || s.AudioGroups != 2 || s.AudioBufSize != 128 || s.AudioBufCount != 4 {
		t.Errorf("audio options wrong: %+v", s)
	}
	if s.Gain != 0.5 || !s.Server || !s.MidiDump || !s.Verbose {
		t.Errorf("misc options wrong: %+v", s)
	}
}

func TestParse_MissingArgument(t *testing.T) {
	for _, args := range [][]string{{"-m"}, {"--midi-driver="}, {"-K"}} {
		var out bytes.Buffer
		err := newTestParser(&out).Parse(args, setup.New())

		var ue *UsageError
		if !errors.As(err, &ue) {
			t.Fatalf("Parse(%v) = %v, want UsageError", args, err)
		}
		if !strings.Contains(out.String(), "requires an argument") {
			t.Errorf("output = %q", out.String())
		}
	}

	var out bytes.Buffer
	_ = newTestParser(&out).Parse([]string{"-m"}, setup.New())
	if got := out.String(); got != "Option -m requires an argument (midi-driver).\n\n" {
		t.Errorf("message = %q", got)
	}
}

func TestParse_BadNumber(t *testing.T) {
	var out bytes.Buffer
	s := setup.New()
	err := newTestParser(&out).Parse([]string{"-K", "many"}, s)

	var ue *UsageError
	if !errors.As(err, &ue) || ue.Arg != "-K" {
		t.Fatalf("Parse = %v, want UsageError for -K", err)
	}
	if s.MidiChannels != 16 {
		t.Errorf("MidiChannels changed to %d", s.MidiChannels)
	}
}

func TestParse_UnknownOption(t *testing.T) {
	var out bytes.Buffer
	err := newTestParser(&out).Parse([]string{"--bogus"}, setup.New())

	var ue *UsageError
	if !errors.As(err, &ue) {
		t.Fatalf("Parse = %v, want UsageError", err)
	}
	if !strings.HasPrefix(out.String(), "Unknown option '--bogus'.\n\nUsage: qsynth") {
		t.Errorf("output = %q", out.String())
	}
}

func TestParse_RejectsJoinedForms(t *testing.T) {
	tests := []struct {
		name string
		args []string
		bad  string
	}{
		{"value joined to short flag", []string{"-K8"}, "-K8"},
		{"combined switches", []string{"-sv"}, "-sv"},
		{"terminator", []string{"--", "song.sf2"}, "--"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := newTestParser(&out).Parse(tt.args, setup.New())

			var ue *UsageError
			if !errors.As(err, &ue) || ue.Arg != tt.bad {
				t.Fatalf("Parse(%v) = %v, want UsageError for %q", tt.args, err, tt.bad)
			}
		})
	}
}

func TestParse_ErrorsInArgumentOrder(t *testing.T) {
	var out bytes.Buffer
	err := newTestParser(&out).Parse([]string{"notes.txt", "-K"}, setup.New())

	var ue *UsageError
	if !errors.As(err, &ue) || ue.Arg != "notes.txt" {
		t.Fatalf("Parse = %v, want UsageError for notes.txt", err)
	}
	if !strings.HasPrefix(out.String(), "Unknown option 'notes.txt'.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestParse_EngineOption(t *testing.T) {
	var out bytes.Buffer
	s := setup.New()

	args := []string{"-o", "synth.polyphony=128", "--option=audio.driver=pulseaudio", "-o", "synth.gain=0.4"}
	if err := newTestParser(&out).Parse(args, s); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	r := s.EngineSettings()
	if v, _ := r.Value("synth.polyphony"); v != 128 {
		t.Errorf("synth.polyphony = %v", v)
	}
	if v, _ := r.Value("audio.driver"); v != "pulseaudio" {
		t.Errorf("audio.driver = %v", v)
	}
	if v, _ := r.Value("synth.gain"); v != 0.4 {
		t.Errorf("synth.gain = %v", v)
	}
}

func TestParse_EngineOptionErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		cause error
	}{
		{"missing", []string{"-o"}, nil},
		{"unknown", []string{"-o", "synth.bogus=1"}, registry.ErrUnknownSetting},
		{"bad value", []string{"-o", "synth.polyphony=lots"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := newTestParser(&out).Parse(tt.args, setup.New())

			var ue *UsageError
			if !errors.As(err, &ue) {
				t.Fatalf("Parse = %v, want UsageError", err)
			}
			if tt.cause != nil && !errors.Is(err, tt.cause) {
				t.Errorf("error %v does not wrap %v", err, tt.cause)
			}
		})
	}

	var out bytes.Buffer
	_ = newTestParser(&out).Parse([]string{"-o", "synth.bogus=1"}, setup.New())
	if got := out.String(); got != "Option -o failed to set 'synth.bogus=1'.\n\n" {
		t.Errorf("message = %q", got)
	}
}

func TestParse_HelpAndVersion(t *testing.T) {
	var out bytes.Buffer
	s := setup.New()

	err := newTestParser(&out).Parse([]string{"-K", "8", "--help", "-K", "4"}, s)
	if !errors.Is(err, ErrHelp) {
		t.Fatalf("Parse = %v, want ErrHelp", err)
	}
	if out.String() != Usage("qsynth") {
		t.Error("help should print the usage text")
	}
	if s.MidiChannels != 8 {
		t.Errorf("parsing should stop at --help, MidiChannels = %d", s.MidiChannels)
	}

	out.Reset()
	if err := newTestParser(&out).Parse([]string{"-V"}, s); !errors.Is(err, ErrVersion) {
		t.Fatalf("Parse = %v, want ErrVersion", err)
	}
	if !strings.Contains(out.String(), "Qsynth: 1.0.0\n") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestUsage_ListsEveryOption(t *testing.T) {
	text := Usage("qsynth")
	for _, f := range flags {
		if !strings.Contains(text, f.short+", "+f.long) {
			t.Errorf("usage is missing %s", f.long)
		}
	}
	for _, opt := range []string{"-o, --option", "-h, --help", "-V, --version"} {
		if !strings.Contains(text, opt) {
			t.Errorf("usage is missing %s", opt)
		}
	}
}

func TestParse_SniffsRealFiles(t *testing.T) {
	dir := t.TempDir()
	sf := filepath.Join(dir, "piano.sf2")
	if err := os.WriteFile(sf, []byte("RIFF\x04\x00\x00\x00sfbk"), 0644); err != nil {
		t.Fatal(err)
	}
	notMusic := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notMusic, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	p := New(WithOutput(&out))
	s := setup.New()

	if err := p.Parse([]string{sf}, s); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(s.Paths(), []string{sf}) {
		t.Errorf("soundfonts = %v", s.Paths())
	}

	var ue *UsageError
	if err := p.Parse([]string{notMusic}, s); !errors.As(err, &ue) {
		t.Errorf("Parse(text file) = %v, want UsageError", err)
	}
}
