// Package cmdline applies qsynth command-line arguments to a Setup.
//
// Every option has a short and a long form. Options taking a value accept
// it after '=' or as the next argument:
//
//	qsynth -K 8 --sample-rate=48000 -o synth.polyphony=128 piano.sf2 song.mid
//
// Arguments that are not options are sniffed: SoundFont files replace the
// soundfonts loaded from settings, MIDI files are queued for playback, and
// anything else is an unknown option.
package cmdline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/synthfront/qsynth/internal/setup"
	"github.com/synthfront/qsynth/internal/sniff"
)

// Parser parses argument vectors into a Setup.
type Parser struct {
	program string
	version string
	out     io.Writer
	detect  func(path string) sniff.Kind
	logger  *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithProgram sets the program name shown in the usage text.
func WithProgram(name string) Option {
	return func(p *Parser) {
		if name != "" {
			p.program = name
		}
	}
}

// WithVersion sets the version reported by -V.
func WithVersion(version string) Option {
	return func(p *Parser) {
		p.version = version
	}
}

// WithOutput sets where usage, version and error messages go.
func WithOutput(w io.Writer) Option {
	return func(p *Parser) {
		if w != nil {
			p.out = w
		}
	}
}

// WithDetector replaces file-type sniffing of positional arguments.
func WithDetector(detect func(path string) sniff.Kind) Option {
	return func(p *Parser) {
		if detect != nil {
			p.detect = detect
		}
	}
}

// WithLogger sets the logger used for parser diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a parser writing to standard error.
func New(opts ...Option) *Parser {
	p := &Parser{
		program: "qsynth",
		version: "dev",
		out:     os.Stderr,
		detect:  sniff.DetectFile,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// flag describes one option.
type flag struct {
	short, long string

	// arg names the value for error messages; empty for plain switches.
	arg string

	apply func(s *setup.Setup, value string) error
}

var flags = []flag{
	{"-n", "--no-midi-in", "", func(s *setup.Setup, _ string) error { s.MidiIn = false; return nil }},
	{"-m", "--midi-driver", "midi-driver", func(s *setup.Setup, v string) error { s.MidiDriver = v; return nil }},
	{"-K", "--midi-channels", "midi-channels", intValue(func(s *setup.Setup, n int) { s.MidiChannels = n })},
	{"-a", "--audio-driver", "audio-driver", func(s *setup.Setup, v string) error { s.AudioDriver = v; return nil }},
	{"-j", "--connect-jack-outputs", "", func(s *setup.Setup, _ string) error { s.JackAutoConnect = true; return nil }},
	{"-L", "--audio-channels", "audio-channels", intValue(func(s *setup.Setup, n int) { s.AudioChannels = n })},
	{"-G", "--audio-groups", "audio-groups", intValue(func(s *setup.Setup, n int) { s.AudioGroups = n })},
	{"-z", "--audio-bufsize", "audio-bufsize", intValue(func(s *setup.Setup, n int) { s.AudioBufSize = n })},
	{"-c", "--audio-bufcount", "audio-bufcount", intValue(func(s *setup.Setup, n int) { s.AudioBufCount = n })},
	{"-r", "--sample-rate", "sample-rate", floatValue(func(s *setup.Setup, f float64) { s.SampleRate = f })},
	{"-R", "--reverb", "reverb", func(s *setup.Setup, v string) error { s.ReverbActive = switchValue(v); return nil }},
	{"-C", "--chorus", "chorus", func(s *setup.Setup, v string) error { s.ChorusActive = switchValue(v); return nil }},
	{"-g", "--gain", "gain", floatValue(func(s *setup.Setup, f float64) { s.Gain = f })},
	{"-s", "--server", "", func(s *setup.Setup, _ string) error { s.Server = true; return nil }},
	{"-i", "--no-shell", "", func(*setup.Setup, string) error { return nil }},
	{"-d", "--dump", "", func(s *setup.Setup, _ string) error { s.MidiDump = true; return nil }},
	{"-v", "--verbose", "", func(s *setup.Setup, _ string) error { s.Verbose = true; return nil }},
}

func lookup(name string) *flag {
	for i := range flags {
		if flags[i].short == name || flags[i].long == name {
			return &flags[i]
		}
	}
	return nil
}

func intValue(set func(*setup.Setup, int)) func(*setup.Setup, string) error {
	return func(s *setup.Setup, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		set(s, n)
		return nil
	}
}

func floatValue(set func(*setup.Setup, float64)) func(*setup.Setup, string) error {
	return func(s *setup.Setup, v string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return err
		}
		set(s, f)
		return nil
	}
}

// switchValue reads an on/off value: "0", "no" and "off" are off.
func switchValue(v string) bool {
	return !(v == "0" || v == "no" || v == "off")
}

// Parse applies args, which exclude the program name, to s. It stops at
// the first problem and returns a *UsageError, or ErrHelp or ErrVersion
// once the requested text was printed.
func (p *Parser) Parse(args []string, s *setup.Setup) error {
	soundFonts := 0

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, inline := strings.Cut(arg, "=")
		if !inline && i+1 < len(args) {
			value = args[i+1]
		}

		switch name {
		case "-h", "--help":
			printUsage(p.out, p.program)
			return ErrHelp

		case "-V", "--version":
			_, _ = io.WriteString(p.out, VersionText(p.version))
			return ErrVersion

		case "-o", "--option":
			if !inline {
				if i+1 >= len(args) {
					return p.fail(arg, nil, "Option -o requires an argument.")
				}
				i++
			}
			if err := p.setOption(value, s); err != nil {
				return p.fail(arg, err, fmt.Sprintf("Option -o failed to set '%s'.", value))
			}
			continue
		}

		if f := lookup(name); f != nil {
			if f.arg == "" {
				if err := f.apply(s, ""); err != nil {
					return p.fail(arg, err, fmt.Sprintf("Option %s failed.", f.short))
				}
				continue
			}
			if value == "" {
				return p.fail(arg, nil, fmt.Sprintf("Option %s requires an argument (%s).", f.short, f.arg))
			}
			if err := f.apply(s, value); err != nil {
				return p.fail(arg, err, fmt.Sprintf("Option %s requires a numeric argument (%s).", f.short, f.arg))
			}
			if !inline {
				i++
			}
			continue
		}

		switch p.detect(arg) {
		case sniff.SoundFont:
			soundFonts++
			if soundFonts == 1 {
				s.SoundFonts = nil
			}
			s.AddSoundFont(arg, "")
			p.logger.Debug("soundfont from command line", "path", arg)
		case sniff.MidiFile:
			s.MidiFiles = append(s.MidiFiles, arg)
			p.logger.Debug("midi file from command line", "path", arg)
		default:
			err := p.fail(arg, nil, fmt.Sprintf("Unknown option '%s'.", arg))
			printUsage(p.out, p.program)
			return err
		}
	}

	return nil
}

// setOption applies "name=value" to the setup's engine settings.
func (p *Parser) setOption(option string, s *setup.Setup) error {
	name, value, _ := strings.Cut(option, "=")
	return s.SetEngineOption(name, value)
}

func (p *Parser) fail(arg string, cause error, message string) *UsageError {
	_, _ = fmt.Fprintf(p.out, "%s\n\n", message)
	return &UsageError{Arg: arg, Message: message, Err: cause}
}
