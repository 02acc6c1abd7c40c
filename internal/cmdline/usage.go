package cmdline

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

const (
	title    = "Qsynth"
	subtitle = "A fluidsynth Qt GUI Interface"
)

// usageLines pairs each option synopsis with its help text, in display
// order.
var usageLines = [][2]string{
	{"-n, --no-midi-in", "Don't create a midi driver to read MIDI input events [default = yes]"},
	{"-m, --midi-driver=[label]", "The name of the midi driver to use [oss,alsa,alsa_seq,...]"},
	{"-K, --midi-channels=[num]", "The number of midi channels [default = 16]"},
	{"-a, --audio-driver=[label]", "The audio driver [alsa,jack,oss,dsound,...]"},
	{"-j, --connect-jack-outputs", "Attempt to connect the jack outputs to the physical ports"},
	{"-L, --audio-channels=[num]", "The number of stereo audio channels [default = 1]"},
	{"-G, --audio-groups=[num]", "The number of audio groups [default = 1]"},
	{"-z, --audio-bufsize=[size]", "Size of each audio buffer"},
	{"-c, --audio-bufcount=[count]", "Number of audio buffers"},
	{"-r, --sample-rate=[rate]", "Set the sample rate"},
	{"-R, --reverb=[flag]", "Turn the reverb on or off [1|0|yes|no|on|off, default = on]"},
	{"-C, --chorus=[flag]", "Turn the chorus on or off [1|0|yes|no|on|off, default = on]"},
	{"-g, --gain=[gain]", "Set the master gain [0 < gain < 10, default = 0.2]"},
	{"-o, --option [name=value]", "Define a setting name=value"},
	{"-s, --server", "Create and start server [default = no]"},
	{"-i, --no-shell", "Don't read commands from the shell [ignored]"},
	{"-d, --dump", "Dump midi router events"},
	{"-v, --verbose", "Print out verbose messages about midi events"},
	{"-h, --help", "Show help about command line options"},
	{"-V, --version", "Show version information"},
}

// Usage returns the full usage text for program.
func Usage(program string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [options] [soundfonts] [midifiles]\n\n", program)
	fmt.Fprintf(&b, "%s - %s\n\n", title, subtitle)
	b.WriteString("Options:\n\n")
	for _, line := range usageLines {
		fmt.Fprintf(&b, "  %s\n\t%s\n\n", line[0], line[1])
	}
	return b.String()
}

// VersionText returns the version report for version.
func VersionText(version string) string {
	return fmt.Sprintf("Go: %s\n%s: %s\n", runtime.Version(), title, version)
}

func printUsage(w io.Writer, program string) {
	_, _ = io.WriteString(w, Usage(program))
}
