// Package sniff recognizes SoundFont and Standard MIDI files by content.
package sniff

import (
	"bytes"
	"io"
	"os"
)

// Kind is a recognized file type.
type Kind int

const (
	Unknown Kind = iota
	SoundFont
	MidiFile
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case SoundFont:
		return "soundfont"
	case MidiFile:
		return "midi"
	default:
		return "unknown"
	}
}

var (
	riffMagic = []byte("RIFF")
	sfbkMagic = []byte("sfbk")
	mthdMagic = []byte("MThd")
)

// headerSize covers "RIFF", the chunk size and the form type.
const headerSize = 12

// Detect classifies the content read from r.
func Detect(r io.Reader) Kind {
	var header [headerSize]byte
	n, _ := io.ReadFull(r, header[:])
	h := header[:n]

	switch {
	case len(h) >= headerSize && bytes.Equal(h[0:4], riffMagic) && bytes.Equal(h[8:12], sfbkMagic):
		return SoundFont
	case len(h) >= 4 && bytes.Equal(h[0:4], mthdMagic):
		return MidiFile
	default:
		return Unknown
	}
}

// DetectFile classifies the file at path. Anything that cannot be
// opened is Unknown.
func DetectFile(path string) Kind {
	f, err := os.Open(path)
	if err != nil {
		return Unknown
	}
	defer f.Close()
	return Detect(f)
}
