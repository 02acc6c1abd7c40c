// Package loader provides settings file loading and saving for qsynth.
//
// The loader package handles encoding the settings tree in various formats
// (TOML, YAML) and reading and writing the backing file through a
// FileSystem abstraction.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies an on-disk settings format.
type Format uint8

const (
	// FormatTOML is the default settings format.
	FormatTOML Format = iota
	// FormatYAML stores the settings tree as YAML.
	FormatYAML
	// FormatJSON stores the settings tree as a raw JSON document.
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatFor picks a format from the file extension of path.
// Unknown extensions fall back to TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatTOML
	}
}

// Codec converts between encoded bytes and a nested value map.
type Codec interface {
	// Decode parses data into a nested map. Empty input yields an empty map.
	Decode(data []byte) (map[string]any, error)
	// Encode serializes a nested map.
	Encode(data map[string]any) ([]byte, error)
}

// CodecFor returns the tree codec for a format.
// JSON has no tree codec; the store keeps JSON files as raw documents.
func CodecFor(f Format) (Codec, error) {
	switch f {
	case FormatTOML:
		return TOMLCodec{}, nil
	case FormatYAML:
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoCodec, f)
	}
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
	// WriteFile replaces the file at path, creating parent directories.
	WriteFile(path string, data []byte) error
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// WriteFile writes data to a temporary sibling and renames it over path,
// so readers never observe a partially written settings file.
func (OSFS) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// ReadFile reads path from fsys. A missing file is not an error:
// it returns nil, nil.
func ReadFile(fsys FileSystem, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}
	return data, nil
}

// FileLoader loads and saves a settings tree in one file.
type FileLoader struct {
	fs    FileSystem
	path  string
	codec Codec
}

// New creates a loader for path, choosing the codec from its extension.
func New(path string) (*FileLoader, error) {
	codec, err := CodecFor(FormatFor(path))
	if err != nil {
		return nil, err
	}
	return NewWithFS(DefaultFS(), path, codec), nil
}

// NewWithFS creates a loader with a custom file system and codec.
func NewWithFS(fsys FileSystem, path string, codec Codec) *FileLoader {
	return &FileLoader{
		fs:    fsys,
		path:  path,
		codec: codec,
	}
}

// Path returns the file path of the loader.
func (l *FileLoader) Path() string {
	return l.path
}

// Load reads the settings tree from the configured path.
// Returns an empty map if the file doesn't exist.
func (l *FileLoader) Load() (map[string]any, error) {
	data, err := ReadFile(l.fs, l.path)
	if err != nil {
		return nil, err
	}
	return l.decode(data)
}

// Save encodes tree and writes it to the configured path.
func (l *FileLoader) Save(tree map[string]any) error {
	data, err := l.codec.Encode(tree)
	if err != nil {
		return fmt.Errorf("encoding settings %s: %w", l.path, err)
	}
	if err := l.fs.WriteFile(l.path, data); err != nil {
		return fmt.Errorf("writing settings file %s: %w", l.path, err)
	}
	return nil
}

func (l *FileLoader) decode(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return make(map[string]any), nil
	}

	tree, err := l.codec.Decode(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = l.path
			return nil, pe
		}
		return nil, &ParseError{Path: l.path, Message: err.Error(), Err: err}
	}
	if tree == nil {
		tree = make(map[string]any)
	}
	return tree, nil
}
