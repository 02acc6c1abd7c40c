// Package registry holds the synthesizer engine settings: a closed set of
// named, typed values (numeric, integer or string) with defaults and
// ranges, addressed by dotted names such as "synth.gain".
//
// The command line's "-o name=value" resolves the name here before
// assigning, so an unknown name or a value of the wrong shape is caught
// before it reaches the engine.
package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// Setting defines one engine setting.
type Setting struct {
	// Name is the dotted setting name (e.g., "synth.polyphony").
	Name string

	// Type is the setting's value kind.
	Type SettingType

	// Default is the default value: float64, int or string by Type.
	Default any

	// Description is human-readable documentation.
	Description string

	// Minimum for numeric types (nil means no minimum).
	Minimum *float64

	// Maximum for numeric types (nil means no maximum).
	Maximum *float64

	// Options lists allowed values for string settings. Empty means any.
	Options []string
}

// Parse converts the textual form of a value to the setting's type and
// validates it.
func (s *Setting) Parse(raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	var value any
	switch s.Type {
	case TypeNumeric:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("expected number, got %q", raw)
		}
		value = f
	case TypeInteger:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("expected integer, got %q", raw)
		}
		value = n
	default:
		value = raw
	}

	if err := s.Validate(value); err != nil {
		return nil, err
	}
	return value, nil
}

// Validate checks if a value is valid for this setting.
func (s *Setting) Validate(value any) error {
	if err := s.validateType(value); err != nil {
		return err
	}

	switch s.Type {
	case TypeNumeric, TypeInteger:
		return s.validateRange(value)
	case TypeString:
		if len(s.Options) > 0 && !containsString(s.Options, value.(string)) {
			return fmt.Errorf("value must be one of: %s", strings.Join(s.Options, ", "))
		}
	}
	return nil
}

func (s *Setting) validateType(value any) error {
	switch s.Type {
	case TypeNumeric:
		if _, ok := value.(float64); !ok {
			return fmt.Errorf("expected number, got %T", value)
		}
	case TypeInteger:
		if _, ok := value.(int); !ok {
			return fmt.Errorf("expected integer, got %T", value)
		}
	case TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	}
	return nil
}

func (s *Setting) validateRange(value any) error {
	var f float64
	switch v := value.(type) {
	case int:
		f = float64(v)
	case float64:
		f = v
	default:
		return nil
	}

	if s.Minimum != nil && f < *s.Minimum {
		return fmt.Errorf("value %v is less than minimum %v", value, *s.Minimum)
	}
	if s.Maximum != nil && f > *s.Maximum {
		return fmt.Errorf("value %v is greater than maximum %v", value, *s.Maximum)
	}
	return nil
}

// SettingType is the value kind of an engine setting.
type SettingType uint8

const (
	// TypeNumeric is a floating-point setting.
	TypeNumeric SettingType = iota
	// TypeInteger is an integer setting. Engine toggles are integers 0/1.
	TypeInteger
	// TypeString is a string setting.
	TypeString
)

// String returns the string representation of the type.
func (t SettingType) String() string {
	switch t {
	case TypeNumeric:
		return "numeric"
	case TypeInteger:
		return "integer"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

func containsString(slice []string, value string) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}

// MinValue creates a pointer to a float64 for use as Minimum.
func MinValue(v float64) *float64 {
	return &v
}

// MaxValue creates a pointer to a float64 for use as Maximum.
func MaxValue(v float64) *float64 {
	return &v
}
