package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maintains the engine setting definitions and their current
// values.
type Registry struct {
	mu       sync.RWMutex
	settings map[string]*Setting
	sections map[string][]*Setting // Settings grouped by section
	values   map[string]any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		settings: make(map[string]*Setting),
		sections: make(map[string][]*Setting),
		values:   make(map[string]any),
	}
}

// NewWithDefaults creates a registry with the built-in engine settings.
func NewWithDefaults() *Registry {
	r := New()
	r.RegisterDefaults()
	return r
}

// Register adds a setting definition to the registry.
// Returns an error if a setting with the same name already exists.
func (r *Registry) Register(setting Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.settings[setting.Name]; exists {
		return fmt.Errorf("%w: %s", ErrSettingAlreadyRegistered, setting.Name)
	}
	if setting.Default != nil {
		if err := setting.Validate(setting.Default); err != nil {
			return &ValueError{Name: setting.Name, Value: setting.Default, Type: setting.Type, Err: err}
		}
	}

	s := &setting
	r.settings[setting.Name] = s

	section := extractSection(setting.Name)
	r.sections[section] = append(r.sections[section], s)

	return nil
}

// MustRegister registers a setting and panics on error.
func (r *Registry) MustRegister(setting Setting) {
	if err := r.Register(setting); err != nil {
		panic(err)
	}
}

// Get returns the setting definition for name, or nil.
func (r *Registry) Get(name string) *Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings[name]
}

// Has checks if a setting is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.settings[name]
	return exists
}

// Section returns all settings in a given section (e.g., "synth").
func (r *Registry) Section(name string) []*Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings := r.sections[name]
	result := make([]*Setting, len(settings))
	copy(result, settings)
	return result
}

// Sections returns all section names.
func (r *Registry) Sections() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.sections))
	for section := range r.sections {
		result = append(result, section)
	}
	sort.Strings(result)
	return result
}

// Set parses raw against the type of name and assigns it.
func (r *Registry) Set(name, raw string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.settings[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}

	value, err := s.Parse(raw)
	if err != nil {
		return &ValueError{Name: name, Value: raw, Type: s.Type, Err: err}
	}
	r.values[name] = value
	return nil
}

// SetNum assigns a numeric setting.
func (r *Registry) SetNum(name string, value float64) error {
	return r.assign(name, value)
}

// SetInt assigns an integer setting.
func (r *Registry) SetInt(name string, value int) error {
	return r.assign(name, value)
}

// SetStr assigns a string setting.
func (r *Registry) SetStr(name, value string) error {
	return r.assign(name, value)
}

func (r *Registry) assign(name string, value any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.settings[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}
	if err := s.Validate(value); err != nil {
		return &ValueError{Name: name, Value: value, Type: s.Type, Err: err}
	}
	r.values[name] = value
	return nil
}

// Value returns the current value of name, falling back to its default.
func (r *Registry) Value(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if v, ok := r.values[name]; ok {
		return v, true
	}
	if s, ok := r.settings[name]; ok {
		return s.Default, true
	}
	return nil, false
}

// Changed returns the assigned values that differ from their defaults.
func (r *Registry) Changed() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]any)
	for name, v := range r.values {
		if s := r.settings[name]; s != nil && s.Default != v {
			result[name] = v
		}
	}
	return result
}

// extractSection extracts the top-level section from a name.
func extractSection(name string) string {
	section, _, _ := strings.Cut(name, ".")
	return section
}
