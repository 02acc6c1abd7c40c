package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSetting is returned for a name that is not registered.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrSettingAlreadyRegistered is returned when attempting to register a duplicate setting.
	ErrSettingAlreadyRegistered = errors.New("setting already registered")
)

// ValueError reports a value rejected by a registered setting.
type ValueError struct {
	Name  string
	Value any
	Type  SettingType
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("setting %s (%s): invalid value %v: %v", e.Name, e.Type, e.Value, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
