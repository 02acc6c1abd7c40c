package loader

import (
	"errors"

	"github.com/pelletier/go-toml/v2"
)

// TOMLCodec encodes the settings tree as TOML tables.
type TOMLCodec struct{}

// Decode parses TOML data into a nested map.
// Integers decode as int64 and floats as float64.
func (TOMLCodec) Decode(data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, &ParseError{
				Line:    row,
				Column:  col,
				Message: derr.Error(),
				Err:     err,
			}
		}
		return nil, err
	}
	return tree, nil
}

// Encode serializes the tree; nested maps become tables.
func (TOMLCodec) Encode(tree map[string]any) ([]byte, error) {
	return toml.Marshal(tree)
}
