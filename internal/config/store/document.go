package store

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Document is a Backend that edits a JSON document in place.
type Document struct {
	data []byte
}

// NewDocument wraps raw JSON. Empty input starts an empty object.
func NewDocument(data []byte) *Document {
	if len(strings.TrimSpace(string(data))) == 0 {
		data = []byte("{}")
	}
	return &Document{data: append([]byte(nil), data...)}
}

// Bytes returns the document, pretty-printed.
func (d *Document) Bytes() []byte {
	return pretty.Pretty(d.data)
}

// Value returns the value at key.
// JSON numbers come back as float64.
func (d *Document) Value(key string) (any, bool) {
	parts := splitKey(key)
	if len(parts) == 0 {
		return nil, false
	}

	r := gjson.GetBytes(d.data, getPath(parts))
	if !r.Exists() || r.IsObject() {
		return nil, false
	}
	return r.Value(), true
}

// SetValue stores value at key.
func (d *Document) SetValue(key string, value any) error {
	parts := splitKey(key)
	if len(parts) == 0 {
		return ErrEmptyKey
	}

	// A value standing where a group is needed must go first, otherwise
	// sjson refuses to descend into it.
	for i := 1; i < len(parts); i++ {
		r := gjson.GetBytes(d.data, getPath(parts[:i]))
		if r.Exists() && !r.IsObject() {
			data, err := sjson.DeleteBytes(d.data, setPath(parts[:i]))
			if err != nil {
				return &PathError{Key: key, Err: err}
			}
			d.data = data
			break
		}
	}

	data, err := sjson.SetBytes(d.data, setPath(parts), value)
	if err != nil {
		return &PathError{Key: key, Err: err}
	}
	d.data = data
	return nil
}

// Remove deletes key and everything below it.
func (d *Document) Remove(key string) error {
	parts := splitKey(key)
	if len(parts) == 0 {
		return ErrEmptyKey
	}

	data, err := sjson.DeleteBytes(d.data, setPath(parts))
	if err != nil {
		return &PathError{Key: key, Err: err}
	}
	d.data = data
	return nil
}

// ChildKeys lists the value keys directly under group.
func (d *Document) ChildKeys(group string) []string {
	return d.children(group, false)
}

// ChildGroups lists the group keys directly under group.
func (d *Document) ChildGroups(group string) []string {
	return d.children(group, true)
}

func (d *Document) children(group string, groups bool) []string {
	var r gjson.Result
	if parts := splitKey(group); len(parts) == 0 {
		r = gjson.ParseBytes(d.data)
	} else {
		r = gjson.GetBytes(d.data, getPath(parts))
	}
	if !r.IsObject() {
		return nil
	}

	var result []string
	r.ForEach(func(k, v gjson.Result) bool {
		if v.IsObject() == groups {
			result = append(result, k.String())
		}
		return true
	})
	sort.Strings(result)
	return result
}

// getPath builds a gjson path from key segments.
func getPath(parts []string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = gjson.Escape(p)
	}
	return strings.Join(escaped, ".")
}

// setPath builds an sjson path. Numeric segments are forced to object
// keys with a leading ':' so sjson never turns a group into an array.
func setPath(parts []string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		switch {
		case isIndex(p):
			escaped[i] = ":" + p
		case strings.HasPrefix(p, ":"):
			escaped[i] = `\` + gjson.Escape(p)
		default:
			escaped[i] = gjson.Escape(p)
		}
	}
	return strings.Join(escaped, ".")
}

func isIndex(s string) bool {
	if s == "-1" {
		return true
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
