package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a program version as written to /Program/Version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion reads "major.minor.patch". Missing parts are zero and any
// suffix after the numbers ("0.9.4-dev") is ignored.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexAny(s, "-+ "); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return Version{}, fmt.Errorf("invalid version %q", s)
	}

	var parts [3]int
	for i, field := range strings.SplitN(s, ".", 3) {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q", s)
		}
		parts[i] = n
	}
	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// String returns the version as a string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare compares two versions.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return sign(v.Major - other.Major)
	case v.Minor != other.Minor:
		return sign(v.Minor - other.Minor)
	default:
		return sign(v.Patch - other.Patch)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
