package version

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ParseDate parses s with the layouts accepted by the cast package
// (RFC 3339, ISO 8601 dates, RFC 1123 and friends). Values without a zone
// are interpreted in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("version: empty date")
	}

	t, err := cast.ToTimeInDefaultLocationE(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("version: invalid date %q: %w", s, err)
	}

	return t, nil
}

// MustParseDate is like ParseDate but panics on error. It is intended for
// static version tables.
func MustParseDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// File is the YAML layout of a version file.
type File struct {
	Versions []FileEntry `yaml:"versions"`
}

// FileEntry is a single version declaration. Effective is kept as a string
// so that any date layout accepted by ParseDate can be used.
type FileEntry struct {
	Effective string `yaml:"effective" mapstructure:"effective"`
	Tag       string `yaml:"tag" mapstructure:"tag"`
}

// Parse validates the entries and converts them to versions, preserving
// their order.
func (f File) Parse() ([]Version, error) {
	versions := make([]Version, 0, len(f.Versions))
	seen := make(map[string]bool, len(f.Versions))

	for i, e := range f.Versions {
		tag := strings.TrimSpace(e.Tag)
		if tag == "" {
			return nil, fmt.Errorf("version: entry %d: missing tag", i)
		}

		folded := strings.ToLower(tag)
		if seen[folded] {
			return nil, fmt.Errorf("version: entry %d: duplicate tag %q", i, tag)
		}
		seen[folded] = true

		effective, err := ParseDate(e.Effective)
		if err != nil {
			return nil, fmt.Errorf("version: entry %d (%s): %w", i, tag, err)
		}

		versions = append(versions, Version{Effective: effective, Tag: tag})
	}

	return versions, nil
}

// ParseYAML decodes a version file.
func ParseYAML(b []byte) ([]Version, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("version: decode: %w", err)
	}
	if len(f.Versions) == 0 {
		return nil, errors.New("version: no versions declared")
	}

	return f.Parse()
}

// LoadFile reads and decodes the version file at path.
func LoadFile(path string) ([]Version, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAML(b)
}
