package version

import (
	"errors"
	"iter"
	"slices"
	"sort"
	"time"
)

// ErrVersionNotSupported is returned when no known version is effective
// as of the requested date.
var ErrVersionNotSupported = errors.New("version is not supported")

// Version is a named API version and the date it becomes effective.
type Version struct {
	Effective time.Time `json:"effective" yaml:"effective"`
	Tag       string    `json:"tag" yaml:"tag"`
}

// Index is an immutable list of versions sorted ascending by effective date.
// It is safe for concurrent use.
type Index struct {
	versions []Version
}

// NewIndex returns an index over the given versions, which may be passed
// in any order. Versions with equal effective dates keep their input order.
func NewIndex(versions ...Version) *Index {
	sorted := slices.Clone(versions)
	slices.SortStableFunc(sorted, func(a, b Version) int {
		return a.Effective.Compare(b.Effective)
	})

	return &Index{versions: sorted}
}

// Len returns the number of versions in the index.
func (i *Index) Len() int {
	return len(i.versions)
}

// Versions returns a copy of the versions, oldest first.
func (i *Index) Versions() []Version {
	return slices.Clone(i.versions)
}

// Latest returns the most recent version.
func (i *Index) Latest() (Version, bool) {
	if len(i.versions) == 0 {
		return Version{}, false
	}
	return i.versions[len(i.versions)-1], true
}

// Resolve returns the version with the greatest effective date that is not
// after date.
func (i *Index) Resolve(date time.Time) (Version, error) {
	pos, err := i.position(date)
	if err != nil {
		return Version{}, err
	}
	return i.versions[pos], nil
}

// ChainAt returns the version chain starting at the version effective as of
// date and continuing backward to the oldest version.
func (i *Index) ChainAt(date time.Time) (iter.Seq[Version], error) {
	pos, err := i.position(date)
	if err != nil {
		return nil, err
	}
	return i.chainFrom(pos), nil
}

// Chain returns the version chain starting at the latest version.
// It yields nothing for an empty index.
func (i *Index) Chain() iter.Seq[Version] {
	return i.chainFrom(len(i.versions) - 1)
}

// position finds the index of the last version effective on or before date.
func (i *Index) position(date time.Time) (int, error) {
	// First version strictly after date; everything before it qualifies.
	n := sort.Search(len(i.versions), func(k int) bool {
		return i.versions[k].Effective.After(date)
	})
	if n == 0 {
		return 0, ErrVersionNotSupported
	}
	return n - 1, nil
}

func (i *Index) chainFrom(pos int) iter.Seq[Version] {
	return func(yield func(Version) bool) {
		for k := pos; k >= 0; k-- {
			if !yield(i.versions[k]) {
				return
			}
		}
	}
}
