package registry

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Option configures a Registry.
type Option func(*Registry)

// WithSuffix sets the type name suffix stripped when deriving base names.
// An empty suffix keeps type names unchanged.
func WithSuffix(suffix string) Option {
	return func(r *Registry) {
		r.suffix = suffix
	}
}

// WithLogger sets the logger used to report build results.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry is a lazily built, read-only table of handler descriptors.
// It is safe for concurrent use; the table is built at most once.
type Registry struct {
	source Source
	suffix string
	logger *zap.Logger

	table func() map[Key]Descriptor
}

// New returns a registry over src. Nothing is read from src until the
// table is first accessed.
func New(src Source, opts ...Option) *Registry {
	r := &Registry{
		source: src,
		suffix: DefaultSuffix,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.table = sync.OnceValue(r.build)

	return r
}

// Mapping returns a copy of the complete key to descriptor table,
// building it on first use.
func (r *Registry) Mapping() map[Key]Descriptor {
	return maps.Clone(r.table())
}

// Lookup returns the descriptor registered for a version tag and base name.
func (r *Registry) Lookup(tag, baseName string) (Descriptor, bool) {
	d, ok := r.table()[NewKey(tag, baseName)]
	return d, ok
}

// Get returns the descriptor registered under key. The key is normalized
// before lookup.
func (r *Registry) Get(key Key) (Descriptor, bool) {
	d, ok := r.table()[Key(strings.ToLower(string(key)))]
	return d, ok
}

// Len returns the number of reachable descriptors.
func (r *Registry) Len() int {
	return len(r.table())
}

// build scans the source twice: the first pass collects the distinct types
// behind every key, the second keeps only keys backed by exactly one type.
func (r *Registry) build() map[Key]Descriptor {
	var descriptors []Descriptor
	if r.source != nil {
		descriptors = r.source.HandlerTypes()
	}

	owners := make(map[Key]map[string]struct{}, len(descriptors))
	for _, d := range descriptors {
		key := KeyFor(d, r.suffix)
		ids, ok := owners[key]
		if !ok {
			ids = make(map[string]struct{}, 1)
			owners[key] = ids
		}
		ids[d.ID()] = struct{}{}
	}

	table := make(map[Key]Descriptor, len(owners))
	for _, d := range descriptors {
		key := KeyFor(d, r.suffix)
		if len(owners[key]) != 1 {
			continue
		}
		if _, ok := table[key]; !ok {
			table[key] = d
		}
	}

	for key, ids := range owners {
		if len(ids) < 2 {
			continue
		}
		r.logger.Warn("ambiguous handler registration excluded",
			zap.Stringer("key", key),
			zap.Strings("types", slices.Sorted(maps.Keys(ids))),
		)
	}

	r.logger.Debug("handler registry built",
		zap.Int("discovered", len(descriptors)),
		zap.Int("registered", len(table)),
		zap.Int("ambiguous", len(owners)-len(table)),
	)

	return table
}
