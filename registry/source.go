package registry

import "net/http"

// Source enumerates handler types. It is consulted once, when a Registry
// builds its table.
type Source interface {
	HandlerTypes() []Descriptor
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() []Descriptor

// HandlerTypes implements Source.
func (f SourceFunc) HandlerTypes() []Descriptor {
	return f()
}

// StaticSource is a fixed list of descriptors.
type StaticSource []Descriptor

// HandlerTypes implements Source.
func (s StaticSource) HandlerTypes() []Descriptor {
	return s
}

// Discover returns a Source describing the given handler values. Handlers
// whose type is unnamed are skipped.
func Discover(handlers ...http.Handler) Source {
	descriptors := make(StaticSource, 0, len(handlers))
	for _, h := range handlers {
		if d, ok := Describe(h); ok {
			descriptors = append(descriptors, d)
		}
	}
	return descriptors
}
