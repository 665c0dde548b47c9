package registry

import (
	"net/http"
	"reflect"
	"strings"
)

// DefaultSuffix is the type name suffix stripped to obtain a base name.
const DefaultSuffix = "Handler"

var handlerFuncType = reflect.TypeOf(http.HandlerFunc(nil))

// Descriptor identifies a discovered handler type.
type Descriptor struct {
	// Namespace is the import path of the package declaring the type.
	Namespace string `json:"namespace" yaml:"namespace"`

	// Name is the simple type name.
	Name string `json:"name" yaml:"name"`

	// Type is the reflected type, if known.
	Type reflect.Type `json:"-" yaml:"-"`

	// Handler is an instance of the type ready to serve requests, if known.
	Handler http.Handler `json:"-" yaml:"-"`
}

// ID returns the fully qualified type name. Two descriptors with the same ID
// describe the same type.
func (d Descriptor) ID() string {
	return d.Namespace + "." + d.Name
}

// Tag returns the version tag of the descriptor: the last segment of its
// namespace.
func (d Descriptor) Tag() string {
	return TagOf(d.Namespace)
}

// Key is a normalized "{tag}.{baseName}" lookup key.
type Key string

// NewKey builds a key from a version tag and a base name.
func NewKey(tag, baseName string) Key {
	return Key(strings.ToLower(tag + "." + baseName))
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}

// KeyFor derives the key of d, stripping suffix from the type name.
func KeyFor(d Descriptor, suffix string) Key {
	return NewKey(d.Tag(), BaseName(d.Name, suffix))
}

// BaseName strips suffix from name, ignoring case. A name equal to the
// suffix is returned unchanged.
func BaseName(name, suffix string) string {
	if suffix == "" || len(name) <= len(suffix) {
		return name
	}
	if strings.EqualFold(name[len(name)-len(suffix):], suffix) {
		return name[:len(name)-len(suffix)]
	}
	return name
}

// TagOf returns the last segment of a package path or dotted namespace.
func TagOf(namespace string) string {
	if i := strings.LastIndexAny(namespace, "/."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// Describe returns the descriptor of a handler value. Pointer types are
// dereferenced; ok is false for unnamed types such as http.HandlerFunc
// closures or anonymous structs.
func Describe(h http.Handler) (Descriptor, bool) {
	if h == nil {
		return Descriptor{}, false
	}

	t := reflect.TypeOf(h)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() == "" || t.PkgPath() == "" || t == handlerFuncType {
		return Descriptor{}, false
	}

	return Descriptor{
		Namespace: t.PkgPath(),
		Name:      t.Name(),
		Type:      t,
		Handler:   h,
	}, true
}
