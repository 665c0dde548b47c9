// Package registry maps discovered handler types to a composite key made of
// their version tag and base name.
//
// A handler declared as
//
//	package v2 // import "example.com/api/v2"
//
//	type UsersHandler struct{}
//
// is registered under the key "v2.users": the tag is the last segment of the
// declaring package path and the base name is the type name with the
// conventional "Handler" suffix removed. Keys are case-insensitive.
//
// The table is built once, on first access, from a Source. When two or more
// distinct types produce the same key, the key is left out of the table
// entirely and a warning is logged; such handlers are unreachable by key.
package registry
