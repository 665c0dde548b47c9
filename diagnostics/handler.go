package diagnostics

import (
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/vitalvas/vroute/mux"
	"github.com/vitalvas/vroute/registry"
	"github.com/vitalvas/vroute/version"
)

// DateLayout is the layout used to render effective dates.
const DateLayout = "2006-01-02"

// HandleConfig configures the endpoints registered by Handle.
type HandleConfig struct {
	// MappingJSON is the path of the JSON mapping endpoint
	// (default: "mapping.json"). Set to "-" to disable.
	//
	// Relative paths are joined with the base path, absolute paths
	// (starting with "/") are used as-is.
	MappingJSON string

	// MappingYAML is the path of the YAML mapping endpoint
	// (default: "mapping.yaml"). Set to "-" to disable.
	MappingYAML string

	// Versions is the path of the version list endpoint
	// (default: "versions.json"). Set to "-" to disable.
	Versions string
}

func (cfg HandleConfig) mappingJSON() string {
	if cfg.MappingJSON == "" {
		return "mapping.json"
	}
	return cfg.MappingJSON
}

func (cfg HandleConfig) mappingYAML() string {
	if cfg.MappingYAML == "" {
		return "mapping.yaml"
	}
	return cfg.MappingYAML
}

func (cfg HandleConfig) versions() string {
	if cfg.Versions == "" {
		return "versions.json"
	}
	return cfg.Versions
}

// MappingEntry is one row of the registry mapping.
type MappingEntry struct {
	Key  string `json:"key" yaml:"key"`
	Tag  string `json:"tag" yaml:"tag"`
	Type string `json:"type" yaml:"type"`
}

// VersionEntry is one row of the version list.
type VersionEntry struct {
	Effective string `json:"effective" yaml:"effective"`
	Tag       string `json:"tag" yaml:"tag"`
}

// Mapping returns the registry table as rows sorted by key.
// Building the rows triggers the registry build if it has not run yet.
func Mapping(reg *registry.Registry) []MappingEntry {
	table := reg.Mapping()

	rows := make([]MappingEntry, 0, len(table))
	for key, d := range table {
		rows = append(rows, MappingEntry{Key: key.String(), Tag: d.Tag(), Type: d.ID()})
	}

	slices.SortFunc(rows, func(a, b MappingEntry) int {
		return strings.Compare(a.Key, b.Key)
	})

	return rows
}

// Versions returns the index entries from newest to oldest.
func Versions(idx *version.Index) []VersionEntry {
	rows := make([]VersionEntry, 0, idx.Len())
	for v := range idx.Chain() {
		rows = append(rows, VersionEntry{Effective: v.Effective.Format(DateLayout), Tag: v.Tag})
	}
	return rows
}

func resolvePath(basePath, filename string) string {
	if strings.HasPrefix(filename, "/") {
		return filename
	}
	if basePath == "" {
		return "/" + filename
	}
	return basePath + "/" + filename
}

// Handle registers the diagnostics endpoints on r under basePath.
// A nil registry or index disables the endpoints that need it.
func Handle(r *mux.Router, basePath string, reg *registry.Registry, idx *version.Index, cfg *HandleConfig) {
	if cfg == nil {
		cfg = &HandleConfig{}
	}
	basePath = strings.TrimRight(basePath, "/")

	if reg != nil {
		rows := sync.OnceValue(func() []MappingEntry { return Mapping(reg) })

		if file := cfg.mappingJSON(); file != "-" {
			r.HandleFunc(resolvePath(basePath, file), func(w http.ResponseWriter, _ *http.Request) {
				mux.ResponseJSON(w, http.StatusOK, rows())
			}).Methods(http.MethodGet, http.MethodHead)
		}

		if file := cfg.mappingYAML(); file != "-" {
			r.HandleFunc(resolvePath(basePath, file), func(w http.ResponseWriter, _ *http.Request) {
				mux.ResponseYAML(w, http.StatusOK, rows())
			}).Methods(http.MethodGet, http.MethodHead)
		}
	}

	if idx != nil {
		if file := cfg.versions(); file != "-" {
			rows := Versions(idx)
			r.HandleFunc(resolvePath(basePath, file), func(w http.ResponseWriter, _ *http.Request) {
				mux.ResponseJSON(w, http.StatusOK, rows)
			}).Methods(http.MethodGet, http.MethodHead)
		}
	}
}
