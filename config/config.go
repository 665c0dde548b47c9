// Package config loads the settings of a versioned API server from a YAML
// file and VROUTE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vitalvas/vroute/registry"
	"github.com/vitalvas/vroute/selector"
	"github.com/vitalvas/vroute/version"
	"golang.org/x/net/http/httpguts"
)

// EnvPrefix is the prefix of environment variables overriding file values.
const EnvPrefix = "VROUTE"

// Config is the server configuration.
type Config struct {
	Listen          string        `mapstructure:"listen"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// Header is the request header carrying the requested version date.
	Header string `mapstructure:"header"`

	// InvalidHeader is "reject" or "latest".
	InvalidHeader string `mapstructure:"invalid_header"`

	// Suffix is stripped from handler type names when building registry keys.
	Suffix string `mapstructure:"suffix"`

	// DiagnosticsPath is the base path of the mapping endpoints. Empty
	// disables them.
	DiagnosticsPath string `mapstructure:"diagnostics_path"`

	// Versions declares the version index inline. Mutually exclusive with
	// VersionsFile.
	Versions []version.FileEntry `mapstructure:"versions"`

	// VersionsFile points to a YAML version file.
	VersionsFile string `mapstructure:"versions_file"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures the logger built by NewLogger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Listen:          ":8080",
		ShutdownTimeout: 10 * time.Second,
		Header:          selector.DefaultHeader,
		InvalidHeader:   selector.RejectInvalidHeader.String(),
		Suffix:          registry.DefaultSuffix,
		DiagnosticsPath: "/_versions",
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Policy returns the parsed invalid header policy.
func (c *Config) Policy() (selector.InvalidHeaderPolicy, error) {
	return selector.ParseInvalidHeaderPolicy(c.InvalidHeader)
}

// Index builds the version index from the inline list or the version file.
func (c *Config) Index() (*version.Index, error) {
	var (
		versions []version.Version
		err      error
	)

	if c.VersionsFile != "" {
		versions, err = version.LoadFile(c.VersionsFile)
	} else {
		versions, err = version.File{Versions: c.Versions}.Parse()
	}
	if err != nil {
		return nil, fmt.Errorf("config: versions: %w", err)
	}

	return version.NewIndex(versions...), nil
}

func validate(cfg *Config) error {
	if !httpguts.ValidHeaderFieldName(cfg.Header) {
		return fmt.Errorf("config: invalid header name %q", cfg.Header)
	}

	if _, err := cfg.Policy(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if cfg.VersionsFile != "" && len(cfg.Versions) > 0 {
		return errors.New("config: versions and versions_file are mutually exclusive")
	}

	if cfg.VersionsFile == "" && len(cfg.Versions) == 0 {
		return errors.New("config: no versions declared")
	}

	if cfg.ShutdownTimeout < 0 {
		return fmt.Errorf("config: negative shutdown_timeout %s", cfg.ShutdownTimeout)
	}

	return nil
}
