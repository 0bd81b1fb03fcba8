package config

import (
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/retain/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "retain.json"

	// YAMLConfigFileName is read when retain.json is absent.
	YAMLConfigFileName = "retain.yaml"

	// DefaultAddr is the default inspector listen address.
	DefaultAddr = "localhost:7070"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "retain"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "retain"

	// DefaultDemo is the demo mounted by the inspector.
	DefaultDemo = "counter"
)

// Config represents the complete retain.json configuration.
type Config struct {
	// Addr is the inspector listen address (host:port).
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	// Keyed enables keyed child matching.
	Keyed bool `json:"keyed,omitempty" yaml:"keyed,omitempty"`

	// Demo names the demo tree the inspector mounts.
	Demo string `json:"demo,omitempty" yaml:"demo,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Disabled turns off the collector and the /metrics endpoint.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// TracerName is the name passed to otel.Tracer.
	TracerName string `json:"tracerName,omitempty" yaml:"tracerName,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads the configuration from retain.json, or retain.yaml if there
// is no retain.json, in the given directory.
func Load(dir string) (*Config, error) {
	path, ok := find(dir)
	if !ok {
		path = filepath.Join(dir, ConfigFileName)
	}
	return LoadFile(path)
}

// LoadOrDefault loads retain.json from dir, or returns the defaults if the
// file does not exist.
func LoadOrDefault(dir string) (*Config, error) {
	if !Exists(dir) {
		return New(), nil
	}
	return Load(dir)
}

// LoadFile loads the configuration from a specific file path. Files
// ending in .yaml or .yml are parsed as YAML, anything else as JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigRead).
				WithDetail("No retain.json found in " + filepath.Dir(path)).
				Wrap(err)
		}
		return nil, errors.New(errors.CodeConfigRead).Wrap(err)
	}

	cfg := &Config{}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New(errors.CodeConfigRead).
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid JSON or YAML")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the path it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo saves the configuration to a specific path, as YAML if the path
// ends in .yaml or .yml.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		// Add newline at end of file
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New(errors.CodeConfigRead).Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigRead).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path the configuration was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in zero values.
func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Demo == "" {
		c.Demo = DefaultDemo
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return errors.New(errors.CodeInvalidConfig).
			WithDetail("addr must be host:port, got " + c.Addr).
			Wrap(err)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return errors.New(errors.CodeInvalidConfig).
			WithDetail("logLevel must be one of debug, info, warn, error; got " + c.LogLevel)
	}
	if strings.ContainsAny(c.Metrics.Namespace, " -.") {
		return errors.New(errors.CodeInvalidConfig).
			WithDetail("metrics.namespace must be a valid Prometheus name, got " + c.Metrics.Namespace)
	}
	return nil
}

// SlogLevel returns LogLevel as a slog.Level. Unknown levels map to Info.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Exists checks if a retain.json or retain.yaml file exists in the given
// directory.
func Exists(dir string) bool {
	_, ok := find(dir)
	return ok
}

func find(dir string) (string, bool) {
	for _, name := range []string{ConfigFileName, YAMLConfigFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
