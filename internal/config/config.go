// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/sttp/internal/commands"
	"github.com/jeranaias/sttp/internal/util"
)

// CurrentVersion is written into newly generated config files.
const CurrentVersion = "1"

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete sttp configuration.
type Config struct {
	Version string `toml:"version" json:"version" yaml:"version"`

	// Navigation controls how input is split and where redirects open
	Navigation NavigationConfig `toml:"navigation" json:"navigation" yaml:"navigation"`

	// Suggestions controls the live suggestion list
	Suggestions SuggestionsConfig `toml:"suggestions" json:"suggestions" yaml:"suggestions"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui" yaml:"ui"`

	// Log configuration
	Log LogConfig `toml:"log" json:"log" yaml:"log"`

	// Launch controls how URLs are handed to the browser
	Launch LaunchConfig `toml:"launch" json:"launch" yaml:"launch"`

	// Storage holds the preference and statistics database location
	Storage StorageConfig `toml:"storage" json:"storage" yaml:"storage"`

	// Commands is the shortcut table. Empty means the built-in table.
	Commands commands.Table `toml:"commands" json:"commands" yaml:"commands"`

	// Auxiliary is the suggestion data that is not tied to a command
	Auxiliary commands.Auxiliary `toml:"auxiliary" json:"auxiliary" yaml:"auxiliary"`

	// source is the file the config was loaded from, if any
	source string
}

// NavigationConfig contains input parsing and redirect settings.
type NavigationConfig struct {
	// SearchDelimiter separates a key from a search term ("g:term")
	SearchDelimiter string `toml:"search_delimiter" json:"search_delimiter" yaml:"search_delimiter"`
	// PathDelimiter separates a key from a path ("g/user/repo")
	PathDelimiter string `toml:"path_delimiter" json:"path_delimiter" yaml:"path_delimiter"`
	// InstantRedirect opens a bare key as soon as it is typed
	InstantRedirect bool `toml:"instant_redirect" json:"instant_redirect" yaml:"instant_redirect"`
	// OpenInNewTab asks the opener for a new tab where it supports it
	OpenInNewTab bool `toml:"open_in_new_tab" json:"open_in_new_tab" yaml:"open_in_new_tab"`
	// KeyPrefixedPaths lists keys whose path redirects keep "key/"
	KeyPrefixedPaths []string `toml:"key_prefixed_paths" json:"key_prefixed_paths" yaml:"key_prefixed_paths"`
}

// SuggestionsConfig contains suggestion list settings.
type SuggestionsConfig struct {
	Enabled bool `toml:"enabled" json:"enabled" yaml:"enabled"`
	// Max is the number of suggestions shown (1-20)
	Max int `toml:"max" json:"max" yaml:"max"`
}

// UIConfig contains display preferences.
type UIConfig struct {
	// Theme is "dark", "light" or "auto"
	Theme string `toml:"theme" json:"theme" yaml:"theme"`
	// InvertedColors swaps the foreground and background of the theme
	InvertedColors bool `toml:"inverted_colors" json:"inverted_colors" yaml:"inverted_colors"`
	// ShowKeys renders command keys next to their names
	ShowKeys bool `toml:"show_keys" json:"show_keys" yaml:"show_keys"`
	// TwentyFourHour switches the clock to 24h format
	TwentyFourHour bool `toml:"twenty_four_hour" json:"twenty_four_hour" yaml:"twenty_four_hour"`
	// ClockDelimiter separates hours and minutes
	ClockDelimiter string `toml:"clock_delimiter" json:"clock_delimiter" yaml:"clock_delimiter"`
	ShowDate       bool   `toml:"show_date" json:"show_date" yaml:"show_date"`
	// ShowClockIndicators shows AM/PM in 12h mode
	ShowClockIndicators bool `toml:"show_clock_indicators" json:"show_clock_indicators" yaml:"show_clock_indicators"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is "debug", "info", "warn" or "error"
	Level string `toml:"level" json:"level" yaml:"level"`
	// Format is "text" or "json"
	Format string `toml:"format" json:"format" yaml:"format"`
}

// LaunchConfig contains browser launch settings.
type LaunchConfig struct {
	// Opener overrides the platform opener (e.g., "firefox --new-tab")
	Opener string `toml:"opener" json:"opener" yaml:"opener"`
	// Rate is the number of URLs opened per second in batch launches
	Rate float64 `toml:"rate" json:"rate" yaml:"rate"`
	// Burst is the number of URLs opened before pacing kicks in
	Burst int `toml:"burst" json:"burst" yaml:"burst"`
}

// StorageConfig contains database settings.
type StorageConfig struct {
	// Path to the SQLite database (empty = ~/.sttp/sttp.db)
	Path string `toml:"path" json:"path" yaml:"path"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Navigation: NavigationConfig{
			SearchDelimiter:  ":",
			PathDelimiter:    "/",
			InstantRedirect:  false,
			OpenInNewTab:     true,
			KeyPrefixedPaths: []string{"r", "u"},
		},
		Suggestions: SuggestionsConfig{
			Enabled: true,
			Max:     5,
		},
		UI: UIConfig{
			Theme:               "dark",
			ClockDelimiter:      ":",
			ShowDate:            true,
			ShowClockIndicators: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Launch: LaunchConfig{
			Rate:  4,
			Burst: 1,
		},
		Commands:  commands.DefaultTable(),
		Auxiliary: commands.DefaultAuxiliary(),
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the sttp configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".sttp"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	return configPath("config.toml")
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	return configPath("config.json")
}

// ConfigPathYAML returns the path to the YAML config file.
func ConfigPathYAML() (string, error) {
	return configPath("config.yaml")
}

func configPath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// STTP_CONFIG names an explicit file. Otherwise TOML is tried first, then
// JSON, then YAML, falling back to defaults. Environment overrides are
// applied last.
func Load() (*Config, error) {
	if path := os.Getenv("STTP_CONFIG"); path != "" {
		return LoadFromPath(path)
	}

	var loadErr error
	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON, ConfigPathYAML} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err := LoadFromPath(path)
		if err != nil {
			// A broken file should not hide a working one further down.
			loadErr = errors.Join(loadErr, err)
			continue
		}
		return cfg, nil
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Return defaults (with any load error for informational purposes)
	return cfg, loadErr
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	resetCollections(cfg)
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	resetCollections(cfg)
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadYAML loads configuration from a YAML file.
func LoadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read YAML file: %w", err)
	}
	resetCollections(cfg)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode YAML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads configuration from a specific file path with full
// validation. The format is chosen by extension; anything other than
// .json, .yaml or .yml is read as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = LoadJSON(cfg, path)
	case ".yaml", ".yml":
		err = LoadYAML(cfg, path)
	default:
		err = LoadTOML(cfg, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	cfg.source = path

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// resetCollections clears slices and maps before decoding so that file
// contents replace the defaults instead of merging element by element.
func resetCollections(cfg *Config) {
	cfg.Commands = nil
	cfg.Auxiliary = commands.Auxiliary{}
	cfg.Navigation.KeyPrefixedPaths = nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	// Navigation
	if cfg.Navigation.SearchDelimiter == "" {
		cfg.Navigation.SearchDelimiter = defaults.Navigation.SearchDelimiter
	}
	if cfg.Navigation.PathDelimiter == "" {
		cfg.Navigation.PathDelimiter = defaults.Navigation.PathDelimiter
	}
	if cfg.Navigation.KeyPrefixedPaths == nil {
		cfg.Navigation.KeyPrefixedPaths = defaults.Navigation.KeyPrefixedPaths
	}

	// Suggestions
	if cfg.Suggestions.Max == 0 {
		cfg.Suggestions.Max = defaults.Suggestions.Max
	}

	// UI
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.ClockDelimiter == "" {
		cfg.UI.ClockDelimiter = defaults.UI.ClockDelimiter
	}

	// Log
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Log.Format
	}

	// Launch
	if cfg.Launch.Rate == 0 {
		cfg.Launch.Rate = defaults.Launch.Rate
	}
	if cfg.Launch.Burst == 0 {
		cfg.Launch.Burst = defaults.Launch.Burst
	}

	// Commands and suggestion data
	if len(cfg.Commands) == 0 {
		cfg.Commands = defaults.Commands
	}
	if cfg.Auxiliary.PopularSites == nil {
		cfg.Auxiliary.PopularSites = defaults.Auxiliary.PopularSites
	}
	if cfg.Auxiliary.KeyedHints == nil {
		cfg.Auxiliary.KeyedHints = defaults.Auxiliary.KeyedHints
	}
	if cfg.Auxiliary.SearchPhrases == nil {
		cfg.Auxiliary.SearchPhrases = defaults.Auxiliary.SearchPhrases
	}

	return nil
}

// Source returns the file the configuration was loaded from, or "" for
// built-in defaults.
func (c *Config) Source() string {
	return c.source
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration back to the file it came from, or to the
// default TOML file.
func Save(cfg *Config) error {
	path := cfg.source
	if path == "" {
		var err error
		if path, err = ConfigPathTOML(); err != nil {
			return err
		}
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the configuration to path in the format implied by its
// extension.
func SaveTo(cfg *Config, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SaveJSON(cfg, path)
	case ".yaml", ".yml":
		return SaveYAML(cfg, path)
	default:
		return SaveTOML(cfg, path)
	}
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# sttp configuration file\n")
	buf.WriteString("# Generated by sttp - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveYAML saves the configuration to a YAML file.
func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any error concerns field.
func (e ValidateErrors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

var (
	validThemes    = []string{"dark", "light", "auto"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
	validFormats   = []string{"text", "json"}
)

// Validate validates the configuration and returns any errors as
// ValidateErrors.
func (c *Config) Validate() error {
	var errs ValidateErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	// Navigation
	if msg := checkDelimiter(c.Navigation.SearchDelimiter); msg != "" {
		add("navigation.search_delimiter", "%s", msg)
	}
	if msg := checkDelimiter(c.Navigation.PathDelimiter); msg != "" {
		add("navigation.path_delimiter", "%s", msg)
	}
	if c.Navigation.SearchDelimiter != "" && c.Navigation.SearchDelimiter == c.Navigation.PathDelimiter {
		add("navigation.path_delimiter", "must differ from search_delimiter %q", c.Navigation.SearchDelimiter)
	}

	// Suggestions
	if c.Suggestions.Max < 1 || c.Suggestions.Max > 20 {
		add("suggestions.max", "must be between 1 and 20, got %d", c.Suggestions.Max)
	}

	// UI
	if !slices.Contains(validThemes, c.UI.Theme) {
		add("ui.theme", "must be one of %s, got %q", strings.Join(validThemes, ", "), c.UI.Theme)
	}
	if utf8.RuneCountInString(c.UI.ClockDelimiter) > 3 {
		add("ui.clock_delimiter", "must be at most 3 characters")
	}

	// Log
	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		add("log.level", "must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.Log.Level)
	}
	if !slices.Contains(validFormats, strings.ToLower(c.Log.Format)) {
		add("log.format", "must be one of %s, got %q", strings.Join(validFormats, ", "), c.Log.Format)
	}

	// Launch
	if c.Launch.Rate <= 0 {
		add("launch.rate", "must be positive, got %v", c.Launch.Rate)
	}
	if c.Launch.Burst < 1 {
		add("launch.burst", "must be at least 1, got %d", c.Launch.Burst)
	}

	// Commands
	if err := c.Commands.Validate(); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			add("commands", "%s", line)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// checkDelimiter returns a description of what is wrong with d, or "".
func checkDelimiter(d string) string {
	if utf8.RuneCountInString(d) != 1 {
		return fmt.Sprintf("must be exactly one character, got %q", d)
	}
	r, _ := utf8.DecodeRuneInString(d)
	if unicode.IsSpace(r) {
		return "must not be whitespace"
	}
	return ""
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - STTP_SEARCH_DELIMITER: overrides navigation.search_delimiter
//   - STTP_PATH_DELIMITER: overrides navigation.path_delimiter
//   - STTP_MAX_SUGGESTIONS: overrides suggestions.max
//   - STTP_THEME: overrides ui.theme
//   - STTP_LOG_LEVEL: overrides log.level
//
// STTP_CONFIG is read by Load to pick the config file.
func (c *Config) ApplyEnvOverrides() {
	if d := os.Getenv("STTP_SEARCH_DELIMITER"); d != "" {
		c.Navigation.SearchDelimiter = d
	}
	if d := os.Getenv("STTP_PATH_DELIMITER"); d != "" {
		c.Navigation.PathDelimiter = d
	}
	if v := os.Getenv("STTP_MAX_SUGGESTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Suggestions.Max = n
		}
	}
	if theme := os.Getenv("STTP_THEME"); theme != "" {
		c.UI.Theme = strings.ToLower(theme)
	}
	if level := os.Getenv("STTP_LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.theme").
// String values are converted to the field type; slices take a comma
// separated list. The result is not validated.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

// lookup walks the dotted key down the struct tree.
func (c *Config) lookup(key string) (reflect.Value, error) {
	if strings.TrimSpace(key) == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() || !field.CanInterface() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			boolVal, err := parseBool(strVal)
			if err != nil {
				return err
			}
			field.SetBool(boolVal)
			return nil
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				items := []string{}
				for _, item := range strings.Split(strVal, ",") {
					if item = strings.TrimSpace(item); item != "" {
						items = append(items, item)
					}
				}
				field.Set(reflect.ValueOf(items))
				return nil
			}
		}
	}

	if value == nil {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}

	// Direct assignment for matching types
	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}

	// Type conversion for compatible types
	if val.Type().ConvertibleTo(field.Type()) && val.Kind() != reflect.String {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value: %q", s)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all scalar configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"navigation.search_delimiter",
		"navigation.path_delimiter",
		"navigation.instant_redirect",
		"navigation.open_in_new_tab",
		"navigation.key_prefixed_paths",
		"suggestions.enabled",
		"suggestions.max",
		"ui.theme",
		"ui.inverted_colors",
		"ui.show_keys",
		"ui.twenty_four_hour",
		"ui.clock_delimiter",
		"ui.show_date",
		"ui.show_clock_indicators",
		"log.level",
		"log.format",
		"launch.opener",
		"launch.rate",
		"launch.burst",
		"storage.path",
	}
}

// Delimiters returns the resolver delimiters.
func (c *Config) Delimiters() commands.Delimiters {
	return commands.Delimiters{
		Search: c.Navigation.SearchDelimiter,
		Path:   c.Navigation.PathDelimiter,
	}
}

// NewResolver builds a resolver over the configured table and delimiters.
func (c *Config) NewResolver() *commands.Resolver {
	return commands.NewResolver(c.Commands, c.Delimiters(),
		commands.WithKeyPrefixedPaths(c.Navigation.KeyPrefixedPaths...))
}

// NewSuggester builds a suggester over the configured table and data.
func (c *Config) NewSuggester() *commands.Suggester {
	return commands.NewSuggester(c.Commands, c.Auxiliary)
}

// SuggestionLimit returns how many suggestions to request, 0 when the
// list is disabled.
func (c *Config) SuggestionLimit() int {
	if !c.Suggestions.Enabled {
		return 0
	}
	return c.Suggestions.Max
}

// StoragePath returns the database path, defaulting to ~/.sttp/sttp.db.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	return configPath("sttp.db")
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c

	clone.Navigation.KeyPrefixedPaths = slices.Clone(c.Navigation.KeyPrefixedPaths)
	clone.Commands = slices.Clone(c.Commands)
	clone.Auxiliary.PopularSites = slices.Clone(c.Auxiliary.PopularSites)
	clone.Auxiliary.SearchPhrases = slices.Clone(c.Auxiliary.SearchPhrases)
	if c.Auxiliary.KeyedHints != nil {
		clone.Auxiliary.KeyedHints = make(map[string][]string, len(c.Auxiliary.KeyedHints))
		for k, v := range c.Auxiliary.KeyedHints {
			clone.Auxiliary.KeyedHints[k] = slices.Clone(v)
		}
	}

	return &clone
}

// String returns a JSON representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			slog.Warn("config load failed, using defaults", "error", err)
		}
		if cfg == nil {
			cfg = Default()
		}
		globalConfigMu.Lock()
		if globalConfig == nil {
			globalConfig = cfg
		}
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil && cfg == nil {
		return err
	}
	SetGlobal(cfg)
	return err
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
