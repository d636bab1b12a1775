// Package config loads the optional per-project settings of an upgrade run.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phpcompatible/enumup/internal/fileutil"
	"github.com/phpcompatible/enumup/internal/parser"
	"gopkg.in/yaml.v3"
)

const (
	FileName       = ".enumup.yaml"
	IgnoreFileName = ".enumupignore"
	MaxWorkers     = 256
)

var validate = validator.New()

// Config holds the settings read from .enumup.yaml.
type Config struct {
	Extensions []string `yaml:"extensions" validate:"dive,min=2,startswith=."`
	Ignore     []string `yaml:"ignore"`
	GitIgnore  bool     `yaml:"gitignore"`
	Workers    int      `yaml:"workers" validate:"min=0,max=256"`
}

// Default returns the settings used when no configuration file exists.
func Default() *Config {
	return &Config{
		Extensions: append([]string(nil), parser.DefaultExtensions...),
		Ignore:     []string{},
		GitIgnore:  true,
	}
}

// Load reads a configuration file. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = append([]string(nil), parser.DefaultExtensions...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadForRoot resolves the configuration for a scan root: the explicit file
// when given, else <root>/.enumup.yaml when present, else the defaults. Rules
// from <root>/.enumupignore are appended to the ignore list.
func LoadForRoot(root, explicit string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch {
	case explicit != "":
		cfg, err = Load(explicit)
	default:
		path := filepath.Join(root, FileName)
		if _, statErr := os.Stat(path); statErr == nil {
			cfg, err = Load(path)
		} else {
			cfg = Default()
		}
	}
	if err != nil {
		return nil, err
	}

	rules, err := LoadIgnoreRules(root)
	if err != nil {
		return nil, err
	}
	cfg.Ignore = fileutil.DedupeStrings(append(cfg.Ignore, rules...))
	return cfg, nil
}

// Validate checks field constraints and reports every violation.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, formatValidationError(ve))
	}
	return errors.New(strings.Join(messages, "; "))
}

func formatValidationError(ve validator.FieldError) string {
	field := strings.TrimPrefix(ve.Namespace(), "Config.")
	switch ve.Tag() {
	case "startswith":
		return fmt.Sprintf("%s: %q must start with %q", field, ve.Value(), ve.Param())
	case "min":
		return fmt.Sprintf("%s: must be at least %s", field, ve.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s", field, ve.Param())
	default:
		return fmt.Sprintf("%s: failed %s", field, ve.Tag())
	}
}

// WorkerCount resolves the number of parallel workers; zero means one per CPU.
func (c *Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// LoadIgnoreRules reads <root>/.enumupignore. Blank lines and comments are
// skipped; a missing file yields no rules.
func LoadIgnoreRules(rootPath string) ([]string, error) {
	ignorePath := filepath.Join(rootPath, IgnoreFileName)
	f, err := os.Open(ignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", IgnoreFileName, err)
	}
	defer f.Close()

	rules := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rules = append(rules, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", IgnoreFileName, err)
	}

	return rules, nil
}
