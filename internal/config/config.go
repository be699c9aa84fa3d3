// Package config provides the trainer's layered configuration: defaults, an
// optional YAML file, then POEMATIC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/poematic/internal/model"
)

// DefaultPath is the config file looked up when none is given explicitly.
const DefaultPath = ".poematic.yaml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("poematic: invalid configuration")

// Config holds all trainer settings.
type Config struct {
	Corpus   []string `yaml:"corpus"`
	Hide     int      `yaml:"hide"`
	Policy   string   `yaml:"policy"`
	Escalate bool     `yaml:"escalate"`
	Seed     uint64   `yaml:"seed"`
	Color    string   `yaml:"color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Corpus: []string{"poem.txt"},
		Hide:   1,
		Policy: m.PolicyStrict.String(),
		Color:  ColorAuto,
	}
}

// Load builds a Config from defaults, the YAML file at path and the environment.
// A missing file is only an error when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path, required); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) readFile(path string, required bool) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() {
	if corpus := getEnv("POEMATIC_CORPUS", ""); corpus != "" {
		c.Corpus = filepath.SplitList(corpus)
	}

	c.Hide = getEnvInt("POEMATIC_HIDE", c.Hide)
	c.Policy = getEnv("POEMATIC_POLICY", c.Policy)
	c.Escalate = getEnvBool("POEMATIC_ESCALATE", c.Escalate)
	c.Seed = getEnvUint("POEMATIC_SEED", c.Seed)
	c.Color = getEnv("POEMATIC_COLOR", c.Color)
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Hide < 1 {
		return fmt.Errorf("%w: hide must be at least 1, got %d", ErrInvalidConfig, c.Hide)
	}

	if _, err := m.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalidConfig, c.Color)
	}

	if len(c.Corpus) == 0 {
		return fmt.Errorf("%w: corpus cannot be empty", ErrInvalidConfig)
	}

	return nil
}

// GuessPolicy returns the parsed guess policy.
func (c *Config) GuessPolicy() m.Policy {
	p, err := m.ParsePolicy(c.Policy)
	if err != nil {
		return m.PolicyStrict
	}

	return p
}

// CorpusPaths returns the corpus as model paths.
func (c *Config) CorpusPaths() []m.Path {
	paths := make([]m.Path, 0, len(c.Corpus))
	for _, p := range c.Corpus {
		paths = append(paths, m.Path(p))
	}

	return paths
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}

	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}

	return n
}

func getEnvUint(key string, fallback uint64) uint64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fallback
	}

	return n
}
