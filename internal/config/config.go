package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultWebAddr    = "127.0.0.1:3335"
	DefaultWebTUIAddr = "127.0.0.1:3334"
)

type Config struct {
	// Theme is "dark", "light" or "auto" (follow the terminal).
	Theme    string `toml:"theme" json:"theme"`
	Persist  bool   `toml:"persist" json:"persist"`
	DataDir  string `toml:"data_dir,omitempty" json:"data_dir,omitempty"`
	LogLevel string `toml:"log_level" json:"log_level"`
	LogFile  string `toml:"log_file,omitempty" json:"log_file,omitempty"`

	Web    ServerConfig `toml:"web" json:"web"`
	WebTUI ServerConfig `toml:"webtui" json:"webtui"`
}

type ServerConfig struct {
	Addr string `toml:"addr" json:"addr"`
}

func Default() *Config {
	return &Config{
		Theme:    "dark",
		LogLevel: "info",
		Web:      ServerConfig{Addr: DefaultWebAddr},
		WebTUI:   ServerConfig{Addr: DefaultWebTUIAddr},
	}
}

func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".portfolio"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file (a missing file yields defaults), applies
// environment overrides and validates the result.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) ApplyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_THEME")); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_PERSIST")); v != "" {
		c.Persist = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_DATA_DIR")); v != "" {
		c.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_LOG_FILE")); v != "" {
		c.LogFile = v
	}
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func (c *Config) fillDefaults() {
	d := Default()
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if strings.TrimSpace(c.Web.Addr) == "" {
		c.Web.Addr = d.Web.Addr
	}
	if strings.TrimSpace(c.WebTUI.Addr) == "" {
		c.WebTUI.Addr = d.WebTUI.Addr
	}
}

// DataPath is where persisted state lives: data_dir when set, otherwise the
// config dir.
func (c *Config) DataPath() (string, error) {
	if strings.TrimSpace(c.DataDir) != "" {
		return c.DataDir, nil
	}
	return Dir()
}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

func (c *Config) Validate() error {
	var errs ValidateErrors
	switch c.Theme {
	case "dark", "light", "auto":
	default:
		errs = append(errs, ValidationError{Field: "theme", Message: fmt.Sprintf("unknown theme %q (want dark|light|auto)", c.Theme)})
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{Field: "log_level", Message: fmt.Sprintf("unknown level %q (want debug|info|warn|error)", c.LogLevel)})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo writes cfg as TOML via a temp file and rename.
func SaveTo(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.WriteString("# portfolio configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	f, err := os.CreateTemp(dir, "config.toml.*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, 0o600)
	return os.Rename(tmp, path)
}
