package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"folio/internal/eventbus"
)

// DefaultOwner is the GitHub account shown when no config overrides it.
const DefaultOwner = "a10140"

// GitHub's per_page ceiling
const maxPerPage = 100

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	GitHub  GitHubSettings  `toml:"github"`
	Content ContentSettings `toml:"content"`
	Server  ServerSettings  `toml:"server"`
	Export  ExportSettings  `toml:"export"`
	Log     LogSettings     `toml:"log"`
}

// GitHubSettings configures the repository loader
type GitHubSettings struct {
	Owner     string `toml:"owner"`
	APIURL    string `toml:"api_url"`
	HomeLimit int    `toml:"home_limit"`
	ListLimit int    `toml:"list_limit"`
}

// ContentSettings configures where articles come from.
// An empty Dir means the articles compiled into the binary.
type ContentSettings struct {
	Dir string `toml:"dir"`
}

// ServerSettings configures `folio serve`
type ServerSettings struct {
	Addr string `toml:"addr"`
}

// ExportSettings configures `folio export`
type ExportSettings struct {
	OutDir string `toml:"out_dir"`
}

// LogSettings configures the file logger
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

// DefaultPath returns <UserConfigDir>/folio/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "folio", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields DefaultConfig.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Owner: cfg.GitHub.Owner})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys absent from
// the file keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks value ranges. It does not touch the network.
func (c *Config) Validate() error {
	if c.GitHub.Owner == "" {
		return errors.New("github.owner must not be empty")
	}
	if c.GitHub.APIURL == "" {
		return errors.New("github.api_url must not be empty")
	}
	if c.GitHub.HomeLimit < 1 || c.GitHub.HomeLimit > maxPerPage {
		return fmt.Errorf("github.home_limit must be between 1 and %d, got %d", maxPerPage, c.GitHub.HomeLimit)
	}
	if c.GitHub.ListLimit < 1 || c.GitHub.ListLimit > maxPerPage {
		return fmt.Errorf("github.list_limit must be between 1 and %d, got %d", maxPerPage, c.GitHub.ListLimit)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		GitHub: GitHubSettings{
			Owner:     DefaultOwner,
			APIURL:    "https://api.github.com",
			HomeLimit: 6,
			ListLimit: 100,
		},
		Server: ServerSettings{Addr: ":8080"},
		Export: ExportSettings{OutDir: "public"},
		Log: LogSettings{
			File:  "folio.log",
			Level: "info",
		},
	}
}
