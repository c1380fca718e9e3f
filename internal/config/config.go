package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Preview modes
const (
	PreviewPlain    = "plain"
	PreviewMarkdown = "markdown"
)

const (
	DefaultNotesDir  = "notes"
	DefaultExtension = ".txt"
	EnvNotesDir      = "OPENNOTES_DIR"
)

var extensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)

// Config holds the unified application configuration
type Config struct {
	NotesDir         string `yaml:"notes_dir"`
	Extension        string `yaml:"extension"`
	Preview          string `yaml:"preview"`
	ConfirmDelete    bool   `yaml:"confirm_delete"`
	ConfirmOverwrite bool   `yaml:"confirm_overwrite"`
}

// Settings represents the config file structure
type Settings struct {
	NotesDir         string `yaml:"notes_dir,omitempty"`
	Extension        string `yaml:"extension,omitempty"`
	Preview          string `yaml:"preview,omitempty"`
	ConfirmDelete    bool   `yaml:"confirm_delete"`
	ConfirmOverwrite bool   `yaml:"confirm_overwrite"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	NotesDir  string
	Extension string
	Preview   string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		NotesDir:  DefaultNotesDir,
		Extension: DefaultExtension,
		Preview:   PreviewPlain,
	}

	// Config file first for base values
	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if fileConfig.NotesDir != "" {
				cfg.NotesDir = expandPath(fileConfig.NotesDir)
			}
			if fileConfig.Extension != "" {
				cfg.Extension = fileConfig.Extension
			}
			if fileConfig.Preview != "" {
				cfg.Preview = fileConfig.Preview
			}
			cfg.ConfirmDelete = fileConfig.ConfirmDelete
			cfg.ConfirmOverwrite = fileConfig.ConfirmOverwrite
		}
	}

	// Environment overrides the config file
	if envDir := strings.TrimSpace(os.Getenv(EnvNotesDir)); envDir != "" {
		cfg.NotesDir = expandPath(envDir)
	}

	// CLI flags override everything
	if flags.NotesDir != "" {
		cfg.NotesDir = expandPath(flags.NotesDir)
	}
	if flags.Extension != "" {
		cfg.Extension = flags.Extension
	}
	if flags.Preview != "" {
		cfg.Preview = flags.Preview
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.NotesDir, validation.Required),
		validation.Field(&c.Extension, validation.Required, validation.Match(extensionPattern)),
		validation.Field(&c.Preview, validation.Required, validation.In(PreviewPlain, PreviewMarkdown)),
	)
}

// ConfigDir returns ~/.config/opennotes. debug.log lives here so it never
// shows up as a note.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "opennotes"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	settings := Settings{
		NotesDir:  DefaultNotesDir,
		Extension: DefaultExtension,
		Preview:   PreviewPlain,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
