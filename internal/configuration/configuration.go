package configuration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Config represents the application configuration
type Config struct {
	Model             string `json:"model"`             // Anthropic model identifier
	MaxTokens         int    `json:"maxTokens"`         // Output-token ceiling per turn
	ThinkingBudget    int    `json:"thinkingBudget"`    // Token budget for the model's reasoning
	EnableWebSearch   bool   `json:"enableWebSearch"`   // Allow the web_search server tool
	EnableWebFetch    bool   `json:"enableWebFetch"`    // Allow the web_fetch server tool
	WebSearchMaxUses  int    `json:"webSearchMaxUses"`  // Per-turn invocation cap for web_search
	WebFetchMaxUses   int    `json:"webFetchMaxUses"`   // Per-turn invocation cap for web_fetch
	StreamResponses   bool   `json:"streamResponses"`   // Stream text deltas into the transcript
	DatasetPath       string `json:"datasetPath"`       // Internal dataset JSON file
	MaxContextRows    int    `json:"maxContextRows"`    // Dataset rows injected per turn
	LogLevel          string `json:"logLevel"`          // Log level: debug, info, warn, error
	EnableFileLogging bool   `json:"enableFileLogging"` // Whether to log to file
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Model:             "claude-sonnet-4-5",
		MaxTokens:         20000,
		ThinkingBudget:    12000,
		EnableWebSearch:   true,
		EnableWebFetch:    true,
		WebSearchMaxUses:  10,
		WebFetchMaxUses:   10,
		StreamResponses:   true,
		DatasetPath:       "honda_data_sources.json",
		MaxContextRows:    4,
		LogLevel:          "info",
		EnableFileLogging: true,
	}
}

// dir returns the appropriate config directory based on OS
func dir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("LOCALAPPDATA")
		if configDir == "" {
			configDir = os.Getenv("APPDATA")
			if configDir == "" {
				return "", fmt.Errorf("LOCALAPPDATA or APPDATA environment variable not set")
			}
		}
	default: // Linux, macOS, and other Unix-like systems
		configDir = os.Getenv("XDG_DATA_HOME")
		if configDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get user home directory: %w", err)
			}
			configDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	return filepath.Join(configDir, "persona-interviews", "settings"), nil
}

// path returns the full path to the configuration file
func path() (string, error) {
	configDir, err := dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

// Load reads the configuration from the settings file
// If the file doesn't exist, it creates it with default configuration
func Load() (*Config, error) {
	configPath, err := path()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		if saveErr := config.Save(); saveErr != nil {
			// A read-only config directory shouldn't prevent the app from running
			return config, fmt.Errorf("failed to save default configuration: %w", saveErr)
		}
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaultsIfMissing(&config)

	return &config, nil
}

// applyDefaultsIfMissing sets default values for any config fields that might be missing
// This ensures backward compatibility when new fields are added
func applyDefaultsIfMissing(c *Config) {
	defaults := DefaultConfig()

	if c.Model == "" {
		c.Model = defaults.Model
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = defaults.MaxTokens
	}
	if c.ThinkingBudget <= 0 {
		c.ThinkingBudget = defaults.ThinkingBudget
	}
	if c.WebSearchMaxUses <= 0 {
		c.WebSearchMaxUses = defaults.WebSearchMaxUses
	}
	if c.WebFetchMaxUses <= 0 {
		c.WebFetchMaxUses = defaults.WebFetchMaxUses
	}
	if c.DatasetPath == "" {
		c.DatasetPath = defaults.DatasetPath
	}
	if c.MaxContextRows <= 0 {
		c.MaxContextRows = defaults.MaxContextRows
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

// Save writes the configuration to the settings file
func (c *Config) Save() error {
	configDir, err := dir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := path()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("maxTokens must be greater than 0")
	}
	if c.ThinkingBudget <= 0 {
		return fmt.Errorf("thinkingBudget must be greater than 0")
	}
	if c.ThinkingBudget >= c.MaxTokens {
		return fmt.Errorf("thinkingBudget (%d) must be less than maxTokens (%d)", c.ThinkingBudget, c.MaxTokens)
	}
	if c.MaxContextRows <= 0 {
		return fmt.Errorf("maxContextRows must be greater than 0")
	}
	if c.EnableWebSearch && c.WebSearchMaxUses <= 0 {
		return fmt.Errorf("webSearchMaxUses must be greater than 0 when web search is enabled")
	}
	if c.EnableWebFetch && c.WebFetchMaxUses <= 0 {
		return fmt.Errorf("webFetchMaxUses must be greater than 0 when web fetch is enabled")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// APIKey returns the Anthropic API key from the environment. The key is
// never stored in the settings file. Callers load .env beforehand so the
// environment is the single source of truth.
func APIKey() string {
	return strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
}
