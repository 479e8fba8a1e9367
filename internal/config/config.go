package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DefaultThemeName is the theme created with a fresh config.
const DefaultThemeName = "default"

// Theme holds lipgloss color strings (ANSI256 numbers or hex) for each kind of key.
type Theme struct {
	Display  string `json:"display"`
	Digit    string `json:"digit"`
	Operator string `json:"operator"`
	Function string `json:"function"`
	Equals   string `json:"equals"`
	Clear    string `json:"clear"`
	Status   string `json:"status"`
}

type Config struct {
	Themes       map[string]Theme `json:"themes"`
	ActiveTheme  string           `json:"active_theme"`
	currentTheme *Theme
}

// DefaultTheme mirrors the classic desktop calculator palette.
func DefaultTheme() Theme {
	return Theme{
		Display:  "62",
		Digit:    "#e0e0e0",
		Operator: "#d0d0d0",
		Function: "#9e9e9e",
		Equals:   "#4caf50",
		Clear:    "#ff9800",
		Status:   "241",
	}
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.setCurrentTheme(); err != nil {
		return nil, fmt.Errorf("failed to set current theme: %w", err)
	}

	return config, nil
}

// Theme returns the active theme, or the default palette if none is loaded.
func (c *Config) Theme() Theme {
	if c.currentTheme == nil {
		return DefaultTheme()
	}
	return *c.currentTheme
}

// Dir returns the directory holding the config file.
func Dir() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

func getConfigPath() (string, error) {
	var configDir string

	// Use RORICALC_HOME if set, otherwise use user's home directory
	if home := os.Getenv("RORICALC_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".roricalc", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Themes: map[string]Theme{
			DefaultThemeName: DefaultTheme(),
		},
		ActiveTheme: DefaultThemeName,
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

// Switch makes name the active theme.
func (c *Config) Switch(name string) error {
	theme, exists := c.Themes[name]
	if !exists {
		return fmt.Errorf("theme '%s' does not exist", name)
	}
	c.ActiveTheme = name
	c.currentTheme = &theme
	return nil
}

// Delete removes a theme. Deleting the active theme activates another one,
// and deleting the last theme recreates the default.
func (c *Config) Delete(name string) error {
	if _, exists := c.Themes[name]; !exists {
		return fmt.Errorf("theme '%s' does not exist", name)
	}
	delete(c.Themes, name)

	if len(c.Themes) == 0 {
		c.Themes[DefaultThemeName] = DefaultTheme()
	}
	if c.ActiveTheme == name {
		c.ActiveTheme = ""
	}
	return c.setCurrentTheme()
}

func (c *Config) setCurrentTheme() error {
	if c.Themes == nil {
		return fmt.Errorf("no themes defined")
	}

	theme, exists := c.Themes[c.ActiveTheme]
	if !exists {
		// If active theme doesn't exist, fall back to the first name in order
		for _, name := range c.Names() {
			c.ActiveTheme = name
			theme = c.Themes[name]
			exists = true
			break
		}
	}

	if !exists {
		return fmt.Errorf("no valid themes found")
	}

	c.currentTheme = &theme
	return nil
}

// Names lists theme names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
