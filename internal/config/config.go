// Package config loads the portfolio.json project configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the portfolio.json configuration
type Config struct {
	// Site metadata used by page templates
	Site *SiteConfig `json:"site,omitempty"`

	// Directory containing markdown posts
	ContentDir string `json:"contentDir,omitempty"`

	// Directory containing per-language translation documents
	LocalesDir string `json:"localesDir,omitempty"`

	// Directory containing static assets copied verbatim into the build
	StaticDir string `json:"staticDir,omitempty"`

	// Build output directory
	OutputDir string `json:"outputDir,omitempty"`

	// Supported language codes; the first entry is the default language
	Languages []string `json:"languages,omitempty"`

	// Development server configuration
	Dev *DevConfig `json:"dev,omitempty"`
}

// SiteConfig contains site-wide metadata
type SiteConfig struct {
	// Site title shown in the header and page titles
	Title string `json:"title,omitempty"`

	// Author name
	Author string `json:"author,omitempty"`

	// Short description used in meta tags and the home page hero
	Description string `json:"description,omitempty"`

	// Canonical base URL of the deployed site
	BaseURL string `json:"baseURL,omitempty"`
}

// DevConfig contains development server configuration
type DevConfig struct {
	// Server port
	Port int `json:"port,omitempty"`

	// Server host
	Host string `json:"host,omitempty"`
}

// Load loads configuration from portfolio.json in the project directory.
// A missing file yields the default configuration.
func Load(projectPath string) (*Config, error) {
	configPath := filepath.Join(projectPath, "portfolio.json")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Site: &SiteConfig{
			Title: "Portfolio",
		},
		ContentDir: "content/posts",
		LocalesDir: "locales",
		StaticDir:  "static",
		OutputDir:  "dist",
		Languages:  []string{"en"},
		Dev: &DevConfig{
			Port: 5173,
			Host: "localhost",
		},
	}
}

// applyDefaults applies default values to missing configuration
func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.Site == nil {
		config.Site = defaults.Site
	} else if config.Site.Title == "" {
		config.Site.Title = defaults.Site.Title
	}

	if config.ContentDir == "" {
		config.ContentDir = defaults.ContentDir
	}
	if config.LocalesDir == "" {
		config.LocalesDir = defaults.LocalesDir
	}
	if config.StaticDir == "" {
		config.StaticDir = defaults.StaticDir
	}
	if config.OutputDir == "" {
		config.OutputDir = defaults.OutputDir
	}
	if len(config.Languages) == 0 {
		config.Languages = defaults.Languages
	}

	if config.Dev == nil {
		config.Dev = defaults.Dev
	} else {
		if config.Dev.Port == 0 {
			config.Dev.Port = defaults.Dev.Port
		}
		if config.Dev.Host == "" {
			config.Dev.Host = defaults.Dev.Host
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for _, lang := range c.Languages {
		if len(lang) != 2 {
			return fmt.Errorf("config: language %q is not a two-letter code", lang)
		}
	}
	if c.Dev != nil && (c.Dev.Port < 1 || c.Dev.Port > 65535) {
		return fmt.Errorf("config: invalid dev server port %d", c.Dev.Port)
	}
	return nil
}

// DefaultLanguage returns the first configured language.
func (c *Config) DefaultLanguage() string {
	return c.Languages[0]
}
