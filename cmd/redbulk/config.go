package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"
	"golang.org/x/oauth2/clientcredentials"
	"gopkg.in/yaml.v3"

	redbulk "github.com/lmaznek/go-reddit-bulk"
	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".redbulk.yml"

// tokenURL is Reddit's client-credentials token endpoint.
const tokenURL = "https://www.reddit.com/api/v1/access_token"

// ErrConfigNotFound is returned when an explicitly requested
// configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// FileConfig is the YAML configuration for the CLI. Environment
// variables override file values.
type FileConfig struct {
	UserAgent         string  `yaml:"user_agent"`
	ClientID          string  `yaml:"client_id"`
	ClientSecret      string  `yaml:"client_secret"`
	BaseURL           string  `yaml:"base_url"`
	RequestsPerMinute float64 `yaml:"requests_per_minute"`
}

// LoadConfig resolves the effective CLI configuration: a .env file if
// present, then the YAML config file, then environment overrides.
func LoadConfig(path string) (*FileConfig, error) {
	// Credentials commonly live in a .env next to the working directory.
	_ = gotenv.Load()

	cfg := &FileConfig{}

	resolved := findConfigFile(path)
	if resolved == "" && path != "" {
		return nil, ErrConfigNotFound
	}
	if resolved != "" {
		data, err := os.ReadFile(resolved)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("REDBULK_CLIENT_ID"); v != "" {
		cfg.ClientID = v
	}
	if v := os.Getenv("REDBULK_CLIENT_SECRET"); v != "" {
		cfg.ClientSecret = v
	}
	if v := os.Getenv("REDBULK_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}

	return cfg, nil
}

// findConfigFile searches for the configuration file: an explicit path
// first, then the working directory, then the home directory.
func findConfigFile(path string) string {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// buildClient constructs the bulk client from flags and configuration.
// When credentials are configured, the HTTP client comes from oauth2's
// client-credentials flow; token lifecycle stays entirely outside the
// core library.
func buildClient(cmd *cobra.Command) (*redbulk.Client, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	configPath, _ := cmd.Flags().GetString("config")
	timeFormat, _ := cmd.Flags().GetString("time-format")

	logger := initLogger(verbose)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	clientCfg := &redbulk.Config{
		UserAgent:  cfg.UserAgent,
		BaseURL:    cfg.BaseURL,
		Logger:     logger,
		TimeFormat: types.TimeFormat(timeFormat),
	}
	if cfg.RequestsPerMinute > 0 {
		clientCfg.RateLimit = &redbulk.RateLimitConfig{RequestsPerMinute: cfg.RequestsPerMinute}
	}
	if cfg.ClientID != "" && cfg.ClientSecret != "" {
		oauth := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
		}
		clientCfg.HTTPClient = oauth.Client(context.Background())
	}

	return redbulk.NewClient(clientCfg)
}
