package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
user_agent: "cli-test/1.0"
client_id: "file-id"
client_secret: "file-secret"
requests_per_minute: 30
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.UserAgent != "cli-test/1.0" || cfg.ClientID != "file-id" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.RequestsPerMinute != 30 {
		t.Errorf("RequestsPerMinute = %v, want 30", cfg.RequestsPerMinute)
	}
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte(`client_id: "file-id"`), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("REDBULK_CLIENT_ID", "env-id")
	t.Setenv("REDBULK_USER_AGENT", "env-agent/2.0")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ClientID != "env-id" {
		t.Errorf("ClientID = %q, want environment to win", cfg.ClientID)
	}
	if cfg.UserAgent != "env-agent/2.0" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != ErrConfigNotFound {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"posts", "comments", "user", "subreddit", "subreddits", "search", "wiki", "version"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag not registered")
	}
	if root.PersistentFlags().Lookup("time-format") == nil {
		t.Error("--time-format flag not registered")
	}
}
