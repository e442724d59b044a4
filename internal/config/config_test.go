package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"wordmask/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("WORDMASK_MYSQL_DSN", "")
	chdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "wordmask", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "wordmask")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Store.Backend != config.BackendSQLite {
		t.Fatalf("expected sqlite backend by default, got %q", cfg.Store.Backend)
	}
	if cfg.Store.Path != filepath.Join(wantData, "wordmask.db") {
		t.Fatalf("unexpected store path %q", cfg.Store.Path)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.DataDir); err != nil || !info.IsDir() {
		t.Fatalf("expected data dir to exist: %v", err)
	}
	if _, err := os.Stat(cfg.Paths.LogDir); !os.IsNotExist(err) {
		t.Fatalf("log dir should only be created when file output is enabled, stat err = %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "wordmask.toml")

	type payload struct {
		Store struct {
			Backend string `toml:"backend"`
			Path    string `toml:"path"`
		} `toml:"store"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Store.Backend = " JSON "
	custom.Store.Path = filepath.Join(tempDir, "state", "words.json")
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected config at %q to be found, got %q exists=%v", configPath, resolved, exists)
	}
	if cfg.Store.Backend != config.BackendFile {
		t.Fatalf("expected json alias to normalize to file, got %q", cfg.Store.Backend)
	}
	if cfg.Store.Path != custom.Store.Path {
		t.Fatalf("unexpected store path %q", cfg.Store.Path)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(custom.Store.Path)); err != nil {
		t.Fatalf("expected store directory to be created: %v", err)
	}
}

func TestLoadMySQLRequiresDSN(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("WORDMASK_MYSQL_DSN", "")
	configPath := filepath.Join(tempDir, "wordmask.toml")
	if err := os.WriteFile(configPath, []byte("[store]\nbackend = \"mysql\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(configPath); err == nil || !strings.Contains(err.Error(), "store.dsn") {
		t.Fatalf("expected dsn validation error, got %v", err)
	}

	t.Setenv("WORDMASK_MYSQL_DSN", "user:pw@tcp(127.0.0.1:3306)/wordmask")
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Store.DSN != "user:pw@tcp(127.0.0.1:3306)/wordmask" {
		t.Fatalf("expected DSN from env, got %q", cfg.Store.DSN)
	}
	if cfg.Store.Path != "" {
		t.Fatalf("mysql backend should not get a local path, got %q", cfg.Store.Path)
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{
			name:   "backend",
			mutate: func(c *config.Config) { c.Store.Backend = "redis" },
			want:   "store.backend",
		},
		{
			name:   "level",
			mutate: func(c *config.Config) { c.Store.Backend = config.BackendMemory; c.Logging.Level = "loud" },
			want:   "logging.level",
		},
		{
			name:   "missing path",
			mutate: func(c *config.Config) { c.Store.Backend = config.BackendFile; c.Store.Path = "" },
			want:   "store.path",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	target := filepath.Join(tempDir, "nested", "config.toml")

	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Store.Backend != config.BackendSQLite {
		t.Fatalf("unexpected sample backend %q", cfg.Store.Backend)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "wordmask.toml")
	if err := os.WriteFile(configPath, []byte("[store]\nbackend = \"file\"\nbakend = \"sqlite\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "unknown keys") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadFindsProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	chdir(t, project)
	if err := os.WriteFile(filepath.Join(project, "wordmask.toml"), []byte("[store]\nbackend = \"memory\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "wordmask.toml" {
		t.Fatalf("expected project config, got %q exists=%v", resolved, exists)
	}
	if cfg.Store.Backend != config.BackendMemory {
		t.Fatalf("unexpected backend %q", cfg.Store.Backend)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := map[string]string{
		"~":          home,
		"~/data/x":   filepath.Join(home, "data", "x"),
		"/abs/./dir": "/abs/dir",
		"":           "",
	}
	for in, want := range tests {
		got, err := config.ExpandPath(in)
		if err != nil {
			t.Fatalf("ExpandPath(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ExpandPath(%q) = %q, want %q", in, got, want)
		}
	}
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
