package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Run from an empty directory so no .env file is picked up.
	t.Chdir(t.TempDir())

	cfg := Load()

	if cfg.ListenPort != ":5050" {
		t.Errorf("ListenPort = %q, want %q", cfg.ListenPort, ":5050")
	}
	if cfg.ProbeTimeout != 300*time.Millisecond {
		t.Errorf("ProbeTimeout = %v, want 300ms", cfg.ProbeTimeout)
	}
	if cfg.CacheDuration != 2*time.Second {
		t.Errorf("CacheDuration = %v, want 2s", cfg.CacheDuration)
	}
	if cfg.OfflineThreshold != 5*time.Second {
		t.Errorf("OfflineThreshold = %v, want 5s", cfg.OfflineThreshold)
	}
	if cfg.ProbeHost != "127.0.0.1" {
		t.Errorf("ProbeHost = %q, want 127.0.0.1", cfg.ProbeHost)
	}
	if cfg.WarmInterval != 0 {
		t.Errorf("WarmInterval = %v, want 0 (disabled)", cfg.WarmInterval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LANSCOUT_LISTEN_PORT", ":9999")
	t.Setenv("LANSCOUT_CACHE_DURATION", "10s")
	t.Setenv("LANSCOUT_PROBE_WORKERS", "4")
	t.Setenv("LANSCOUT_ALLOWED_CIDRS", "192.168.1.0/24, 10.0.0.1")

	cfg := Load()

	if cfg.ListenPort != ":9999" {
		t.Errorf("ListenPort = %q, want :9999", cfg.ListenPort)
	}
	if cfg.CacheDuration != 10*time.Second {
		t.Errorf("CacheDuration = %v, want 10s", cfg.CacheDuration)
	}
	if cfg.ProbeWorkers != 4 {
		t.Errorf("ProbeWorkers = %d, want 4", cfg.ProbeWorkers)
	}
	if len(cfg.AllowedCIDRS) != 2 {
		t.Errorf("AllowedCIDRS = %v, want 2 entries", cfg.AllowedCIDRS)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := "LANSCOUT_SERVICE_FILE=/etc/lanscout/services.yaml\nLANSCOUT_LOG_LEVEL=warn\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	// Process environment wins over the file.
	t.Setenv("LANSCOUT_LOG_LEVEL", "error")
	// Make sure the key read from the file is cleaned up afterwards.
	t.Setenv("LANSCOUT_SERVICE_FILE", "")
	if err := os.Unsetenv("LANSCOUT_SERVICE_FILE"); err != nil {
		t.Fatalf("failed to unset env var: %v", err)
	}

	cfg := Load()

	if cfg.ServiceFile != "/etc/lanscout/services.yaml" {
		t.Errorf("ServiceFile = %q, want value from .env", cfg.ServiceFile)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want process env value %q", cfg.LogLevel, "error")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ListenPort:      ":5050",
			ShutdownTimeout: 5 * time.Second,
			ProbeTimeout:    300 * time.Millisecond,
			CacheDuration:   2 * time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "zero cache duration", mutate: func(c *Config) { c.CacheDuration = 0 }, wantErr: "cache duration"},
		{name: "empty listen port", mutate: func(c *Config) { c.ListenPort = "" }, wantErr: "listen port"},
		{name: "zero probe timeout", mutate: func(c *Config) { c.ProbeTimeout = 0 }, wantErr: "probe timeout"},
		{name: "negative workers", mutate: func(c *Config) { c.ProbeWorkers = -1 }, wantErr: "probe workers"},
		{name: "negative warm interval", mutate: func(c *Config) { c.WarmInterval = -time.Second }, wantErr: "warm interval"},
		{name: "missing icons dir", mutate: func(c *Config) { c.IconsDir = "/does/not/exist" }, wantErr: "icons dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DURATION",
			value:    "5s",
			def:      1 * time.Second,
			expected: 5 * time.Second,
		},
		{
			name:     "invalid duration uses default",
			key:      "TEST_DURATION_INVALID",
			value:    "invalid",
			def:      10 * time.Second,
			expected: 10 * time.Second,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_DURATION_MISSING",
			value:    "",
			def:      15 * time.Second,
			expected: 15 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(EnvPrefix+tt.key, tt.value)
			}

			result := mustDuration(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{name: "true value", key: "TEST_BOOL", value: "true", def: false, expected: true},
		{name: "false value", key: "TEST_BOOL_FALSE", value: "false", def: true, expected: false},
		{name: "invalid value uses default", key: "TEST_BOOL_INVALID", value: "invalid", def: true, expected: true},
		{name: "missing variable uses default", key: "TEST_BOOL_MISSING", value: "", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(EnvPrefix+tt.key, tt.value)
			}

			result := mustBool(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "a", want: []string{"a"}},
		{in: ` a , "b",'c', ,`, want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		got := splitAndTrim(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
