package servicefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "services.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeFile(t, `---
host: 192.168.1.20
services:
  - name: jellyfin
    port: 8096
    emoji: "🎬"
    domain: jellyfin.lan
  - name: clock
    host: 127.0.0.1
    port: 1224
`)

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if file.Host != "192.168.1.20" {
		t.Errorf("Host = %q, want 192.168.1.20", file.Host)
	}
	if len(file.Services) != 2 {
		t.Fatalf("Load() returned %d services, want 2", len(file.Services))
	}
	if file.Services[0].Domain != "jellyfin.lan" || file.Services[0].Emoji != "🎬" {
		t.Errorf("first entry = %+v, metadata not parsed", file.Services[0])
	}
}

func TestLoaderLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "empty file", content: "", wantErr: "empty"},
		{name: "invalid yaml", content: "services: [\n", wantErr: "failed to parse"},
		{name: "unknown key", content: "services:\n  - name: a\n    prot: 80\n", wantErr: "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(writeFile(t, tt.content)).Load()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoaderLoadMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	if err == nil {
		t.Fatal("Load() on missing file should return error")
	}
}
