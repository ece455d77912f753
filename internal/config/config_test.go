package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cf, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cf.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("Expected API base URL %s, got %s", DefaultAPIBaseURL, cf.APIBaseURL)
	}
	if cf.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("Expected request timeout %v, got %v", DefaultRequestTimeout, cf.RequestTimeout)
	}
	if cf.BackendOrigin != DefaultBackendOrigin {
		t.Errorf("Expected backend origin %s, got %s", DefaultBackendOrigin, cf.BackendOrigin)
	}
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	cf, err := Load(filepath.Join(t.TempDir(), "no-such.env"))
	if err != nil {
		t.Fatalf("Load() with missing file returned error: %v", err)
	}
	if cf.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("Expected default API base URL, got %s", cf.APIBaseURL)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.env")
	content := "API_BASE_URL=http://example.com/api\nREQUEST_TIMEOUT=5s\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	cf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cf.APIBaseURL != "http://example.com/api" {
		t.Errorf("Expected API base URL from file, got %s", cf.APIBaseURL)
	}
	if cf.RequestTimeout != 5*time.Second {
		t.Errorf("Expected request timeout 5s, got %v", cf.RequestTimeout)
	}
}
