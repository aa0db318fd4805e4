package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead_Defaults(t *testing.T) {
	cfg, err := Read(writeConfig(t, "upstream:\n  base_url: http://api.local\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Auth.SessionTTL != 12*time.Hour {
		t.Errorf("session ttl = %v, want 12h", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.Cookie.Name != "sipusaka_session" {
		t.Errorf("cookie name = %q", cfg.Auth.Cookie.Name)
	}
	if cfg.Upstream.Timeout != 30*time.Second {
		t.Errorf("upstream timeout = %v, want 30s", cfg.Upstream.Timeout)
	}
	if len(cfg.Upload.AllowedMimes) != 3 {
		t.Errorf("allowed mimes = %v", cfg.Upload.AllowedMimes)
	}
	if cfg.Export.Timezone != "Asia/Jakarta" {
		t.Errorf("timezone = %q", cfg.Export.Timezone)
	}
}

func TestRead_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "upstream:\n  base_url: http://file.local\nserver:\n  port: 9000\n")
	t.Setenv("SIPUSAKA_UPSTREAM_BASE_URL", "http://env.local")
	t.Setenv("SIPUSAKA_AUTH_JWT_SECRET", "0123456789abcdef")

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if cfg.Upstream.BaseURL != "http://env.local" {
		t.Errorf("base url = %q, want the environment value", cfg.Upstream.BaseURL)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000 from the file", cfg.Server.Port)
	}
	if cfg.Auth.JWTSecret != "0123456789abcdef" {
		t.Errorf("jwt secret = %q", cfg.Auth.JWTSecret)
	}
}

func TestLoad_Validates(t *testing.T) {
	t.Setenv("SIPUSAKA_AUTH_JWT_SECRET", "")
	t.Setenv("SIPUSAKA_UPSTREAM_BASE_URL", "")

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing secret", "upstream:\n  base_url: http://api.local\n", "jwt_secret must not be empty"},
		{"short secret", "auth:\n  jwt_secret: short\nupstream:\n  base_url: http://api.local\n", "at least 16"},
		{"missing upstream", "auth:\n  jwt_secret: 0123456789abcdef\n", "upstream.base_url"},
		{"bad port", "auth:\n  jwt_secret: 0123456789abcdef\nupstream:\n  base_url: http://api.local\nserver:\n  port: 70000\n", "server.port"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestLoad_OK(t *testing.T) {
	t.Setenv("SIPUSAKA_AUTH_JWT_SECRET", "")
	t.Setenv("SIPUSAKA_UPSTREAM_BASE_URL", "")

	cfg, err := Load(writeConfig(t, "auth:\n  jwt_secret: 0123456789abcdef\nupstream:\n  base_url: http://api.local\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Upstream.BaseURL != "http://api.local" {
		t.Errorf("base url = %q", cfg.Upstream.BaseURL)
	}
}
