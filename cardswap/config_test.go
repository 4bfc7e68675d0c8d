package cardswap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `
[log]
level = "debug"

[db]
host = "db.internal"
port = 5433
user = "cards"
password = "from-file"
database = "cardswap"

[matchmaking]
forward_limit = 20

[spaces]
region = "fra1"
bucket = "exports"
export_root = "/collections/"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvDBPassword, "from-env")
	t.Setenv(EnvSpacesKey, "key")
	t.Setenv(EnvSpacesSecret, "")

	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DB.Host != "db.internal" || cfg.DB.Port != 5433 {
		t.Errorf("DB = %+v", cfg.DB)
	}
	if cfg.DB.Password != "from-env" {
		t.Errorf("DB.Password = %q, want env override", cfg.DB.Password)
	}
	if cfg.Matchmaking.ForwardLimit != 20 || cfg.Matchmaking.ReverseLimit != 30 || cfg.Matchmaking.InsightLimit != 10 {
		t.Errorf("Matchmaking = %+v", cfg.Matchmaking)
	}
	if cfg.Spaces.Key != "key" || cfg.Spaces.Enabled() {
		t.Errorf("Spaces = %+v, want key set and uploads disabled without secret", cfg.Spaces)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing database", "[db]\nhost = \"x\"\n", "db.database is required"},
		{"bad limit", "[db]\ndatabase = \"x\"\n[matchmaking]\nreverse_limit = -1\n", "limits must be positive"},
		{"bad toml", "[db\n", "failed to decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfig() error = %v, want %q", err, tt.want)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadConfig(missing) error = nil")
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("CARDSWAP_TEST_ONLY=loaded\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CARDSWAP_TEST_ONLY", "")
	os.Unsetenv("CARDSWAP_TEST_ONLY")

	if err := LoadEnv(path, filepath.Join(dir, "absent.env")); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := os.Getenv("CARDSWAP_TEST_ONLY"); got != "loaded" {
		t.Errorf("CARDSWAP_TEST_ONLY = %q", got)
	}
}
