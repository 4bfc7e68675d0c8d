package database

import (
	"strings"
	"testing"
)

func TestDBConfig_DSN(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "cards",
		Password: "p@ss word",
		Database: "cardswap",
	}
	dsn := cfg.DSN()
	for _, want := range []string{"postgres://cards:", "@localhost:5432/cardswap", "sslmode=disable", "connect_timeout=5"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("DSN() = %q, missing %q", dsn, want)
		}
	}
	if strings.Contains(dsn, "p@ss word") {
		t.Errorf("DSN() = %q, password not escaped", dsn)
	}

	cfg.SSLMode = "require"
	if dsn := cfg.DSN(); !strings.Contains(dsn, "sslmode=require") {
		t.Errorf("DSN() = %q, want sslmode=require", dsn)
	}
}
