package cardswap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cardswap/matchmaker/cardswap/config"
	"github.com/cardswap/matchmaker/cardswap/database"
	"github.com/cardswap/matchmaker/cardswap/services"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	EnvDBPassword   = "CARDSWAP_DB_PASSWORD"
	EnvSpacesKey    = "CARDSWAP_SPACES_KEY"
	EnvSpacesSecret = "CARDSWAP_SPACES_SECRET"
)

// LoadEnv reads optional dotenv files into the process environment.
// Variables that are already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err = toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	cfg.applyEnv()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type Config struct {
	Log         LogConfig             `toml:"log"`
	DB          database.DBConfig     `toml:"db"`
	Matchmaking MatchmakingConfig     `toml:"matchmaking"`
	Spaces      services.SpacesConfig `toml:"spaces"`
}

type LogConfig struct {
	Level     string `toml:"level"`
	AddSource bool   `toml:"add_source"`
	NoColor   bool   `toml:"no_color"`
}

type MatchmakingConfig struct {
	ForwardLimit     int `toml:"forward_limit"`
	ReverseLimit     int `toml:"reverse_limit"`
	InsightLimit     int `toml:"insight_limit"`
	CatalogCacheSize int `toml:"catalog_cache_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		DB: database.DBConfig{
			Host:     "localhost",
			Port:     5432,
			PoolSize: 10,
		},
		Matchmaking: MatchmakingConfig{
			ForwardLimit:     config.DefaultForwardLimit,
			ReverseLimit:     config.DefaultReverseLimit,
			InsightLimit:     config.DefaultInsightLimit,
			CatalogCacheSize: config.DefaultCatalogCacheSize,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.DB.Password = v
	}
	if v := os.Getenv(EnvSpacesKey); v != "" {
		c.Spaces.Key = v
	}
	if v := os.Getenv(EnvSpacesSecret); v != "" {
		c.Spaces.Secret = v
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.DB.Host == "" {
		errs = append(errs, errors.New("db.host is required"))
	}
	if c.DB.Database == "" {
		errs = append(errs, errors.New("db.database is required"))
	}
	if c.DB.Port <= 0 || c.DB.Port > 65535 {
		errs = append(errs, fmt.Errorf("db.port %d out of range", c.DB.Port))
	}
	m := c.Matchmaking
	if m.ForwardLimit <= 0 || m.ReverseLimit <= 0 || m.InsightLimit <= 0 {
		errs = append(errs, fmt.Errorf("matchmaking limits must be positive, got %d/%d/%d",
			m.ForwardLimit, m.ReverseLimit, m.InsightLimit))
	}
	if m.CatalogCacheSize < 0 {
		errs = append(errs, fmt.Errorf("matchmaking.catalog_cache_size %d is negative", m.CatalogCacheSize))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
