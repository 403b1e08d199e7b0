package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Debug   bool    `yaml:"debug" env:"DEBUG"`
	Limiter Limiter `yaml:"limiter"`
	Server  Server  `yaml:"server"`
	CORS    CORS    `yaml:"cors"`
	Storage Storage `yaml:"storage"`
}

type Limiter struct {
	Enabled bool    `yaml:"enabled" env:"LIMITER_ENABLED"`
	Rps     float64 `yaml:"rps" env-default:"20"`
	Burst   int     `yaml:"burst" env-default:"5"`
}

type Server struct {
	Port string `yaml:"port" env:"PORT" env-default:"1234"`
	Host string `yaml:"host" env:"SERVER_HOST"`

	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:8080,http://localhost:1234,https://movies.com,https://midu.dev"`
}

type Storage struct {
	// SeedPath points to a JSON array of movies; the embedded collection is used when empty.
	SeedPath string `yaml:"seed_path" env:"SEED_PATH"`
}

// Load reads configPath and applies environment overrides. A missing file is
// not an error: the environment and defaults are used instead.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath != "" {
		_, err := os.Stat(configPath)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
				return nil, fmt.Errorf("read config %s: %w", configPath, err)
			}
			return &cfg, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from env: %w", err)
	}
	return &cfg, nil
}

func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err)
	}
	return cfg
}
