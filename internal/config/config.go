package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort     = ":8080"
	DefaultLogLevel = "info"
)

// Config is the application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Seed   []SeedClient `yaml:"seed"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// SeedClient is a client registered at startup together with its products
type SeedClient struct {
	Name     string        `yaml:"name"`
	Email    string        `yaml:"email"`
	Address  string        `yaml:"address"`
	Password string        `yaml:"password"`
	Products []SeedProduct `yaml:"products"`
}

// SeedProduct is a product advertised at startup. InitialPrice is a decimal string.
type SeedProduct struct {
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	InitialPrice string `yaml:"initial_price"`
}

// Price parses the initial price
func (p SeedProduct) Price() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(p.InitialPrice))
	if err != nil {
		return decimal.Zero, fmt.Errorf("seed product %q: invalid initial_price %q: %w", p.Name, p.InitialPrice, err)
	}
	return d, nil
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Server: ServerConfig{Port: DefaultPort},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads the YAML file at path (optional) and applies PORT and LOG_LEVEL overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if p := os.Getenv("PORT"); p != "" {
		cfg.Server.Port = p
	}
	if l := os.Getenv("LOG_LEVEL"); l != "" {
		cfg.Log.Level = l
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultPort
	}
	if !strings.Contains(cfg.Server.Port, ":") {
		cfg.Server.Port = ":" + cfg.Server.Port
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

// Validate checks seed prices; field validation of clients and products happens on registration.
func (c Config) Validate() error {
	var errs []error
	for _, client := range c.Seed {
		for _, p := range client.Products {
			if _, err := p.Price(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
