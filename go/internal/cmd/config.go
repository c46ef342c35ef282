package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mcdev12/sportsfed/go/internal/federation"
	"gopkg.in/yaml.v3"
)

// Config is the YAML application configuration. Environment variables
// override the secrets and addresses; the YAML carries structure.
type Config struct {
	Server struct {
		Port           string        `yaml:"port"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
		CORSOrigins    []string      `yaml:"cors_origins"`
	} `yaml:"server"`

	Federation struct {
		Providers        []federation.ProviderConfig `yaml:"providers"`
		MergeLeagueTeams bool                        `yaml:"merge_league_teams"`
		TTL              struct {
			TeamInfo    time.Duration `yaml:"team_info"`
			TeamStats   time.Duration `yaml:"team_stats"`
			Schedule    time.Duration `yaml:"schedule"`
			Events      time.Duration `yaml:"events"`
			SingleEvent time.Duration `yaml:"single_event"`
			Search      time.Duration `yaml:"search"`
			EmptyResult time.Duration `yaml:"empty_result"`
		} `yaml:"ttl"`
	} `yaml:"federation"`

	Cache struct {
		Backend string `yaml:"backend"` // memory or redis
		MaxSize int    `yaml:"max_size"`
	} `yaml:"cache"`

	EventStore struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"event_store"`

	Providers struct {
		SportsDB struct {
			APIKey string `yaml:"api_key"`
		} `yaml:"sportsdb"`
	} `yaml:"providers"`
}

func loadConfig(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(&config)
	applyDefaults(&config)
	return &config, nil
}

func applyEnvOverrides(config *Config) {
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port = port
	}
	if key := os.Getenv("SPORTSDB_API_KEY"); key != "" {
		config.Providers.SportsDB.APIKey = key
	}
	if backend := os.Getenv("CACHE_BACKEND"); backend != "" {
		config.Cache.Backend = backend
	}
	config.Cache.MaxSize = getEnvAsInt("CACHE_MAX_SIZE", config.Cache.MaxSize)
}

func applyDefaults(config *Config) {
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.Cache.Backend == "" {
		config.Cache.Backend = "memory"
	}
	if len(config.Federation.Providers) == 0 {
		config.Federation.Providers = federation.DefaultConfig().Providers
	}
}

// federationConfig assembles the routing configuration from the YAML
// sections, leaving zero TTLs to the federation defaults.
func (c *Config) federationConfig() federation.Config {
	return federation.Config{
		Providers:        c.Federation.Providers,
		MergeLeagueTeams: c.Federation.MergeLeagueTeams,
		TTL: federation.TTLConfig{
			TeamInfo:    c.Federation.TTL.TeamInfo,
			TeamStats:   c.Federation.TTL.TeamStats,
			Schedule:    c.Federation.TTL.Schedule,
			Events:      c.Federation.TTL.Events,
			SingleEvent: c.Federation.TTL.SingleEvent,
			Search:      c.Federation.TTL.Search,
			EmptyResult: c.Federation.TTL.EmptyResult,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
