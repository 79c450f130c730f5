package config

import (
	"bytes"
	"fmt"
	"net"
	neturl "net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 8001
	defaultEnv        = "development"
	defaultMongoHost  = "127.0.0.1"
	defaultMongoPort  = 27017
	defaultMongoName  = "study_space"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                `yaml:"port"`
	Env            string             `yaml:"env"` // "development" | "production"
	AllowedOrigins []string           `yaml:"allowed_origins"`
	Mongo          MongoRuntimeConfig `yaml:"mongo"`
	AI             AIRuntimeConfig    `yaml:"ai"`
}

type MongoRuntimeConfig struct {
	URL  string `yaml:"url"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

// AIRuntimeConfig carries LLM provider credentials. APIKey is the shared
// fallback used when no provider-specific key is set, mirroring the single
// LLM key the hosted deployment ships with.
type AIRuntimeConfig struct {
	APIKey          string `yaml:"api_key"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	OpenAIAPIKey    string `yaml:"openai_api_key"`
	GeminiAPIKey    string `yaml:"gemini_api_key"`
}

type rawAppConfig struct {
	Port               int            `yaml:"port"`
	Env                string         `yaml:"env"`
	NodeEnv            string         `yaml:"node_env"`
	AllowedOrigins     []string       `yaml:"allowed_origins"`
	CORSOrigins        []string       `yaml:"cors_origins"`
	CORSAllowedOrigins []string       `yaml:"cors_allowed_origins"`
	Mongo              rawMongoConfig `yaml:"mongo"`
	MongoURL           string         `yaml:"mongo_url"`
	DBName             string         `yaml:"db_name"`
	AI                 rawAIConfig    `yaml:"ai"`
	LLMKey             string         `yaml:"llm_key"`
}

type rawMongoConfig struct {
	URL    string `yaml:"url"`
	URI    string `yaml:"uri"`
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Name   string `yaml:"name"`
	DBName string `yaml:"db_name"`
}

type rawAIConfig struct {
	APIKey          string `yaml:"api_key"`
	LLMKey          string `yaml:"llm_key"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	OpenAIAPIKey    string `yaml:"openai_api_key"`
	GeminiAPIKey    string `yaml:"gemini_api_key"`
}

func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := defaultAppConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	raw := rawAppConfig{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	applyRawAppConfig(&cfg, raw)
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.Mongo.Port < 1 || cfg.Mongo.Port > 65535 {
		return nil, fmt.Errorf("invalid mongo.port %d in %q, expected 1-65535", cfg.Mongo.Port, path)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Mongo: MongoRuntimeConfig{
			Host: defaultMongoHost,
			Port: defaultMongoPort,
			Name: defaultMongoName,
		},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.NodeEnv); v != "" {
		cfg.Env = v
	}

	switch {
	case raw.AllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.AllowedOrigins)
	case raw.CORSOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.CORSOrigins)
	case raw.CORSAllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.CORSAllowedOrigins)
	}

	cfg.Mongo = applyRawMongoConfig(cfg.Mongo, raw)
	cfg.AI = applyRawAIConfig(cfg.AI, raw)
	cfg.Env = normalizeEnv(cfg.Env)
}

func applyRawMongoConfig(current MongoRuntimeConfig, raw rawAppConfig) MongoRuntimeConfig {
	cfg := current

	if v := strings.TrimSpace(raw.Mongo.URL); v != "" {
		cfg.URL = v
	}
	if v := strings.TrimSpace(raw.Mongo.URI); v != "" {
		cfg.URL = v
	}
	if v := strings.TrimSpace(raw.MongoURL); v != "" {
		cfg.URL = v
	}
	if v := strings.TrimSpace(raw.Mongo.Host); v != "" {
		cfg.Host = v
	}
	if raw.Mongo.Port != 0 {
		cfg.Port = raw.Mongo.Port
	}
	if v := strings.TrimSpace(raw.Mongo.Name); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(raw.Mongo.DBName); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(raw.DBName); v != "" {
		cfg.Name = v
	}

	return normalizeMongoConfig(cfg)
}

func applyRawAIConfig(current AIRuntimeConfig, raw rawAppConfig) AIRuntimeConfig {
	cfg := current

	if v := strings.TrimSpace(raw.AI.APIKey); v != "" {
		cfg.APIKey = v
	}
	if v := strings.TrimSpace(raw.AI.LLMKey); v != "" {
		cfg.APIKey = v
	}
	if v := strings.TrimSpace(raw.LLMKey); v != "" {
		cfg.APIKey = v
	}
	if v := strings.TrimSpace(raw.AI.AnthropicAPIKey); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := strings.TrimSpace(raw.AI.OpenAIAPIKey); v != "" {
		cfg.OpenAIAPIKey = v
	}
	if v := strings.TrimSpace(raw.AI.GeminiAPIKey); v != "" {
		cfg.GeminiAPIKey = v
	}

	return cfg
}

func normalizeMongoConfig(cfg MongoRuntimeConfig) MongoRuntimeConfig {
	cfg.URL = normalizeMongoRawURL(cfg.URL)
	cfg.Host = strings.TrimSpace(cfg.Host)
	cfg.Name = strings.TrimSpace(cfg.Name)

	if cfg.Host == "" && cfg.URL == "" {
		cfg.Host = defaultMongoHost
	}
	if cfg.Port == 0 {
		cfg.Port = defaultMongoPort
	}
	if cfg.Name == "" {
		cfg.Name = defaultMongoName
	}
	return cfg
}

func normalizeMongoRawURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "mongodb://") || strings.HasPrefix(trimmed, "mongodb+srv://") {
		return trimmed
	}
	return "mongodb://" + trimmed
}

// URLValue returns the connection string, synthesizing one from host/port
// when no explicit URL is configured.
func (c MongoRuntimeConfig) URLValue() string {
	if u := normalizeMongoRawURL(c.URL); u != "" {
		return u
	}

	host := strings.TrimSpace(c.Host)
	if host == "" {
		host = defaultMongoHost
	}
	port := c.Port
	if port == 0 {
		port = defaultMongoPort
	}

	u := &neturl.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
	}
	return u.String()
}

// KeyFor resolves the credential for a provider type, falling back to the
// shared key when no provider-specific key is configured.
func (a AIRuntimeConfig) KeyFor(provider string) string {
	var key string
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "anthropic":
		key = a.AnthropicAPIKey
	case "openai":
		key = a.OpenAIAPIKey
	case "gemini", "google":
		key = a.GeminiAPIKey
	}
	if strings.TrimSpace(key) == "" {
		key = a.APIKey
	}
	return strings.TrimSpace(key)
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(env string) string {
	trimmed := strings.ToLower(strings.TrimSpace(env))
	if trimmed == "" {
		return defaultEnv
	}
	return trimmed
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}
