package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

// Provider names understood by the repositories layer.
const (
	ProviderNASAPower       = "nasa-power"
	ProviderOpenWeather     = "openweather"
	ProviderForecastService = "forecast-service"
	ProviderNominatim       = "nominatim"
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Weather   WeatherConfig   `yaml:"weather"`
	Forecast  ForecastConfig  `yaml:"forecast"`
	Cache     CacheConfig     `yaml:"cache"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Sentry    SentryConfig    `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Env     string `yaml:"env"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"read_timeout" split_words:"true"`
	WriteTimeout int    `yaml:"write_timeout" split_words:"true"`
	IdleTimeout  int    `yaml:"idle_timeout" split_words:"true"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WeatherConfig struct {
	APIs []WeatherAPIConfig `yaml:"apis" ignored:"true"`
}

// WeatherAPIConfig describes one upstream provider. APIKeyEnv names an environment
// variable that overrides APIKey. Timeout is in seconds.
type WeatherAPIConfig struct {
	Name       string  `yaml:"name"`
	BaseURL    string  `yaml:"base_url,omitempty"`
	APIKey     string  `yaml:"api_key,omitempty"`
	APIKeyEnv  string  `yaml:"api_key_env,omitempty"`
	Timeout    int     `yaml:"timeout"`
	RPS        float64 `yaml:"rps,omitempty"`
	Burst      int     `yaml:"burst,omitempty"`
	MaxRetries int     `yaml:"max_retries,omitempty"`
}

type ForecastConfig struct {
	YearsBack   int `yaml:"years_back" split_words:"true"`
	MonthsAhead int `yaml:"months_ahead" split_words:"true"`
	WindowDays  int `yaml:"window_days" split_words:"true"`
	Concurrency int `yaml:"concurrency"`
}

type CacheConfig struct {
	TTL  time.Duration `yaml:"ttl"`
	Size int           `yaml:"size"`
}

type SchedulerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	DigestAt string `yaml:"digest_at" split_words:"true"`
	Timezone string `yaml:"timezone"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn"`
	Debug bool   `yaml:"debug"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider layers defaults, a YAML file and environment variables, in that order.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		App:    AppConfig{Name: "weather-insights", Version: "1.0.0", Env: "development"},
		Server: ServerConfig{Port: "8080", ReadTimeout: 10, WriteTimeout: 10, IdleTimeout: 120},
		Log:    LogConfig{Level: "info", Format: "json"},
		Forecast: ForecastConfig{
			YearsBack:   10,
			MonthsAhead: 12,
			WindowDays:  3,
			Concurrency: 4,
		},
		Cache:     CacheConfig{TTL: 30 * time.Minute, Size: 256},
		Scheduler: SchedulerConfig{Enabled: false, DigestAt: "07:00", Timezone: "UTC"},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Default()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	for i := range cnf.Weather.APIs {
		api := &cnf.Weather.APIs[i]
		if api.APIKeyEnv == "" {
			continue
		}
		if key := os.Getenv(api.APIKeyEnv); key != "" {
			api.APIKey = key
		}
	}

	return cnf, nil
}

// loadFromFile reads the YAML file over cnf. A missing file is not an error.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	var problems []string

	if cnf.App.Name == "" {
		problems = append(problems, "app.name is required")
	}
	if cnf.Server.Port == "" {
		problems = append(problems, "server.port is required")
	}
	switch cnf.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", cnf.Log.Level))
	}
	if cnf.Forecast.YearsBack <= 0 {
		problems = append(problems, "forecast.years_back must be positive")
	}
	if cnf.Forecast.MonthsAhead <= 0 {
		problems = append(problems, "forecast.months_ahead must be positive")
	}
	if cnf.Forecast.WindowDays < 0 {
		problems = append(problems, "forecast.window_days must not be negative")
	}
	if cnf.Scheduler.Enabled {
		if _, err := time.Parse("15:04", cnf.Scheduler.DigestAt); err != nil {
			problems = append(problems, fmt.Sprintf("scheduler.digest_at %q must be HH:MM", cnf.Scheduler.DigestAt))
		}
	}

	seen := map[string]bool{}
	for i, api := range cnf.Weather.APIs {
		switch api.Name {
		case ProviderNASAPower, ProviderOpenWeather, ProviderForecastService, ProviderNominatim:
		case "":
			problems = append(problems, fmt.Sprintf("weather.apis[%d].name is required", i))
			continue
		default:
			problems = append(problems, fmt.Sprintf("weather.apis[%d]: unknown provider %q", i, api.Name))
			continue
		}
		if seen[api.Name] {
			problems = append(problems, fmt.Sprintf("weather.apis[%d]: duplicate provider %q", i, api.Name))
		}
		seen[api.Name] = true
		if api.Timeout < 0 {
			problems = append(problems, fmt.Sprintf("weather.apis[%d].timeout must not be negative", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

// NewConfig loads .env if present, then the file named by CONFIG_PATH or DefaultPath.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultPath
	}

	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) GetWeatherAPIByName(name string) (*WeatherAPIConfig, bool) {
	for i := range c.Weather.APIs {
		if c.Weather.APIs[i].Name == name {
			return &c.Weather.APIs[i], true
		}
	}
	return nil, false
}

func (c *Config) GetWeatherAPIs() []WeatherAPIConfig {
	return c.Weather.APIs
}

// TimeoutOrDefault returns the API timeout, or def when unset.
func (a WeatherAPIConfig) TimeoutOrDefault(def time.Duration) time.Duration {
	if a.Timeout <= 0 {
		return def
	}
	return time.Duration(a.Timeout) * time.Second
}
