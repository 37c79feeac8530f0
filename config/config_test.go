package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cnf := Default()
	cnf.Weather.APIs = []WeatherAPIConfig{
		{Name: ProviderNASAPower, Timeout: 30},
		{Name: ProviderOpenWeather, APIKey: "test-key", Timeout: 10},
	}
	return cnf
}

func TestNewConfig(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "weather-insights", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10, config.Server.ReadTimeout)
	assert.Equal(t, 10, config.Server.WriteTimeout)
	assert.Equal(t, 120, config.Server.IdleTimeout)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 10, config.Forecast.YearsBack)
	assert.Equal(t, 12, config.Forecast.MonthsAhead)
	assert.Equal(t, 3, config.Forecast.WindowDays)
	assert.Equal(t, 30*time.Minute, config.Cache.TTL)
	assert.Equal(t, "07:00", config.Scheduler.DigestAt)

	assert.Len(t, config.Weather.APIs, 0)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "15")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("FORECAST_YEARS_BACK", "5")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("SCHEDULER_DIGEST_AT", "06:30")
	t.Setenv("SENTRY_DSN", "https://key@sentry.example.com/1")

	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "2.0.0", config.App.Version)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, 15, config.Server.ReadTimeout)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, 5, config.Forecast.YearsBack)
	assert.Equal(t, 5*time.Minute, config.Cache.TTL)
	assert.Equal(t, "06:30", config.Scheduler.DigestAt)
	assert.Equal(t, "https://key@sentry.example.com/1", config.Sentry.DSN)

	assert.Len(t, config.Weather.APIs, 0)
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider("config/config.yaml")

	assert.NoError(t, provider.Validate(validConfig()))

	invalid := validConfig()
	invalid.App.Name = ""
	err := provider.Validate(invalid)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "app.name is required")

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"unknown provider", func(c *Config) { c.Weather.APIs[0].Name = "open-meteo" }, `unknown provider "open-meteo"`},
		{"duplicate provider", func(c *Config) { c.Weather.APIs[1].Name = ProviderNASAPower }, "duplicate provider"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"years back", func(c *Config) { c.Forecast.YearsBack = 0 }, "forecast.years_back must be positive"},
		{"months ahead", func(c *Config) { c.Forecast.MonthsAhead = -1 }, "forecast.months_ahead must be positive"},
		{"digest time", func(c *Config) {
			c.Scheduler.Enabled = true
			c.Scheduler.DigestAt = "7am"
		}, "scheduler.digest_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cnf := validConfig()
			tt.mutate(cnf)
			err := provider.Validate(cnf)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfigHelperMethods(t *testing.T) {
	config := &Config{
		App: AppConfig{
			Env: "development",
		},
		Weather: WeatherConfig{
			APIs: []WeatherAPIConfig{
				{
					Name:    ProviderNASAPower,
					Timeout: 30,
				},
				{
					Name:    ProviderOpenWeather,
					APIKey:  "test-key",
					Timeout: 0,
				},
			},
		},
	}

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())

	api, found := config.GetWeatherAPIByName(ProviderNASAPower)
	assert.True(t, found)
	assert.Equal(t, ProviderNASAPower, api.Name)
	assert.Equal(t, 30*time.Second, api.TimeoutOrDefault(time.Second))

	api, found = config.GetWeatherAPIByName(ProviderOpenWeather)
	require.True(t, found)
	assert.Equal(t, 7*time.Second, api.TimeoutOrDefault(7*time.Second))

	api, found = config.GetWeatherAPIByName("nonexistent")
	assert.False(t, found)
	assert.Nil(t, api)

	apis := config.GetWeatherAPIs()
	assert.Len(t, apis, 2)
	assert.Equal(t, ProviderNASAPower, apis[0].Name)
	assert.Equal(t, ProviderOpenWeather, apis[1].Name)
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	err := provider.loadFromFile(config)
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))
	err = NewFileConfigProvider(path).loadFromFile(config)
	assert.Error(t, err)
}

func TestFileConfigProvider_APIKeyFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlData := `
weather:
  apis:
    - name: openweather
      api_key: from-file
      api_key_env: TEST_OPENWEATHER_KEY
      timeout: 10
cache:
  ttl: 10m
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0o600))
	t.Setenv("TEST_OPENWEATHER_KEY", "from-env")

	config, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.NoError(t, err)

	api, found := config.GetWeatherAPIByName(ProviderOpenWeather)
	require.True(t, found)
	assert.Equal(t, "from-env", api.APIKey)
	assert.Equal(t, 10*time.Minute, config.Cache.TTL)
	assert.Equal(t, "weather-insights", config.App.Name, "defaults survive a partial file")
}

func TestNewConfigWithProvider(t *testing.T) {
	mockProvider := &MockConfigProvider{config: validConfig()}

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "weather-insights", config.App.Name)

	_, err = NewConfigWithProvider(&MockConfigProvider{err: assert.AnError})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestConfigFileLoading(t *testing.T) {
	config, err := NewConfigWithProvider(NewFileConfigProvider("config.yaml"))
	require.NoError(t, err)

	assert.Len(t, config.Weather.APIs, 4)
	assert.Equal(t, ProviderNASAPower, config.Weather.APIs[0].Name)
	assert.Equal(t, ProviderOpenWeather, config.Weather.APIs[1].Name)
	assert.Equal(t, "OPENWEATHER_API_KEY", config.Weather.APIs[1].APIKeyEnv)
	assert.Equal(t, 30*time.Minute, config.Cache.TTL)
	assert.True(t, config.Scheduler.Enabled)
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config *Config
	err    error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(config *Config) error {
	return nil
}
