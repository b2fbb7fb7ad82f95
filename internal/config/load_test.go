package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value unsets the variable.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
		}
	}
}

// clearEnv unsets every variable the loader reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	setupEnv(t, map[string]string{
		"FLIPIQ_SERVER_HOST":                 "",
		"FLIPIQ_SERVER_PORT":                 "",
		"FLIPIQ_SERVER_LOG_LEVEL":            "",
		"FLIPIQ_SERVER_CORS_ALLOWED_ORIGINS": "",
		"FLIPIQ_LLM_BACKEND":                 "",
		"FLIPIQ_LLM_GEMINI_API_KEY":          "",
		"GEMINI_API_KEY":                     "",
		"FLIPIQ_LLM_MODEL_NAME":              "",
		"FLIPIQ_LLM_BASE_URL":                "",
		"FLIPIQ_LLM_PROMPT_TEMPLATE_PATH":    "",
		"FLIPIQ_LLM_REQUEST_TIMEOUT":         "",
		"FLIPIQ_CALENDAR_TIMEZONE":           "",
		"FLIPIQ_COMMUNITY_USERNAME":          "",
	})
}

// TestLoadDefaults verifies that Load works with no file and no environment.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Empty(t, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())

	assert.Equal(t, "rest", cfg.LLM.Backend)
	assert.Empty(t, cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, DefaultBaseURL, cfg.LLM.BaseURL)
	assert.Zero(t, cfg.LLM.RequestTimeout)

	assert.Empty(t, cfg.Calendar.Timezone)
	assert.Equal(t, "You", cfg.Community.Username)
}

// TestLoadFromEnv verifies that environment variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	setupEnv(t, map[string]string{
		"FLIPIQ_SERVER_PORT":                 "9090",
		"FLIPIQ_SERVER_LOG_LEVEL":            "debug",
		"FLIPIQ_SERVER_CORS_ALLOWED_ORIGINS": "http://localhost:3000,http://127.0.0.1:3000",
		"FLIPIQ_LLM_BACKEND":                 "sdk",
		"FLIPIQ_LLM_GEMINI_API_KEY":          "test-api-key",
		"FLIPIQ_LLM_REQUEST_TIMEOUT":         "45s",
		"FLIPIQ_CALENDAR_TIMEZONE":           "UTC",
		"FLIPIQ_COMMUNITY_USERNAME":          "Alex",
	})

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "sdk", cfg.LLM.Backend)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, 45*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, "UTC", cfg.Calendar.Timezone)
	assert.Equal(t, "Alex", cfg.Community.Username)
}

func TestLoadGeminiAPIKeyAlias(t *testing.T) {
	clearEnv(t)
	setupEnv(t, map[string]string{"GEMINI_API_KEY": "alias-key"})

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "alias-key", cfg.LLM.GeminiAPIKey)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 7070
  log_level: warn
llm:
  model_name: gemini-1.5-pro
  request_timeout: 20s
community:
  username: Sam
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, "gemini-1.5-pro", cfg.LLM.ModelName)
	assert.Equal(t, 20*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, "Sam", cfg.Community.Username)

	// Environment wins over the file.
	setupEnv(t, map[string]string{"FLIPIQ_SERVER_PORT": "6060"})
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{name: "Invalid port number", envVars: map[string]string{"FLIPIQ_SERVER_PORT": "999999"}},
		{name: "Invalid log level", envVars: map[string]string{"FLIPIQ_SERVER_LOG_LEVEL": "verbose"}},
		{name: "Unknown backend", envVars: map[string]string{"FLIPIQ_LLM_BACKEND": "grpc"}},
		{name: "Invalid base URL", envVars: map[string]string{"FLIPIQ_LLM_BASE_URL": "not a url"}},
		{name: "Missing prompt template", envVars: map[string]string{"FLIPIQ_LLM_PROMPT_TEMPLATE_PATH": "/nonexistent/prompt.tmpl"}},
		{name: "Unknown timezone", envVars: map[string]string{"FLIPIQ_CALENDAR_TIMEZONE": "Mars/Olympus_Mons"}},
		{name: "Negative timeout", envVars: map[string]string{"FLIPIQ_LLM_REQUEST_TIMEOUT": "-5s"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			setupEnv(t, tc.envVars)

			cfg, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FLIPIQ_COMMUNITY_USERNAME=Dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("FLIPIQ_COMMUNITY_USERNAME") })

	require.NoError(t, LoadEnvFile(path))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Dotenv", cfg.Community.Username)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
}

func TestCalendarLocation(t *testing.T) {
	loc, err := CalendarConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = CalendarConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = CalendarConfig{Timezone: "Nowhere/Special"}.Location()
	assert.Error(t, err)
}
