package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/flipiq/internal/config"
	"github.com/phrazzld/flipiq/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasUsableKey(t *testing.T) {
	assert.False(t, HasUsableKey(""))
	assert.False(t, HasUsableKey("  "))
	assert.False(t, HasUsableKey(PlaceholderAPIKey))
	assert.True(t, HasUsableKey(testAPIKey))
}

func TestValidateConfig(t *testing.T) {
	valid := testConfig("https://generativelanguage.googleapis.com", "")

	tests := []struct {
		name    string
		mutate  func(c *config.LLMConfig)
		wantErr bool
	}{
		{name: "valid without key", mutate: func(c *config.LLMConfig) {}},
		{name: "missing model", mutate: func(c *config.LLMConfig) { c.ModelName = "" }, wantErr: true},
		{name: "missing base URL", mutate: func(c *config.LLMConfig) { c.BaseURL = "" }, wantErr: true},
		{name: "relative base URL", mutate: func(c *config.LLMConfig) { c.BaseURL = "/v1beta" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *config.LLMConfig) { c.RequestTimeout = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := validateConfig(context.Background(), testLogger(), cfg)
			if tt.wantErr {
				assert.True(t, errors.Is(err, generation.ErrInvalidConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewGenerator_SelectsBackend(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig("https://generativelanguage.googleapis.com", testAPIKey)

	cfg.Backend = ""
	g, err := NewGenerator(ctx, testLogger(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &RESTGenerator{}, g)

	cfg.Backend = BackendSDK
	g, err = NewGenerator(ctx, testLogger(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &SDKGenerator{}, g)

	cfg.Backend = "grpc"
	g, err = NewGenerator(ctx, testLogger(), cfg)
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, generation.ErrInvalidConfig))

	_, err = NewGenerator(ctx, nil, cfg)
	assert.Error(t, err)
}
