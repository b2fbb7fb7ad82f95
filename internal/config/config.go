package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	LLM       LLMConfig       `mapstructure:"llm"       validate:"required"`
	Calendar  CalendarConfig  `mapstructure:"calendar"`
	Community CommunityConfig `mapstructure:"community" validate:"required"`
}

// ServerConfig contains the local HTTP shell settings.
type ServerConfig struct {
	Host               string   `mapstructure:"host"                 validate:"required,hostname|ip"`
	Port               int      `mapstructure:"port"                 validate:"required,gt=0,lt=65536"`
	LogLevel           string   `mapstructure:"log_level"            validate:"required,oneof=debug info warn error"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"omitempty,dive,required"`
}

// Addr returns the host:port the server listens on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// Backend selects the Gemini adapter: "rest" or "sdk".
	Backend string `mapstructure:"backend" validate:"required,oneof=rest sdk"`

	// GeminiAPIKey may be empty. Generation then uses fallback flashcards
	// without contacting the API.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	ModelName          string        `mapstructure:"model_name"           validate:"required"`
	BaseURL            string        `mapstructure:"base_url"             validate:"required,url"`
	PromptTemplatePath string        `mapstructure:"prompt_template_path" validate:"omitempty,file"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"      validate:"gte=0"`
}

// CalendarConfig controls how dates are grouped into calendar days.
type CalendarConfig struct {
	// Timezone is an IANA zone name. Empty means the system local zone.
	Timezone string `mapstructure:"timezone" validate:"omitempty,timezone"`
}

// Location resolves Timezone.
func (c CalendarConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// CommunityConfig contains the community chat settings.
type CommunityConfig struct {
	// Username is attached to messages sent by the local user.
	Username string `mapstructure:"username" validate:"required,max=50"`
}
