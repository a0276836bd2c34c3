// Package openaix builds the OpenAI SDK client used by the generative
// responder.
package openaix

import (
	"errors"
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var ErrMissingAPIKey = errors.New("openai api key is required")

type Config struct {
	APIKey    string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	BaseURL   string        `envconfig:"BASE_URL" split_words:"true"`
	Model     string        `envconfig:"MODEL" split_words:"true" default:"gpt-4o"`
	Timeout   time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	AgentName string        `envconfig:"AGENT_NAME" split_words:"true" default:"Sarah"`
}

// NewClient creates an OpenAI SDK client. A missing API key is a
// configuration error and fails construction; the caller decides whether to
// fall back to a non-generative responder.
func NewClient(cfg Config) (*openaisdk.Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	opts := []option.RequestOption{
		option.WithAPIKey(key),
	}
	if trimmed := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}

	client := openaisdk.NewClient(opts...)
	return &client, nil
}
