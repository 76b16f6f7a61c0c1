package openai

import (
	"net/http"
	"os"
	"time"

	"log/slog"

	"github.com/snapdish/snapdish/internal/llm"
	"github.com/snapdish/snapdish/internal/recipetext"
)

// staticConfidence seeds the running average before the first model response.
const staticConfidence float32 = 0.80

// Config for the OpenAI client.
type Config struct {
	APIKey       string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL      string        // default https://api.openai.com/v1
	Model        string        // e.g., "gpt-4o-mini"
	Temperature  float32       // 0..2
	Timeout      time.Duration // http client timeout
	StrictSchema bool          // skip the lenient sanitize pass on schema failures
}

type Client struct {
	cfg       Config
	http      *http.Client
	log       *slog.Logger
	validator *recipetext.Validator
	conf      *llm.ConfidenceTracker
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:       cfg,
		http:      &http.Client{Timeout: cfg.Timeout},
		log:       logger,
		validator: recipetext.NewValidator(logger),
		conf:      llm.NewConfidenceTracker(staticConfidence),
	}
}
