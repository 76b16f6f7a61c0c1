package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
)

// defaultCloudConfidence is reported when the remote service does not return a
// per-call score. The cloud tier is treated as authoritative once consulted, so
// a fixed high estimate is sufficient for diagnostics.
const defaultCloudConfidence float32 = 0.90

// CloudConfig configures the remote vision-OCR tier.
type CloudConfig struct {
	BaseURL string // default https://api.openai.com/v1
	APIKey  string
	Model   string        // e.g. "gpt-4o-mini"
	Timeout time.Duration // http client timeout
}

// CloudClient extracts text from an image by sending it to a vision-capable
// chat/completions endpoint as a base64 data URL.
type CloudClient struct {
	cfg  CloudConfig
	http *http.Client
	log  *slog.Logger
}

func NewCloudClient(cfg CloudConfig, logger *slog.Logger) *CloudClient {
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
	return &CloudClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

func (c *CloudClient) Available(_ context.Context) bool {
	return c.cfg.APIKey != ""
}

func (c *CloudClient) Extract(ctx context.Context, imageRef string) (Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	dataURL, mt, err := readAsDataURL(localPath(imageRef))
	if err != nil {
		return Result{}, fmt.Errorf("read image: %w", err)
	}

	c.log.Info("cloud.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"mime", mt,
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": 0,
		"messages": []map[string]any{
			{"role": "system", "content": "You transcribe text from photos. Return the raw text exactly as printed, preserving line breaks. Do not summarize or annotate."},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": "Transcribe all text in this image."},
				{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
			}},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("cloud.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{}, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return Result{}, fmt.Errorf("decode cloud response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return Result{}, fmt.Errorf("no choices in cloud response")
	}
	text := strings.TrimSpace(cc.Choices[0].Message.Content)

	c.log.Info("cloud.extract.ok",
		"req_id", rid,
		"bytes", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Text: text, Confidence: defaultCloudConfidence}, nil
}

func (c *CloudClient) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloud http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("cloud response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cloud status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

func readAsDataURL(path string) (string, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		// fallbacks
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		default:
			mt = "application/octet-stream"
		}
	}
	data := base64.StdEncoding.EncodeToString(b)
	return "data:" + mt + ";base64," + data, mt, nil
}
