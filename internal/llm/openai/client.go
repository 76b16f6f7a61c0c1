package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/snapdish/snapdish/constants"
	"github.com/snapdish/snapdish/internal/common"
	"github.com/snapdish/snapdish/internal/entity"
	"github.com/snapdish/snapdish/internal/llm"
)

// ParseRecipe implements llm.Parser using text-only chat/completions with a
// JSON-schema-constrained response.
func (c *Client) ParseRecipe(ctx context.Context, text string) (*entity.Recipe, error) {
	fields, _, err := c.parseFields(ctx, text)
	if err != nil {
		return nil, err
	}
	return llm.MapFields(fields, c.log)
}

// ParseRecipes parses each text independently; it succeeds as long as at
// least one text parsed.
func (c *Client) ParseRecipes(ctx context.Context, texts []string) ([]*entity.Recipe, error) {
	recipes := make([]*entity.Recipe, 0, len(texts))
	var failures []string
	if len(texts) == 0 {
		return nil, common.E(common.CodeInvalidInput, "texts are required", common.ErrInvalidInput)
	}
	for i, t := range texts {
		if err := ctx.Err(); err != nil {
			return nil, common.Cancelled(err)
		}
		r, err := c.ParseRecipe(ctx, t)
		if err != nil {
			failures = append(failures, fmt.Sprintf("text %d: %v", i+1, err))
			continue
		}
		recipes = append(recipes, r)
	}
	if len(recipes) == 0 {
		return nil, common.E(common.CodeParsing,
			"all parses failed: "+strings.Join(failures, "; "), nil)
	}
	return recipes, nil
}

func (c *Client) ValidateText(text string) (bool, error) {
	return c.validator.Validate(text)
}

func (c *Client) Confidence() float32 {
	return c.conf.Average()
}

func (c *Client) parseFields(ctx context.Context, text string) (llm.RecipeFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.parse.start",
		"req_id", rid,
		"image", common.ImageRefFromContext(ctx),
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(text),
	)

	allowed := constants.AsStringSlice()
	schema := llm.BuildRecipeJSONSchema(allowed)
	sys := buildSystemPrompt(allowed)
	user := buildUserPrompt(text)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("llm.parse.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RecipeFields{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.parse.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RecipeFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.parse.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RecipeFields{}, raw, fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	// Validate strictly first.
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		if !c.cfg.StrictSchema {
			// Try a lenient sanitize: drop/normalize optional offenders and re-validate.
			cleaned, dropped, sErr := llm.NormalizeAndSanitizeJSON(rawContent, c.log)
			if sErr == nil {
				if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr == nil {
					c.log.Warn("llm.parse.lenient_sanitize_applied",
						"req_id", rid, "dropped", dropped,
						"elapsed_ms", time.Since(start).Milliseconds(),
					)
					rawContent = cleaned
				} else {
					c.log.Error("llm.parse.schema_validation_failed",
						"req_id", rid, "error", vErr, "content", string(rawContent),
						"elapsed_ms", time.Since(start).Milliseconds(),
					)
					return llm.RecipeFields{}, rawContent, fmt.Errorf("schema validation failed: %w", vErr)
				}
			} else {
				c.log.Error("llm.parse.sanitize_failed",
					"req_id", rid, "error", sErr,
					"elapsed_ms", time.Since(start).Milliseconds(),
				)
				return llm.RecipeFields{}, rawContent, fmt.Errorf("sanitize failed: %w", sErr)
			}
		} else {
			c.log.Error("llm.parse.schema_validation_failed",
				"req_id", rid, "error", err, "content", string(rawContent),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.RecipeFields{}, rawContent, fmt.Errorf("schema validation failed: %w", err)
		}
	}

	var out llm.RecipeFields
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.log.Error("llm.parse.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RecipeFields{}, rawContent, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.conf.Observe(out.ModelConfidence)

	c.log.Info("llm.parse.ok",
		"req_id", rid,
		"title", out.Title,
		"category", out.Category,
		"ingredients", len(out.Ingredients),
		"directions", len(out.Directions),
		"confidence", out.ModelConfidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
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
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}

func buildSystemPrompt(allowedCategories []string) string {
	parts := []string{
		"You are a recipe parser. Return ONLY JSON that matches the JSON Schema provided.",
		"The input is OCR text from a photographed or scanned recipe; tolerate recognition noise.",
		"Allowed categories (enum): " + strings.Join(allowedCategories, ", ") + ".",
		"Express prep_time and cook_time as plain phrases like '15 minutes' or '1 hour 30 minutes'.",
		"Express servings as a plain phrase like '4' or '4-6'.",
		"Keep each ingredient's quantity in 'amount' and its measure word in 'unit'; the rest goes in 'text'.",
		"List directions in cooking order.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(ocr string) string {
	var b strings.Builder
	b.WriteString("OCR text (first ~4k chars):\n")
	if len(ocr) > 4000 {
		b.WriteString(ocr[:4000])
	} else {
		b.WriteString(ocr)
	}
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
