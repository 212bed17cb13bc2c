package ai

//go:generate go run go.uber.org/mock/mockgen -source=./ai.go -destination=./mocks/ai_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
)

const (
	roleSystem = "system"
	roleUser   = "user"

	temperature    = 0.2
	maxTokens      = 500
	responseFormat = "json_object"

	otelAttrModel  = "ai.model"
	otelAttrStatus = "ai.status"
)

var (
	ErrNotConfigured = errors.New("ai endpoint is not configured")
	ErrEmptyAnswer   = errors.New("ai returned no choices")
)

// Client is a single chat-completions round trip expecting a JSON object back.
type Client interface {
	CompleteJSON(ctx context.Context, system, prompt string, out any) error
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string    `json:"model"`
	Messages       []message `json:"messages"`
	Temperature    float64   `json:"temperature"`
	MaxTokens      int       `json:"max_tokens"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

type clientImpl struct {
	http     *http.Client
	endpoint string
	apiKey   string
	model    string
	otel     otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	return &clientImpl{
		http:     &http.Client{Timeout: time.Duration(cfg.External.AI.TimeoutSeconds) * time.Second},
		endpoint: cfg.External.AI.Endpoint,
		apiKey:   cfg.External.AI.APIKey,
		model:    cfg.External.AI.Model,
		otel:     otel,
	}
}

func (c *clientImpl) CompleteJSON(ctx context.Context, system, prompt string, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelAIScopeName, constant.OtelAIScopeName+".CompleteJSON")
	defer scope.End()
	defer scope.TraceIfError(err)

	if c.endpoint == constant.Empty || c.apiKey == constant.Empty {
		return ErrNotConfigured
	}

	scope.SetAttribute(otelAttrModel, c.model)

	body := chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: roleSystem, Content: system},
			{Role: roleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	body.ResponseFormat.Type = responseFormat

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode ai request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build ai request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.apiKey)
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call ai endpoint: %w", err)
	}
	defer resp.Body.Close()

	scope.SetAttribute(otelAttrStatus, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read ai response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("ai endpoint answered %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var chat chatResponse
	if err = json.Unmarshal(raw, &chat); err != nil {
		return fmt.Errorf("failed to decode ai response: %w", err)
	}

	if len(chat.Choices) == 0 {
		return ErrEmptyAnswer
	}

	content := stripFence(chat.Choices[0].Message.Content)

	if err = json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("ai answer is not the expected json: %w", err)
	}

	return nil
}

// stripFence drops a ```json fence some models wrap around the object.
func stripFence(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	return strings.TrimSpace(content)
}
