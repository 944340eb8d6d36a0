package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	DefaultModel       = "gemini-2.5-flash"
	defaultTemperature = 0.2
	defaultMaxTokens   = 1000
)

var ErrEmptyResponse = errors.New("gemini returned no text")

// Client wraps a genai client with the generation settings the assistant uses.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is empty")
	}
	if model == "" {
		model = DefaultModel
	}
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return &Client{client: c, model: model}, nil
}

// Generate asks for a JSON answer; the raw text is returned for the caller to parse.
func (c *Client) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(defaultTemperature)
	m.SetMaxOutputTokens(defaultMaxTokens)
	m.ResponseMIMEType = "application/json"
	if systemInstruction != "" {
		m.SystemInstruction = genai.NewUserContent(genai.Text(systemInstruction))
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		if sb.Len() > 0 {
			break
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
