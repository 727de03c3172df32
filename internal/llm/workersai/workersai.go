// Package workersai calls Cloudflare Workers AI models over its REST API.
package workersai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/nguyentantai21042004/swift-scribe/internal/config"
	"github.com/nguyentantai21042004/swift-scribe/internal/llm"
)

// Client implements llm.Invoker and transcriber.Provider.
type Client struct {
	baseURL   string
	accountID string
	token     string
	do        func(*http.Request) (*http.Response, error)
}

// New builds a Client from cfg, reading the API token from cfg.APITokenEnv.
func New(cfg config.WorkersAIConfig) (*Client, error) {
	if cfg.AccountID == "" {
		return nil, errors.New("providers.workersai.account_id is required")
	}
	token := os.Getenv(cfg.APITokenEnv)
	if token == "" {
		return nil, fmt.Errorf("workersai: missing api token in $%s", cfg.APITokenEnv)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	hc := &http.Client{Timeout: timeout}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		accountID: cfg.AccountID,
		token:     token,
		do:        hc.Do,
	}, nil
}

// upstreamError carries a non-2xx status from the API.
type upstreamError struct {
	status int
	msg    string
}

func (e upstreamError) Error() string { return fmt.Sprintf("workersai upstream %d: %s", e.status, e.msg) }

type envelope struct {
	Success bool `json:"success"`
	Errors  []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
	Result json.RawMessage `json:"result"`
}

type chatRequest struct {
	Messages    []llm.Message `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResult struct {
	Response json.RawMessage `json:"response"`
}

type transcribeResult struct {
	Text       string `json:"text"`
	Transcript string `json:"transcript"`
}

// Invoke runs a text generation model.
func (c *Client) Invoke(ctx context.Context, model string, messages []llm.Message, opts llm.Options) (string, error) {
	body, err := json.Marshal(chatRequest{
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}

	raw, err := c.run(ctx, model, "application/json", body)
	if err != nil {
		return "", err
	}

	var res chatResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return "", fmt.Errorf("decode result: %w", err)
	}
	text := responseText(res.Response)
	if text == "" {
		return "", llm.ErrEmptyResponse
	}
	return text, nil
}

// Transcribe runs a speech recognition model on the raw audio bytes.
func (c *Client) Transcribe(ctx context.Context, model string, audio []byte, _ string) (string, error) {
	raw, err := c.run(ctx, model, "application/octet-stream", audio)
	if err != nil {
		return "", err
	}

	var res transcribeResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return "", fmt.Errorf("decode result: %w", err)
	}
	if res.Text != "" {
		return res.Text, nil
	}
	return res.Transcript, nil
}

// responseText accepts the usual string response as well as an object, which
// some models return when they emit JSON directly.
func responseText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func (c *Client) run(ctx context.Context, model, contentType string, body []byte) (json.RawMessage, error) {
	url := c.baseURL + "/accounts/" + c.accountID + "/ai/run/" + strings.TrimLeft(model, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, llm.ErrRateLimited
	}
	if resp.StatusCode/100 != 2 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, upstreamError{status: resp.StatusCode, msg: strings.TrimSpace(string(slurp))}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if !env.Success {
		if len(env.Errors) > 0 {
			return nil, fmt.Errorf("workersai error %d: %s", env.Errors[0].Code, env.Errors[0].Message)
		}
		return nil, errors.New("workersai: request unsuccessful")
	}
	return env.Result, nil
}
