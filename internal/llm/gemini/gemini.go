// Package gemini calls Google Gemini models through google.golang.org/genai.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/swift-scribe/internal/config"
	"github.com/nguyentantai21042004/swift-scribe/internal/llm"
	"github.com/nguyentantai21042004/swift-scribe/internal/logger"
)

const transcribePrompt = "Transcribe this audio verbatim. Return only the transcript text, without timestamps or commentary."

type generateFunc func(ctx context.Context, key, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// Client implements llm.Invoker and transcriber.Provider. It rotates through
// its API keys when one is rate limited.
type Client struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	clients    map[string]*genai.Client
	generate   generateFunc
	logger     logger.Logger
}

// New builds a Client from the comma separated keys in $cfg.APIKeyEnv.
func New(cfg config.GeminiConfig, log logger.Logger) (*Client, error) {
	var keys []string
	for _, k := range strings.Split(os.Getenv(cfg.APIKeyEnv), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("gemini: no api key in $%s", cfg.APIKeyEnv)
	}

	c := newClient(keys, nil, log)
	c.generate = c.generateWithSDK
	return c, nil
}

func newClient(keys []string, gen generateFunc, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		apiKeys:  keys,
		clients:  make(map[string]*genai.Client),
		generate: gen,
		logger:   log,
	}
}

// Invoke sends system messages as the system instruction and the rest as user turns.
func (c *Client) Invoke(ctx context.Context, model string, messages []llm.Message, opts llm.Options) (string, error) {
	var system []string
	var contents []*genai.Content
	for _, m := range messages {
		if m.Role == llm.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
	}
	if len(contents) == 0 {
		return "", llm.ErrEmptyConversation
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(opts.Temperature)),
		MaxOutputTokens: int32(opts.MaxTokens),
	}
	if len(system) > 0 {
		cfg.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}

	return c.call(ctx, model, contents, cfg)
}

// Transcribe sends the audio inline with a transcription instruction.
func (c *Client) Transcribe(ctx context.Context, model string, audio []byte, filename string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(transcribePrompt),
		genai.NewPartFromBytes(audio, audioMIMEType(filename)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	return c.call(ctx, model, contents, &genai.GenerateContentConfig{Temperature: genai.Ptr(float32(0))})
}

// call tries each key once, moving on only for quota errors.
func (c *Client) call(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	var lastErr error

	for range len(c.apiKeys) {
		key, index := c.key()

		result, err := c.generate(ctx, key, model, contents, cfg)
		if err != nil {
			if isQuotaError(err) {
				c.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", index+1)
				c.rotateKey(index)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		text := responseText(result)
		if text == "" {
			return "", llm.ErrEmptyResponse
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w (last: %w)", llm.ErrRateLimited, lastErr)
}

func (c *Client) key() (string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKeys[c.currentKey], c.currentKey
}

// rotateKey advances past index unless another request already did.
func (c *Client) rotateKey(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentKey == index {
		c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
	}
}

func (c *Client) generateWithSDK(ctx context.Context, key, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	client, err := c.sdkClient(ctx, key)
	if err != nil {
		return nil, err
	}
	return client.Models.GenerateContent(ctx, model, contents, cfg)
}

func (c *Client) sdkClient(ctx context.Context, key string) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if client, ok := c.clients[key]; ok {
		return client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	c.clients[key] = client
	return client, nil
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

func isQuotaError(err error) bool {
	if errors.Is(err, llm.ErrRateLimited) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func audioMIMEType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp3":
		return "audio/mp3"
	case ".aac", ".m4a":
		return "audio/aac"
	case ".ogg", ".opus":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	case ".aiff", ".aif":
		return "audio/aiff"
	case ".webm":
		return "audio/webm"
	default:
		return "audio/wav"
	}
}
