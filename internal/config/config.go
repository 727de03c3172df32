package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Models      ModelsConfig      `yaml:"models"`
	Generation  GenerationConfig  `yaml:"generation"`
	Prompts     PromptsConfig     `yaml:"prompts"`
	Providers   ProvidersConfig   `yaml:"providers"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Addr                   string `yaml:"addr"`
	MaxBodyBytes           int64  `yaml:"max_body_bytes"`
	MaxUploadBytes         int64  `yaml:"max_upload_bytes"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

// ModelsConfig holds model identifiers in "provider:model" form. A bare
// identifier is routed to DefaultProvider.
type ModelsConfig struct {
	DefaultProvider string   `yaml:"default_provider"`
	Summarize       []string `yaml:"summarize"`
	Transcribe      string   `yaml:"transcribe"`
}

type GenerationConfig struct {
	Temperature       *float64 `yaml:"temperature"`
	MaxTokens         int      `yaml:"max_tokens"`
	RepairTemperature *float64 `yaml:"repair_temperature"`
	RepairMaxTokens   int      `yaml:"repair_max_tokens"`
}

type PromptsConfig struct {
	TextSystem       string `yaml:"text_system"`
	TranscriptSystem string `yaml:"transcript_system"`
	RepairSystem     string `yaml:"repair_system"`
}

type ProvidersConfig struct {
	WorkersAI WorkersAIConfig `yaml:"workersai"`
	Gemini    GeminiConfig    `yaml:"gemini"`
}

type WorkersAIConfig struct {
	AccountID      string `yaml:"account_id"`
	APITokenEnv    string `yaml:"api_token_env"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type GeminiConfig struct {
	// APIKeyEnv names an env var holding one or more comma separated keys.
	APIKeyEnv string `yaml:"api_key_env"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Validate fills defaults and rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Models.DefaultProvider == "" {
		c.Models.DefaultProvider = "workersai"
	}
	if len(c.Models.Summarize) == 0 {
		c.Models.Summarize = []string{
			"workersai:@cf/mistral/mistral-7b-instruct-v0.2",
			"workersai:@cf/meta/llama-3.1-8b-instruct",
		}
	}
	for i, m := range c.Models.Summarize {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("models.summarize[%d] is empty", i)
		}
	}
	if c.Models.Transcribe == "" {
		c.Models.Transcribe = "workersai:@cf/openai/whisper-tiny-en"
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8787"
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = 1_000_000
	}
	if c.Server.MaxUploadBytes <= 0 {
		c.Server.MaxUploadBytes = 25 << 20
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		c.Server.ShutdownTimeoutSeconds = 10
	}

	if c.Generation.Temperature == nil {
		c.Generation.Temperature = float(0.1)
	}
	if c.Generation.MaxTokens <= 0 {
		c.Generation.MaxTokens = 800
	}
	if c.Generation.RepairTemperature == nil {
		c.Generation.RepairTemperature = float(0)
	}
	if c.Generation.RepairMaxTokens <= 0 {
		c.Generation.RepairMaxTokens = 600
	}

	if c.Prompts.TextSystem == "" {
		c.Prompts.TextSystem = DefaultTextSystemPrompt
	}
	if c.Prompts.TranscriptSystem == "" {
		c.Prompts.TranscriptSystem = DefaultTranscriptSystemPrompt
	}
	if c.Prompts.RepairSystem == "" {
		c.Prompts.RepairSystem = DefaultRepairSystemPrompt
	}

	if c.Providers.WorkersAI.APITokenEnv == "" {
		c.Providers.WorkersAI.APITokenEnv = "CLOUDFLARE_API_TOKEN"
	}
	if c.Providers.WorkersAI.BaseURL == "" {
		c.Providers.WorkersAI.BaseURL = "https://api.cloudflare.com/client/v4"
	}
	if c.Providers.WorkersAI.TimeoutSeconds <= 0 {
		c.Providers.WorkersAI.TimeoutSeconds = 60
	}
	if c.Providers.Gemini.APIKeyEnv == "" {
		c.Providers.Gemini.APIKeyEnv = "GEMINI_API_KEY"
	}

	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/notes"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	switch c.Logging.Format {
	case "":
		c.Logging.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// ValidateProviders checks every configured model identifier against the set
// of providers the binary knows how to call.
func (c *Config) ValidateProviders(chat, transcribe []string) error {
	for _, m := range c.Models.Summarize {
		if p := providerOf(m, c.Models.DefaultProvider); !contains(chat, p) {
			return fmt.Errorf("models.summarize: unknown provider %q in %q", p, m)
		}
	}
	if p := providerOf(c.Models.Transcribe, c.Models.DefaultProvider); !contains(transcribe, p) {
		return fmt.Errorf("models.transcribe: unknown provider %q in %q", p, c.Models.Transcribe)
	}
	if p := providerOf(c.Models.Transcribe, c.Models.DefaultProvider); p == "whisper" && c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	return nil
}

func providerOf(id, def string) string {
	if i := strings.Index(id, ":"); i > 0 {
		return id[:i]
	}
	return def
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func float(v float64) *float64 { return &v }
