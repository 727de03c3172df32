package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nguyentantai21042004/swift-scribe/internal/config"
	"github.com/nguyentantai21042004/swift-scribe/internal/llm"
	"github.com/nguyentantai21042004/swift-scribe/internal/llm/gemini"
	"github.com/nguyentantai21042004/swift-scribe/internal/llm/workersai"
	"github.com/nguyentantai21042004/swift-scribe/internal/logger"
	"github.com/nguyentantai21042004/swift-scribe/internal/summarizer"
	"github.com/nguyentantai21042004/swift-scribe/internal/transcriber"
	"github.com/nguyentantai21042004/swift-scribe/pkg/executor"
)

var (
	chatProviders       = []string{"workersai", "gemini"}
	transcribeProviders = []string{"workersai", "gemini", "whisper"}
)

// app holds what every command needs: config, logger and the provider clients
// referenced by the configured models.
type app struct {
	cfg    *config.Config
	logger logger.Logger

	workersAI *workersai.Client
	gemini    *gemini.Client
}

// loadApp reads the config file, falling back to defaults when the file does
// not exist, and connects the providers the model lists mention.
func loadApp(path string, withTranscriber bool) (*app, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateProviders(chatProviders, transcribeProviders); err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	a := &app{cfg: cfg, logger: log}

	used := make(map[string]bool)
	for _, id := range cfg.Models.Summarize {
		p, _ := llm.SplitModelID(id, cfg.Models.DefaultProvider)
		used[p] = true
	}
	if withTranscriber {
		p, _ := llm.SplitModelID(cfg.Models.Transcribe, cfg.Models.DefaultProvider)
		used[p] = true
	}

	if used["workersai"] {
		if a.workersAI, err = workersai.New(cfg.Providers.WorkersAI); err != nil {
			return nil, err
		}
	}
	if used["gemini"] {
		if a.gemini, err = gemini.New(cfg.Providers.Gemini, log); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *app) router() *llm.Router {
	router := llm.NewRouter(a.cfg.Models.DefaultProvider)
	if a.workersAI != nil {
		router.Register("workersai", a.workersAI)
	}
	if a.gemini != nil {
		router.Register("gemini", a.gemini)
	}
	return router
}

func (a *app) summarizer() summarizer.Summarizer {
	return summarizer.New(a.cfg, a.router(), a.logger)
}

func (a *app) transcriber() (transcriber.Transcriber, error) {
	providers := map[string]transcriber.Provider{
		"whisper": transcriber.NewWhisper(a.cfg.Whisper, a.cfg.Paths.Temp, executor.New(), a.logger),
	}
	if a.workersAI != nil {
		providers["workersai"] = a.workersAI
	}
	if a.gemini != nil {
		providers["gemini"] = a.gemini
	}
	return transcriber.New(a.cfg.Models.Transcribe, a.cfg.Models.DefaultProvider, providers, a.logger)
}

func (a *app) logStartup(ctx context.Context, mode string) {
	a.logger.Info(ctx, "========================================")
	a.logger.Info(ctx, "Swift Scribe (%s)", mode)
	a.logger.Info(ctx, "========================================")
	a.logger.Info(ctx, "Chat providers: %s", strings.Join(a.router().Providers(), ", "))
	a.logger.Info(ctx, "Summarize models: %v", a.cfg.Models.Summarize)
	a.logger.Info(ctx, "Transcribe model: %s", a.cfg.Models.Transcribe)
}

func ensureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
