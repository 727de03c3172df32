package summarizer

import (
	"github.com/nguyentantai21042004/swift-scribe/internal/config"
	"github.com/nguyentantai21042004/swift-scribe/internal/llm"
	"github.com/nguyentantai21042004/swift-scribe/internal/logger"
)

type implSummarizer struct {
	invoker    llm.Invoker
	runner     *llm.Runner
	logger     logger.Logger
	models     []string
	prompts    config.PromptsConfig
	genOpts    llm.Options
	repairOpts llm.Options
}

// New creates a Summarizer that calls models through inv, trying cfg.Models.Summarize in order.
func New(cfg *config.Config, inv llm.Invoker, log logger.Logger) Summarizer {
	if log == nil {
		log = logger.Nop()
	}
	gen := cfg.Generation
	s := &implSummarizer{
		invoker: inv,
		runner:  llm.NewRunner(inv, log),
		logger:  log,
		models:  cfg.Models.Summarize,
		prompts: cfg.Prompts,
		genOpts: llm.Options{MaxTokens: gen.MaxTokens},
		repairOpts: llm.Options{
			MaxTokens: gen.RepairMaxTokens,
		},
	}
	if gen.Temperature != nil {
		s.genOpts.Temperature = *gen.Temperature
	}
	if gen.RepairTemperature != nil {
		s.repairOpts.Temperature = *gen.RepairTemperature
	}
	return s
}
