package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/swift-scribe/internal/llm"
	"github.com/nguyentantai21042004/swift-scribe/internal/logger"
)

type implTranscriber struct {
	id       string
	model    string
	provider Provider
	logger   logger.Logger
}

// New binds the "provider:model" identifier id to one of providers.
func New(id, defaultProvider string, providers map[string]Provider, log logger.Logger) (Transcriber, error) {
	name, model := llm.SplitModelID(id, defaultProvider)
	p, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("transcriber %q: %w: %q", id, llm.ErrUnknownProvider, name)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &implTranscriber{id: id, model: model, provider: p, logger: log}, nil
}
