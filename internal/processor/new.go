package processor

import (
	"github.com/spf13/afero"

	"github.com/nguyentantai21042004/swift-scribe/internal/config"
	"github.com/nguyentantai21042004/swift-scribe/internal/logger"
	"github.com/nguyentantai21042004/swift-scribe/internal/summarizer"
	"github.com/nguyentantai21042004/swift-scribe/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	fs          afero.Fs
	summarizer  summarizer.Summarizer
	transcriber transcriber.Transcriber
	logger      logger.Logger
}

// New creates a Processor that reads inbox files from fs and writes exports back to it.
func New(cfg *config.Config, fs afero.Fs, sum summarizer.Summarizer, tr transcriber.Transcriber, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		fs:          fs,
		summarizer:  sum,
		transcriber: tr,
		logger:      log,
	}
}
