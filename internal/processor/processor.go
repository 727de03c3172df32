package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"

	"github.com/nguyentantai21042004/swift-scribe/internal/logger"
	"github.com/nguyentantai21042004/swift-scribe/internal/summarizer"
)

var (
	textExts  = []string{".txt", ".md"}
	audioExts = []string{".wav", ".mp3", ".m4a", ".ogg", ".flac", ".webm"}
)

// Supports reports whether path has a text or audio extension the processor handles.
func (p *implProcessor) Supports(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return contains(textExts, ext) || contains(audioExts, ext)
}

// Process runs one inbox file through the pipeline: transcribe (audio only),
// summarize, export, archive.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	jobID := ulid.Make().String()
	ctx = logger.WithRequestID(ctx, jobID)
	startTime := time.Now()
	filename := filepath.Base(path)
	title := strings.TrimSuffix(filename, filepath.Ext(filename))

	p.logger.Info(ctx, "Starting note for: %s", path)

	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	req := summarizer.Request{Title: title, Kind: summarizer.KindText, Text: string(data)}
	var transcript string

	if contains(audioExts, strings.ToLower(filepath.Ext(path))) {
		transcript, err = p.transcriber.Transcribe(ctx, data, filename)
		if err != nil {
			return fmt.Errorf("transcribe: %w", err)
		}
		req.Kind = summarizer.KindTranscript
		req.Text = transcript
	}

	result, err := p.summarizer.Summarize(ctx, req)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	outputs, err := p.writeOutputs(ctx, jobID, title, transcript, result)
	if err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}

	if err := p.moveToArchived(ctx, jobID, path); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "[DONE] %s -> %s (model %s, %s)",
		filename, strings.Join(outputs, ", "), result.ModelUsed, time.Since(startTime).Round(time.Millisecond))
	return nil
}

// uniqueSuffix is the random tail of a job ULID, used to keep same-named
// inputs from overwriting each other.
func uniqueSuffix(jobID string) string {
	if len(jobID) > 8 {
		jobID = jobID[len(jobID)-8:]
	}
	return strings.ToLower(jobID)
}

// anyExists reports whether any of paths is already present on fs.
func anyExists(fs afero.Fs, paths ...string) (bool, error) {
	for _, path := range paths {
		ok, err := afero.Exists(fs, path)
		if err != nil {
			return false, fmt.Errorf("stat %s: %w", path, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
