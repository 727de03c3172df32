package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nguyentantai21042004/swift-scribe/internal/config"
	"github.com/nguyentantai21042004/swift-scribe/internal/logger"
	"github.com/nguyentantai21042004/swift-scribe/pkg/executor"
)

type implWhisper struct {
	cfg      config.WhisperConfig
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisper creates a Provider that runs whisper.cpp locally. Uploaded audio
// is converted to 16kHz mono WAV with ffmpeg first. The model argument of
// Transcribe is ignored; cfg.ModelPath selects the weights.
func NewWhisper(cfg config.WhisperConfig, tempDir string, exec executor.Executor, log logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &implWhisper{cfg: cfg, tempDir: tempDir, executor: exec, logger: log}
}

func (w *implWhisper) Transcribe(ctx context.Context, _ string, audio []byte, filename string) (string, error) {
	if err := os.MkdirAll(w.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	// Isolated dir per upload so concurrent requests never share files.
	workDir, err := os.MkdirTemp(w.tempDir, "whisper-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".bin"
	}
	inputPath := filepath.Join(workDir, "input"+ext)
	if err := os.WriteFile(inputPath, audio, 0644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	wavPath, err := w.extractAudio(ctx, inputPath)
	if err != nil {
		return "", err
	}

	return w.transcribe(ctx, wavPath)
}

// extractAudio converts the input to 16kHz mono PCM WAV, the format whisper.cpp expects.
func (w *implWhisper) extractAudio(ctx context.Context, inputPath string) (string, error) {
	wavPath := filepath.Join(filepath.Dir(inputPath), "audio.wav")

	args := []string{
		"-i", inputPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	w.logger.Debug(ctx, "Converting upload to WAV: %s", inputPath)
	if _, err := w.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}
	return wavPath, nil
}

// transcribe runs whisper.cpp with plain text output and returns the text file contents.
func (w *implWhisper) transcribe(ctx context.Context, wavPath string) (string, error) {
	outputPrefix := filepath.Join(filepath.Dir(wavPath), "transcript")

	// -otxt: plain text output, -l: force language (prevents hallucination)
	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"--output-file", outputPrefix,
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	w.logger.Debug(ctx, "Running whisper with %d threads", w.cfg.Threads)
	if _, err := w.executor.ExecuteInDir(ctx, filepath.Dir(wavPath), w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	return string(data), nil
}
