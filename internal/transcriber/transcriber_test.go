package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/swift-scribe/internal/config"
	"github.com/nguyentantai21042004/swift-scribe/internal/llm"
)

type providerFunc func(ctx context.Context, model string, audio []byte, filename string) (string, error)

func (f providerFunc) Transcribe(ctx context.Context, model string, audio []byte, filename string) (string, error) {
	return f(ctx, model, audio, filename)
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New("azure:whisper", "workersai", map[string]Provider{}, nil)
	assert.ErrorIs(t, err, llm.ErrUnknownProvider)
}

func TestTranscribe(t *testing.T) {
	var gotModel string
	p := providerFunc(func(_ context.Context, model string, audio []byte, _ string) (string, error) {
		gotModel = model
		return "  hello there \n", nil
	})

	tr, err := New("@cf/openai/whisper-tiny-en", "workersai", map[string]Provider{"workersai": p}, nil)
	require.NoError(t, err)

	text, err := tr.Transcribe(context.Background(), []byte{1, 2}, "memo.m4a")
	require.NoError(t, err)
	assert.Equal(t, "hello there", text)
	assert.Equal(t, "@cf/openai/whisper-tiny-en", gotModel)
}

func TestTranscribeEmpty(t *testing.T) {
	p := providerFunc(func(context.Context, string, []byte, string) (string, error) { return " \n ", nil })
	tr, err := New("workersai:w", "workersai", map[string]Provider{"workersai": p}, nil)
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), []byte{1}, "a.wav")
	assert.ErrorIs(t, err, ErrEmptyTranscript)
}

func TestTranscribeBackendError(t *testing.T) {
	boom := errors.New("503")
	p := providerFunc(func(context.Context, string, []byte, string) (string, error) { return "", boom })
	tr, err := New("workersai:w", "workersai", map[string]Provider{"workersai": p}, nil)
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), []byte{1}, "a.wav")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrEmptyTranscript)
}

// fakeExecutor records commands and plays whisper by writing the text file.
type fakeExecutor struct {
	commands []string
	dirs     []string
	text     string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteInDir(ctx, "", name, args...)
}

func (f *fakeExecutor) ExecuteInDir(_ context.Context, dir string, name string, args ...string) (string, error) {
	f.commands = append(f.commands, name)
	f.dirs = append(f.dirs, dir)
	for i, a := range args {
		if a == "--output-file" && i+1 < len(args) {
			if err := os.WriteFile(args[i+1]+".txt", []byte(f.text), 0644); err != nil {
				return "", err
			}
		}
	}
	return "", nil
}

func TestWhisperTranscribe(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "temp")
	exec := &fakeExecutor{text: " [music] we ship on friday\n"}
	cfg := config.WhisperConfig{BinaryPath: "whisper-cli", ModelPath: "models/base.bin", Language: "en", Threads: 4}

	w := NewWhisper(cfg, tempDir, exec, nil)
	text, err := w.Transcribe(context.Background(), "local", []byte("RIFF"), "memo.m4a")
	require.NoError(t, err)

	assert.Equal(t, " [music] we ship on friday\n", text)
	assert.Equal(t, []string{"ffmpeg", "whisper-cli"}, exec.commands)
	assert.NotEmpty(t, exec.dirs[1])

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "work dir should be removed")
}
