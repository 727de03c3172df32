package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0644))

	got, err := readInput(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "from file", got)

	got, err = readInput(bytes.NewBufferString("from stdin"), "-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	_, err = readInput(nil, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadAppRejectsUnknownProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("models:\n  summarize: [\"ollama:llama3\"]\n"), 0644))

	_, err := loadApp(path, false)
	assert.ErrorContains(t, err, "unknown provider")
}

func TestLoadAppRequiresCredentials(t *testing.T) {
	t.Setenv("CLOUDFLARE_API_TOKEN", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("providers:\n  workersai:\n    account_id: acct\n"), 0644))

	_, err := loadApp(path, false)
	assert.ErrorContains(t, err, "CLOUDFLARE_API_TOKEN")
}

func TestSummarizeCommandArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"summarize"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestAppRouterRegistersConfiguredProviders(t *testing.T) {
	t.Setenv("CLOUDFLARE_API_TOKEN", "token")
	t.Setenv("GEMINI_API_KEY", "k1,k2")
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "models:\n  summarize: [\"gemini:gemini-2.5-flash\", \"workersai:@cf/x\"]\n" +
		"providers:\n  workersai:\n    account_id: acct\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	a, err := loadApp(path, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"gemini", "workersai"}, a.router().Providers())
}

func TestAppRouterSkipsUnusedProviders(t *testing.T) {
	t.Setenv("CLOUDFLARE_API_TOKEN", "token")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("providers:\n  workersai:\n    account_id: acct\n"), 0644))

	a, err := loadApp(path, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"workersai"}, a.router().Providers())
}
