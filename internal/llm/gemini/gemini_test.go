package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/swift-scribe/internal/config"
	"github.com/nguyentantai21042004/swift-scribe/internal/llm"
)

func textResponse(s string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromText(s, genai.RoleModel),
		}},
	}
}

func TestNewRequiresKey(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEYS", " , ")
	_, err := New(config.GeminiConfig{APIKeyEnv: "TEST_GEMINI_KEYS"}, nil)
	assert.Error(t, err)
}

func TestInvokeBuildsRequest(t *testing.T) {
	var gotCfg *genai.GenerateContentConfig
	var gotContents []*genai.Content
	var gotModel string

	c := newClient([]string{"k1"}, func(_ context.Context, key, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		gotModel, gotContents, gotCfg = model, contents, cfg
		return textResponse(`{"summary":"s"}`), nil
	}, nil)

	msgs := []llm.Message{
		{Role: llm.RoleSystem, Content: "json only"},
		{Role: llm.RoleUser, Content: "Title: x"},
	}
	text, err := c.Invoke(context.Background(), "gemini-2.5-flash", msgs, llm.Options{Temperature: 0.1, MaxTokens: 800})
	require.NoError(t, err)

	assert.Equal(t, `{"summary":"s"}`, text)
	assert.Equal(t, "gemini-2.5-flash", gotModel)
	require.Len(t, gotContents, 1)
	assert.Equal(t, "Title: x", gotContents[0].Parts[0].Text)
	require.NotNil(t, gotCfg.SystemInstruction)
	assert.Equal(t, "json only", gotCfg.SystemInstruction.Parts[0].Text)
	assert.InDelta(t, 0.1, float64(*gotCfg.Temperature), 1e-6)
	assert.Equal(t, int32(800), gotCfg.MaxOutputTokens)
}

func TestInvokeRotatesKeysOnQuota(t *testing.T) {
	var keys []string
	c := newClient([]string{"k1", "k2", "k3"}, func(_ context.Context, key, _ string, _ []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		keys = append(keys, key)
		if key != "k3" {
			return nil, errors.New("Error 429, Message: RESOURCE_EXHAUSTED")
		}
		return textResponse("ok"), nil
	}, nil)

	text, err := c.Invoke(context.Background(), "m", []llm.Message{{Role: llm.RoleUser, Content: "hi"}}, llm.Options{})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, []string{"k1", "k2", "k3"}, keys)

	// The working key stays current for the next call.
	keys = nil
	_, err = c.Invoke(context.Background(), "m", []llm.Message{{Role: llm.RoleUser, Content: "hi"}}, llm.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"k3"}, keys)
}

func TestInvokeAllKeysExhausted(t *testing.T) {
	c := newClient([]string{"k1", "k2"}, func(context.Context, string, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return nil, errors.New("quota exceeded")
	}, nil)

	_, err := c.Invoke(context.Background(), "m", []llm.Message{{Role: llm.RoleUser, Content: "hi"}}, llm.Options{})
	assert.ErrorIs(t, err, llm.ErrRateLimited)
}

func TestInvokeNonQuotaErrorStops(t *testing.T) {
	calls := 0
	c := newClient([]string{"k1", "k2"}, func(context.Context, string, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		calls++
		return nil, errors.New("model not found")
	}, nil)

	_, err := c.Invoke(context.Background(), "m", []llm.Message{{Role: llm.RoleUser, Content: "hi"}}, llm.Options{})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestInvokeEmptyResponse(t *testing.T) {
	c := newClient([]string{"k1"}, func(context.Context, string, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return &genai.GenerateContentResponse{}, nil
	}, nil)

	_, err := c.Invoke(context.Background(), "m", []llm.Message{{Role: llm.RoleUser, Content: "hi"}}, llm.Options{})
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
}

func TestTranscribeSendsAudio(t *testing.T) {
	var got []*genai.Content
	c := newClient([]string{"k1"}, func(_ context.Context, _, _ string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		got = contents
		return textResponse("hello there"), nil
	}, nil)

	text, err := c.Transcribe(context.Background(), "gemini-2.5-flash", []byte("ID3"), "memo.mp3")
	require.NoError(t, err)
	assert.Equal(t, "hello there", text)

	require.Len(t, got, 1)
	require.Len(t, got[0].Parts, 2)
	require.NotNil(t, got[0].Parts[1].InlineData)
	assert.Equal(t, "audio/mp3", got[0].Parts[1].InlineData.MIMEType)
	assert.Equal(t, []byte("ID3"), got[0].Parts[1].InlineData.Data)
}
