package llm

import "context"

// Role of a chat message. The system message comes first and sets the output contract.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Options are generation options passed through to the backend.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Invoker runs a single named model over a conversation and returns its raw text.
// Implementations do not retry; fallback across models is the Runner's job.
type Invoker interface {
	Invoke(ctx context.Context, model string, messages []Message, opts Options) (string, error)
}

// InvokerFunc adapts a function to Invoker.
type InvokerFunc func(ctx context.Context, model string, messages []Message, opts Options) (string, error)

func (f InvokerFunc) Invoke(ctx context.Context, model string, messages []Message, opts Options) (string, error) {
	return f(ctx, model, messages, opts)
}

// Result pairs raw model text with the identifier of the model that produced it.
type Result struct {
	Model string
	Text  string
}
