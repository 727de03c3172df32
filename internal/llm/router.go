package llm

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// SplitModelID splits "provider:model" into its parts. Identifiers without a
// provider prefix get def.
func SplitModelID(id, def string) (provider, model string) {
	if i := strings.Index(id, ":"); i > 0 {
		return id[:i], id[i+1:]
	}
	return def, id
}

// Router dispatches each invocation to the provider named by the model identifier.
type Router struct {
	providers       map[string]Invoker
	defaultProvider string
}

// NewRouter creates a Router. Providers are registered with Register.
func NewRouter(defaultProvider string) *Router {
	return &Router{
		providers:       make(map[string]Invoker),
		defaultProvider: defaultProvider,
	}
}

// Register binds name to inv, replacing any earlier binding.
func (r *Router) Register(name string, inv Invoker) {
	r.providers[name] = inv
}

// Providers returns the registered provider names, sorted.
func (r *Router) Providers() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke implements Invoker. Errors are returned as *InvocationError carrying
// the full identifier.
func (r *Router) Invoke(ctx context.Context, id string, messages []Message, opts Options) (string, error) {
	if len(messages) == 0 {
		return "", &InvocationError{Model: id, Err: ErrEmptyConversation}
	}

	provider, model := SplitModelID(id, r.defaultProvider)
	inv, ok := r.providers[provider]
	if !ok {
		return "", &InvocationError{Model: id, Err: fmt.Errorf("%w: %q", ErrUnknownProvider, provider)}
	}

	text, err := inv.Invoke(ctx, model, messages, opts)
	if err != nil {
		return "", &InvocationError{Model: id, Err: err}
	}
	return text, nil
}
