package llm

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/swift-scribe/internal/logger"
)

// Runner tries models strictly in order and returns the first success.
type Runner struct {
	invoker Invoker
	logger  logger.Logger
}

// NewRunner creates a Runner over inv.
func NewRunner(inv Invoker, log logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{invoker: inv, logger: log}
}

// Run invokes each model in turn with no delay between attempts. It fails with
// *AllModelsFailedError only when every model failed.
func (r *Runner) Run(ctx context.Context, models []string, messages []Message, opts Options) (Result, error) {
	if len(models) == 0 {
		return Result{}, &AllModelsFailedError{Last: ErrNoModels}
	}

	var lastErr error
	for i, model := range models {
		text, err := r.invoker.Invoke(ctx, model, messages, opts)
		if err == nil {
			if i > 0 {
				r.logger.Info(ctx, "Model %s succeeded after %d failed attempt(s)", model, i)
			}
			return Result{Model: model, Text: text}, nil
		}

		var ie *InvocationError
		if !errors.As(err, &ie) {
			err = &InvocationError{Model: model, Err: err}
		}
		r.logger.Warn(ctx, "[%d/%d] %v", i+1, len(models), err)
		lastErr = err
	}

	return Result{}, &AllModelsFailedError{Attempts: len(models), Last: lastErr}
}
