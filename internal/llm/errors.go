package llm

import (
	"errors"
	"fmt"
)

var (
	ErrNoModels          = errors.New("no models configured")
	ErrEmptyConversation = errors.New("empty conversation")
	ErrUnknownProvider   = errors.New("unknown provider")
	ErrRateLimited       = errors.New("rate limited")
	ErrEmptyResponse     = errors.New("empty response")
)

// InvocationError reports a failed call to a single model.
type InvocationError struct {
	Model string
	Err   error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("invoke %s: %v", e.Model, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// AllModelsFailedError is returned by Runner.Run when no model succeeded.
// Last is the error from the final attempt.
type AllModelsFailedError struct {
	Attempts int
	Last     error
}

func (e *AllModelsFailedError) Error() string {
	return fmt.Sprintf("all %d models failed: %v", e.Attempts, e.Last)
}

func (e *AllModelsFailedError) Unwrap() error { return e.Last }
