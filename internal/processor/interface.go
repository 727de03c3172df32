package processor

import "context"

// Processor turns one inbox file into note exports.
type Processor interface {
	Process(ctx context.Context, path string) error
	Supports(path string) bool
}
