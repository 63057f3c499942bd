// Package rembed defines the embedding function the adapter and demo CLI
// depend on, treating it exactly as spec §1 requires: "a pure mapping
// from text to a fixed-dimension vector", with no training or
// fine-tuning in scope.
package rembed

import "context"

// Embedder maps text to a fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Func adapts a plain function to the Embedder interface.
type Func func(ctx context.Context, text string) ([]float32, error)

// Embed implements Embedder.
func (f Func) Embed(ctx context.Context, text string) ([]float32, error) {
	return f(ctx, text)
}
