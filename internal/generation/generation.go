// Package generation wraps external text-generation services behind a
// single interface with a tagged outcome: usable text, or no output
// with a block reason. Callers branch on the Result instead of
// treating blocked output as an error.
package generation

import (
	"context"
	"strings"
)

// Result is the outcome of one generation call.
type Result struct {
	// Text is the raw model output; empty when nothing usable came back.
	Text string
	// BlockReason carries the provider's block diagnostic, when exposed.
	BlockReason string
}

// Empty reports whether the result carries no usable text.
func (r Result) Empty() bool {
	return strings.TrimSpace(r.Text) == ""
}

// Generator produces text from a prompt. Implementations block until
// the remote service responds or ctx is done; they perform no retries.
// Implementations must be safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, prompt string) (Result, error)
}
