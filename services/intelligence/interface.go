package ai

import "context"

// Engine is the external reasoning capability every non-deterministic step
// delegates to. It is injected as an interface so the orchestration logic
// (gating, fan-out, merging) can be exercised with deterministic stubs.
type Engine interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
