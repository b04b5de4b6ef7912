package ports

import (
	"context"

	"github.com/baditaflorin/go_password_strength/internal/core/domain"
)

// Criterion defines the interface for a single independent password rule.
// A criterion is a pure function of its input: every password produces a
// result and no evaluation can fail.
type Criterion interface {
	// Name returns the display label for this criterion.
	Name() string

	// Weight returns the maximum score this criterion can contribute.
	Weight() int

	// Evaluate inspects the password and returns a verdict.
	Evaluate(ctx context.Context, password string) domain.CriterionResult
}
