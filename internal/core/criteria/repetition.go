package criteria

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_password_strength/internal/core/domain"
	"github.com/baditaflorin/go_password_strength/internal/ports"
)

// RepetitionConfig holds configuration for the repetition rule.
type RepetitionConfig struct {
	// RunLength is the number of identical consecutive characters that
	// counts as a weak repetition.
	RunLength int
	Weight    int
}

// DefaultRepetitionConfig returns a default configuration.
func DefaultRepetitionConfig() RepetitionConfig {
	return RepetitionConfig{
		RunLength: 3,
		Weight:    15,
	}
}

// Validate checks if the configuration is valid.
func (c RepetitionConfig) Validate() error {
	if c.RunLength < 2 {
		return errors.New("runLength must be at least 2")
	}
	if c.Weight < 0 {
		return errors.New("weight must not be negative")
	}
	return nil
}

// Repetition checks that the password contains no run of identical
// consecutive characters, compared as Unicode code points.
type Repetition struct {
	config RepetitionConfig
	logger ports.Logger
}

// NewRepetition creates a new repetition rule.
func NewRepetition(config RepetitionConfig, logger ports.Logger) (*Repetition, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Repetition{
		config: config,
		logger: logger,
	}, nil
}

// Name returns the display label for this rule.
func (r *Repetition) Name() string {
	return "No Repetitive Sequences (AAA)"
}

// Weight returns the maximum score this rule can contribute.
func (r *Repetition) Weight() int {
	return r.config.Weight
}

// Evaluate scans for any contiguous run of RunLength identical characters.
func (r *Repetition) Evaluate(ctx context.Context, password string) domain.CriterionResult {
	runes := []rune(password)

	run := 1
	weak := false
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= r.config.RunLength {
				weak = true
				break
			}
		} else {
			run = 1
		}
	}

	passed := !weak
	message := "No obvious triple repetitions found."
	if weak {
		message = "Warning: Contains three or more identical characters in a row (e.g., 'aaa')."
	}

	score := 0
	if passed {
		score = r.config.Weight
	}

	r.logger.Debug("Evaluated repetition freedom",
		"passed", passed,
		"score", score,
	)

	return domain.CriterionResult{
		Name:    r.Name(),
		Passed:  passed,
		Message: message,
		Score:   score,
		Weight:  r.config.Weight,
	}
}
