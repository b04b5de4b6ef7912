// Package checker aggregates independent criterion verdicts into a single
// bounded strength report.
package checker

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_password_strength/internal/core/domain"
	"github.com/baditaflorin/go_password_strength/internal/ports"
)

// Config holds configuration for the checker.
type Config struct {
	// MaxScore is the upper bound the total score is clamped to.
	MaxScore int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		MaxScore: 100,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.MaxScore <= 0 {
		return errors.New("maxScore must be greater than 0")
	}
	return nil
}

// Checker runs an ordered list of criteria against a password and sums
// their scores. The criteria are mutually independent; evaluation is a
// plain fan-out in list order, and the result order matches it.
type Checker struct {
	config   Config
	criteria []ports.Criterion
	logger   ports.Logger
}

// New creates a new checker over the given criteria. The list order is
// part of the contract: results are reported in the same order.
func New(config Config, logger ports.Logger, criteria []ports.Criterion) (*Checker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(criteria) == 0 {
		return nil, errors.New("at least one criterion is required")
	}

	return &Checker{
		config:   config,
		criteria: criteria,
		logger:   logger,
	}, nil
}

// Check evaluates every criterion against the password and returns the
// aggregated report. An empty password short-circuits to a zero report
// without invoking any criterion.
func (c *Checker) Check(ctx context.Context, password string) domain.Report {
	if password == "" {
		c.logger.Debug("Empty password, skipping evaluation")
		return domain.Report{}
	}

	total := 0
	results := make([]domain.CriterionResult, 0, len(c.criteria))
	for _, criterion := range c.criteria {
		result := criterion.Evaluate(ctx, password)
		total += result.Score
		results = append(results, result)
	}

	// Configured weights sum to MaxScore, but the criterion list is open
	// to new entries, so the bound is enforced here.
	if total > c.config.MaxScore {
		total = c.config.MaxScore
	}
	if total < 0 {
		total = 0
	}

	c.logger.Debug("Computed strength report",
		"total_score", total,
		"criteria", len(results),
	)

	return domain.Report{
		TotalScore: total,
		Results:    results,
	}
}
