// Package criteria implements the built-in password rules. Each rule is a
// stateless value constructed once at startup; evaluation is a pure
// function of the password.
package criteria

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/baditaflorin/go_password_strength/internal/core/domain"
	"github.com/baditaflorin/go_password_strength/internal/ports"
)

// LengthConfig holds configuration for the minimum length rule.
type LengthConfig struct {
	MinLength int
	Weight    int
}

// DefaultLengthConfig returns a default configuration.
func DefaultLengthConfig() LengthConfig {
	return LengthConfig{
		MinLength: 8,
		Weight:    25,
	}
}

// Validate checks if the configuration is valid.
func (c LengthConfig) Validate() error {
	if c.MinLength <= 0 {
		return errors.New("minLength must be greater than 0")
	}
	if c.Weight < 0 {
		return errors.New("weight must not be negative")
	}
	return nil
}

// Length checks that a password meets a minimum length, counted in
// Unicode code points.
type Length struct {
	config LengthConfig
	logger ports.Logger
}

// NewLength creates a new minimum length rule.
func NewLength(config LengthConfig, logger ports.Logger) (*Length, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Length{
		config: config,
		logger: logger,
	}, nil
}

// Name returns the display label for this rule.
func (l *Length) Name() string {
	return fmt.Sprintf("Minimum Length (%d characters)", l.config.MinLength)
}

// Weight returns the maximum score this rule can contribute.
func (l *Length) Weight() int {
	return l.config.Weight
}

// Evaluate awards the full weight when the password has at least MinLength
// characters, otherwise zero.
func (l *Length) Evaluate(ctx context.Context, password string) domain.CriterionResult {
	length := utf8.RuneCountInString(password)
	passed := length >= l.config.MinLength

	var message string
	if passed {
		message = fmt.Sprintf("Great! Password is %d+ characters long.", l.config.MinLength)
	} else {
		message = fmt.Sprintf("Needs %d more character(s).", l.config.MinLength-length)
	}

	score := 0
	if passed {
		score = l.config.Weight
	}

	l.logger.Debug("Evaluated minimum length",
		"length", length,
		"min_length", l.config.MinLength,
		"passed", passed,
		"score", score,
	)

	return domain.CriterionResult{
		Name:    l.Name(),
		Passed:  passed,
		Message: message,
		Score:   score,
		Weight:  l.config.Weight,
	}
}
