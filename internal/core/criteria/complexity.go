package criteria

import (
	"context"
	"errors"
	"strings"

	"github.com/baditaflorin/go_password_strength/internal/core/domain"
	"github.com/baditaflorin/go_password_strength/internal/ports"
)

// SpecialChars is the fixed set of characters counted as the special
// character category.
const SpecialChars = "!@#$%^&*()-+={}[]|\\:;\"'<>,.?/`~"

// Character categories. A character belongs to at most one.
type charClass uint8

const (
	classNone charClass = iota
	classUpper
	classLower
	classDigit
	classSpecial
)

const categoryCount = 4

// categoryLabels lists the category display names in the fixed order used
// for failure messages.
var categoryLabels = [categoryCount]struct {
	class charClass
	label string
}{
	{classUpper, "Uppercase"},
	{classLower, "Lowercase"},
	{classDigit, "Digit"},
	{classSpecial, "Special Char"},
}

// Precomputed decision table for ASCII characters. Non-ASCII runes belong
// to no category.
var classTable [128]charClass

func init() {
	for i := 0; i < 128; i++ {
		b := byte(i)
		switch {
		case b >= 'A' && b <= 'Z':
			classTable[i] = classUpper
		case b >= 'a' && b <= 'z':
			classTable[i] = classLower
		case b >= '0' && b <= '9':
			classTable[i] = classDigit
		case strings.IndexByte(SpecialChars, b) >= 0:
			classTable[i] = classSpecial
		}
	}
}

// ComplexityConfig holds configuration for the character complexity rule.
type ComplexityConfig struct {
	Weight int
}

// DefaultComplexityConfig returns a default configuration.
func DefaultComplexityConfig() ComplexityConfig {
	return ComplexityConfig{
		Weight: 50,
	}
}

// Validate checks if the configuration is valid.
func (c ComplexityConfig) Validate() error {
	if c.Weight < 0 {
		return errors.New("weight must not be negative")
	}
	return nil
}

// Complexity checks how many of the four character categories (uppercase,
// lowercase, digit, special) appear in the password. It is the only rule
// with partial credit: the score scales with the number of categories met
// even when the rule fails.
type Complexity struct {
	config ComplexityConfig
	logger ports.Logger
}

// NewComplexity creates a new character complexity rule.
func NewComplexity(config ComplexityConfig, logger ports.Logger) (*Complexity, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Complexity{
		config: config,
		logger: logger,
	}, nil
}

// Name returns the display label for this rule.
func (c *Complexity) Name() string {
	return "Character Complexity (4 types)"
}

// Weight returns the maximum score this rule can contribute.
func (c *Complexity) Weight() int {
	return c.config.Weight
}

// Evaluate classifies each character and awards weight*met/4, truncated.
func (c *Complexity) Evaluate(ctx context.Context, password string) domain.CriterionResult {
	var seen [classSpecial + 1]bool
	for _, r := range password {
		if r < 128 {
			seen[classTable[r]] = true
		}
	}

	met := 0
	for _, cat := range categoryLabels {
		if seen[cat.class] {
			met++
		}
	}
	passed := met == categoryCount
	score := c.config.Weight * met / categoryCount

	message := "Excellent! All 4 character types are present."
	if !passed {
		missing := make([]string, 0, categoryCount)
		for _, cat := range categoryLabels {
			if !seen[cat.class] {
				missing = append(missing, cat.label)
			}
		}
		message = "Missing: " + strings.Join(missing, ", ") + "."
	}

	c.logger.Debug("Evaluated character complexity",
		"types_met", met,
		"passed", passed,
		"score", score,
	)

	return domain.CriterionResult{
		Name:    c.Name(),
		Passed:  passed,
		Message: message,
		Score:   score,
		Weight:  c.config.Weight,
	}
}
