package criteria

import (
	"context"
	"errors"
	"strings"

	"github.com/baditaflorin/go_password_strength/internal/core/domain"
	"github.com/baditaflorin/go_password_strength/internal/ports"
)

// DefaultWeakWords is the built-in list of common weak substrings.
var DefaultWeakWords = []string{
	"password", "123456", "qwerty", "admin", "qazwsx",
	"12345678", "abc", "god", "user", "access",
}

// DictionaryConfig holds configuration for the dictionary rule.
type DictionaryConfig struct {
	// WeakWords is the substring list to match against. Empty means
	// DefaultWeakWords.
	WeakWords []string
	Weight    int
}

// DefaultDictionaryConfig returns a default configuration.
func DefaultDictionaryConfig() DictionaryConfig {
	return DictionaryConfig{
		WeakWords: DefaultWeakWords,
		Weight:    10,
	}
}

// Validate checks if the configuration is valid.
func (c DictionaryConfig) Validate() error {
	if c.Weight < 0 {
		return errors.New("weight must not be negative")
	}
	return nil
}

// Dictionary checks that the password does not contain any of a fixed set
// of common weak substrings, case-insensitively. The word list is folded
// once at construction and read-only afterwards.
type Dictionary struct {
	config     DictionaryConfig
	words      []string
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewDictionary creates a new dictionary rule.
func NewDictionary(config DictionaryConfig, logger ports.Logger, normalizer ports.Normalizer) (*Dictionary, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	source := config.WeakWords
	if len(source) == 0 {
		source = DefaultWeakWords
	}

	words := make([]string, len(source))
	for i, w := range source {
		words[i] = normalizer.Normalize(w)
	}

	return &Dictionary{
		config:     config,
		words:      words,
		logger:     logger,
		normalizer: normalizer,
	}, nil
}

// Name returns the display label for this rule.
func (d *Dictionary) Name() string {
	return "Not a Common Word/Pattern"
}

// Weight returns the maximum score this rule can contribute.
func (d *Dictionary) Weight() int {
	return d.config.Weight
}

// Evaluate folds the password and checks substring containment against
// every listed weak word.
func (d *Dictionary) Evaluate(ctx context.Context, password string) domain.CriterionResult {
	folded := d.normalizer.Normalize(password)

	weak := false
	for _, w := range d.words {
		if strings.Contains(folded, w) {
			weak = true
			break
		}
	}

	passed := !weak
	message := "Password does not contain common dictionary words."
	if weak {
		message = "Warning: Contains a common or dictionary word/sequence."
	}

	score := 0
	if passed {
		score = d.config.Weight
	}

	d.logger.Debug("Evaluated dictionary freedom",
		"passed", passed,
		"score", score,
	)

	return domain.CriterionResult{
		Name:    d.Name(),
		Passed:  passed,
		Message: message,
		Score:   score,
		Weight:  d.config.Weight,
	}
}
