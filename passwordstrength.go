// Package passwordstrength evaluates a password against a fixed set of
// independent heuristic rules and produces a bounded strength score with a
// per-rule report. Each rule contributes at most its weight; the default
// rule set is minimum length (25), character complexity (50), repetition
// freedom (15) and dictionary freedom (10), evaluated in that order, with
// the total clamped to 100. The package uses the functional options
// pattern to allow configuration of the logger, the case folder, the weak
// word list and the rule set itself.
package passwordstrength

import (
	"context"

	"github.com/baditaflorin/go_password_strength/internal/adapters/logger"
	"github.com/baditaflorin/go_password_strength/internal/adapters/normalizer"
	"github.com/baditaflorin/go_password_strength/internal/core/checker"
	"github.com/baditaflorin/go_password_strength/internal/core/criteria"
	"github.com/baditaflorin/go_password_strength/internal/core/domain"
	"github.com/baditaflorin/go_password_strength/internal/ports"
	"github.com/baditaflorin/l"
)

// Report is the aggregated outcome of one evaluation.
type Report = domain.Report

// CriterionResult is the verdict of a single rule.
type CriterionResult = domain.CriterionResult

// Criterion is a single independent password rule.
type Criterion = ports.Criterion

// Checker evaluates passwords against an ordered list of criteria.
type Checker struct {
	checker *checker.Checker
	logger  ports.Logger
}

// Option defines a functional option for configuring the Checker.
type Option func(*config)

type config struct {
	Logger      ports.Logger
	Normalizer  ports.Normalizer
	Criteria    []ports.Criterion
	WeakWords   []string
	criteriaSet bool
}

// WithLogger sets a custom logger.
func WithLogger(log l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(log)
	}
}

// WithSilentLogger disables all logging.
func WithSilentLogger() Option {
	return func(cfg *config) {
		cfg.Logger = logger.NewNopLogger()
	}
}

// WithNormalizer sets a custom case folder for the dictionary rule.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = n
	}
}

// WithSimpleFolder uses the plain rune-loop case folder instead of the
// pooled table-driven one.
func WithSimpleFolder() Option {
	return func(cfg *config) {
		cfg.Normalizer = normalizer.NewDefaultFolder()
	}
}

// WithWeakWords replaces the built-in weak word list of the dictionary rule.
func WithWeakWords(words ...string) Option {
	return func(cfg *config) {
		cfg.WeakWords = words
	}
}

// WithCriteria replaces the default rule set. Criteria are evaluated, and
// their results reported, in the given order. An explicitly empty list is
// rejected by New rather than falling back to the defaults.
func WithCriteria(crit ...ports.Criterion) Option {
	return func(cfg *config) {
		cfg.Criteria = append([]ports.Criterion{}, crit...)
		cfg.criteriaSet = true
	}
}

// New creates a new Checker with the provided functional options. Without
// options it wires the default logger, the pooled case folder and the four
// built-in rules in their fixed order.
func New(opts ...Option) (*Checker, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		log, err := logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = log
	}

	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewPooledFolder()
	}

	if !cfg.criteriaSet {
		crit, err := defaultCriteria(cfg)
		if err != nil {
			return nil, err
		}
		cfg.Criteria = crit
	}

	core, err := checker.New(checker.DefaultConfig(), cfg.Logger, cfg.Criteria)
	if err != nil {
		return nil, err
	}

	return &Checker{
		checker: core,
		logger:  cfg.Logger,
	}, nil
}

// Check evaluates the password and returns the aggregated report. An empty
// password yields a zero report with no per-rule results.
func (c *Checker) Check(ctx context.Context, password string) Report {
	return c.checker.Check(ctx, password)
}

// Close flushes and closes the underlying logger.
func (c *Checker) Close() error {
	return c.logger.Close()
}

func defaultCriteria(cfg *config) ([]ports.Criterion, error) {
	length, err := criteria.NewLength(criteria.DefaultLengthConfig(), cfg.Logger)
	if err != nil {
		return nil, err
	}

	complexity, err := criteria.NewComplexity(criteria.DefaultComplexityConfig(), cfg.Logger)
	if err != nil {
		return nil, err
	}

	repetition, err := criteria.NewRepetition(criteria.DefaultRepetitionConfig(), cfg.Logger)
	if err != nil {
		return nil, err
	}

	dictConfig := criteria.DefaultDictionaryConfig()
	if len(cfg.WeakWords) > 0 {
		dictConfig.WeakWords = cfg.WeakWords
	}
	dictionary, err := criteria.NewDictionary(dictConfig, cfg.Logger, cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	return []ports.Criterion{length, complexity, repetition, dictionary}, nil
}
