package checker

import (
	"context"
	"testing"

	"github.com/baditaflorin/go_password_strength/internal/adapters/logger"
	"github.com/baditaflorin/go_password_strength/internal/adapters/normalizer"
	"github.com/baditaflorin/go_password_strength/internal/core/criteria"
	"github.com/baditaflorin/go_password_strength/internal/core/domain"
	"github.com/baditaflorin/go_password_strength/internal/ports"
)

func defaultChecker(t *testing.T) *Checker {
	t.Helper()

	log := logger.NewNopLogger()

	length, err := criteria.NewLength(criteria.DefaultLengthConfig(), log)
	if err != nil {
		t.Fatalf("NewLength failed: %v", err)
	}
	complexity, err := criteria.NewComplexity(criteria.DefaultComplexityConfig(), log)
	if err != nil {
		t.Fatalf("NewComplexity failed: %v", err)
	}
	repetition, err := criteria.NewRepetition(criteria.DefaultRepetitionConfig(), log)
	if err != nil {
		t.Fatalf("NewRepetition failed: %v", err)
	}
	dictionary, err := criteria.NewDictionary(criteria.DefaultDictionaryConfig(), log, normalizer.NewDefaultFolder())
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}

	chk, err := New(DefaultConfig(), log, []ports.Criterion{length, complexity, repetition, dictionary})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return chk
}

func TestCheckScenarios(t *testing.T) {
	chk := defaultChecker(t)

	tests := []struct {
		name      string
		password  string
		total     int
		perScore  []int
		perPassed []bool
	}{
		{
			name:      "Seven lowercase letters",
			password:  "bcdefgh",
			total:     37,
			perScore:  []int{0, 12, 15, 10},
			perPassed: []bool{false, false, true, true},
		},
		{
			name:      "Leading abc is a dictionary substring hit",
			password:  "abcdefg",
			total:     27,
			perScore:  []int{0, 12, 15, 0},
			perPassed: []bool{false, false, true, false},
		},
		{
			name:      "Strong shape but dictionary hit",
			password:  "Password1!",
			total:     90,
			perScore:  []int{25, 50, 15, 0},
			perPassed: []bool{true, true, true, false},
		},
		{
			name: "Digit substitution defeats the substring match",
			// "passw0rd!" does not contain "password".
			password:  "Passw0rd!",
			total:     100,
			perScore:  []int{25, 50, 15, 10},
			perPassed: []bool{true, true, true, true},
		},
		{
			name:      "Eight lowercase letters",
			password:  "wmtkrzep",
			total:     62,
			perScore:  []int{25, 12, 15, 10},
			perPassed: []bool{true, false, true, true},
		},
		{
			name:      "Triple runs fail repetition regardless of the rest",
			password:  "AAAaaa11!!",
			total:     85,
			perScore:  []int{25, 50, 0, 10},
			perPassed: []bool{true, true, false, true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report := chk.Check(context.Background(), tc.password)
			if report.TotalScore != tc.total {
				t.Errorf("expected total=%d, got %d", tc.total, report.TotalScore)
			}
			if len(report.Results) != len(tc.perScore) {
				t.Fatalf("expected %d results, got %d", len(tc.perScore), len(report.Results))
			}
			for i, result := range report.Results {
				if result.Score != tc.perScore[i] {
					t.Errorf("result %d (%s): expected score=%d, got %d", i, result.Name, tc.perScore[i], result.Score)
				}
				if result.Passed != tc.perPassed[i] {
					t.Errorf("result %d (%s): expected passed=%v, got %v", i, result.Name, tc.perPassed[i], result.Passed)
				}
			}
		})
	}
}

func TestCheckEmptyPassword(t *testing.T) {
	chk := defaultChecker(t)

	report := chk.Check(context.Background(), "")
	if report.TotalScore != 0 {
		t.Errorf("expected total=0, got %d", report.TotalScore)
	}
	if len(report.Results) != 0 {
		t.Errorf("expected no results, got %d", len(report.Results))
	}
}

func TestCheckResultOrder(t *testing.T) {
	chk := defaultChecker(t)

	expected := []string{
		"Minimum Length (8 characters)",
		"Character Complexity (4 types)",
		"No Repetitive Sequences (AAA)",
		"Not a Common Word/Pattern",
	}

	report := chk.Check(context.Background(), "anything")
	if len(report.Results) != len(expected) {
		t.Fatalf("expected %d results, got %d", len(expected), len(report.Results))
	}
	for i, result := range report.Results {
		if result.Name != expected[i] {
			t.Errorf("result %d: expected name %q, got %q", i, expected[i], result.Name)
		}
	}
}

func TestCheckIdempotent(t *testing.T) {
	chk := defaultChecker(t)

	first := chk.Check(context.Background(), "Passw0rd!")
	second := chk.Check(context.Background(), "Passw0rd!")

	if first.TotalScore != second.TotalScore {
		t.Errorf("total scores differ: %d vs %d", first.TotalScore, second.TotalScore)
	}
	for i := range first.Results {
		if first.Results[i] != second.Results[i] {
			t.Errorf("result %d differs: %+v vs %+v", i, first.Results[i], second.Results[i])
		}
	}
}

// fixedCriterion always awards a fixed score, for exercising the clamp.
type fixedCriterion struct {
	score int
}

func (f fixedCriterion) Name() string { return "Fixed" }
func (f fixedCriterion) Weight() int  { return f.score }
func (f fixedCriterion) Evaluate(ctx context.Context, password string) domain.CriterionResult {
	return domain.CriterionResult{
		Name:   f.Name(),
		Passed: true,
		Score:  f.score,
		Weight: f.score,
	}
}

func TestCheckClampsTotal(t *testing.T) {
	chk, err := New(DefaultConfig(), logger.NewNopLogger(), []ports.Criterion{
		fixedCriterion{score: 80},
		fixedCriterion{score: 80},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	report := chk.Check(context.Background(), "anything")
	if report.TotalScore != 100 {
		t.Errorf("expected clamped total=100, got %d", report.TotalScore)
	}
}

func TestNewRequiresCriteria(t *testing.T) {
	if _, err := New(DefaultConfig(), logger.NewNopLogger(), nil); err == nil {
		t.Error("expected error for empty criterion list")
	}
	if _, err := New(Config{MaxScore: 0}, logger.NewNopLogger(), []ports.Criterion{fixedCriterion{score: 1}}); err == nil {
		t.Error("expected error for zero maxScore")
	}
}
