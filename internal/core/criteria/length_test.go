package criteria

import (
	"context"
	"testing"

	"github.com/baditaflorin/go_password_strength/internal/adapters/logger"
)

func TestLengthEvaluate(t *testing.T) {
	rule, err := NewLength(DefaultLengthConfig(), logger.NewNopLogger())
	if err != nil {
		t.Fatalf("NewLength failed: %v", err)
	}

	tests := []struct {
		name     string
		password string
		passed   bool
		score    int
		message  string
	}{
		{
			name:     "Exactly at minimum",
			password: "abcdefgh",
			passed:   true,
			score:    25,
			message:  "Great! Password is 8+ characters long.",
		},
		{
			name:     "Above minimum",
			password: "abcdefghij",
			passed:   true,
			score:    25,
			message:  "Great! Password is 8+ characters long.",
		},
		{
			name:     "One short",
			password: "abcdefg",
			passed:   false,
			score:    0,
			message:  "Needs 1 more character(s).",
		},
		{
			name:     "Single character",
			password: "a",
			passed:   false,
			score:    0,
			message:  "Needs 7 more character(s).",
		},
		{
			name: "Multi-byte runes count as one character each",
			// 8 code points, more than 8 bytes.
			password: "pässwört",
			passed:   true,
			score:    25,
			message:  "Great! Password is 8+ characters long.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := rule.Evaluate(context.Background(), tc.password)
			if result.Passed != tc.passed {
				t.Errorf("expected passed=%v, got %v", tc.passed, result.Passed)
			}
			if result.Score != tc.score {
				t.Errorf("expected score=%d, got %d", tc.score, result.Score)
			}
			if result.Message != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, result.Message)
			}
			if result.Name != "Minimum Length (8 characters)" {
				t.Errorf("unexpected name %q", result.Name)
			}
			if result.Weight != 25 {
				t.Errorf("expected weight=25, got %d", result.Weight)
			}
		})
	}
}

func TestLengthConfigValidate(t *testing.T) {
	if _, err := NewLength(LengthConfig{MinLength: 0, Weight: 25}, logger.NewNopLogger()); err == nil {
		t.Error("expected error for zero minLength")
	}
	if _, err := NewLength(LengthConfig{MinLength: 8, Weight: -1}, logger.NewNopLogger()); err == nil {
		t.Error("expected error for negative weight")
	}
}
