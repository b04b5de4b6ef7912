package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_password_strength/internal/ports"
)

// DefaultFolder implements the default case folding strategy.
// It lowercases ASCII letters and leaves every other rune untouched,
// matching the case-insensitivity rules of the dictionary check.
type DefaultFolder struct{}

// NewDefaultFolder creates a new default folder.
func NewDefaultFolder() ports.Normalizer {
	return &DefaultFolder{}
}

// Normalize returns text with ASCII uppercase letters folded to lowercase.
func (n *DefaultFolder) Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		sb.WriteByte(b)
	}
	return sb.String()
}
