package normalizer

import (
	"github.com/baditaflorin/go_password_strength/internal/pool"
	"github.com/baditaflorin/go_password_strength/internal/ports"
)

// PooledFolder implements an optimized case folding strategy with a
// precomputed byte table and buffer pooling.
type PooledFolder struct {
	// Decision table for all byte values. UTF-8 continuation and lead
	// bytes are >= 128 and map to themselves, so byte-wise folding is
	// safe for multi-byte input.
	foldTable [256]byte

	bytePool *pool.BufferPool
}

// NewPooledFolder creates a new pooled folder.
func NewPooledFolder() ports.Normalizer {
	n := &PooledFolder{
		bytePool: pool.NewBufferPool(256),
	}

	for i := 0; i < 256; i++ {
		b := byte(i)
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		n.foldTable[i] = b
	}

	return n
}

// Normalize returns text with ASCII uppercase letters folded to lowercase.
func (n *PooledFolder) Normalize(text string) string {
	// Fast path: nothing to fold.
	hasUpper := false
	for i := 0; i < len(text); i++ {
		if text[i] >= 'A' && text[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return text
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}
	*buffer = (*buffer)[:0]

	for i := 0; i < len(text); i++ {
		*buffer = append(*buffer, n.foldTable[text[i]])
	}

	return string(*buffer)
}
