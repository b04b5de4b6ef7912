package ports

// Normalizer defines the interface for case folding password text
// before case-insensitive matching.
type Normalizer interface {
	Normalize(text string) string
}
