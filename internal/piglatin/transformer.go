package piglatin

// Transformer interface defines the method for transforming a single token.
type Transformer interface {
	Transform(token string) string
}
