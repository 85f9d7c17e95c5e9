package piglatin

import "strings"

// WordTransformer rewrites a single whitespace-free token by relocating its
// leading consonant: a token starting with a vowel gains a "-hay" suffix,
// any other token has its first character moved behind a hyphen with an "ay"
// suffix. The rule is byte-oriented and vowel detection is ASCII only.
type WordTransformer struct{}

// NewWordTransformer creates a new WordTransformer.
func NewWordTransformer() *WordTransformer {
	return &WordTransformer{}
}

// Transform applies the relocation rule to one token. The token must be
// non-empty; splitting discards empty tokens before this is called.
//
// A length-1 consonant token produces an empty prefix, e.g. "y" becomes
// "-yay". That shape is intentional and must stay.
func (wt *WordTransformer) Transform(token string) string {
	if isVowel(token[0]) {
		return token + "-hay"
	}
	return token[1:] + "-" + string(token[0]) + "ay"
}

func isVowel(char byte) bool {
	switch char {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// TransformLine splits line on runs of whitespace, transforms every token in
// order and rejoins them with single spaces. Original inter-token whitespace
// width is not preserved.
func TransformLine(t Transformer, line string) string {
	words := strings.Fields(line)
	for i, word := range words {
		words[i] = t.Transform(word)
	}
	return strings.Join(words, " ")
}
