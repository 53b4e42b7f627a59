package alphabet

import "strings"

// RenderLabels slides a K-length window over bits one step at a time and
// returns the label of each window, UnknownLabel on a miss.
// For len(bits) = K+M-1 the result has exactly M entries; len(bits) < K or
// K == 0 yields nil.
func RenderLabels(a *Alphabet, bits string) []string {
	if a == nil || a.k == 0 || len(bits) < a.k {
		return nil
	}
	out := make([]string, 0, len(bits)-a.k+1)
	for offset := 0; offset+a.k <= len(bits); offset++ {
		out = append(out, a.LabelOf(bits[offset:offset+a.k]))
	}

	return out
}

// Render is RenderLabels joined into one string: with single-character labels
// it spells bits over the symbol alphabet.
func Render(a *Alphabet, bits string) string {
	return strings.Join(RenderLabels(a, bits), "")
}
