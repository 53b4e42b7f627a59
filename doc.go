// Package thuemorse explores the combinatorics of the Thue-Morse sequence:
// generating it, cataloguing its distinct fixed-length windows as a symbol
// alphabet, and relating those symbols under sliding and under the doubling
// morphism 0→01, 1→10.
//
// Everything is organized under four subpackages plus this facade:
//
//	sequence/     Generate, BitInverse, Homomorphism, power-of-two helpers
//	alphabet/     distinct K-windows in first-seen order, labels, Render
//	symbolgraph/  forward neighbors, morph children, Walk, Substitute
//	report/       text listing, YAML and Mermaid exports
//
// Quick example:
//
//	an, err := thuemorse.Analyze(5, thuemorse.WithRenderLength(20))
//	// an.Alphabet.Len() == 12
//	// strings.Join(an.Rendering, "") == "ABCDEFGHIJKLABCDIJKL"
//
// Every function is deterministic; an Analysis is immutable once returned.
//
//	go get github.com/katalvlaran/thuemorse
package thuemorse
