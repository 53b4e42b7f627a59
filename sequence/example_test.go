package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/thuemorse/sequence"
)

// ExampleGenerate prints the first sixteen Thue-Morse bits.
func ExampleGenerate() {
	fmt.Println(sequence.Generate(16))
	// Output:
	// 0110100110010110
}

// ExampleHomomorphism shows one application of the doubling morphism.
func ExampleHomomorphism() {
	fmt.Println(sequence.Homomorphism("0110"))
	// Output:
	// 01101001
}

// ExampleBlocks builds A and B for n=4 and spells the ABBA prefix.
func ExampleBlocks() {
	a, b := sequence.Blocks(4)
	fmt.Println(a, b)
	fmt.Println(a + b + b + a)
	// Output:
	// 0110 1001
	// 0110100110010110
}
