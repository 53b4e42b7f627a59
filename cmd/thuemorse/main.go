// Command thuemorse prints the symbol alphabet of the Thue-Morse sequence
// and the relations between its symbols.
//
// Usage:
//
//	thuemorse alphabet --k 5 --render 20
//	thuemorse alphabet --k 5 --format mermaid
//	thuemorse render --k 5 --length 20 --substitute
//	thuemorse graph --k 5 --start A --kinds slide
//	thuemorse version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
