package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/thuemorse"
)

// WriteText writes the human-readable listing of an to w:
//
//	Unique 5 bit strings in the Thue-Morse sequence:
//	    01101 A fwd(B, none) morph 0110100110 -> (E, F)
//	    ...
//	12 strings total
//	prefix 011010011001011010010110
//	labels ABCDEFGHIJKLABCDIJKL
//
// The prefix and labels lines appear only when the analysis has a rendering.
func WriteText(w io.Writer, an *thuemorse.Analysis) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Unique %d bit strings in the Thue-Morse sequence:\n", an.K)
	for _, n := range an.Graph.Nodes() {
		fmt.Fprintf(bw, "    %s %s fwd(%s, %s) morph %s -> (%s, %s)\n",
			n.Bits, n.Label,
			n.Forward[0], n.Forward[1],
			n.Morphed,
			n.Children[0], n.Children[1],
		)
	}
	fmt.Fprintf(bw, "%d strings total\n", an.Alphabet.Len())

	if len(an.Rendering) > 0 {
		fmt.Fprintf(bw, "prefix %s\n", an.Prefix)
		fmt.Fprintf(bw, "labels %s\n", JoinLabels(an.Rendering))
	}

	return bw.Flush()
}

// JoinLabels concatenates single-character labels directly and separates
// longer ones (e.g. decimal labels) with spaces.
func JoinLabels(labels []string) string {
	for _, l := range labels {
		if len(l) > 1 {
			return strings.Join(labels, " ")
		}
	}

	return strings.Join(labels, "")
}
