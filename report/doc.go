// Package report renders an Analysis for people and tools.
//
//   - WriteText:  the per-symbol listing (bits, label, forward labels,
//     morphed bits, child labels), the total, and an optional rendered prefix.
//     The output is byte-stable and pinned by testdata/*.golden.
//   - WriteYAML:  the same data as a YAML document (gopkg.in/yaml.v3).
//   - Mermaid:    a flowchart of the symbol graph; slide edges are solid and
//     labeled by their bit, morph edges are dotted.
package report
