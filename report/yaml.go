package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thuemorse"
)

// Document is the YAML shape of an Analysis.
type Document struct {
	K            int         `yaml:"k"`
	SourceLength int         `yaml:"source_length"`
	Symbols      []SymbolDoc `yaml:"symbols"`
	Total        int         `yaml:"total"`
	Prefix       string      `yaml:"prefix,omitempty"`
	Rendering    string      `yaml:"rendering,omitempty"`
}

// SymbolDoc is one symbol with its references; "none" marks a miss.
type SymbolDoc struct {
	Label    string   `yaml:"label"`
	Bits     string   `yaml:"bits"`
	Forward  []string `yaml:"forward,flow"`
	Morphed  string   `yaml:"morphed"`
	Children []string `yaml:"children,flow"`
}

// NewDocument converts an into its YAML document.
func NewDocument(an *thuemorse.Analysis) Document {
	nodes := an.Graph.Nodes()
	doc := Document{
		K:            an.K,
		SourceLength: len(an.Source),
		Symbols:      make([]SymbolDoc, 0, len(nodes)),
		Total:        an.Alphabet.Len(),
		Prefix:       an.Prefix,
		Rendering:    JoinLabels(an.Rendering),
	}
	for _, n := range nodes {
		doc.Symbols = append(doc.Symbols, SymbolDoc{
			Label:    n.Label,
			Bits:     n.Bits,
			Forward:  []string{n.Forward[0], n.Forward[1]},
			Morphed:  n.Morphed,
			Children: []string{n.Children[0], n.Children[1]},
		})
	}

	return doc
}

// WriteYAML encodes an as a YAML document with two-space indentation.
func WriteYAML(w io.Writer, an *thuemorse.Analysis) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(an)); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}
