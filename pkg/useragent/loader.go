package useragent

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDefinition decodes a knowledge base from YAML and validates it.
// Tables are sequences, so the document order is the matching precedence:
//
//	browsers:
//	  - label: firefox
//	    patterns: [firefox, iceweasel]
//	devices:
//	  - label: "Google Nexus *"
//	    patterns: ['nexus (\w+)']
func LoadDefinition(r io.Reader) (*TableSet, error) {
	var set TableSet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidDefinition, err)
	}
	if err := ValidateDefinition(&set); err != nil {
		return nil, err
	}
	return &set, nil
}

// LoadDefinitionFile reads a YAML knowledge base from path.
func LoadDefinitionFile(path string) (*TableSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definition: %w", err)
	}
	defer f.Close()

	return LoadDefinition(f)
}
