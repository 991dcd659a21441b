package network

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML network document from r.
//
// Unknown fields are rejected. Cities listed under "cities" get their ids first,
// in the listed order; cities that only appear in flights follow in first-seen
// order. An empty document yields ErrBadDocument.
func Load(r io.Reader) (*Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrBadDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	n := New()
	for i, c := range doc.Cities {
		if _, err := n.AddCity(c); err != nil {
			return nil, fmt.Errorf("%w: cities[%d]: %w", ErrBadDocument, i, err)
		}
	}
	for i, f := range doc.Flights {
		if err := n.AddFlight(f.From, f.To, f.Cost); err != nil {
			return nil, fmt.Errorf("%w: flights[%d]: %w", ErrBadDocument, i, err)
		}
	}

	return n, nil
}

// LoadFile reads a YAML network document from path.
func LoadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("network: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// WriteYAML encodes the network so that Load reproduces the same ids and flights.
func (n *Network) WriteYAML(w io.Writer) error {
	doc := document{Cities: n.Cities(), Flights: n.Flights()}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("network: encode: %w", err)
	}

	return enc.Close()
}
