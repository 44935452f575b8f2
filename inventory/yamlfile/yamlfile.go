// SPDX-License-Identifier: MIT

package yamlfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/boukman/inventory"
	"github.com/katalvlaran/boukman/matrix"
	"github.com/katalvlaran/boukman/pathfinder"

	"gopkg.in/yaml.v3"
)

// ErrMalformed indicates YAML that parses but does not describe a valid
// inventory or matrix.
var ErrMalformed = errors.New("yamlfile: malformed document")

// Document is the on-disk inventory layout.
//
//	entities:
//	  - {id: bread, name: bread baking, unit: kg}
//	exchanges:
//	  - {input: bread, output: bread, amount: 1}
type Document struct {
	Entities  []inventory.Entity   `yaml:"entities"`
	Exchanges []inventory.Exchange `yaml:"exchanges"`
}

// Memory builds an in-memory inventory from d.
func (d *Document) Memory() (*inventory.Memory, error) {
	return inventory.NewMemory(d.Entities, d.Exchanges)
}

// DecodeInventory parses an inventory Document from r.
func DecodeInventory(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("yamlfile: parse inventory: %w", err)
	}
	if len(doc.Entities) == 0 {
		return nil, fmt.Errorf("%w: no entities", ErrMalformed)
	}

	return &doc, nil
}

// LoadInventory reads the inventory file at path into a Memory inventory.
func LoadInventory(path string) (*inventory.Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("yamlfile: %w", err)
	}
	defer f.Close()

	doc, err := DecodeInventory(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc.Memory()
}

// matrixDoc is the sparse matrix layout: a square size and a list of
// [row, col, value] triples; duplicates are summed.
type matrixDoc struct {
	Size    int         `yaml:"size"`
	Entries [][]float64 `yaml:"entries"`
}

// DecodeMatrix parses a square sparse flow matrix from r.
//
//	size: 4
//	entries:
//	  - [0, 0, 2]
//	  - [1, 0, 4]
func DecodeMatrix(r io.Reader) (*matrix.CSR, error) {
	var doc matrixDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("yamlfile: parse matrix: %w", err)
	}
	if doc.Size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrMalformed, doc.Size)
	}

	tr, err := matrix.NewTriplets(doc.Size, doc.Size)
	if err != nil {
		return nil, err
	}
	for k, e := range doc.Entries {
		if len(e) != 3 {
			return nil, fmt.Errorf("%w: entry %d has %d fields, want [row, col, value]", ErrMalformed, k, len(e))
		}
		row, col, ok := indexPair(e[0], e[1])
		if !ok {
			return nil, fmt.Errorf("%w: entry %d has non-integer indices %v", ErrMalformed, k, e[:2])
		}
		if err = tr.Add(row, col, e[2]); err != nil {
			return nil, fmt.Errorf("yamlfile: entry %d: %w", k, err)
		}
	}

	return tr.ToCSR()
}

func indexPair(r, c float64) (int, int, bool) {
	if r != math.Trunc(r) || c != math.Trunc(c) {
		return 0, 0, false
	}

	return int(r), int(c), true
}

// yamlEdge is the output layout of one path step.
type yamlEdge struct {
	Consumer     inventory.EntityID `yaml:"consumer"`
	ConsumerName string             `yaml:"consumer_name,omitempty"`
	Supplier     inventory.EntityID `yaml:"supplier"`
	SupplierName string             `yaml:"supplier_name,omitempty"`
	Amount       float64            `yaml:"amount"`
}

// EncodeEdges writes an entity path as a YAML document under "path".
func EncodeEdges(w io.Writer, edges []pathfinder.Edge) error {
	out := struct {
		Path []yamlEdge `yaml:"path"`
	}{Path: make([]yamlEdge, len(edges))}
	for k, e := range edges {
		out.Path[k] = yamlEdge{
			Consumer:     e.Consumer.ID,
			ConsumerName: e.Consumer.Name,
			Supplier:     e.Supplier.ID,
			SupplierName: e.Supplier.Name,
			Amount:       e.Amount,
		}
	}

	return encode(w, out)
}

// EncodePath writes an index path as a YAML document under "path".
func EncodePath(w io.Writer, path []int) error {
	return encode(w, struct {
		Path []int `yaml:"path,flow"`
	}{Path: path})
}

func encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yamlfile: encode: %w", err)
	}

	return enc.Close()
}
