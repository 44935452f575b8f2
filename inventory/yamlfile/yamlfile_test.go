// SPDX-License-Identifier: MIT
package yamlfile_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/boukman/inventory"
	"github.com/katalvlaran/boukman/inventory/yamlfile"
	"github.com/katalvlaran/boukman/matrix"
	"github.com/katalvlaran/boukman/pathfinder"
	"github.com/stretchr/testify/require"
)

const bakeryYAML = `
entities:
  - {id: bread, name: bread baking, unit: kg}
  - {id: flour, name: flour milling, unit: kg}
  - {id: diesel, name: diesel production, unit: kg, location: GLO}
exchanges:
  - {input: bread, output: bread, amount: 1}
  - {input: flour, output: bread, amount: -0.8}
  - {input: flour, output: flour, amount: 1}
  - {input: diesel, output: flour, amount: -0.02}
  - {input: diesel, output: diesel, amount: 1}
`

func TestDecodeInventory(t *testing.T) {
	t.Parallel()

	doc, err := yamlfile.DecodeInventory(strings.NewReader(bakeryYAML))
	require.NoError(t, err)
	require.Len(t, doc.Entities, 3)
	require.Equal(t, "GLO", doc.Entities[2].Location)
	require.Equal(t, inventory.Exchange{Input: "flour", Output: "bread", Amount: -0.8}, doc.Exchanges[1])

	mem, err := doc.Memory()
	require.NoError(t, err)
	edges, err := pathfinder.New(mem).PathAsEntities(context.Background(), "bread", "diesel")
	require.NoError(t, err)
	require.Len(t, edges, 2)
}

func TestDecodeInventory_Errors(t *testing.T) {
	t.Parallel()

	_, err := yamlfile.DecodeInventory(strings.NewReader("entities: [\n"))
	require.Error(t, err)

	_, err = yamlfile.DecodeInventory(strings.NewReader("exchanges: []\n"))
	require.ErrorIs(t, err, yamlfile.ErrMalformed)

	doc, err := yamlfile.DecodeInventory(strings.NewReader("entities: [{id: a}]\nexchanges: [{input: b, output: a, amount: 1}]\n"))
	require.NoError(t, err)
	_, err = doc.Memory()
	require.ErrorIs(t, err, inventory.ErrUnknownEntity)
}

func TestLoadInventory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bakery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(bakeryYAML), 0o600))

	mem, err := yamlfile.LoadInventory(path)
	require.NoError(t, err)
	e, ok := mem.Entity("flour")
	require.True(t, ok)
	require.Equal(t, "flour milling", e.Name)

	_, err = yamlfile.LoadInventory(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeMatrix(t *testing.T) {
	t.Parallel()

	m, err := yamlfile.DecodeMatrix(strings.NewReader(`
size: 3
entries:
  - [0, 0, 2]
  - [1, 0, 4]
  - [1, 0, 1]
  - [1, 1, 1]
  - [2, 2, 1]
`))
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v, "duplicates are summed")
}

func TestDecodeMatrix_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"zero size", "size: 0\n", yamlfile.ErrMalformed},
		{"short entry", "size: 2\nentries: [[0, 1]]\n", yamlfile.ErrMalformed},
		{"fractional index", "size: 2\nentries: [[0.5, 1, 1]]\n", yamlfile.ErrMalformed},
		{"out of range", "size: 2\nentries: [[2, 0, 1]]\n", matrix.ErrOutOfRange},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := yamlfile.DecodeMatrix(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, yamlfile.EncodePath(&buf, []int{0, 1, 2, 3}))
	require.Equal(t, "path: [0, 1, 2, 3]\n", buf.String())

	buf.Reset()
	edges := []pathfinder.Edge{{
		Consumer: inventory.Entity{ID: "bread", Name: "bread baking"},
		Supplier: inventory.Entity{ID: "flour"},
		Amount:   0.8,
	}}
	require.NoError(t, yamlfile.EncodeEdges(&buf, edges))
	require.Equal(t, `path:
  - consumer: bread
    consumer_name: bread baking
    supplier: flour
    amount: 0.8
`, buf.String())
}
