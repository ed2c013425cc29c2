package graphio_test

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjoy/graphs/pkg/graph"
	"github.com/sanjoy/graphs/pkg/graphio"
	"github.com/sanjoy/graphs/pkg/random"
	"github.com/sanjoy/graphs/pkg/zoo"
)

func edges(t *testing.T, g graph.Graph) []graph.Edge {
	t.Helper()
	list, ok := graph.EdgeList(g)
	require.True(t, ok)
	return list
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteJSON(zoo.Ring(3), &buf))

	want := `{
  "order": 3,
  "edges": [
    [
      0,
      1
    ],
    [
      0,
      2
    ],
    [
      1,
      2
    ]
  ]
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteJSONEmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteJSON(zoo.Unconnected(2), &buf))
	assert.Contains(t, buf.String(), `"edges": []`)
}

func TestReadJSON(t *testing.T) {
	g, err := graphio.ReadJSON(strings.NewReader(`{"order": 4, "edges": [[1, 0], [0, 1], [2, 2]]}`))
	require.NoError(t, err)

	n, _ := g.Order()
	assert.Equal(t, 4, n)
	assert.Equal(t, []graph.Edge{{U: 0, V: 1}, {U: 2, V: 2}}, edges(t, g))
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "malformed", input: `{"order": `},
		{name: "negative order", input: `{"order": -1, "edges": []}`},
		{name: "endpoint too large", input: `{"order": 2, "edges": [[0, 2]]}`},
		{name: "negative endpoint", input: `{"order": 2, "edges": [[-1, 0]]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := graphio.ReadJSON(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}

	_, err := graphio.ReadJSON(strings.NewReader(`{"order": 2, "edges": [[0, 2]]}`))
	assert.ErrorIs(t, err, graphio.ErrOutOfRange)
}

func TestReadJSONOrderLimit(t *testing.T) {
	_, err := graphio.ReadJSON(strings.NewReader(`{"order": 10000000000, "edges": []}`))
	assert.ErrorIs(t, err, graphio.ErrTooLarge)

	g, err := graphio.ReadJSON(strings.NewReader(fmt.Sprintf(`{"order": %d, "edges": []}`, graphio.MaxOrder)))
	require.NoError(t, err)
	n, _ := g.Order()
	assert.Equal(t, graphio.MaxOrder, n)
}

func TestWriteUnbounded(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, graphio.WriteJSON(zoo.Ray{}, &buf), graphio.ErrUnbounded)
	_, err := graphio.EncodeGraph6(zoo.Ray{})
	assert.ErrorIs(t, err, graphio.ErrUnbounded)
}

func TestEncodeGraph6(t *testing.T) {
	tests := []struct {
		name string
		g    graph.Graph
		want string
	}{
		{name: "triangle", g: zoo.Complete(3, false), want: "Bw"},
		{name: "K4", g: zoo.Complete(4, false), want: "C~"},
		{name: "ring 4", g: zoo.Ring(4), want: "Cl"},
		{name: "three isolated nodes", g: zoo.Unconnected(3), want: "B?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := graphio.EncodeGraph6(tt.g)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeGraph6RejectsLoops(t *testing.T) {
	_, err := graphio.EncodeGraph6(zoo.Complete(3, true))
	assert.ErrorIs(t, err, graphio.ErrSelfLoop)
}

func TestGraph6RoundTrip(t *testing.T) {
	for _, g := range []*graph.Concrete{
		zoo.Ring(7),
		zoo.CompleteBipartite(3, 4),
		random.NewSparseGraph(1, 10, 3, false),
		random.NewSparseGraph(5, 20, 4, false),
	} {
		s, err := graphio.EncodeGraph6(g)
		require.NoError(t, err)
		back, err := graphio.DecodeGraph6(s + "\n")
		require.NoError(t, err)
		assert.Equal(t, edges(t, g), edges(t, back), "graph6 %q", s)
	}
}

func TestDecodeGraph6Invalid(t *testing.T) {
	_, err := graphio.DecodeGraph6("C")
	assert.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    graphio.Format
		wantErr bool
	}{
		{path: "g.json", want: graphio.FormatJSON},
		{path: "G.JSON", want: graphio.FormatJSON},
		{path: "ring.g6", want: graphio.FormatGraph6},
		{path: "ring.graph6", want: graphio.FormatGraph6},
		{path: "ring.dot", wantErr: true},
		{path: "ring", wantErr: true},
	}
	for _, tt := range tests {
		got, err := graphio.FormatFor(tt.path)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	g := random.NewSparseGraph(1, 10, 3, true)

	for _, name := range []string{"g.json", "g.g6"} {
		path := filepath.Join(dir, name)
		require.NoError(t, graphio.Export(g, path))
		back, err := graphio.Import(path)
		require.NoError(t, err)
		assert.Equal(t, edges(t, g), edges(t, back), name)
	}

	_, err := graphio.Import(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
