package random_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjoy/graphs/pkg/graph"
	"github.com/sanjoy/graphs/pkg/random"
)

func edgeList(t *testing.T, g graph.Graph) []graph.Edge {
	t.Helper()
	edges, ok := graph.EdgeList(g)
	require.True(t, ok)
	return edges
}

func TestSparseGraphFixtures(t *testing.T) {
	tests := []struct {
		name            string
		seed            uint32
		order, degree   int
		ensureConnected bool
		want            []graph.Edge
	}{
		{
			name: "10 nodes degree 3", seed: 1, order: 10, degree: 3,
			want: []graph.Edge{
				{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 6}, {U: 0, V: 7}, {U: 1, V: 4},
				{U: 1, V: 5}, {U: 1, V: 6}, {U: 1, V: 9}, {U: 2, V: 7}, {U: 5, V: 6},
				{U: 5, V: 8}, {U: 6, V: 8}, {U: 6, V: 9},
			},
		},
		{
			name: "5 nodes degree 4", seed: 1, order: 5, degree: 4,
			want: []graph.Edge{
				{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 1, V: 2}, {U: 1, V: 3},
				{U: 1, V: 4}, {U: 2, V: 3}, {U: 2, V: 4}, {U: 3, V: 4},
			},
		},
		{
			name: "10 nodes degree 3 connected", seed: 1, order: 10, degree: 3, ensureConnected: true,
			want: []graph.Edge{
				{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 6}, {U: 0, V: 7}, {U: 1, V: 4},
				{U: 1, V: 5}, {U: 1, V: 6}, {U: 1, V: 9}, {U: 2, V: 7}, {U: 3, V: 4},
				{U: 3, V: 7}, {U: 4, V: 9}, {U: 5, V: 7}, {U: 6, V: 7}, {U: 6, V: 8},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := random.NewSparseGraph(tt.seed, tt.order, tt.degree, tt.ensureConnected)
			require.NoError(t, graph.CheckConsistency(g))
			assert.Equal(t, tt.want, edgeList(t, g))
		})
	}
}

func TestSparseGraphIsDeterministic(t *testing.T) {
	a := random.NewSparseGraph(1, 10, 3, false)
	b := random.NewSparseGraph(1, 10, 3, false)
	assert.Equal(t, edgeList(t, a), edgeList(t, b))

	c := random.NewSparseGraph(2, 10, 3, false)
	assert.NotEqual(t, edgeList(t, a), edgeList(t, c))
}

// The connecting edge is drawn from all nodes, including the source itself.
func TestSparseGraphConnectingEdgeMayBeSelfLoop(t *testing.T) {
	g := random.NewSparseGraph(2, 6, 1, true)

	want := []graph.Edge{
		{U: 0, V: 4}, {U: 0, V: 5}, {U: 1, V: 2}, {U: 1, V: 3}, {U: 3, V: 3}, {U: 3, V: 5},
	}
	assert.Equal(t, want, edgeList(t, g))
	assert.NoError(t, graph.CheckConsistency(g))
}

func TestSparseGraphEdgeCases(t *testing.T) {
	assert.Empty(t, edgeList(t, random.NewSparseGraph(1, 0, 3, true)))
	assert.Empty(t, edgeList(t, random.NewSparseGraph(1, 8, 0, false)))

	n, _ := random.NewSparseGraph(1, 8, 0, false).Order()
	assert.Equal(t, 8, n)

	assert.Panics(t, func() { random.NewSparseGraph(1, -1, 2, false) })
}

func TestSparseGraphLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	random.NewSparseGraph(1, 5, 4, false, random.WithLogger(logger))
	assert.Equal(t, 9, bytes.Count(buf.Bytes(), []byte("adding edge")))

	buf.Reset()
	logger.SetLevel(log.InfoLevel)
	random.NewSparseGraph(1, 5, 4, false, random.WithLogger(logger))
	assert.Zero(t, buf.Len())
}
