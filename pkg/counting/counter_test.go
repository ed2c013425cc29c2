package counting_test

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjoy/graphs/pkg/analysis"
	"github.com/sanjoy/graphs/pkg/counting"
	"github.com/sanjoy/graphs/pkg/graph"
)

func TestCountRegular(t *testing.T) {
	tests := []struct {
		order, degree int
		want          int
	}{
		{order: 1, degree: 0, want: 1},
		{order: 3, degree: 2, want: 1},
		{order: 4, degree: 0, want: 1},
		{order: 4, degree: 2, want: 1},
		{order: 4, degree: 3, want: 1},
		{order: 5, degree: 2, want: 1},
		{order: 5, degree: 4, want: 1},
		{order: 6, degree: 1, want: 1},
		{order: 6, degree: 2, want: 2},
		{order: 6, degree: 3, want: 2},
		{order: 6, degree: 4, want: 1},
		{order: 7, degree: 2, want: 2},
		{order: 7, degree: 4, want: 2},
	}

	for _, tt := range tests {
		got := counting.CountRegular(tt.order, tt.degree)
		assert.Equal(t, tt.want, got, "CountRegular(%d, %d)", tt.order, tt.degree)
	}
}

func TestRegularGraphsAreRegular(t *testing.T) {
	reps := counting.RegularGraphs(6, 3)
	require.Len(t, reps, 2)

	for _, g := range reps {
		n, _ := g.Order()
		assert.Equal(t, 6, n)
		assert.Equal(t, 9, g.Size())
		degree, ok := analysis.IsRegular(g)
		assert.True(t, ok)
		assert.Equal(t, 3, degree)
		assert.NoError(t, graph.CheckConsistency(g))
	}

	// The prism has two triangles and K(3,3) none.
	var triangles []int
	for _, g := range reps {
		triangles = append(triangles, countTriangles(g))
	}
	assert.ElementsMatch(t, []int{0, 2}, triangles)
}

func countTriangles(g *graph.Concrete) int {
	n, _ := g.Order()
	count := 0
	for a := range n {
		for _, b := range g.Neighbors(graph.Node(a)) {
			for _, c := range g.Neighbors(b) {
				if int(b) > a && c > b && slices.Contains(g.Neighbors(c), graph.Node(a)) {
					count++
				}
			}
		}
	}
	return count
}

func TestRegularGraphsTwoCycles(t *testing.T) {
	// C6 and two disjoint triangles.
	reps := counting.RegularGraphs(6, 2)
	require.Len(t, reps, 2)

	var minimums []float64
	for _, g := range reps {
		c, ok := analysis.ExactCheeger(g)
		require.True(t, ok)
		minimums = append(minimums, c)
	}
	assert.ElementsMatch(t, []float64{0, 2.0 / 3}, minimums)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		order, degree int
		want          error
	}{
		{order: 6, degree: 3},
		{order: 4, degree: 0},
		{order: 5, degree: 3, want: counting.ErrOddDegreeSum},
		{order: 4, degree: 4, want: counting.ErrDegreeTooLarge},
		{order: 3, degree: 4, want: counting.ErrDegreeTooLarge},
		{order: -2, degree: 1, want: counting.ErrNegative},
		{order: 4, degree: -1, want: counting.ErrNegative},
		{order: counting.MaxOrder + 1, degree: 2, want: counting.ErrOrderTooLarge},
	}

	for _, tt := range tests {
		err := counting.Validate(tt.order, tt.degree)
		if tt.want == nil {
			assert.NoError(t, err, "Validate(%d, %d)", tt.order, tt.degree)
			continue
		}
		assert.ErrorIs(t, err, tt.want, "Validate(%d, %d)", tt.order, tt.degree)
	}
}

func TestCountRegularPanicsOnInvalidArguments(t *testing.T) {
	assert.Panics(t, func() { counting.CountRegular(5, 3) })
	assert.Panics(t, func() { counting.CountRegular(3, 3) })
}

type recordingHooks struct {
	candidates, regular int
	completed           []int
}

func (r *recordingHooks) OnCandidate(_, _ int, regular bool) {
	r.candidates++
	if regular {
		r.regular++
	}
}

func (r *recordingHooks) OnCountComplete(_, _ int, count int, _ time.Duration) {
	r.completed = append(r.completed, count)
}

func TestCountReportsToHooks(t *testing.T) {
	hooks := &recordingHooks{}
	got := counting.CountRegular(4, 2, counting.WithHooks(hooks))

	assert.Equal(t, 1, got)
	assert.Equal(t, []int{1}, hooks.completed)
	// Three labeled 4-cycles exist on four nodes.
	assert.Equal(t, 3, hooks.regular)
	// Picking (0,1), (0,2), (1,2) leaves node 3 unreachable.
	assert.Greater(t, hooks.candidates, hooks.regular)
}

func TestCountLargestOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("walks all 10! relabelings")
	}
	// The complete graph is the single candidate, checked against every
	// relabeling.
	assert.Equal(t, 1, counting.CountRegular(counting.MaxOrder, counting.MaxOrder-1))
}

func TestCountLogsNewClasses(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	counting.CountRegular(6, 3, counting.WithLogger(logger))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "found regular graph"))
	assert.Contains(t, out, "graph6=")
}
