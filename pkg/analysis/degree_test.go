package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanjoy/graphs/pkg/analysis"
	"github.com/sanjoy/graphs/pkg/graph"
	"github.com/sanjoy/graphs/pkg/zoo"
)

func TestDegreeStatistics(t *testing.T) {
	tests := []struct {
		name        string
		g           graph.Graph
		wantMin     int
		wantMinOK   bool
		wantRegular int
		wantRegOK   bool
	}{
		{name: "triangle", g: zoo.Complete(3, false), wantMin: 2, wantMinOK: true, wantRegular: 2, wantRegOK: true},
		{name: "isolated nodes", g: zoo.Unconnected(3), wantMin: 0, wantMinOK: true, wantRegular: 0, wantRegOK: true},
		{name: "triangle with loops", g: zoo.Complete(3, true), wantMin: 3, wantMinOK: true, wantRegular: 3, wantRegOK: true},
		{
			name:      "path",
			g:         graph.New(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}}),
			wantMin:   1,
			wantMinOK: true,
		},
		{name: "bipartite", g: zoo.CompleteBipartite(2, 5), wantMin: 2, wantMinOK: true},
		{name: "empty", g: zoo.Unconnected(0), wantRegular: 0, wantRegOK: true},
		{name: "unbounded", g: zoo.Ray{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minDegree, ok := analysis.MinDegree(tt.g)
			assert.Equal(t, tt.wantMinOK, ok, "MinDegree ok")
			assert.Equal(t, tt.wantMin, minDegree, "MinDegree")

			degree, ok := analysis.IsRegular(tt.g)
			assert.Equal(t, tt.wantRegOK, ok, "IsRegular ok")
			assert.Equal(t, tt.wantRegular, degree, "IsRegular")
		})
	}
}
