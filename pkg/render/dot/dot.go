package dot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sanjoy/graphs/pkg/graph"
)

// DefaultName is the graph name used when none is given.
const DefaultName = "G"

// ErrUnbounded is returned when exporting a graph with no finite order.
var ErrUnbounded = errors.New("cannot export a graph with no finite order")

// Write writes g to w as a DOT graph called name. An empty name is replaced
// by [DefaultName].
func Write(w io.Writer, name string, g graph.Graph) error {
	n, finite := g.Order()
	if !finite {
		return ErrUnbounded
	}
	if name == "" {
		name = DefaultName
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "graph %s {\n", name)

	connected := make([]bool, n)
	for e := range graph.Edges(g) {
		fmt.Fprintf(bw, "  %d -- %d\n", e.U, e.V)
		connected[e.U] = true
		connected[e.V] = true
	}
	for v, ok := range connected {
		if !ok {
			fmt.Fprintf(bw, "  %d\n", v)
		}
	}

	bw.WriteString("}\n")
	return bw.Flush()
}

// ToDOT returns the DOT text [Write] would produce.
func ToDOT(name string, g graph.Graph) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, name, g); err != nil {
		return "", err
	}
	return sb.String(), nil
}
