package graphio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sanjoy/graphs/pkg/graph"
)

// Format identifies a file format.
type Format string

const (
	FormatJSON   Format = "json"
	FormatGraph6 Format = "graph6"
)

// FormatFor returns the format implied by the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".g6", ".graph6":
		return FormatGraph6, nil
	}
	return "", fmt.Errorf("unrecognized graph file extension %q", filepath.Ext(path))
}

// Write encodes g to w in format f.
func Write(g graph.Graph, f Format, w io.Writer) error {
	switch f {
	case FormatJSON:
		return WriteJSON(g, w)
	case FormatGraph6:
		s, err := EncodeGraph6(g)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	}
	return fmt.Errorf("unsupported format %q", f)
}

// Read decodes a graph in format f from r.
func Read(r io.Reader, f Format) (*graph.Concrete, error) {
	switch f {
	case FormatJSON:
		return ReadJSON(r)
	case FormatGraph6:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
		return DecodeGraph6(string(bytes.TrimSpace(data)))
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}

// Import reads the graph stored at path.
func Import(path string) (*graph.Concrete, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	g, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Export writes g to path in the format implied by its extension.
func Export(g graph.Graph, path string) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(g, f, file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
