package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/adjax/unweighted"
)

// Read parses the legacy graph format from r and builds the graph it
// describes. Vertices and edges are added in file order.
//
// Complexity: O(V + E) time and memory.
func Read(r io.Reader) (*unweighted.Graph, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("graphio: read header: %w", err)
		}
		return nil, fmt.Errorf("%w: missing direction header", ErrMalformedInput)
	}
	header := strings.TrimSpace(sc.Text())
	if header != "G" && header != "D" {
		return nil, fmt.Errorf("%w: direction header %q (want G or D)", ErrMalformedInput, header)
	}
	g := unweighted.New(unweighted.WithDirected(header == "D"))

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("graphio: read vertex line: %w", err)
		}
		return nil, fmt.Errorf("%w: missing vertex line", ErrMalformedInput)
	}
	for _, id := range strings.Split(strings.TrimSpace(sc.Text()), ",") {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: vertex line: %v", ErrMalformedInput, err)
		}
	}

	line := 2
	for sc.Scan() {
		line++
		u, v, err := splitPair(strings.TrimSpace(sc.Text()))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read edges: %w", err)
	}

	return g, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string) (*unweighted.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// splitPair extracts the two endpoint ids from a bracket-wrapped pair such
// as "(A,B)". The legacy convention: after splitting on the comma, the
// second character of the first field and the first character of the
// second field are the ids.
func splitPair(s string) (string, string, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 || len(fields[0]) < 2 || len(fields[1]) < 1 {
		return "", "", fmt.Errorf("%w: edge pair %q", ErrMalformedInput, s)
	}

	return string(fields[0][1]), string(fields[1][0]), nil
}
