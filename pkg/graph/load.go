package graph

import (
	"fmt"
	"os"
	"strings"
)

// LoadEdgeListFile reads an edge-list file and builds the link graph.
func LoadEdgeListFile(path string) (Graph, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s", path)
	}
	return LoadEdgeList(bytes)
}

// LoadEdgeList parses edge-list contents: one "from to" pair per line,
// whitespace or comma separated. Lines starting with "#" or "//" are
// comments. Self-links and duplicate edges are dropped.
func LoadEdgeList(contents []byte) (Graph, error) {
	g := New()
	// Split file contents in lines (based on newline delimiter)
	lines := strings.Split(strings.ReplaceAll(string(contents), "\r\n", "\n"), "\n")
	for _, line := range lines {
		from, to, skip, err := convertLine(line)
		// There was an error loading the line
		if err != nil {
			return nil, err
		}
		// Comment line -> no new edge to add
		if skip {
			continue
		}
		g.AddLink(from, to)
	}
	if len(g) == 0 {
		return nil, fmt.Errorf("edge list contains no edges")
	}
	g.Normalize()
	return g, nil
}

func convertLine(line string) (string, string, bool, error) {
	// Skip comment lines
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") || strings.TrimSpace(line) == "" {
		return "", "", true, nil
	}
	// Convert line to csv format
	line = strings.Replace(line, " ", ",", 1)
	// Split line in FromPage and ToPage
	tokens := strings.Split(line, ",")
	if len(tokens) < 2 {
		return "", "", false, fmt.Errorf("could not parse edge %q", line)
	}
	from := strings.TrimSpace(tokens[0])
	to := strings.TrimSpace(tokens[1])
	if from == "" || to == "" {
		return "", "", false, fmt.Errorf("could not parse edge %q", line)
	}
	return from, to, false, nil
}
