package graph

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var hrefPattern = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)

// Crawl scans a directory of HTML pages and builds the link graph.
// Every .html file becomes a page; its outgoing links are the href targets
// found in the file. Self-links and links to pages outside the directory
// are dropped.
func Crawl(dir string) (Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read corpus directory %s: %v", dir, err)
	}
	g := New()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		contents, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not read page %s: %v", entry.Name(), err)
		}
		g.AddPage(entry.Name())
		for _, match := range hrefPattern.FindAllStringSubmatch(string(contents), -1) {
			g[entry.Name()][match[1]] = struct{}{}
		}
	}
	if len(g) == 0 {
		return nil, fmt.Errorf("no HTML pages found in %s", dir)
	}
	g.Normalize()
	return g, nil
}
