package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, pages map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, contents := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
	}
	return dir
}

func TestCrawl(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"1.html": `<html><body><a href="2.html">two</a></body></html>`,
		"2.html": `<a href="1.html">one</a> <a class="x" href="3.html">three</a>`,
		"3.html": `<p>no links here</p>`,
	})

	g, err := Crawl(dir)
	require.NoError(t, err)
	require.Len(t, g, 3)
	assert.Equal(t, Links{"2.html": {}}, g["1.html"])
	assert.Equal(t, Links{"1.html": {}, "3.html": {}}, g["2.html"])
	assert.True(t, g.Dangling("3.html"))
}

func TestCrawlDropsSelfAndExternalLinks(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"1.html": `<a href="1.html">self</a> <a href="https://example.com/x.html">out</a> <a href="2.html">ok</a>`,
		"2.html": ``,
	})

	g, err := Crawl(dir)
	require.NoError(t, err)
	assert.Equal(t, Links{"2.html": {}}, g["1.html"])
}

func TestCrawlIgnoresNonHTMLFiles(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"1.html":     `<a href="notes.txt">txt</a>`,
		"notes.txt":  "plain text",
		"other.html": ``,
	})

	g, err := Crawl(dir)
	require.NoError(t, err)
	require.Len(t, g, 2)
	assert.True(t, g.Dangling("1.html"))
}

func TestCrawlEmptyDirectory(t *testing.T) {
	_, err := Crawl(t.TempDir())
	assert.Error(t, err)
}
