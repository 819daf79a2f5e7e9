// Package discovery finds content documents on disk and turns them into
// an ordered collection, extracting YAML frontmatter into metadata.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dotcommander/sitescore/internal/document"
)

// DefaultPatterns are the glob patterns matched against paths relative
// to the discovery root.
var DefaultPatterns = []string{"**/*.md", "**/*.markdown", "**/*.txt"}

// FileDiscovery walks a root directory for content files.
type FileDiscovery struct {
	root     string
	patterns []string
}

// NewFileDiscovery creates a discovery rooted at root. Empty patterns
// fall back to DefaultPatterns.
func NewFileDiscovery(root string, patterns []string) *FileDiscovery {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &FileDiscovery{root: root, patterns: patterns}
}

// Discover walks the root and returns matching files as an ordered
// collection. Paths sort lexically so repeated runs over the same tree
// produce the same document order. Hidden directories are skipped.
func (fd *FileDiscovery) Discover() (document.Collection, error) {
	root, err := filepath.Abs(fd.root)
	if err != nil {
		return document.Collection{}, fmt.Errorf("resolving root %s: %w", fd.root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return document.Collection{}, fmt.Errorf("discovery root: %w", err)
	}

	c := document.Collection{Name: filepath.Base(root)}

	// A single file is its own one-document collection.
	if !info.IsDir() {
		doc, err := readDocument(root, filepath.Base(root))
		if err != nil {
			return c, err
		}
		c.Docs = append(c.Docs, doc)
		return c, nil
	}

	var paths []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range fd.patterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				paths = append(paths, rel)
				break
			}
		}
		return nil
	})
	if walkErr != nil {
		return c, fmt.Errorf("walking %s: %w", root, walkErr)
	}
	sort.Strings(paths)

	for _, rel := range paths {
		doc, err := readDocument(filepath.Join(root, filepath.FromSlash(rel)), rel)
		if err != nil {
			return c, err
		}
		c.Docs = append(c.Docs, doc)
	}
	return c, nil
}

// readDocument loads one file, splitting frontmatter into metadata. A
// frontmatter parse failure keeps the raw content and empty metadata so
// one malformed file cannot abort discovery.
func readDocument(absPath, relPath string) (document.Document, error) {
	contents, err := os.ReadFile(absPath)
	if err != nil {
		return document.Document{}, fmt.Errorf("reading %s: %w", relPath, err)
	}

	fm, err := document.ParseFrontmatter(string(contents))
	if err != nil {
		fm = &document.Frontmatter{Data: document.Metadata{}, Body: string(contents)}
	}
	return document.Document{
		ID:   relPath,
		Text: strings.TrimSpace(fm.Body),
		Meta: fm.Data,
	}, nil
}
