package document

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds parsed YAML frontmatter and the remaining body.
type Frontmatter struct {
	Data Metadata
	Body string
}

// ParseFrontmatter extracts YAML frontmatter from markdown content.
// Content without a frontmatter block returns empty metadata and the
// content unchanged.
func ParseFrontmatter(content string) (*Frontmatter, error) {
	trimmed := strings.TrimLeft(content, "\n")
	if !strings.HasPrefix(trimmed, "---") {
		return &Frontmatter{Data: Metadata{}, Body: content}, nil
	}

	parts := strings.SplitN(trimmed, "---", 3)
	if len(parts) < 3 {
		return &Frontmatter{Data: Metadata{}, Body: content}, nil
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(parts[1]), &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = map[string]any{}
	}

	return &Frontmatter{Data: Metadata(data), Body: parts[2]}, nil
}
