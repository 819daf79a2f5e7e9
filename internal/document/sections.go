package document

import (
	"fmt"
	"regexp"
	"strings"
)

var headingRe = regexp.MustCompile(`^(#{1,4})\s+(.+)$`)

// maxHeadingDepth bounds the hierarchy numbering.
const maxHeadingDepth = 6

// Section is one heading-delimited slice of a whole document.
type Section struct {
	Hierarchy string
	Heading   string
	Level     int
	Text      string
}

// ExtractSections splits a whole markdown document into sections on
// heading boundaries (# through ####), assigning hierarchy ids such as
// "1.0", "1.1", "2.0". A document without headings becomes a single
// full-document section.
func ExtractSections(text string) []Section {
	var sections []Section
	counters := make([]int, maxHeadingDepth)

	var current []string
	var heading string
	level := 0

	flush := func() {
		if heading == "" {
			return
		}
		body := strings.TrimSpace(strings.Join(current, "\n"))
		if body == "" {
			return
		}
		sections = append(sections, Section{
			Hierarchy: hierarchyID(counters, level),
			Heading:   heading,
			Level:     level,
			Text:      body,
		})
	}

	for _, line := range strings.Split(text, "\n") {
		m := headingRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			current = append(current, line)
			continue
		}
		flush()
		level = len(m[1])
		heading = cleanHeading(m[2])
		counters[level-1]++
		for i := level; i < maxHeadingDepth; i++ {
			counters[i] = 0
		}
		current = []string{line}
	}
	flush()

	if len(sections) == 0 && strings.TrimSpace(text) != "" {
		sections = append(sections, Section{
			Hierarchy: "1.0",
			Heading:   "Full Document",
			Level:     1,
			Text:      text,
		})
	}
	return sections
}

// ExpandToSections converts a collection of whole documents into a
// collection of per-section documents, carrying the parent metadata
// forward and adding hierarchy, heading, and ordering fields. Documents
// that already look pre-chunked (any hierarchy or section_order
// metadata) are passed through unchanged.
func ExpandToSections(c Collection) Collection {
	for _, d := range c.Docs {
		if d.Meta.Has(KeyHierarchy) || d.Meta.Has(KeySectionOrder) {
			return c
		}
	}

	out := Collection{Name: c.Name}
	order := 0
	for _, d := range c.Docs {
		sections := ExtractSections(d.Text)
		if len(sections) <= 1 {
			out.Docs = append(out.Docs, d)
			order++
			continue
		}
		for i, sec := range sections {
			meta := d.Meta.Clone()
			meta[KeyHierarchy] = sec.Hierarchy
			meta[KeyHeading] = sec.Heading
			meta[KeySectionLevel] = sec.Level
			meta[KeySectionOrder] = order
			meta[KeySectionName] = sectionName(sec.Heading)
			out.Docs = append(out.Docs, Document{
				ID:   fmt.Sprintf("%s#%d", d.ID, i),
				Text: sec.Text,
				Meta: meta,
			})
			order++
		}
	}
	return out
}

// hierarchyID renders the counters for a heading at the given level.
// Level-1 sections get a ".0" minor so top-level ids read "1.0", "2.0".
func hierarchyID(counters []int, level int) string {
	if level <= 1 {
		return fmt.Sprintf("%d.0", counters[0])
	}
	parts := make([]string, 0, level)
	for i := 0; i < level; i++ {
		n := counters[i]
		if n == 0 {
			n = 1
		}
		parts = append(parts, fmt.Sprintf("%d", n))
	}
	return strings.Join(parts, ".")
}

var (
	linkRe     = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	emphasisRe = regexp.MustCompile("[*_`]")
	nonWordRe  = regexp.MustCompile(`[^a-z0-9\s]`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

func cleanHeading(raw string) string {
	h := linkRe.ReplaceAllString(raw, "$1")
	h = emphasisRe.ReplaceAllString(h, "")
	return strings.TrimSpace(h)
}

func sectionName(heading string) string {
	name := nonWordRe.ReplaceAllString(strings.ToLower(heading), "")
	name = spaceRe.ReplaceAllString(strings.TrimSpace(name), "_")
	if name == "" {
		return "section"
	}
	return name
}
