// Package slides parses Markdown decks into slides.
package slides

import (
	"regexp"
	"strings"
)

// DefaultClass is assigned to slides without a class comment.
const DefaultClass = "slide"

// Separator splits slides when it appears alone on a line outside a fence.
const Separator = "---"

// Slide is one page of a deck.
type Slide struct {
	Class string
	Title string
	Lines []string
}

var classComment = regexp.MustCompile(`^<!--\s*class:\s*([\w-]+)\s*-->$`)

// Parse splits src into slides. Empty slides are dropped.
func Parse(src []byte) []Slide {
	var (
		out     []Slide
		cur     = Slide{Class: DefaultClass}
		inFence bool
	)

	flush := func() {
		trimBlank(&cur)
		if len(cur.Lines) > 0 || cur.Title != "" {
			out = append(out, cur)
		}
		cur = Slide{Class: DefaultClass}
	}

	// no line length limit: decks may inline large data URIs
	for raw := range strings.Lines(string(src)) {
		line := strings.TrimRight(raw, " \t\r\n")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
		}
		if !inFence && trimmed == Separator {
			flush()
			continue
		}
		if !inFence {
			if m := classComment.FindStringSubmatch(trimmed); m != nil {
				cur.Class = m[1]
				continue
			}
			if cur.Title == "" && strings.HasPrefix(trimmed, "# ") {
				cur.Title = strings.TrimSpace(trimmed[2:])
			}
		}
		cur.Lines = append(cur.Lines, line)
	}
	flush()
	return out
}

func trimBlank(s *Slide) {
	for len(s.Lines) > 0 && strings.TrimSpace(s.Lines[0]) == "" {
		s.Lines = s.Lines[1:]
	}
	for len(s.Lines) > 0 && strings.TrimSpace(s.Lines[len(s.Lines)-1]) == "" {
		s.Lines = s.Lines[:len(s.Lines)-1]
	}
}

// WithClass returns the slides carrying class, in order.
func WithClass(all []Slide, class string) []Slide {
	var out []Slide
	for _, s := range all {
		if s.Class == class {
			out = append(out, s)
		}
	}
	return out
}
