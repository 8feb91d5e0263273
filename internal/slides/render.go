package slides

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/pagescroll/internal/ui/render"
	"github.com/llehouerou/pagescroll/internal/ui/styles"
)

// RenderOptions controls how a slide is drawn.
type RenderOptions struct {
	Width     int
	Active    bool
	CodeStyle string
}

const gutter = "  "

// Render draws s into terminal lines no wider than opts.Width.
func Render(s Slide, opts RenderOptions) []string {
	th := styles.T()
	st := th.S()

	var (
		out      []string
		fence    []string
		fenceTag string
		inFence  bool
	)

	for _, line := range s.Lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				for _, hl := range Highlight(strings.Join(fence, "\n"), fenceTag, opts.CodeStyle) {
					out = append(out, gutter+st.Code.Render("│ ")+hl)
				}
				fence, fenceTag, inFence = nil, "", false
			} else {
				fenceTag = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
				inFence = true
			}
			continue
		}
		if inFence {
			fence = append(fence, line)
			continue
		}

		text := render.Sanitize(line)
		switch {
		case strings.HasPrefix(trimmed, "# "):
			title := strings.TrimSpace(trimmed[2:])
			if opts.Active {
				out = append(out, gutter+styles.ApplyBoldGradient(title, th.Primary, th.Secondary))
			} else {
				out = append(out, gutter+st.Title.Render(title))
			}
		case strings.HasPrefix(trimmed, "## "), strings.HasPrefix(trimmed, "### "):
			out = append(out, gutter+st.Heading.Render(strings.TrimLeft(trimmed, "# ")))
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
			out = append(out, gutter+indent+st.Bullet.Render("•")+" "+st.Base.Render(render.Sanitize(trimmed[2:])))
		case strings.HasPrefix(trimmed, "> "):
			out = append(out, gutter+st.Muted.Render("┃ "+render.Sanitize(trimmed[2:])))
		default:
			out = append(out, gutter+st.Base.Render(text))
		}
	}
	// unterminated fence: show it as is
	for _, l := range fence {
		out = append(out, gutter+st.Code.Render("│ ")+render.Sanitize(l))
	}

	if !opts.Active {
		for i, l := range out {
			out[i] = st.Subtle.Render(ansi.Strip(l))
		}
	}
	if opts.Width > 0 {
		for i, l := range out {
			out[i] = ansi.Truncate(l, opts.Width, "…")
		}
	}
	return out
}
