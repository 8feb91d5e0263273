package slides

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-enry/go-enry/v2"
)

// DefaultCodeStyle is the chroma style used when none is configured.
const DefaultCodeStyle = "catppuccin-mocha"

// Highlight colors a code block line by line. lang may be empty, in which
// case the language is detected from the content.
func Highlight(code, lang, styleName string) []string {
	if code == "" {
		return nil
	}
	plain := strings.Split(code, "\n")

	tokens, err := chroma.Tokenise(chroma.Coalesce(lexerFor(lang, code)), nil, code)
	if err != nil {
		return plain
	}

	style := codeStyle(styleName)
	base := style.Get(chroma.Text).Colour

	out := make([]string, 1, len(plain))
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		ls := tokenStyle(style.Get(tok.Type), base)
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				out = append(out, "")
			}
			if part != "" {
				out[len(out)-1] += ls.Render(part)
			}
		}
	}
	// lexers may append a trailing newline
	if len(out) > len(plain) {
		out = out[:len(plain)]
	}
	return out
}

// tokenStyle maps a chroma entry to lipgloss. Tokens in the base text
// color keep the terminal default.
func tokenStyle(entry chroma.StyleEntry, base chroma.Colour) lipgloss.Style {
	s := lipgloss.NewStyle()
	if entry.Colour.IsSet() && entry.Colour != base {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	return s
}

// lexerFor picks a lexer by fence name, then by detected language, then
// by chroma's own analysis.
func lexerFor(lang, code string) chroma.Lexer {
	if lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if detected := enry.GetLanguage("", []byte(code)); detected != "" {
		if l := lexers.Get(detected); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(code); l != nil {
		return l
	}
	return lexers.Fallback
}

func codeStyle(name string) *chroma.Style {
	if name == "" {
		name = DefaultCodeStyle
	}
	return styles.Get(name)
}
