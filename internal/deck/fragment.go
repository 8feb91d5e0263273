package deck

import (
	"strconv"
	"strings"
)

// DefaultSelector prefixes fragments when no selector is configured.
const DefaultSelector = "slide"

// FormatFragment encodes index as "<selector><index>".
func FormatFragment(selector string, index int) string {
	if selector == "" {
		selector = DefaultSelector
	}
	return selector + strconv.Itoa(index)
}

// ParseFragment decodes a fragment written by FormatFragment. A leading
// '#' and anything after the first '/' are ignored.
func ParseFragment(selector, fragment string) (int, bool) {
	if selector == "" {
		selector = DefaultSelector
	}
	s := strings.TrimPrefix(fragment, "#")
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	s, ok := strings.CutPrefix(s, selector)
	if !ok || s == "" {
		return 0, false
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return idx, true
}
