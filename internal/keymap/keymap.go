package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "navigation", "deck", "global"
}

// Bindings contains all key bindings, in help order.
var Bindings = []Binding{
	{ActionNext, []string{"j", "down", "l", "right", " ", "pgdown", "enter"}, "Next slide", "navigation"},
	{ActionPrev, []string{"k", "up", "h", "left", "pgup", "backspace"}, "Previous slide", "navigation"},
	{ActionReload, []string{"r"}, "Reload deck", "deck"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
}

// Contexts lists binding contexts in display order.
var Contexts = []string{"navigation", "deck", "global"}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// DisplayKey returns the label shown for key in help text.
func DisplayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
