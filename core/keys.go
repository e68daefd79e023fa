package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding maps one or more keys to a named action within a set of
// scopes. An empty scope list means the binding applies everywhere; a
// scope ending in "*" matches by prefix, so "screen:*" covers every
// modal without listing each one.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions. Routing looks bindings up
// through a per-action index; declaration order is kept for the footer.
type KeyRegistry struct {
	order    []KeyBinding
	byAction map[string][]KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{byAction: make(map[string][]KeyBinding, len(bindings))}
	for _, b := range bindings {
		r.Register(b)
	}
	return r
}

func (r *KeyRegistry) Register(b KeyBinding) {
	r.order = append(r.order, b)
	r.byAction[b.Action] = append(r.byAction[b.Action], b)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.order))
	for _, b := range r.order {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// IsAction reports whether the pressed key triggers the named action in
// the given scope.
func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.byAction[action] {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		if slices.ContainsFunc(b.Keys, func(k string) bool { return normalizeKey(k) == pressed }) {
			return true
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		switch {
		case s == "*" || s == scope:
			return true
		case strings.HasSuffix(s, "*") && strings.HasPrefix(scope, strings.TrimSuffix(s, "*")):
			return true
		}
	}
	return false
}
