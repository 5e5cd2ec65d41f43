// Package override maps labels extracted from vendor filenames to names
// chosen by the operator and pushes each edit to every file sharing the label.
package override

import (
	"github.com/Nomadcxx/sanger-rename/internal/registry"
)

// Map holds the overrides for one label kind. Keys are captured from the
// registry when the map is built and do not change afterwards.
type Map struct {
	kind         registry.LabelKind
	reg          *registry.Registry
	keys         []string
	replacements map[string]string
	// files last written through each key, so a second edit of the same
	// key reaches files that no longer carry the key as their label
	assigned map[string][]*registry.SangerFile
}

// New seeds a map with the distinct current labels of kind. Every key starts
// without a replacement.
func New(reg *registry.Registry, kind registry.LabelKind) *Map {
	return &Map{
		kind:         kind,
		reg:          reg,
		keys:         reg.Labels(kind),
		replacements: make(map[string]string),
		assigned:     make(map[string][]*registry.SangerFile),
	}
}

// Kind returns the label kind this map edits
func (m *Map) Kind() registry.LabelKind { return m.kind }

// Keys returns the original labels in display order
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys
func (m *Map) Len() int { return len(m.keys) }

// KeyAt returns the key at cursor position i
func (m *Map) KeyAt(i int) (string, bool) {
	if i < 0 || i >= len(m.keys) {
		return "", false
	}
	return m.keys[i], true
}

// Get returns the replacement for key, if one is set
func (m *Map) Get(key string) (string, bool) {
	v, ok := m.replacements[key]
	return v, ok
}

// Resolve returns the replacement for key, falling back to key itself
func (m *Map) Resolve(key string) string {
	if v, ok := m.replacements[key]; ok {
		return v
	}
	return key
}

// Commit records value as the replacement for key and applies it to every
// file whose current label equals key, plus every file an earlier commit of
// key already rewrote. An empty value clears the override and returns those
// files to key. It returns the number of files updated.
func (m *Map) Commit(key, value string) int {
	if value == "" {
		delete(m.replacements, key)
	} else {
		m.replacements[key] = value
	}
	label := m.Resolve(key)

	targets := make(map[*registry.SangerFile]bool)
	for _, f := range m.assigned[key] {
		targets[f] = true
	}
	var updated []*registry.SangerFile
	m.reg.Each(func(f *registry.SangerFile) {
		if !targets[f] && f.Label(m.kind) != key {
			return
		}
		f.SetLabel(m.kind, label)
		updated = append(updated, f)
	})

	if value == "" {
		delete(m.assigned, key)
	} else {
		m.assigned[key] = updated
	}
	return len(updated)
}
