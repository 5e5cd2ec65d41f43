package wizard

import (
	"time"

	"github.com/Nomadcxx/sanger-rename/internal/registry"
	"github.com/Nomadcxx/sanger-rename/internal/renamer"
	"github.com/Nomadcxx/sanger-rename/internal/sanger"
)

// OverrideRow is one label line of an override stage
type OverrideRow struct {
	Label string
	Value string // replacement, empty when not set
	Set   bool
}

// OverrideView is the read-only state of PrimerRename or TemplateRename
type OverrideView struct {
	Kind        registry.LabelKind
	Rows        []OverrideRow
	Highlighted int
	Editing     bool
	Buffer      string
}

// Stage returns the active stage
func (w *Wizard) Stage() Stage { return w.state.stage() }

// Quit reports whether a quit transition has been observed
func (w *Wizard) Quit() bool { return w.quit }

// Paths returns the input paths in the order given
func (w *Wizard) Paths() []string { return append([]string(nil), w.paths...) }

// Registry exposes the decomposed files for display
func (w *Wizard) Registry() *registry.Registry { return w.reg }

// Today returns the current date according to the wizard's clock
func (w *Wizard) Today() time.Time { return truncateDay(w.now()) }

// Preview returns one (original, standardized) row per decomposed file
func (w *Wizard) Preview() []registry.PreviewRow {
	return w.reg.Preview(w.now())
}

// VendorHighlight returns the highlighted vendor index during VendorSelection
func (w *Wizard) VendorHighlight() int {
	if s, ok := w.state.(*vendorState); ok {
		return s.highlighted
	}
	return 0
}

// SelectedVendor returns the committed vendor, if any
func (w *Wizard) SelectedVendor() (sanger.Vendor, bool) {
	return w.vendor, w.hasVendor
}

// Override returns the override stage state, if one is active
func (w *Wizard) Override() (OverrideView, bool) {
	s, ok := w.state.(*overrideState)
	if !ok {
		return OverrideView{}, false
	}
	view := OverrideView{
		Kind:        s.m.Kind(),
		Highlighted: s.highlighted,
		Editing:     s.editing,
		Buffer:      string(s.buffer),
	}
	for _, key := range s.m.Keys() {
		value, set := s.m.Get(key)
		view.Rows = append(view.Rows, OverrideRow{Label: key, Value: value, Set: set})
	}
	return view, true
}

// SelectedDate returns the date cursor during DateSelection
func (w *Wizard) SelectedDate() (time.Time, bool) {
	if s, ok := w.state.(*dateState); ok {
		return s.selected, true
	}
	return time.Time{}, false
}

// Result returns the commit result once ConfirmRename has run
func (w *Wizard) Result() (renamer.Result, bool) {
	if s, ok := w.state.(*confirmState); ok && s.renamed {
		return s.result, true
	}
	return renamer.Result{}, false
}
