package registry

import (
	"time"

	"github.com/Nomadcxx/sanger-rename/internal/sanger"
)

// Registry is the ordered set of decomposed files, keyed by path.
// It is owned by a single goroutine; the active wizard stage is the only writer.
type Registry struct {
	files []*SangerFile
	index map[string]int
}

// PreviewRow pairs a file's current name with the name it would be given
type PreviewRow struct {
	Original     string
	Standardized string
	Renamed      bool
	Err          error
}

// New creates an empty registry
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add inserts f unless a file with the same path is already present.
// It reports whether f was inserted.
func (r *Registry) Add(f *SangerFile) bool {
	if _, exists := r.index[f.Path()]; exists {
		return false
	}
	r.index[f.Path()] = len(r.files)
	r.files = append(r.files, f)
	return true
}

// Load decomposes paths under vendor. Paths already present are switched
// to vendor and re-decomposed; new paths are appended in order.
func (r *Registry) Load(paths []string, vendor sanger.Vendor) {
	for _, p := range paths {
		if f := r.Get(p); f != nil {
			f.SetVendor(vendor)
			continue
		}
		r.Add(NewSangerFile(p, vendor))
	}
}

// Get returns the file registered under path, or nil
func (r *Registry) Get(path string) *SangerFile {
	i, ok := r.index[path]
	if !ok {
		return nil
	}
	return r.files[i]
}

// Len returns the number of registered files
func (r *Registry) Len() int { return len(r.files) }

// Files returns the registered files in insertion order. The slice is a
// copy but the elements are shared, so callers may update them in place.
func (r *Registry) Files() []*SangerFile {
	out := make([]*SangerFile, len(r.files))
	copy(out, r.files)
	return out
}

// Each calls fn for every file in order
func (r *Registry) Each(fn func(f *SangerFile)) {
	for _, f := range r.files {
		fn(f)
	}
}

// Labels returns the distinct current labels of kind in first-appearance order
func (r *Registry) Labels(kind LabelKind) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, f := range r.files {
		l := f.Label(kind)
		if seen[l] {
			continue
		}
		seen[l] = true
		labels = append(labels, l)
	}
	return labels
}

// StampDate sets the capture date on every file
func (r *Registry) StampDate(date time.Time) {
	for _, f := range r.files {
		f.SetDate(date)
	}
}

// Preview returns one display row per file
func (r *Registry) Preview(today time.Time) []PreviewRow {
	rows := make([]PreviewRow, 0, len(r.files))
	for _, f := range r.files {
		rows = append(rows, PreviewRow{
			Original:     f.FileName(),
			Standardized: f.StandardizedName(today),
			Renamed:      f.Renamed(),
			Err:          f.Err(),
		})
	}
	return rows
}
