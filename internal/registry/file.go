package registry

import (
	"path/filepath"
	"time"

	"github.com/Nomadcxx/sanger-rename/internal/sanger"
)

// LabelKind selects which extracted label an operation works on
type LabelKind int

const (
	Primer LabelKind = iota
	Template
)

func (k LabelKind) String() string {
	switch k {
	case Primer:
		return "primer"
	case Template:
		return "template"
	}
	return "unknown"
}

// SangerFile is one input file decomposed under a vendor's naming rule.
// The path is its identity and never changes, even after a rename on disk.
type SangerFile struct {
	path     string
	vendor   sanger.Vendor
	vendorID string
	template string
	primer   string

	date    time.Time
	hasDate bool

	renamed bool
	newPath string
	err     error
}

// NewSangerFile decomposes path under vendor
func NewSangerFile(path string, vendor sanger.Vendor) *SangerFile {
	f := &SangerFile{path: path}
	f.SetVendor(vendor)
	return f
}

// SetVendor switches the naming rule and re-extracts every label,
// discarding any overrides.
func (f *SangerFile) SetVendor(vendor sanger.Vendor) {
	fields := sanger.Decompose(f.path, vendor)
	f.vendor = vendor
	f.template = fields.Template
	f.primer = fields.Primer
	f.vendorID = fields.VendorID
}

func (f *SangerFile) Path() string          { return f.path }
func (f *SangerFile) Vendor() sanger.Vendor { return f.vendor }
func (f *SangerFile) VendorID() string      { return f.vendorID }
func (f *SangerFile) Template() string      { return f.template }
func (f *SangerFile) Primer() string        { return f.primer }

// FileName returns the base name including extension
func (f *SangerFile) FileName() string { return filepath.Base(f.path) }

// Extension returns the original extension without the dot
func (f *SangerFile) Extension() string { return sanger.Extension(f.path) }

// Label returns the current label of the given kind
func (f *SangerFile) Label(kind LabelKind) string {
	if kind == Template {
		return f.template
	}
	return f.primer
}

// SetLabel overwrites the current label of the given kind
func (f *SangerFile) SetLabel(kind LabelKind, name string) {
	if kind == Template {
		f.template = name
		return
	}
	f.primer = name
}

// SetDate stamps the capture date used in the standardized name
func (f *SangerFile) SetDate(date time.Time) {
	f.date = date
	f.hasDate = true
}

// Date returns the capture date and whether one has been set
func (f *SangerFile) Date() (time.Time, bool) {
	return f.date, f.hasDate
}

// StandardizedName returns YYMMDD.template.primer.ext, using today when no
// capture date has been stamped.
func (f *SangerFile) StandardizedName(today time.Time) string {
	date := today
	if f.hasDate {
		date = f.date
	}
	return sanger.StandardizedFilename(date, f.template, f.primer, f.Extension())
}

// TargetPath returns the standardized name in the file's own directory
func (f *SangerFile) TargetPath(today time.Time) string {
	return filepath.Join(filepath.Dir(f.path), f.StandardizedName(today))
}

// MarkRenamed records a completed move to newPath
func (f *SangerFile) MarkRenamed(newPath string) {
	f.renamed = true
	f.newPath = newPath
	f.err = nil
}

// MarkFailed records why the move for this file failed
func (f *SangerFile) MarkFailed(err error) {
	f.renamed = false
	f.err = err
}

func (f *SangerFile) Renamed() bool   { return f.renamed }
func (f *SangerFile) NewPath() string { return f.newPath }
func (f *SangerFile) Err() error      { return f.err }
