package sanger

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Fields holds the labels extracted from a vendor filename.
// An empty field means the vendor's delimiters were not found.
type Fields struct {
	Template string
	Primer   string
	VendorID string
}

// Stem returns the filename without directory and final extension
func Stem(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Extension returns the final extension of path without the leading dot
func Extension(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}

// Decompose splits a raw filename into template, primer and vendor id using
// the naming rule of vendor. It never fails: unmatched parts are left empty.
func Decompose(raw string, vendor Vendor) Fields {
	stem := Stem(raw)
	switch vendor {
	case Sangon:
		return Fields{
			Template: between(raw, "(", ")"),
			Primer:   between(stem, "[", "]"),
			VendorID: token(strings.Split(stem, "_"), 1),
		}
	case Ruibio:
		return decomposeRuibio(stem)
	case Genewiz:
		return decomposeGenewiz(stem)
	}
	return Fields{}
}

// FormatStandardized renders the standardized stem YYMMDD.template.primer.
// The caller appends the original extension.
func FormatStandardized(date time.Time, template, primer string) string {
	return fmt.Sprintf("%02d%02d%02d.%s.%s",
		date.Year()%100, int(date.Month()), date.Day(), template, primer)
}

// StandardizedFilename is FormatStandardized with ext appended when present
func StandardizedFilename(date time.Time, template, primer, ext string) string {
	name := FormatStandardized(date, template, primer)
	if ext == "" {
		return name
	}
	return name + "." + ext
}

// K528-1.C1.34781340.B08
func decomposeRuibio(stem string) Fields {
	var f Fields
	if i := strings.Index(stem, "."); i >= 0 {
		f.Template = stem[:i]
	}
	parts := strings.Split(stem, ".")
	f.Primer = token(parts, 1)
	if len(parts) >= 3 {
		f.VendorID = parts[len(parts)-2] + "." + parts[len(parts)-1]
	}
	return f
}

// TL1-T25_A01, k1-2-C1_R_G04. Only the last underscore separates the
// well id, so primers may contain underscores.
func decomposeGenewiz(stem string) Fields {
	var f Fields
	u := strings.LastIndex(stem, "_")
	if u < 0 {
		return f
	}
	f.VendorID = stem[u+1:]
	d := strings.LastIndex(stem[:u], "-")
	if d < 0 {
		return f
	}
	f.Template = stem[:d]
	f.Primer = stem[d+1 : u]
	return f
}

// between returns the text strictly between the first open and the first
// close delimiter, or "" when either is missing or out of order.
func between(s, open, close string) string {
	start := strings.Index(s, open)
	end := strings.Index(s, close)
	if start < 0 || end < 0 || end <= start {
		return ""
	}
	return s[start+len(open) : end]
}

func token(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}
