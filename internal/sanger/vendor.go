package sanger

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
)

// ErrUnknownVendor is returned when a vendor name does not match any supported vendor
var ErrUnknownVendor = errors.New("unknown vendor")

// Vendor identifies the sequencing provider whose filename convention applies
type Vendor int

const (
	Sangon Vendor = iota
	Ruibio
	Genewiz
)

var vendorNames = [...]string{
	Sangon:  "Sangon",
	Ruibio:  "Ruibio",
	Genewiz: "Genewiz",
}

// Vendors returns every supported vendor in display order
func Vendors() []Vendor {
	return []Vendor{Sangon, Ruibio, Genewiz}
}

// VendorAt returns the vendor at index i of Vendors()
func VendorAt(i int) (Vendor, bool) {
	all := Vendors()
	if i < 0 || i >= len(all) {
		return 0, false
	}
	return all[i], true
}

// String returns the display name
func (v Vendor) String() string {
	if v < 0 || int(v) >= len(vendorNames) {
		return fmt.Sprintf("Vendor(%d)", int(v))
	}
	return vendorNames[v]
}

// Valid reports whether v is one of the supported vendors
func (v Vendor) Valid() bool {
	return v >= 0 && int(v) < len(vendorNames)
}

// ParseVendor matches name case-insensitively against the supported vendors
func ParseVendor(name string) (Vendor, error) {
	fold := cases.Fold()
	want := fold.String(name)
	for _, v := range Vendors() {
		if fold.String(v.String()) == want {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownVendor, name)
}
