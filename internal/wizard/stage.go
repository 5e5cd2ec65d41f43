package wizard

import (
	"time"

	"github.com/Nomadcxx/sanger-rename/internal/override"
	"github.com/Nomadcxx/sanger-rename/internal/renamer"
	"github.com/Nomadcxx/sanger-rename/internal/sanger"
)

// Stage is one step of the rename wizard
type Stage int

const (
	VendorSelection Stage = iota
	PrimerRename
	TemplateRename
	DateSelection
	ConfirmRename
)

func (s Stage) String() string {
	switch s {
	case VendorSelection:
		return "VendorSelection"
	case PrimerRename:
		return "PrimerRename"
	case TemplateRename:
		return "TemplateRename"
	case DateSelection:
		return "DateSelection"
	case ConfirmRename:
		return "ConfirmRename"
	}
	return "Unknown"
}

// stageState is the transient state owned by the active stage. Exactly one
// implementation is live at a time; it is rebuilt on every stage entry.
type stageState interface {
	stage() Stage
}

type vendorState struct {
	highlighted int
}

type overrideState struct {
	current     Stage
	m           *override.Map
	highlighted int
	editing     bool
	buffer      []rune
}

type dateState struct {
	selected time.Time
}

type confirmState struct {
	renamed bool
	result  renamer.Result
}

func (*vendorState) stage() Stage     { return VendorSelection }
func (s *overrideState) stage() Stage { return s.current }
func (*dateState) stage() Stage       { return DateSelection }
func (*confirmState) stage() Stage    { return ConfirmRename }

// moveVendor steps the highlight by delta, wrapping at both ends
func (s *vendorState) moveVendor(delta int) {
	n := len(sanger.Vendors())
	s.highlighted = ((s.highlighted+delta)%n + n) % n
}

// addMonths moves date by n months, clamping the day to the target month
func addMonths(date time.Time, n int) time.Time {
	y, m, d := date.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, date.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, date.Location())
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
