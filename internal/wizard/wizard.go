// Package wizard sequences the rename session: vendor selection, primer and
// template overrides, capture date, and the confirmed commit to disk.
package wizard

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Nomadcxx/sanger-rename/internal/logging"
	"github.com/Nomadcxx/sanger-rename/internal/override"
	"github.com/Nomadcxx/sanger-rename/internal/registry"
	"github.com/Nomadcxx/sanger-rename/internal/renamer"
	"github.com/Nomadcxx/sanger-rename/internal/sanger"
)

// ErrNoVendor is returned when files would be decomposed before a vendor is chosen
var ErrNoVendor = errors.New("no vendor selected")

// Committer applies the standardized names to disk
type Committer interface {
	Commit(files []*registry.SangerFile, today time.Time) renamer.Result
}

// Options configures a Wizard
type Options struct {
	Committer Committer
	Logger    *zap.Logger
	// Now supplies "today"; defaults to time.Now
	Now func() time.Time
	// Date, when non-zero, is stamped on every file at decomposition and is
	// where the date cursor starts
	Date time.Time
}

// Wizard is the single-threaded state machine behind the terminal UI. The
// caller feeds it one Input at a time and stops reading input once Handle
// returns Quit.
type Wizard struct {
	paths     []string
	reg       *registry.Registry
	committer Committer
	logger    *zap.Logger
	now       func() time.Time
	presetDay time.Time

	vendor    sanger.Vendor
	hasVendor bool

	state stageState
	quit  bool
}

// New creates a wizard over paths, starting at vendor selection
func New(paths []string, opts Options) *Wizard {
	w := &Wizard{
		paths:     append([]string(nil), paths...),
		reg:       registry.New(),
		committer: opts.Committer,
		logger:    logging.OrNop(opts.Logger),
		now:       opts.Now,
		presetDay: opts.Date,
		state:     &vendorState{},
	}
	if w.committer == nil {
		w.committer = renamer.New(renamer.Config{}, w.logger)
	}
	if w.now == nil {
		w.now = time.Now
	}
	return w
}

// SelectVendor chooses vendor without going through the selection screen,
// decomposes the input files and moves to primer renaming.
func (w *Wizard) SelectVendor(vendor sanger.Vendor) error {
	if !vendor.Valid() {
		return sanger.ErrUnknownVendor
	}
	w.state = &vendorState{}
	w.vendor = vendor
	w.hasVendor = true
	return w.enter(PrimerRename)
}

// Handle processes one key event and returns the resulting transition.
// Errors are preconditions the caller broke; the stage is left unchanged.
func (w *Wizard) Handle(in Input) (Transition, error) {
	if w.quit {
		return Quit, nil
	}

	var (
		t   Transition
		to  Stage
		err error
	)
	switch s := w.state.(type) {
	case *vendorState:
		t, err = w.handleVendor(s, in)
		to = PrimerRename
	case *overrideState:
		t, err = w.handleOverride(s, in)
		to = s.current + 1
		if t == Previous {
			to = s.current - 1
		}
	case *dateState:
		t = w.handleDate(s, in)
		to = ConfirmRename
		if t == Previous {
			to = TemplateRename
		}
	case *confirmState:
		t = w.handleConfirm(s, in)
		to = DateSelection
	}
	if err != nil {
		return Stay, err
	}

	switch t {
	case Quit:
		w.quit = true
		w.logger.Debug("wizard quit", zap.Stringer("stage", w.Stage()))
	case Next, Previous:
		if err := w.enter(to); err != nil {
			return Stay, err
		}
	}
	return t, nil
}

// enter builds the state for stage from the current registry contents
func (w *Wizard) enter(stage Stage) error {
	from := w.Stage()
	switch stage {
	case VendorSelection:
		w.hasVendor = false
		w.state = &vendorState{}
	case PrimerRename, TemplateRename:
		kind := registry.Primer
		if stage == TemplateRename {
			kind = registry.Template
		}
		if stage == PrimerRename && from == VendorSelection {
			if err := w.decompose(); err != nil {
				return err
			}
		}
		w.state = &overrideState{current: stage, m: override.New(w.reg, kind)}
	case DateSelection:
		w.state = &dateState{selected: w.initialDate()}
	case ConfirmRename:
		w.state = &confirmState{}
	}
	w.logger.Debug("stage entered",
		zap.Stringer("from", from),
		zap.Stringer("to", stage),
		zap.Int("files", w.reg.Len()))
	return nil
}

// decompose loads every input path into the registry under the selected
// vendor. A preset date is stamped on files that do not carry one yet.
func (w *Wizard) decompose() error {
	if !w.hasVendor {
		return ErrNoVendor
	}
	w.reg.Load(w.paths, w.vendor)
	if !w.presetDay.IsZero() {
		preset := truncateDay(w.presetDay)
		w.reg.Each(func(f *registry.SangerFile) {
			if _, ok := f.Date(); !ok {
				f.SetDate(preset)
			}
		})
	}
	w.logger.Info("files decomposed",
		zap.Stringer("vendor", w.vendor),
		zap.Int("files", w.reg.Len()))
	return nil
}

// initialDate is the date already stamped on the registry, else the preset
// date, else today
func (w *Wizard) initialDate() time.Time {
	for _, f := range w.reg.Files() {
		if d, ok := f.Date(); ok {
			return truncateDay(d)
		}
	}
	if !w.presetDay.IsZero() {
		return truncateDay(w.presetDay)
	}
	return truncateDay(w.now())
}

func (w *Wizard) handleVendor(s *vendorState, in Input) (Transition, error) {
	switch {
	case in.is(KeyLeft, 'h'), in.is(KeyUp, 'k'):
		s.moveVendor(-1)
	case in.is(KeyRight, 'l'), in.is(KeyDown, 'j'):
		s.moveVendor(1)
	case in.Key == KeyEnter:
		v, ok := sanger.VendorAt(s.highlighted)
		if !ok {
			return Stay, ErrNoVendor
		}
		w.vendor = v
		w.hasVendor = true
		return Next, nil
	case in.is(KeyEsc, 'q'):
		return Quit, nil
	}
	return Stay, nil
}

func (w *Wizard) handleOverride(s *overrideState, in Input) (Transition, error) {
	if s.editing {
		switch in.Key {
		case KeyEnter:
			if key, ok := s.m.KeyAt(s.highlighted); ok {
				value := string(s.buffer)
				n := s.m.Commit(key, value)
				w.logger.Info("override committed",
					zap.Stringer("kind", s.m.Kind()),
					zap.String("label", key),
					zap.String("value", value),
					zap.Int("files", n))
			}
			s.editing = false
			s.buffer = nil
		case KeyEsc:
			s.editing = false
			s.buffer = nil
		case KeyBackspace:
			if len(s.buffer) > 0 {
				s.buffer = s.buffer[:len(s.buffer)-1]
			}
		case KeyRune:
			s.buffer = append(s.buffer, in.Rune)
		}
		return Stay, nil
	}

	switch {
	case in.is(KeyUp, 'k'):
		if s.highlighted > 0 {
			s.highlighted--
		}
	case in.is(KeyDown, 'j'):
		if s.highlighted < s.m.Len()-1 {
			s.highlighted++
		}
	case in.Key == KeyEnter:
		key, ok := s.m.KeyAt(s.highlighted)
		if !ok {
			return Stay, nil
		}
		s.editing = true
		s.buffer = nil
		if existing, set := s.m.Get(key); set {
			s.buffer = []rune(existing)
		}
	case in.is(KeyEsc, 'q'):
		return Quit, nil
	case in.is(KeyTab, 'n'):
		return Next, nil
	case in.is(KeyBackTab, 'p'):
		return Previous, nil
	}
	return Stay, nil
}

func (w *Wizard) handleDate(s *dateState, in Input) Transition {
	switch {
	case in.is(KeyLeft, 'h'):
		s.selected = s.selected.AddDate(0, 0, -1)
	case in.is(KeyRight, 'l'):
		s.selected = s.selected.AddDate(0, 0, 1)
	case in.is(KeyUp, 'k'):
		s.selected = s.selected.AddDate(0, 0, -7)
	case in.is(KeyDown, 'j'):
		s.selected = s.selected.AddDate(0, 0, 7)
	case in.is(KeyPgUp, '['):
		s.selected = addMonths(s.selected, -1)
	case in.is(KeyPgDown, ']'):
		s.selected = addMonths(s.selected, 1)
	case in.Key == KeyEnter:
		w.reg.StampDate(s.selected)
		w.logger.Info("capture date stamped",
			zap.String("date", s.selected.Format("2006-01-02")),
			zap.Int("files", w.reg.Len()))
	case in.is(KeyEsc, 'q'):
		return Quit
	case in.is(KeyTab, 'n'):
		return Next
	case in.is(KeyBackTab, 'p'):
		return Previous
	}
	return Stay
}

func (w *Wizard) handleConfirm(s *confirmState, in Input) Transition {
	switch {
	case in.Key == KeyEnter:
		if s.renamed {
			return Stay
		}
		s.result = w.committer.Commit(w.reg.Files(), w.now())
		s.renamed = true
		w.logger.Info("rename committed",
			zap.Int("renamed", s.result.Renamed),
			zap.Int("failed", s.result.Failed),
			zap.Bool("dry_run", s.result.DryRun))
	case in.is(KeyEsc, 'q'):
		return Quit
	case in.is(KeyBackTab, 'p'):
		if s.renamed {
			return Stay
		}
		return Previous
	}
	return Stay
}
