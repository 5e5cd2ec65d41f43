package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Nomadcxx/sanger-rename/internal/logging"
	"github.com/Nomadcxx/sanger-rename/internal/registry"
)

// ErrTargetExists is returned when the standardized name is already taken
var ErrTargetExists = errors.New("target already exists")

// ErrInvalidName is returned when a template or primer label would move the
// file out of its directory, such as a label containing a path separator
var ErrInvalidName = errors.New("standardized name is not a plain filename")

// Result summarizes one commit over a batch of files
type Result struct {
	Renamed    int
	Failed     int
	Unchanged  int
	Errors     []error
	Operations []Operation
	DryRun     bool
}

// Operation records a single rename
type Operation struct {
	Source      string
	Destination string
	Timestamp   time.Time
	Completed   bool
}

// Config holds committer configuration
type Config struct {
	DryRun  bool
	LogPath string // append-only record of completed renames; empty disables it
}

// Committer moves files to their standardized names
type Committer struct {
	config Config
	logger *zap.Logger
	now    func() time.Time
}

// New creates a committer. A nil logger discards log output.
func New(config Config, logger *zap.Logger) *Committer {
	return &Committer{
		config: config,
		logger: logging.OrNop(logger),
		now:    time.Now,
	}
}

// Commit renames every file to its standardized name in its own directory.
// Files without a capture date use today. A failing file is recorded on the
// file and in the result; the remaining files are still processed.
func (c *Committer) Commit(files []*registry.SangerFile, today time.Time) Result {
	result := Result{
		DryRun:     c.config.DryRun,
		Operations: []Operation{},
		Errors:     []error{},
	}

	// destinations taken earlier in this batch, so a dry run reports the
	// same collisions a real run would hit
	claimed := make(map[string]bool)
	for _, f := range files {
		op, err := c.commitOne(f, today, claimed)
		result.Operations = append(result.Operations, op)

		switch {
		case err != nil:
			f.MarkFailed(err)
			result.Failed++
			result.Errors = append(result.Errors, err)
			c.logger.Warn("rename failed",
				zap.String("source", op.Source),
				zap.String("destination", op.Destination),
				zap.Error(err))
		case op.Source == op.Destination:
			f.MarkRenamed(op.Destination)
			result.Unchanged++
		default:
			if !c.config.DryRun {
				f.MarkRenamed(op.Destination)
			}
			result.Renamed++
			c.logger.Info("renamed",
				zap.String("source", op.Source),
				zap.String("destination", op.Destination),
				zap.Bool("dry_run", c.config.DryRun))
		}
	}

	if !c.config.DryRun && c.config.LogPath != "" && result.Renamed > 0 {
		if err := writeOperationLog(result.Operations, c.config.LogPath); err != nil {
			result.Errors = append(result.Errors,
				fmt.Errorf("failed to write operation log: %w", err))
		}
	}

	return result
}

func (c *Committer) commitOne(f *registry.SangerFile, today time.Time, claimed map[string]bool) (Operation, error) {
	op := Operation{
		Source:      f.Path(),
		Destination: f.TargetPath(today),
		Timestamp:   c.now(),
	}
	name := f.StandardizedName(today)
	if name != filepath.Base(name) || filepath.Dir(op.Destination) != filepath.Dir(op.Source) {
		return op, fmt.Errorf("rename failed %s -> %q: %w", op.Source, name, ErrInvalidName)
	}
	if op.Source == op.Destination {
		op.Completed = true
		return op, nil
	}

	if _, err := os.Stat(op.Source); err != nil {
		return op, fmt.Errorf("rename failed %s: %w", op.Source, err)
	}
	if claimed[op.Destination] {
		return op, fmt.Errorf("rename failed %s -> %s: %w", op.Source, op.Destination, ErrTargetExists)
	}
	if _, err := os.Lstat(op.Destination); err == nil {
		return op, fmt.Errorf("rename failed %s -> %s: %w", op.Source, op.Destination, ErrTargetExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return op, fmt.Errorf("rename failed %s -> %s: %w", op.Source, op.Destination, err)
	}

	if !c.config.DryRun {
		if err := os.Rename(op.Source, op.Destination); err != nil {
			return op, fmt.Errorf("rename failed %s -> %s: %w", op.Source, op.Destination, err)
		}
	}
	claimed[op.Destination] = true
	op.Completed = true
	return op, nil
}

// writeOperationLog appends completed operations to logPath
func writeOperationLog(ops []Operation, logPath string) error {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, op := range ops {
		if !op.Completed || op.Source == op.Destination {
			continue
		}

		line := fmt.Sprintf("%s|rename|%s|%s\n",
			op.Timestamp.Format(time.RFC3339),
			op.Source,
			op.Destination)

		if _, err := f.WriteString(line); err != nil {
			return err
		}
	}

	return nil
}
