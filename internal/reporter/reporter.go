package reporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Nomadcxx/sanger-rename/internal/registry"
	"github.com/Nomadcxx/sanger-rename/internal/renamer"
)

// Report describes a rename plan and, once committed, its outcome
type Report struct {
	Timestamp time.Time
	Vendor    string
	Rows      []registry.PreviewRow
	Result    *renamer.Result
}

// Write renders report as plain text to w
func Write(w io.Writer, report Report) error {
	_, err := io.WriteString(w, Build(report))
	return err
}

// Build generates the report text
func Build(report Report) string {
	var sb strings.Builder

	sb.WriteString("SANGER RENAME REPORT\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", report.Timestamp.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Vendor: %s\n", report.Vendor))
	sb.WriteString(fmt.Sprintf("Files: %d\n", len(report.Rows)))
	sb.WriteString("\n")

	sb.WriteString("RENAME PLAN\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	width := originalWidth(report.Rows)
	for _, row := range report.Rows {
		sb.WriteString(fmt.Sprintf("%-*s  -->  %s%s\n", width, row.Original, row.Standardized, status(row)))
	}

	if report.Result == nil {
		return sb.String()
	}

	res := report.Result
	sb.WriteString("\n")
	if res.DryRun {
		sb.WriteString("RESULTS (DRY RUN)\n")
	} else {
		sb.WriteString("RESULTS\n")
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Renamed: %d\n", res.Renamed))
	if res.Unchanged > 0 {
		sb.WriteString(fmt.Sprintf("Already standardized: %d\n", res.Unchanged))
	}
	sb.WriteString(fmt.Sprintf("Failed: %d\n", res.Failed))

	if len(res.Errors) > 0 {
		sb.WriteString("\nERRORS\n")
		for i, err := range res.Errors {
			sb.WriteString(fmt.Sprintf("%d. %v\n", i+1, err))
		}
	}

	return sb.String()
}

func status(row registry.PreviewRow) string {
	switch {
	case row.Err != nil:
		return "  [FAILED]"
	case row.Renamed:
		return "  [OK]"
	}
	return ""
}

func originalWidth(rows []registry.PreviewRow) int {
	width := 0
	for _, row := range rows {
		if n := len([]rune(row.Original)); n > width {
			width = n
		}
	}
	return width
}
