package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Nomadcxx/sanger-rename/internal/registry"
	"github.com/Nomadcxx/sanger-rename/internal/sanger"
	"github.com/Nomadcxx/sanger-rename/internal/wizard"
)

const notSet = "<not set>"

// View renders the active stage
func (m Model) View() string {
	stage := m.wiz.Stage()
	ov, inOverride := m.wiz.Override()
	_, committed := m.wiz.Result()

	header := FormatHeader(fmt.Sprintf("SANGER RENAME  %d/5  %s", int(stage)+1, stageTitle(stage)), m.width)

	var body string
	switch stage {
	case wizard.VendorSelection:
		body = m.renderVendorSelection()
	case wizard.PrimerRename, wizard.TemplateRename:
		body = m.withPreview(m.renderOverride(ov))
	case wizard.DateSelection:
		body = m.withPreview(m.renderDate())
	case wizard.ConfirmRename:
		body = m.withPreview(m.renderConfirm())
	}

	status := ""
	if m.err != nil {
		status = FormatStatusFail(m.err.Error())
	}
	footer := FormatFooter(
		m.help.ShortHelpView(m.keys.bindings(stage, inOverride && ov.Editing, committed)),
		status,
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func stageTitle(stage wizard.Stage) string {
	switch stage {
	case wizard.VendorSelection:
		return "SELECT VENDOR"
	case wizard.PrimerRename:
		return "RENAME PRIMERS"
	case wizard.TemplateRename:
		return "RENAME TEMPLATES"
	case wizard.DateSelection:
		return "SELECT DATE"
	case wizard.ConfirmRename:
		return "CONFIRM RENAME"
	}
	return ""
}

// renderVendorSelection renders one panel per vendor with an example filename
func (m Model) renderVendorSelection() string {
	examples := map[sanger.Vendor]string{
		sanger.Sangon:  "0001_31225060307072_(TL1)_[SP1].ab1",
		sanger.Ruibio:  "K528-1.C1.34781340.B08.ab1",
		sanger.Genewiz: "TL1-T25_A01.ab1",
	}

	vendors := sanger.Vendors()
	panelWidth := (m.width - 2*len(vendors)) / len(vendors)
	if panelWidth < 24 {
		panelWidth = 24
	}

	panels := make([]string, 0, len(vendors))
	for i, v := range vendors {
		style := PanelStyle
		name := ContentStyle.Render(v.String())
		if i == m.wiz.VendorHighlight() {
			style = ActivePanelStyle
			name = HighlightStyle.Render(" " + v.String() + " ")
		}
		content := name + "\n\n" + MutedStyle.Render(examples[v])
		panels = append(panels, style.Width(panelWidth).Render(content))
	}

	var sb strings.Builder
	sb.WriteString(FormatASCIIHeader() + "\n\n")
	sb.WriteString(InfoStyle.Render("Files: ") + StatStyle.Render(fmt.Sprintf("%d", len(m.wiz.Paths()))) + "\n\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	return sb.String()
}

// withPreview places content on the left and the rename preview on the right
func (m Model) withPreview(left string) string {
	half := m.width/2 - 2
	if half < 30 {
		half = 30
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		PanelStyle.Width(half).Render(left),
		PanelStyle.Width(half).Render(m.renderPreview()),
	)
}

func (m Model) renderPreview() string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("PREVIEW") + "\n")

	rows := m.wiz.Preview()
	limit := m.height - 8
	if limit < 5 {
		limit = 5
	}
	for i, row := range rows {
		if i == limit {
			sb.WriteString(MutedStyle.Render(fmt.Sprintf("... %d more", len(rows)-limit)) + "\n")
			break
		}
		sb.WriteString(formatPreviewRow(row))
	}
	return sb.String()
}

func formatPreviewRow(row registry.PreviewRow) string {
	line := MutedStyle.Render(row.Original) + "\n  " + ContentStyle.Render("→ "+row.Standardized)
	switch {
	case row.Err != nil:
		line = FormatStatusFail(line)
	case row.Renamed:
		line = FormatStatusOK(line)
	}
	return line + "\n"
}

func (m Model) renderOverride(ov wizard.OverrideView) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(strings.ToUpper(ov.Kind.String())+" NAMES") + "\n")

	if len(ov.Rows) == 0 {
		sb.WriteString(MutedStyle.Render("No "+ov.Kind.String()+" labels found") + "\n")
		return sb.String()
	}

	for i, row := range ov.Rows {
		value := MutedStyle.Render(notSet)
		if row.Set {
			value = InfoStyle.Render(row.Value)
		}
		if i == ov.Highlighted && ov.Editing {
			value = HighlightStyle.Render(ov.Buffer + "_")
		}

		label := ContentStyle.Render(row.Label)
		cursor := "  "
		if i == ov.Highlighted {
			cursor = StatStyle.Render("> ")
			label = HighlightStyle.Render(row.Label)
		}
		sb.WriteString(fmt.Sprintf("%s%s  %s  %s\n", cursor, label, MutedStyle.Render("→"), value))
	}
	return sb.String()
}

func (m Model) renderDate() string {
	selected, ok := m.wiz.SelectedDate()
	if !ok {
		return ""
	}
	today := m.wiz.Today()
	first := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, selected.Location())

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("CAPTURE DATE") + "\n")
	sb.WriteString(InfoStyle.Render("Selected: ") + StatStyle.Render(selected.Format("2006-01-02")) + "\n\n")
	sb.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderMonth(first.AddDate(0, -1, 0), selected, today),
		"   ",
		renderMonth(first, selected, today),
		"   ",
		renderMonth(first.AddDate(0, 1, 0), selected, today),
	))
	return sb.String()
}

// renderMonth draws a Sunday-first calendar grid for the month containing first
func renderMonth(first, selected, today time.Time) string {
	var sb strings.Builder
	sb.WriteString(ContentStyle.Render(fmt.Sprintf("%-20s", first.Format("January 2006"))) + "\n")
	sb.WriteString(MutedStyle.Render("Su Mo Tu We Th Fr Sa") + "\n")

	sb.WriteString(strings.Repeat("   ", int(first.Weekday())))
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		cell := fmt.Sprintf("%2d", day.Day())
		switch {
		case sameDay(day, selected):
			cell = HighlightStyle.Render(cell)
		case sameDay(day, today):
			cell = TodayStyle.Render(cell)
		}
		sb.WriteString(cell)
		if day.Weekday() == time.Saturday {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (m Model) renderConfirm() string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("CONFIRM") + "\n")

	result, committed := m.wiz.Result()
	if !committed {
		sb.WriteString(WarningStyle.Render(fmt.Sprintf("Press Enter to rename %d files.", m.wiz.Registry().Len())) + "\n")
		sb.WriteString(MutedStyle.Render("Renaming cannot be undone from this screen.") + "\n")
		return sb.String()
	}

	if result.DryRun {
		sb.WriteString(InfoStyle.Render("Dry run: no files were changed") + "\n")
	}
	sb.WriteString(InfoStyle.Render("Renamed: ") + StatStyle.Render(fmt.Sprintf("%d", result.Renamed)) + "\n")
	if result.Unchanged > 0 {
		sb.WriteString(InfoStyle.Render("Already standardized: ") + StatStyle.Render(fmt.Sprintf("%d", result.Unchanged)) + "\n")
	}
	sb.WriteString(InfoStyle.Render("Failed: ") + StatStyle.Render(fmt.Sprintf("%d", result.Failed)) + "\n")
	for _, err := range result.Errors {
		sb.WriteString(ErrorStyle.Render("  "+err.Error()) + "\n")
	}
	if result.Failed == 0 {
		sb.WriteString("\n" + SuccessStyle.Render("Done. Press q to exit.") + "\n")
	} else {
		sb.WriteString("\n" + WarningStyle.Render("Finished with errors. Press q to exit.") + "\n")
	}
	return sb.String()
}
