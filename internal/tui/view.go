package tui

import (
	"fmt"
	"strings"

	"transaction-analyzer/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const appTitle = "Transaction Analyzer"

var tabDescriptions = map[models.Tab]string{
	models.TabMerchant: "Analyze and normalize merchant names and categories.",
	models.TabPattern:  "Detect recurring payments and subscription patterns.",
}

// View renders the dashboard.
func (m Model) View() string {
	labels := m.state.ButtonLabels()

	var b strings.Builder
	b.WriteString(m.renderTopBar(labels))
	b.WriteString("\n")
	if n := m.state.Notification; n != nil {
		style := successStyle
		if n.Kind == models.NotificationError {
			style = errorStyle
		}
		b.WriteString(style.Render(n.Message))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderSection(labels))
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTopBar(labels map[string]string) string {
	upload := button(labels[models.ButtonUpload], !m.state.IsBusy(models.FlagUploading))
	return lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render(appTitle), "   ", upload)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, 2)
	for _, tab := range []models.Tab{models.TabMerchant, models.TabPattern} {
		style := inactiveTabStyle
		if tab == m.state.ActiveTab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(tab.Title()))
	}
	return strings.Join(tabs, "    ")
}

func (m Model) renderSection(labels map[string]string) string {
	tab := m.state.ActiveTab
	action, flag := labels[models.ButtonAnalyze], models.FlagAnalyzingMerchant
	if tab == models.TabPattern {
		action, flag = labels[models.ButtonDetect], models.FlagDetectingPatterns
	}

	heading := titleStyle.Render(tab.Title())
	if m.state.Loading || m.state.IsBusy(flag) || m.state.IsBusy(models.FlagBulkDeleting) {
		heading += " " + m.spinner.View()
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button(action, !m.state.IsBusy(flag)),
		" ",
		button(labels[models.ButtonDeleteAll], m.state.CanDeleteAll),
	)
	return lipgloss.JoinVertical(lipgloss.Left, heading, mutedStyle.Render(tabDescriptions[tab]), "", buttons)
}

func button(label string, enabled bool) string {
	if enabled {
		return buttonStyle.Render(label)
	}
	return disabledButtonStyle.Render(label)
}

func (m Model) renderTable() string {
	var header []string
	var rows [][]string
	var pending []bool

	switch m.state.ActiveTab {
	case models.TabPattern:
		header = []string{"Type", "Merchant", "Amount", "Frequency", "Confidence", "Next expected", "Seen", "Active"}
		for _, p := range m.state.Patterns {
			rows = append(rows, patternRow(p))
			pending = append(pending, false)
		}
	default:
		header = []string{"Date", "Description", "Merchant", "Category", "Amount", "Confidence", "Flags"}
		for _, t := range m.state.Transactions {
			rows = append(rows, transactionRow(t))
			pending = append(pending, m.state.IsPending(t.ID))
		}
	}

	if len(rows) == 0 {
		if m.state.Loading {
			return mutedStyle.Render("Loading...")
		}
		return mutedStyle.Render("No records yet.")
	}

	widths := columnWidths(header, rows)
	lines := []string{headerStyle.Render(formatRow(header, widths))}

	start, end := 0, len(rows)
	if visible := m.visibleRows(); visible > 0 {
		start = min(m.offset, len(rows))
		end = min(start+visible, len(rows))
	}
	for i := start; i < end; i++ {
		line := formatRow(rows[i], widths)
		switch {
		case i == m.cursor:
			line = cursorStyle.Render(line)
		case pending[i]:
			line = pendingStyle.Render(line + "  deleting...")
		}
		lines = append(lines, line)
	}
	if end-start < len(rows) {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(rows))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	var b strings.Builder
	switch m.mode {
	case modeUpload:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeConfirmDeleteAll:
		prompt := fmt.Sprintf("Delete all %d %s? (y/n)", m.state.ActiveCount(), m.state.ActiveTab.Resource())
		b.WriteString(warnStyle.Render(prompt))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(warnStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func transactionRow(t models.Transaction) []string {
	return []string{
		models.FormatDate(t.Date),
		truncate(t.Description(), 32),
		truncate(t.Normalized.Merchant, 24),
		categoryLabel(t.Normalized),
		formatAmount(t.Amount),
		formatConfidence(t.Normalized.Confidence),
		strings.Join(t.Normalized.Flags.Sorted(), ","),
	}
}

func patternRow(p models.Pattern) []string {
	active := "no"
	if p.IsActive {
		active = "yes"
	}
	return []string{
		p.Type,
		truncate(p.Merchant, 24),
		formatAmount(p.Amount),
		p.Frequency,
		formatConfidence(p.Confidence),
		models.FormatDate(p.NextExpected),
		fmt.Sprintf("%d", p.OccurrenceCount),
		active,
	}
}

func categoryLabel(n models.Normalization) string {
	if n.SubCategory == "" {
		return n.Category
	}
	return n.Category + "/" + n.SubCategory
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatConfidence(c float64) string {
	return fmt.Sprintf("%.0f%%", c*100)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
	}
	return strings.Join(padded, "  ")
}
