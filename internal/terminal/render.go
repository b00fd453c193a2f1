package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

var moneyPrinter = message.NewPrinter(language.English)

// Header prints a screen banner.
func (t *Terminal) Header(title string) {
	t.Blank()
	t.Line("%s", headerStyle.Render("--------"+strings.ToUpper(title)+"---------"))
}

// Success prints a confirmation line.
func (t *Terminal) Success(format string, args ...any) {
	t.Line("%s", successStyle.Render(fmt.Sprintf(format, args...)))
}

// Reject prints a one-line rejection.
func (t *Terminal) Reject(format string, args ...any) {
	t.Line("%s", errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Muted prints a low-emphasis line.
func (t *Terminal) Muted(format string, args ...any) {
	t.Line("%s", mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Table renders rows as an aligned table. An empty result set prints a muted
// notice instead of headers over nothing.
func (t *Terminal) Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		t.Muted("(nothing to show)")
		return
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Bold(true)
			}
			return cellStyle
		})

	t.Line("%s", tbl.String())
}

// IntField renders a nullable numeric field: "Label:" when absent,
// "Label: 180cm" when present.
func IntField(label string, value *int64, unit string) string {
	if value == nil {
		return label + ":"
	}
	return fmt.Sprintf("%s: %d%s", label, *value, unit)
}

// StringField renders a nullable text field.
func StringField(label string, value *string) string {
	if value == nil {
		return label + ":"
	}
	return fmt.Sprintf("%s: %s", label, *value)
}

// OrBlank renders a nullable text cell for tables.
func OrBlank(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// OrBlankInt renders a nullable numeric cell for tables.
func OrBlankInt(value *int64) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%d", *value)
}

// Money renders a balance with a currency sign and digit grouping.
func Money(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return moneyPrinter.Sprintf("$%.2f", f)
}
