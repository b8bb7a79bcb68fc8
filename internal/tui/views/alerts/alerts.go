// Package alerts provides the TUI view for derived inventory alerts.
package alerts

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stockroom/stockroom/internal/models"
	"github.com/stockroom/stockroom/internal/store"
	"github.com/stockroom/stockroom/internal/tui/components"
)

// View displays the current alerts, critical first.
type View struct {
	inv    *store.Inventory
	table  *components.Table
	alerts []models.Alert
}

// NewView creates an alert list view.
func NewView(inv *store.Inventory) *View {
	columns := []components.Column{
		{Title: "Severity", Width: 9},
		{Title: "Type", Width: 10},
		{Title: "Item", Width: 24},
		{Title: "Message", Width: 40},
	}

	table := components.NewTable(columns)
	table.SetVisibleRows(18)
	table.Focus(true)

	return &View{
		inv:   inv,
		table: table,
	}
}

// Load recomputes the alerts from the store.
func (v *View) Load() {
	v.alerts = v.inv.Alerts()

	rows := make([][]string, len(v.alerts))
	for i, a := range v.alerts {
		rows[i] = []string{
			strings.ToUpper(a.Severity.String()),
			a.Type.String(),
			a.ItemName,
			a.Message,
		}
	}

	v.table.SetRows(rows)
}

// MoveUp moves the selection up.
func (v *View) MoveUp() {
	v.table.MoveUp()
}

// MoveDown moves the selection down.
func (v *View) MoveDown() {
	v.table.MoveDown()
}

// SelectedAlert returns the currently selected alert.
func (v *View) SelectedAlert() *models.Alert {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.alerts) {
		return &v.alerts[idx]
	}
	return nil
}

// CriticalCount returns how many of the loaded alerts are critical.
func (v *View) CriticalCount() int {
	n := 0
	for _, a := range v.alerts {
		if a.Severity == models.SeverityCritical {
			n++
		}
	}
	return n
}

// Render renders the alert list.
func (v *View) Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("=== ALERTS ==="))
	b.WriteString("\n\n")

	if v.table.Empty() {
		b.WriteString(labelStyle.Render("No active alerts."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.table.Render())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Up/Down:Select  Enter:Go to item"))

	return b.String()
}
