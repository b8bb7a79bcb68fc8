// Package bins provides the TUI view for storage bins.
package bins

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stockroom/stockroom/internal/models"
	"github.com/stockroom/stockroom/internal/store"
	"github.com/stockroom/stockroom/internal/tui/components"
)

// View displays the bin list with fill levels.
type View struct {
	inv   *store.Inventory
	table *components.Table
	bins  []*models.Bin
}

// NewView creates a bin list view.
func NewView(inv *store.Inventory) *View {
	columns := []components.Column{
		{Title: "Name", Width: 24},
		{Title: "Category", Width: 14},
		{Title: "Items", Width: 6, Align: lipgloss.Right},
		{Title: "Fill", Width: 10, Align: lipgloss.Right},
		{Title: "Status", Width: 8},
	}

	table := components.NewTable(columns)
	table.SetVisibleRows(18)
	table.Focus(true)

	return &View{
		inv:   inv,
		table: table,
	}
}

// Load refreshes the bin list from the store.
func (v *View) Load() {
	v.bins = v.inv.Bins()

	rows := make([][]string, len(v.bins))
	for i, bin := range v.bins {
		rows[i] = []string{
			bin.Name,
			bin.Category,
			fmt.Sprintf("%d", len(bin.ItemIDs)),
			fmt.Sprintf("%d/%d", bin.CurrentQuantity, bin.MaxCapacity),
			binStatus(bin),
		}
	}

	v.table.SetRows(rows)
}

func binStatus(bin *models.Bin) string {
	switch {
	case bin.IsOverCapacity():
		return "OVER"
	case !bin.HasSpace():
		return "FULL"
	case bin.IsEmpty():
		return "EMPTY"
	default:
		return "OK"
	}
}

// MoveUp moves the selection up.
func (v *View) MoveUp() {
	v.table.MoveUp()
}

// MoveDown moves the selection down.
func (v *View) MoveDown() {
	v.table.MoveDown()
}

// SelectedBin returns the currently selected bin.
func (v *View) SelectedBin() *models.Bin {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.bins) {
		return v.bins[idx]
	}
	return nil
}

// Render renders the bin list.
func (v *View) Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("=== STORAGE BINS ==="))
	b.WriteString("\n\n")

	if v.table.Empty() {
		b.WriteString(labelStyle.Render("No bins."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.table.Render())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Up/Down:Select  Enter:Contents"))

	return b.String()
}

// RenderDetail renders a bin's contents.
func (v *View) RenderDetail(bin *models.Bin) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Width(16)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	critStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	if bin == nil {
		return labelStyle.Render("No bin selected")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("=== BIN CONTENTS ==="))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Name:") + " " + valueStyle.Render(bin.Name) + "\n")
	b.WriteString(labelStyle.Render("Category:") + " " + valueStyle.Render(bin.Category) + "\n")

	fill := fmt.Sprintf("%d/%d (%.0f%%)", bin.CurrentQuantity, bin.MaxCapacity, bin.FillPercent())
	switch {
	case bin.IsOverCapacity():
		b.WriteString(labelStyle.Render("Fill:") + " " + critStyle.Render(fill+" OVER CAPACITY") + "\n")
	case !bin.HasSpace():
		b.WriteString(labelStyle.Render("Fill:") + " " + warnStyle.Render(fill+" FULL") + "\n")
	default:
		b.WriteString(labelStyle.Render("Fill:") + " " + valueStyle.Render(fill) + "\n")
	}
	b.WriteString("\n")

	items, err := v.inv.BinItems(bin.ID)
	switch {
	case err != nil:
		b.WriteString(critStyle.Render("Error: " + err.Error()))
		b.WriteString("\n")
	case len(items) == 0:
		b.WriteString(labelStyle.Render("Bin is empty."))
		b.WriteString("\n")
	default:
		for _, item := range items {
			line := fmt.Sprintf("  %-26s %5d  %s", item.Name, item.Quantity, item.Barcode)
			b.WriteString(valueStyle.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Esc:Back"))

	return b.String()
}
