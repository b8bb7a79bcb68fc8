// Package items provides the TUI views for browsing and editing items.
package items

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stockroom/stockroom/internal/models"
	"github.com/stockroom/stockroom/internal/store"
	"github.com/stockroom/stockroom/internal/tui/components"
	"github.com/stockroom/stockroom/internal/util"
)

// View displays the item list with search and category filtering.
type View struct {
	inv    *store.Inventory
	table  *components.Table
	items  []*models.Item
	filter models.SearchFilter
	now    time.Time

	categoryFilter string // empty means all categories
}

// NewView creates an item list view.
func NewView(inv *store.Inventory) *View {
	columns := []components.Column{
		{Title: "Name", Width: 24},
		{Title: "Category", Width: 14},
		{Title: "Subtype", Width: 12},
		{Title: "Qty", Width: 6, Align: lipgloss.Right},
		{Title: "Location", Width: 12},
		{Title: "Barcode", Width: 10},
		{Title: "Expires", Width: 10},
	}

	table := components.NewTable(columns)
	table.SetVisibleRows(18)
	table.Focus(true)

	return &View{
		inv:   inv,
		table: table,
		now:   time.Now(),
	}
}

// SetNow pins the reference time used for expiry labels.
func (v *View) SetNow(t time.Time) {
	v.now = t
}

// SetSearch sets the free-text search term.
func (v *View) SetSearch(q string) {
	v.filter.Search = q
}

// Search returns the active free-text search term.
func (v *View) Search() string {
	return v.filter.Search
}

// CycleCategoryFilter advances the category filter through the known
// categories, wrapping back to "all".
func (v *View) CycleCategoryFilter() {
	categories := v.inv.Categories()
	if len(categories) == 0 {
		return
	}

	if v.categoryFilter == "" {
		v.categoryFilter = categories[0]
		return
	}
	for i, c := range categories {
		if c == v.categoryFilter {
			if i+1 < len(categories) {
				v.categoryFilter = categories[i+1]
			} else {
				v.categoryFilter = ""
			}
			return
		}
	}
	v.categoryFilter = ""
}

// CategoryFilter returns the active category filter, empty for all.
func (v *View) CategoryFilter() string {
	return v.categoryFilter
}

// Load refreshes the item list from the store.
func (v *View) Load() {
	filter := v.filter
	filter.Category = v.categoryFilter

	v.items = v.inv.SearchItems(filter)

	rows := make([][]string, len(v.items))
	for i, item := range v.items {
		subtype := item.SubType
		if subtype == "" {
			subtype = "-"
		}

		rows[i] = []string{
			item.Name,
			item.Category,
			subtype,
			fmt.Sprintf("%d", item.Quantity),
			item.Location,
			item.Barcode,
			util.RelativeDateString(item.ExpirationDate, v.now),
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

// PageUp moves up one page.
func (v *View) PageUp() {
	v.table.PageUp()
}

// PageDown moves down one page.
func (v *View) PageDown() {
	v.table.PageDown()
}

// SelectedItem returns the currently selected item.
func (v *View) SelectedItem() *models.Item {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.items) {
		return v.items[idx]
	}
	return nil
}

// Render renders the item list.
func (v *View) Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("=== ITEMS ==="))
	b.WriteString("\n\n")

	if v.categoryFilter != "" {
		b.WriteString(labelStyle.Render("Category: "))
		b.WriteString(valueStyle.Render(v.categoryFilter))
		b.WriteString("\n\n")
	}
	if v.filter.Search != "" {
		b.WriteString(labelStyle.Render("Search: "))
		b.WriteString(valueStyle.Render(v.filter.Search))
		b.WriteString("\n\n")
	}

	if v.table.Empty() {
		b.WriteString(labelStyle.Render("No items found."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.table.Render())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Up/Down:Select  Enter:Details  a:Add  /:Search  b:Barcode  c:Category  PgUp/Dn:Page"))

	return b.String()
}

// RenderDetail renders the detail card for an item.
func (v *View) RenderDetail(item *models.Item) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Width(18)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	critStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	if item == nil {
		return labelStyle.Render("No item selected")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("=== ITEM DETAILS ==="))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("ITEM"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Name:") + " " + valueStyle.Render(item.Name) + "\n")
	b.WriteString(labelStyle.Render("Category:") + " " + valueStyle.Render(item.Category) + "\n")
	if item.SubType != "" {
		b.WriteString(labelStyle.Render("Subtype:") + " " + valueStyle.Render(item.SubType) + "\n")
	}
	b.WriteString(labelStyle.Render("Quantity:") + " " + valueStyle.Render(fmt.Sprintf("%d", item.Quantity)) + "\n")
	b.WriteString(labelStyle.Render("Location:") + " " + valueStyle.Render(item.Location) + "\n")
	b.WriteString(labelStyle.Render("Barcode:") + " " + valueStyle.Render(item.Barcode) + "\n")
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("STORAGE"))
	b.WriteString("\n")
	binName := item.BinID
	if bin, err := v.inv.Bin(item.BinID); err == nil {
		binName = fmt.Sprintf("%s (%d/%d)", bin.Name, bin.CurrentQuantity, bin.MaxCapacity)
	}
	b.WriteString(labelStyle.Render("Bin:") + " " + valueStyle.Render(binName) + "\n")
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("DATES"))
	b.WriteString("\n")

	days := item.DaysUntilExpiration(v.now)
	var daysStr string
	switch {
	case item.IsExpired(v.now):
		daysStr = critStyle.Render("EXPIRED")
	case days == 0:
		daysStr = critStyle.Render("TODAY")
	case days < 7:
		daysStr = critStyle.Render(fmt.Sprintf("%d days", days))
	case days < 30:
		daysStr = warnStyle.Render(fmt.Sprintf("%d days", days))
	default:
		daysStr = valueStyle.Render(fmt.Sprintf("%d days", days))
	}
	b.WriteString(labelStyle.Render("Expires:") + " " + valueStyle.Render(item.ExpirationDate) + " (" + daysStr + ")\n")
	b.WriteString(labelStyle.Render("Created:") + " " + valueStyle.Render(item.CreatedAt) + "\n")
	b.WriteString(labelStyle.Render("Updated:") + " " + valueStyle.Render(item.UpdatedAt) + "\n")

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Esc:Back  e:Edit  d:Delete"))

	return b.String()
}
