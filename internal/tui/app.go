package tui

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stockroom/stockroom/internal/config"
	"github.com/stockroom/stockroom/internal/store"
	"github.com/stockroom/stockroom/internal/tui/components"
	alertviews "github.com/stockroom/stockroom/internal/tui/views/alerts"
	binviews "github.com/stockroom/stockroom/internal/tui/views/bins"
	catviews "github.com/stockroom/stockroom/internal/tui/views/categories"
	itemviews "github.com/stockroom/stockroom/internal/tui/views/items"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// MaxContentWidth is the maximum width for content display
const MaxContentWidth = 120

// Module represents a view module in the application.
type Module string

const (
	ModuleLock       Module = "lock"
	ModuleDashboard  Module = "dashboard"
	ModuleItems      Module = "items"
	ModuleBins       Module = "bins"
	ModuleCategories Module = "categories"
	ModuleAlerts     Module = "alerts"
	ModuleHelp       Module = "help"
)

// Notice is a transient status line shown in the bar below the header.
type Notice struct {
	Level   NoticeLevel
	Message string
	Time    time.Time
}

// NoticeLevel indicates the severity of a notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeCritical
)

// tickMsg is sent periodically to update the UI.
type tickMsg time.Time

// App is the main Bubble Tea application model.
type App struct {
	// Dependencies
	inv    *store.Inventory
	config *config.Config

	// Views
	itemsView      *itemviews.View
	itemForm       *itemviews.Form
	binsView       *binviews.View
	categoriesView *catviews.View
	alertsView     *alertviews.View

	// UI state
	theme       *Theme
	keys        KeyMap
	width       int
	height      int
	ready       bool
	quitting    bool
	showConfirm bool

	// Current view
	currentModule  Module
	previousModule Module
	showDetail     bool // Show detail view instead of list
	showForm       bool // Show add/edit form
	searchMode     bool // Search input mode
	searchInput    string
	barcodeMode    bool // Barcode lookup input mode
	barcodeInput   string

	// Access gate
	lockInput *components.Input
	lockTries int

	// Notices
	notices []Notice
}

// New creates a new App instance.
func New(inv *store.Inventory, cfg *config.Config) *App {
	itemsView := itemviews.NewView(inv)
	itemsView.SetNow(time.Now())

	a := &App{
		inv:            inv,
		config:         cfg,
		itemsView:      itemsView,
		binsView:       binviews.NewView(inv),
		categoriesView: catviews.NewView(inv),
		alertsView:     alertviews.NewView(inv),
		theme:          NewTheme(cfg.Display.ColorScheme),
		keys:           DefaultKeyMap(),
		currentModule:  ModuleDashboard,
		notices:        []Notice{},
	}

	if cfg.Access.Passphrase != "" {
		a.currentModule = ModuleLock
		a.lockInput = components.NewInput("Passphrase").SetMasked(true).SetWidth(24)
		a.lockInput.Focus(true)
	}

	a.itemsView.Load()
	a.alertsView.Load()

	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
	)
}

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	deleted bool
}

type categoryChangedMsg struct {
	err error
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tickMsg:
		a.itemsView.SetNow(time.Now())
		return a, tickCmd()

	case itemSavedMsg:
		if msg.err != nil {
			// Keep the form open so the input can be corrected.
			if a.itemForm != nil {
				a.itemForm.SetError(msg.err.Error())
			}
			a.AddNotice(NoticeWarning, "Failed to save item: "+msg.err.Error())
			return a, nil
		}
		a.showForm = false
		a.itemForm = nil
		a.AddNotice(NoticeInfo, "Item saved")
		a.reloadViews()
		return a, nil

	case itemDeletedMsg:
		a.showDetail = false
		if msg.deleted {
			a.AddNotice(NoticeInfo, "Item deleted")
		} else {
			a.AddNotice(NoticeWarning, "Item was already gone")
		}
		a.reloadViews()
		return a, nil

	case categoryChangedMsg:
		if msg.err != nil {
			a.categoriesView.SetError(friendlyStoreError(msg.err))
			return a, nil
		}
		a.categoriesView.SetError("")
		a.reloadViews()
		return a, nil
	}

	return a, nil
}

// friendlyStoreError maps store sentinels to short messages for the UI.
func friendlyStoreError(err error) string {
	switch {
	case errors.Is(err, store.ErrCategoryInUse):
		return "Category still has items"
	case errors.Is(err, store.ErrConflict):
		return "Name already exists"
	case errors.Is(err, store.ErrNotFound):
		return "Not found"
	default:
		return err.Error()
	}
}

// reloadViews refreshes every view that reads from the store.
func (a *App) reloadViews() {
	a.itemsView.Load()
	a.binsView.Load()
	a.categoriesView.Load()
	a.alertsView.Load()
}

// handleKeyPress processes key press events.
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The lock screen swallows everything except ctrl+c.
	if a.currentModule == ModuleLock {
		return a.handleLockKeys(msg)
	}

	// Handle quit confirmation first (modal takes priority)
	if a.showConfirm {
		switch msg.String() {
		case "y", "Y", "enter":
			a.quitting = true
			return a, tea.Quit
		case "n", "N", "esc":
			a.showConfirm = false
			return a, nil
		}
		return a, nil
	}

	// Handle form mode BEFORE global keys - form needs all input
	if a.currentModule == ModuleItems && a.showForm {
		return a.handleFormKeys(msg)
	}

	// Handle text input modes BEFORE global keys
	if a.currentModule == ModuleItems && a.searchMode {
		return a.handleSearchKeys(msg)
	}
	if a.currentModule == ModuleItems && a.barcodeMode {
		return a.handleBarcodeKeys(msg)
	}
	if a.currentModule == ModuleCategories && a.categoriesView.InPrompt() {
		return a.handleCategoryKeys(msg)
	}

	// Global key bindings (only when not in input mode)
	if a.keys.IsQuit(msg) {
		a.showConfirm = true
		return a, nil
	}

	// Function key navigation (always available)
	if a.keys.IsFunctionKey(msg) {
		module := a.keys.GetFunctionKeyModule(msg)
		switch module {
		case "quit":
			a.showConfirm = true
		case "help":
			if a.currentModule != ModuleHelp {
				a.previousModule = a.currentModule
			}
			a.currentModule = ModuleHelp
		case "dashboard":
			a.currentModule = ModuleDashboard
			a.showDetail = false
		case "items":
			a.currentModule = ModuleItems
			a.showDetail = false
			a.itemsView.Load()
		case "bins":
			a.currentModule = ModuleBins
			a.showDetail = false
			a.binsView.Load()
		case "categories":
			a.currentModule = ModuleCategories
			a.showDetail = false
			a.categoriesView.Load()
		case "alerts":
			a.currentModule = ModuleAlerts
			a.showDetail = false
			a.alertsView.Load()
		}
		return a, nil
	}

	// Back navigation (only when not in input mode)
	if a.keys.Back.Matches(msg) {
		if a.showDetail {
			a.showDetail = false
			return a, nil
		}
		if a.currentModule == ModuleCategories {
			return a.handleCategoryKeys(msg)
		}
		if a.currentModule == ModuleHelp && a.previousModule != "" {
			a.currentModule = a.previousModule
			a.previousModule = ""
		}
		return a, nil
	}

	// Module-specific key handling
	switch a.currentModule {
	case ModuleItems:
		return a.handleItemKeys(msg)
	case ModuleBins:
		return a.handleBinKeys(msg)
	case ModuleCategories:
		return a.handleCategoryKeys(msg)
	case ModuleAlerts:
		return a.handleAlertKeys(msg)
	}

	return a, nil
}

// handleLockKeys handles the passphrase gate.
func (a *App) handleLockKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		a.quitting = true
		return a, tea.Quit
	case "enter":
		entered := []byte(a.lockInput.Value())
		expected := []byte(a.config.Access.Passphrase)
		if subtle.ConstantTimeCompare(entered, expected) == 1 {
			a.currentModule = ModuleDashboard
			a.lockInput = nil
			return a, nil
		}
		a.lockTries++
		a.lockInput.SetValue("")
		a.lockInput.SetError("Incorrect passphrase")
	default:
		a.lockInput.HandleKey(key)
	}

	return a, nil
}

// handleItemKeys handles key presses in the items module.
// Note: form, search and barcode modes are handled in handleKeyPress
// before this is called.
func (a *App) handleItemKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showDetail {
		switch msg.String() {
		case "esc":
			a.showDetail = false
		case "e":
			item := a.itemsView.SelectedItem()
			if item != nil {
				a.itemForm = itemviews.NewForm(itemviews.FormModeEdit, a.inv.Categories())
				a.itemForm.SetItem(item)
				a.showForm = true
				a.showDetail = false
			}
		case "d":
			item := a.itemsView.SelectedItem()
			if item != nil {
				return a, a.deleteItem(item.ID)
			}
		}
		return a, nil
	}

	// In list view
	switch msg.String() {
	case "up", "k":
		a.itemsView.MoveUp()
	case "down", "j":
		a.itemsView.MoveDown()
	case "pgup":
		a.itemsView.PageUp()
	case "pgdown":
		a.itemsView.PageDown()
	case "enter":
		if a.itemsView.SelectedItem() != nil {
			a.showDetail = true
		}
	case "a":
		a.itemForm = itemviews.NewForm(itemviews.FormModeAdd, a.inv.Categories())
		a.showForm = true
	case "/", "s":
		a.searchMode = true
		a.searchInput = a.itemsView.Search()
	case "b":
		a.barcodeMode = true
		a.barcodeInput = ""
	case "c":
		a.itemsView.CycleCategoryFilter()
		a.itemsView.Load()
	}

	return a, nil
}

// handleFormKeys handles key presses in form mode.
func (a *App) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	a.itemForm.HandleKey(key)

	if a.itemForm.IsCancelled() {
		a.showForm = false
		a.itemForm = nil
		return a, nil
	}

	if a.itemForm.IsSubmitted() {
		return a, a.saveItem()
	}

	return a, nil
}

// handleSearchKeys handles key presses in search mode.
func (a *App) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		a.searchMode = false
		a.searchInput = ""
		a.itemsView.SetSearch("")
		a.itemsView.Load()
	case "enter":
		a.searchMode = false
		a.itemsView.SetSearch(a.searchInput)
		a.itemsView.Load()
	case "backspace":
		if len(a.searchInput) > 0 {
			a.searchInput = a.searchInput[:len(a.searchInput)-1]
		}
	default:
		if len(key) == 1 {
			a.searchInput += key
		}
	}

	return a, nil
}

// handleBarcodeKeys handles key presses in barcode lookup mode.
func (a *App) handleBarcodeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		a.barcodeMode = false
		a.barcodeInput = ""
	case "enter":
		a.barcodeMode = false
		code := strings.TrimSpace(a.barcodeInput)
		a.barcodeInput = ""
		if code == "" {
			return a, nil
		}
		item, err := a.inv.ItemByBarcode(code)
		if err != nil {
			a.AddNotice(NoticeWarning, "No item with barcode "+code)
			return a, nil
		}
		// Narrow the list to the match so the detail view shows it.
		a.itemsView.SetSearch(item.Barcode)
		a.itemsView.Load()
		a.showDetail = true
	case "backspace":
		if len(a.barcodeInput) > 0 {
			a.barcodeInput = a.barcodeInput[:len(a.barcodeInput)-1]
		}
	default:
		if len(key) == 1 {
			a.barcodeInput += key
		}
	}

	return a, nil
}

// handleBinKeys handles key presses in the bins module.
func (a *App) handleBinKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showDetail {
		if msg.String() == "esc" {
			a.showDetail = false
		}
		return a, nil
	}

	switch msg.String() {
	case "up", "k":
		a.binsView.MoveUp()
	case "down", "j":
		a.binsView.MoveDown()
	case "enter":
		if a.binsView.SelectedBin() != nil {
			a.showDetail = true
		}
	}

	return a, nil
}

// handleCategoryKeys routes keys to the categories view and executes any
// confirmed action.
func (a *App) handleCategoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := a.categoriesView.HandleKey(msg.String())
	if action.Type == catviews.ActionNone {
		return a, nil
	}
	return a, a.applyCategoryAction(action)
}

// handleAlertKeys handles key presses in the alerts module.
func (a *App) handleAlertKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		a.alertsView.MoveUp()
	case "down", "j":
		a.alertsView.MoveDown()
	case "enter":
		alert := a.alertsView.SelectedAlert()
		if alert == nil {
			return a, nil
		}
		item, err := a.inv.Item(alert.ItemID)
		if err != nil {
			a.AddNotice(NoticeWarning, "Item no longer exists")
			return a, nil
		}
		a.currentModule = ModuleItems
		a.itemsView.SetSearch(item.Barcode)
		a.itemsView.Load()
		a.showDetail = true
	}

	return a, nil
}

// saveItem saves the item from the form.
func (a *App) saveItem() tea.Cmd {
	form := a.itemForm
	return func() tea.Msg {
		data := form.Data()

		// Barcode uniqueness is the caller's job; the store index is
		// last-write-wins and would silently shadow the older item.
		if existing, err := a.inv.ItemByBarcode(data.Barcode); err == nil && existing.ID != form.ItemID() {
			return itemSavedMsg{err: fmt.Errorf("barcode %s already in use by %s", data.Barcode, existing.Name)}
		}

		var err error
		if id := form.ItemID(); id != "" {
			upd := store.ItemUpdate{
				Name:           &data.Name,
				Category:       &data.Category,
				SubType:        &data.SubType,
				Quantity:       &data.Quantity,
				ExpirationDate: &data.ExpirationDate,
				Location:       &data.Location,
				Barcode:        &data.Barcode,
			}
			_, err = a.inv.UpdateItem(id, upd)
		} else {
			_, err = a.inv.AddItem(data)
		}

		return itemSavedMsg{err: err}
	}
}

// deleteItem removes the item with the given ID.
func (a *App) deleteItem(id string) tea.Cmd {
	return func() tea.Msg {
		return itemDeletedMsg{deleted: a.inv.DeleteItem(id)}
	}
}

// applyCategoryAction executes a confirmed category operation.
func (a *App) applyCategoryAction(action catviews.Action) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch action.Type {
		case catviews.ActionAddCategory:
			err = a.inv.AddCategory(action.Name)
		case catviews.ActionRenameCategory:
			err = a.inv.RenameCategory(action.Category, action.Name)
		case catviews.ActionDeleteCategory:
			err = a.inv.DeleteCategory(action.Category)
		case catviews.ActionAddSubtype:
			err = a.inv.AddSubtype(action.Category, action.Name)
		case catviews.ActionDeleteSubtype:
			err = a.inv.DeleteSubtype(action.Category, action.Name)
		}
		return categoryChangedMsg{err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	if a.quitting {
		return a.theme.Title.Render("Stockroom shutting down...")
	}

	if a.currentModule == ModuleLock {
		return a.renderLockScreen()
	}

	var b strings.Builder

	// Header
	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	// Notice bar
	b.WriteString(a.renderNoticeBar())
	b.WriteString("\n")

	// Main content area
	contentHeight := a.height - 6 // header, notice bar, footer
	if a.showConfirm {
		b.WriteString(a.renderConfirmDialog(contentHeight))
	} else {
		b.WriteString(a.renderContent(contentHeight))
	}

	// Footer/status bar
	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	return b.String()
}

// renderLockScreen renders the passphrase gate.
func (a *App) renderLockScreen() string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ STOCKROOM INVENTORY SYSTEM ═══"))
	b.WriteString("\n\n")
	b.WriteString(a.theme.Label.Render("This terminal is locked."))
	b.WriteString("\n\n")
	b.WriteString(a.lockInput.Render())
	if a.lockTries > 0 {
		b.WriteString("\n")
		b.WriteString(a.theme.Error.Render(fmt.Sprintf("Failed attempts: %d", a.lockTries)))
	}
	b.WriteString("\n\n")
	b.WriteString(a.theme.Muted.Render("Enter:Unlock  Ctrl+C:Quit"))

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(a.height).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(b.String())
}

// renderHeader renders the top header bar.
func (a *App) renderHeader() string {
	title := fmt.Sprintf("STOCKROOM INVENTORY SYSTEM v%s", Version)

	stats := a.inv.Stats()
	summary := fmt.Sprintf("ITEMS: %d | BINS: %d", stats.TotalItems, stats.TotalBins)

	spacing := a.width - lipgloss.Width(title) - lipgloss.Width(summary) - 2
	if spacing < 1 {
		spacing = 1
	}

	header := a.theme.Header.Render(title) +
		strings.Repeat(" ", spacing) +
		a.theme.Header.Render(summary)

	separator := a.theme.DrawDoubleLine(a.width)

	return header + "\n" + separator
}

// renderNoticeBar renders the time plus the most recent notice, falling back
// to an alert summary when there is nothing transient to show.
func (a *App) renderNoticeBar() string {
	timeStr := time.Now().Format("2006-01-02 15:04")

	var noticeText string
	if len(a.notices) > 0 {
		n := a.notices[0]
		switch n.Level {
		case NoticeCritical:
			noticeText = a.theme.NoticeCrit.Render("CRITICAL: " + n.Message)
		case NoticeWarning:
			noticeText = a.theme.NoticeWarn.Render("WARNING: " + n.Message)
		default:
			noticeText = a.theme.NoticeInfo.Render(n.Message)
		}
	} else {
		alerts := a.inv.Alerts()
		if len(alerts) == 0 {
			noticeText = a.theme.Muted.Render("All stock levels nominal")
		} else {
			critical := 0
			for _, al := range alerts {
				if al.Severity.IsCritical() {
					critical++
				}
			}
			summary := fmt.Sprintf("%d alerts (%d critical)", len(alerts), critical)
			if critical > 0 {
				noticeText = a.theme.NoticeCrit.Render(summary)
			} else {
				noticeText = a.theme.NoticeWarn.Render(summary)
			}
		}
	}

	timeDisplay := a.theme.Value.Render(timeStr)
	divider := a.theme.StatusDivider.Render()

	return timeDisplay + divider + noticeText
}

// renderContent renders the main content area based on current module.
func (a *App) renderContent(height int) string {
	content := a.getModuleContent()

	contentWidth := a.width
	if contentWidth > MaxContentWidth {
		contentWidth = MaxContentWidth
	}

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top)

	contentStyle := lipgloss.NewStyle().
		Width(contentWidth)

	return style.Render(contentStyle.Render(content))
}

// getModuleContent returns the content for the current module.
func (a *App) getModuleContent() string {
	switch a.currentModule {
	case ModuleDashboard:
		return a.renderDashboard()
	case ModuleItems:
		return a.renderItems()
	case ModuleBins:
		return a.renderBins()
	case ModuleCategories:
		return a.categoriesView.Render(a.width, a.height-6)
	case ModuleAlerts:
		return a.alertsView.Render(a.width, a.height-6)
	case ModuleHelp:
		return a.renderHelp()
	default:
		return ""
	}
}

// renderItems renders the items module.
func (a *App) renderItems() string {
	if a.showForm && a.itemForm != nil {
		return a.itemForm.Render()
	}

	if a.showDetail {
		return a.itemsView.RenderDetail(a.itemsView.SelectedItem())
	}

	var inputBar string
	if a.searchMode {
		inputBar = a.theme.Label.Render("SEARCH: ") +
			a.theme.Accent.Render(a.searchInput) +
			a.theme.Accent.Render("_") + "\n\n"
	} else if a.barcodeMode {
		inputBar = a.theme.Label.Render("BARCODE: ") +
			a.theme.Accent.Render(a.barcodeInput) +
			a.theme.Accent.Render("_") + "\n\n"
	}

	return inputBar + a.itemsView.Render(a.width, a.height-6)
}

// renderBins renders the bins module.
func (a *App) renderBins() string {
	if a.showDetail {
		return a.binsView.RenderDetail(a.binsView.SelectedBin())
	}
	return a.binsView.Render(a.width, a.height-6)
}

// renderDashboard renders the main dashboard view.
func (a *App) renderDashboard() string {
	var b strings.Builder

	stats := a.inv.Stats()

	b.WriteString(a.theme.Title.Render("═══ INVENTORY OVERVIEW ═══"))
	b.WriteString("\n\n")

	b.WriteString(a.theme.Subtitle.Render("STOCK"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Total Units:   %d\n", stats.TotalItems))
	b.WriteString(fmt.Sprintf("  Storage Bins:  %d\n", stats.TotalBins))
	b.WriteString(fmt.Sprintf("  Low Stock:     %d\n", stats.LowStockCount))
	b.WriteString(fmt.Sprintf("  Expiring Soon: %d\n", stats.ExpiringCount))
	b.WriteString("\n")

	b.WriteString(a.theme.Subtitle.Render("BY CATEGORY"))
	b.WriteString("\n")
	for _, cat := range a.inv.Categories() {
		count := stats.CategoryBreakdown[cat]
		b.WriteString(fmt.Sprintf("  %-20s %d\n", cat, count))
	}
	b.WriteString("\n")

	b.WriteString(a.theme.Subtitle.Render("ACTIVE ALERTS"))
	b.WriteString("\n")
	alerts := a.inv.Alerts()
	if len(alerts) == 0 {
		b.WriteString("  " + a.theme.Success.Render("None") + "\n")
	} else {
		shown := alerts
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, al := range shown {
			line := fmt.Sprintf("  %s: %s", al.ItemName, al.Message)
			if al.Severity.IsCritical() {
				b.WriteString(a.theme.Error.Render(line))
			} else {
				b.WriteString(a.theme.Warning.Render(line))
			}
			b.WriteString("\n")
		}
		if len(alerts) > 5 {
			b.WriteString(a.theme.Muted.Render(fmt.Sprintf("  ...and %d more (F6)", len(alerts)-5)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderHelp renders the help screen.
func (a *App) renderHelp() string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ HELP ═══"))
	b.WriteString("\n\n")

	b.WriteString(a.theme.Subtitle.Render("NAVIGATION"))
	b.WriteString("\n\n")

	navItems := [][2]string{
		{"F1", "Help"},
		{"F2", "Dashboard"},
		{"F3", "Items"},
		{"F4", "Storage Bins"},
		{"F5", "Categories"},
		{"F6", "Alerts"},
		{"F10", "Quit"},
	}

	for _, item := range navItems {
		line := fmt.Sprintf("    %-8s  %s", item[0], item[1])
		b.WriteString(a.theme.Primary.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Subtitle.Render("CONTROLS"))
	b.WriteString("\n\n")

	ctrlItems := [][2]string{
		{"Up/Down", "Navigate"},
		{"Enter", "Select"},
		{"Esc", "Back/Cancel"},
		{"a", "Add item/category"},
		{"e", "Edit (from details)"},
		{"d", "Delete"},
		{"/", "Search items"},
		{"b", "Barcode lookup"},
		{"c", "Cycle category filter"},
		{"Tab", "Next form field"},
		{"PgUp/Dn", "Page navigation"},
	}

	for _, item := range ctrlItems {
		line := fmt.Sprintf("    %-8s  %s", item[0], item[1])
		b.WriteString(a.theme.Primary.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Muted.Render("Press Esc to return"))

	return b.String()
}

// renderConfirmDialog renders the quit confirmation dialog.
func (a *App) renderConfirmDialog(height int) string {
	dialog := a.theme.Box.Render(
		a.theme.Title.Render("CONFIRM EXIT") + "\n\n" +
			a.theme.Base.Render("Are you sure you want to exit?") + "\n\n" +
			a.theme.Label.Render("[Y]es  [N]o"),
	)

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(dialog)
}

// renderFooter renders the bottom status bar.
func (a *App) renderFooter() string {
	separator := a.theme.DrawHorizontalLine(a.width)
	help := a.keys.StatusBarHelp()
	return separator + "\n" + a.theme.Footer.Render(help)
}

// AddNotice adds a new notice to the display.
func (a *App) AddNotice(level NoticeLevel, message string) {
	a.notices = append([]Notice{{
		Level:   level,
		Message: message,
		Time:    time.Now(),
	}}, a.notices...)

	// Keep only last 10 notices
	if len(a.notices) > 10 {
		a.notices = a.notices[:10]
	}
}

// ClearNotices removes all notices.
func (a *App) ClearNotices() {
	a.notices = []Notice{}
}

// Run starts the TUI application.
func Run(ctx context.Context, inv *store.Inventory, cfg *config.Config) error {
	app := New(inv, cfg)

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Handle context cancellation
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, err := p.Run()
	return err
}
