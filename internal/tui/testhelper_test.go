package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stockroom/stockroom/internal/config"
	"github.com/stockroom/stockroom/internal/store"
)

// newTestApp creates an App instance backed by an in-memory inventory.
// The App is initialized with a default config and the window is set to
// 120x40 and marked ready.
func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := config.Default()
	inv := newTestInventory(t, cfg)

	app := New(inv, cfg)

	// Simulate a window size message to make the app ready
	app.width = 120
	app.height = 40
	app.ready = true

	return app
}

// newLockedTestApp creates an App with the passphrase gate enabled.
func newLockedTestApp(t *testing.T, passphrase string) *App {
	t.Helper()

	cfg := config.Default()
	cfg.Access.Passphrase = passphrase
	inv := newTestInventory(t, cfg)

	app := New(inv, cfg)
	app.width = 120
	app.height = 40
	app.ready = true

	return app
}

// newTestInventory builds an inventory with a fixed clock and no persistence.
func newTestInventory(t *testing.T, cfg *config.Config) *store.Inventory {
	t.Helper()

	opts := store.FromConfig(cfg)
	fixed, _ := time.Parse(time.RFC3339, "2025-06-15T12:00:00Z")
	opts.Now = func() time.Time { return fixed }

	return store.New(nil, opts)
}

// addTestItem inserts an item and fails the test on error.
func addTestItem(t *testing.T, app *App, input store.AddItemInput) {
	t.Helper()

	if _, err := app.inv.AddItem(input); err != nil {
		t.Fatalf("adding test item: %v", err)
	}
	app.reloadViews()
}

// runCmd executes a command and feeds the resulting message back into the
// app, mirroring what the Bubble Tea runtime does.
func runCmd(app *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		app.Update(msg)
	}
}

// keyMsg creates a tea.KeyMsg for a regular character key.
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// specialKeyMsg creates a tea.KeyMsg for a special key type.
func specialKeyMsg(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

// typeString feeds a string into the app one rune at a time.
func typeString(app *App, s string) {
	for _, r := range s {
		app.Update(keyMsg(string(r)))
	}
}
