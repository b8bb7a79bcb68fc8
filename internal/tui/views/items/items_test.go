package items

import (
	"strings"
	"testing"
	"time"

	"github.com/stockroom/stockroom/internal/config"
	"github.com/stockroom/stockroom/internal/store"
	"github.com/stockroom/stockroom/internal/testutil"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newInventory(t *testing.T) *store.Inventory {
	t.Helper()

	opts := store.FromConfig(config.Default())
	opts.Now = func() time.Time { return testNow }
	return store.New(nil, opts)
}

func TestView_EmptyRender(t *testing.T) {
	view := NewView(newInventory(t))
	view.Load()

	output := view.Render(120, 40)
	if !strings.Contains(output, "ITEMS") {
		t.Error("expected title in output")
	}
	if !strings.Contains(output, "No items found") {
		t.Error("expected empty state message")
	}
}

func TestView_LoadShowsItems(t *testing.T) {
	inv := newInventory(t)
	if _, err := inv.AddItem(testutil.FixtureItemInput()); err != nil {
		t.Fatalf("adding item: %v", err)
	}

	view := NewView(inv)
	view.SetNow(testNow)
	view.Load()

	output := view.Render(120, 40)
	if !strings.Contains(output, "Test Widget") {
		t.Error("expected item name in output")
	}
	if !strings.Contains(output, "Aisle T-1") {
		t.Error("expected location in output")
	}

	if view.SelectedItem() == nil {
		t.Error("expected first item selected after load")
	}
}

func TestView_SearchNarrowsList(t *testing.T) {
	inv := newInventory(t)
	inv.AddItem(testutil.FixtureItemInput(func(in *store.AddItemInput) {
		in.Name = "Duct Tape"
	}))
	inv.AddItem(testutil.FixtureItemInput(func(in *store.AddItemInput) {
		in.Name = "Power Drill"
	}))

	view := NewView(inv)
	view.SetNow(testNow)
	view.SetSearch("drill")
	view.Load()

	output := view.Render(120, 40)
	if strings.Contains(output, "Duct Tape") {
		t.Error("expected non-matching item filtered out")
	}
	if !strings.Contains(output, "Power Drill") {
		t.Error("expected matching item in output")
	}
	if !strings.Contains(output, "Search: drill") {
		t.Error("expected active search shown")
	}
}

func TestView_CategoryFilterCycle(t *testing.T) {
	inv := newInventory(t)
	view := NewView(inv)

	categories := inv.Categories()
	if view.CategoryFilter() != "" {
		t.Fatal("expected no filter initially")
	}

	view.CycleCategoryFilter()
	if view.CategoryFilter() != categories[0] {
		t.Errorf("expected first category, got %q", view.CategoryFilter())
	}

	// A full cycle lands back on "all"
	for range categories {
		view.CycleCategoryFilter()
	}
	if view.CategoryFilter() != "" {
		t.Errorf("expected filter cleared, got %q", view.CategoryFilter())
	}
}

func TestView_RenderDetail_NilItem(t *testing.T) {
	view := NewView(newInventory(t))

	output := view.RenderDetail(nil)
	if !strings.Contains(output, "No item selected") {
		t.Error("expected nil item message")
	}
}

func TestView_RenderDetail_Fields(t *testing.T) {
	inv := newInventory(t)
	item, err := inv.AddItem(testutil.FixtureItemInput(func(in *store.AddItemInput) {
		in.SubType = "Hand Tools"
		in.Barcode = "TST-DETAIL"
	}))
	if err != nil {
		t.Fatalf("adding item: %v", err)
	}

	view := NewView(inv)
	view.SetNow(testNow)
	view.Load()

	output := view.RenderDetail(item)

	checks := []struct {
		label string
		value string
	}{
		{"title", "ITEM DETAILS"},
		{"name", "Test Widget"},
		{"category", "Tools"},
		{"subtype", "Hand Tools"},
		{"barcode", "TST-DETAIL"},
		{"location", "Aisle T-1"},
		{"bin", "Tools Bin A"},
		{"expiration", "2030-01-01"},
		{"help", "Esc:Back"},
	}

	for _, check := range checks {
		if !strings.Contains(output, check.value) {
			t.Errorf("expected %s (%q) in detail output", check.label, check.value)
		}
	}
}

func TestView_RenderDetail_ExpiredItem(t *testing.T) {
	inv := newInventory(t)
	item, err := inv.AddItem(testutil.FixtureExpiredInput())
	if err != nil {
		t.Fatalf("adding item: %v", err)
	}

	view := NewView(inv)
	view.SetNow(testNow)
	view.Load()

	output := view.RenderDetail(item)
	if !strings.Contains(output, "EXPIRED") {
		t.Error("expected EXPIRED marker for past expiration date")
	}
}

func TestForm_RequiredFields(t *testing.T) {
	form := NewForm(FormModeAdd, []string{"Tools"})

	// Submit with everything blank
	form.HandleKey("ctrl+s")

	if form.IsSubmitted() {
		t.Error("expected submit blocked on empty required fields")
	}

	output := form.Render()
	if !strings.Contains(output, "Error:") {
		t.Error("expected error message in form output")
	}
}

func TestForm_QuantityValidation(t *testing.T) {
	form := NewForm(FormModeAdd, []string{"Tools"})
	form.name.SetValue("Widget")
	form.quantity.SetValue("lots")
	form.expiration.SetValue("2030-01-01")
	form.barcode.SetValue("TST-1")

	form.HandleKey("ctrl+s")
	if form.IsSubmitted() {
		t.Error("expected submit blocked on non-numeric quantity")
	}

	form.quantity.SetValue("-2")
	form.HandleKey("ctrl+s")
	if form.IsSubmitted() {
		t.Error("expected submit blocked on negative quantity")
	}

	form.quantity.SetValue("0")
	form.HandleKey("ctrl+s")
	if !form.IsSubmitted() {
		t.Error("expected zero quantity to be accepted")
	}
}

func TestForm_DateValidation(t *testing.T) {
	form := NewForm(FormModeAdd, []string{"Tools"})
	form.name.SetValue("Widget")
	form.quantity.SetValue("5")
	form.expiration.SetValue("01/01/2030")
	form.barcode.SetValue("TST-1")

	form.HandleKey("ctrl+s")
	if form.IsSubmitted() {
		t.Error("expected submit blocked on malformed date")
	}

	form.expiration.SetValue("2030-01-01")
	form.HandleKey("ctrl+s")
	if !form.IsSubmitted() {
		t.Error("expected submit after fixing date")
	}
}

func TestForm_DataRoundTrip(t *testing.T) {
	form := NewForm(FormModeAdd, []string{"Tools", "Electronics"})
	form.name.SetValue("  Widget  ")
	form.category.SelectValue("Electronics")
	form.subtype.SetValue("Sensors")
	form.quantity.SetValue("7")
	form.expiration.SetValue("2030-01-01")
	form.location.SetValue("Shelf 2")
	form.barcode.SetValue("TST-7")

	form.HandleKey("ctrl+s")
	if !form.IsSubmitted() {
		t.Fatal("expected form submitted")
	}

	data := form.Data()
	if data.Name != "Widget" {
		t.Errorf("expected trimmed name, got %q", data.Name)
	}
	if data.Category != "Electronics" {
		t.Errorf("expected Electronics, got %q", data.Category)
	}
	if data.Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", data.Quantity)
	}
	if data.SubType != "Sensors" || data.Location != "Shelf 2" || data.Barcode != "TST-7" {
		t.Errorf("unexpected field values: %+v", data)
	}
}

func TestForm_EditModePrefills(t *testing.T) {
	item := testutil.FixtureItem()
	form := NewForm(FormModeEdit, []string{"Tools"})
	form.SetItem(item)

	if form.ItemID() != item.ID {
		t.Errorf("expected item ID %q, got %q", item.ID, form.ItemID())
	}
	if form.name.Value() != item.Name {
		t.Errorf("expected prefilled name %q, got %q", item.Name, form.name.Value())
	}

	output := form.Render()
	if !strings.Contains(output, "EDIT ITEM") {
		t.Error("expected edit title in output")
	}
}

func TestForm_Cancel(t *testing.T) {
	form := NewForm(FormModeAdd, []string{"Tools"})
	form.HandleKey("esc")

	if !form.IsCancelled() {
		t.Error("expected form cancelled after esc")
	}
}

func TestForm_TabCyclesFields(t *testing.T) {
	form := NewForm(FormModeAdd, []string{"Tools"})

	if !form.name.IsFocused() {
		t.Fatal("expected name focused initially")
	}

	form.HandleKey("tab")
	if form.name.IsFocused() {
		t.Error("expected focus to leave name after tab")
	}
	if !form.category.IsFocused() {
		t.Error("expected category focused after tab")
	}

	form.HandleKey("shift+tab")
	if !form.name.IsFocused() {
		t.Error("expected focus back on name after shift+tab")
	}
}

func TestForm_SetErrorReopensSubmission(t *testing.T) {
	form := NewForm(FormModeAdd, []string{"Tools"})
	form.name.SetValue("Widget")
	form.quantity.SetValue("5")
	form.expiration.SetValue("2030-01-01")
	form.barcode.SetValue("TST-1")

	form.HandleKey("ctrl+s")
	if !form.IsSubmitted() {
		t.Fatal("expected form submitted")
	}

	form.SetError("category does not exist")
	if form.IsSubmitted() {
		t.Error("expected submitted state cleared after store error")
	}

	output := form.Render()
	if !strings.Contains(output, "category does not exist") {
		t.Error("expected store error in form output")
	}
}
