package store_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stockroom/stockroom/internal/models"
	"github.com/stockroom/stockroom/internal/storage"
	"github.com/stockroom/stockroom/internal/store"
	"github.com/stockroom/stockroom/internal/testutil"
)

func TestAddItem(t *testing.T) {
	inv := newInventory(t, storage.NewMemoryStore())

	item, err := inv.AddItem(store.AddItemInput{
		Name:           "Widget",
		Category:       "Tools",
		Quantity:       150,
		ExpirationDate: "2030-01-01",
		Location:       "Aisle D-9",
		Barcode:        "TOO555",
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if item.ID == "" {
		t.Error("expected a generated ID")
	}
	if item.CreatedAt == "" || item.CreatedAt != item.UpdatedAt {
		t.Errorf("timestamps: created=%q updated=%q", item.CreatedAt, item.UpdatedAt)
	}

	// The first Tools bin had space, so the oversized item lands there and
	// pushes it over capacity. Capacity is advisory, never a hard limit.
	bin, err := inv.Bin(item.BinID)
	if err != nil {
		t.Fatalf("Bin: %v", err)
	}
	if bin.Name != "Tools Bin A" {
		t.Errorf("bin name = %q, want %q", bin.Name, "Tools Bin A")
	}
	if bin.CurrentQuantity != 150 {
		t.Errorf("bin quantity = %d, want 150", bin.CurrentQuantity)
	}
	if !bin.IsOverCapacity() {
		t.Error("expected bin to report over capacity")
	}

	// The next Tools item cannot fit in the full bin A and opens bin B.
	second, err := inv.AddItem(testutil.FixtureItemInput())
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	binB, err := inv.Bin(second.BinID)
	if err != nil {
		t.Fatalf("Bin: %v", err)
	}
	if binB.Name != "Tools Bin B" {
		t.Errorf("second bin name = %q, want %q", binB.Name, "Tools Bin B")
	}
}

func TestAddItemUnknownCategory(t *testing.T) {
	inv := newInventory(t, storage.NewMemoryStore())

	_, err := inv.AddItem(testutil.FixtureItemInput(func(in *store.AddItemInput) {
		in.Category = "Cryptids"
	}))
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if len(inv.Items()) != 0 {
		t.Error("failed add must not leave a partial item")
	}
}

func TestBarcodeLifecycle(t *testing.T) {
	inv := newInventory(t, storage.NewMemoryStore())

	item, err := inv.AddItem(testutil.FixtureItemInput(func(in *store.AddItemInput) {
		in.Barcode = "TOO100"
	}))
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	got, err := inv.ItemByBarcode("TOO100")
	if err != nil {
		t.Fatalf("ItemByBarcode: %v", err)
	}
	if got.ID != item.ID {
		t.Errorf("barcode resolved to %q, want %q", got.ID, item.ID)
	}

	newCode := "TOO200"
	if _, err := inv.UpdateItem(item.ID, store.ItemUpdate{Barcode: &newCode}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	if _, err := inv.ItemByBarcode("TOO100"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("old barcode should be gone, got %v", err)
	}
	if _, err := inv.ItemByBarcode("TOO200"); err != nil {
		t.Errorf("new barcode not indexed: %v", err)
	}

	inv.DeleteItem(item.ID)
	if _, err := inv.ItemByBarcode("TOO200"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("deleted item still indexed, got %v", err)
	}
}

func TestBarcodeIndexIsInverse(t *testing.T) {
	inv := newInventory(t, storage.NewMemoryStore())

	for i := 0; i < 5; i++ {
		if _, err := inv.AddItem(testutil.FixtureItemInput()); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}

	// Every live item must resolve to itself through its barcode.
	for _, item := range inv.Items() {
		got, err := inv.ItemByBarcode(item.Barcode)
		if err != nil {
			t.Fatalf("ItemByBarcode(%q): %v", item.Barcode, err)
		}
		if got.ID != item.ID {
			t.Errorf("barcode %q resolved to %q, want %q", item.Barcode, got.ID, item.ID)
		}
	}
}

func TestUpdateItemQuantityAdjustsBin(t *testing.T) {
	inv := newInventory(t, storage.NewMemoryStore())

	item, err := inv.AddItem(testutil.FixtureItemInput(func(in *store.AddItemInput) {
		in.Quantity = 30
	}))
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	qty := 12
	updated, err := inv.UpdateItem(item.ID, store.ItemUpdate{Quantity: &qty})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Quantity != 12 {
		t.Errorf("quantity = %d, want 12", updated.Quantity)
	}

	bin, err := inv.Bin(item.BinID)
	if err != nil {
		t.Fatalf("Bin: %v", err)
	}
	if bin.CurrentQuantity != 12 {
		t.Errorf("bin quantity = %d, want 12", bin.CurrentQuantity)
	}
}

func TestUpdateItemCategoryMigratesBins(t *testing.T) {
	inv := newInventory(t, storage.NewMemoryStore())

	item, err := inv.AddItem(testutil.FixtureItemInput(func(in *store.AddItemInput) {
		in.Category = "Tools"
		in.Quantity = 40
	}))
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	oldBinID := item.BinID

	category := "Electronics"
	updated, err := inv.UpdateItem(item.ID, store.ItemUpdate{Category: &category})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	if updated.Category != "Electronics" {
		t.Errorf("category = %q, want Electronics", updated.Category)
	}
	if updated.BinID == oldBinID {
		t.Error("item should have moved to an Electronics bin")
	}

	newBin, err := inv.Bin(updated.BinID)
	if err != nil {
		t.Fatalf("Bin: %v", err)
	}
	if newBin.Category != "Electronics" {
		t.Errorf("new bin category = %q, want Electronics", newBin.Category)
	}
	if newBin.CurrentQuantity != 40 {
		t.Errorf("new bin quantity = %d, want 40", newBin.CurrentQuantity)
	}

	// The emptied Tools bin was the only one for its category, so it stays.
	oldBin, err := inv.Bin(oldBinID)
	if err != nil {
		t.Fatalf("old bin should survive: %v", err)
	}
	if oldBin.CurrentQuantity != 0 || !oldBin.IsEmpty() {
		t.Errorf("old bin not emptied: qty=%d items=%v", oldBin.CurrentQuantity, oldBin.ItemIDs)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	inv := newInventory(t, storage.NewMemoryStore())

	name := "ghost"
	_, err := inv.UpdateItem("no-such-id", store.ItemUpdate{Name: &name})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateItemRestampsUpdatedAt(t *testing.T) {
	blobs := storage.NewMemoryStore()
	clock := testNow
	inv := store.New(blobs, store.Options{
		Now: func() time.Time { return clock },
	})

	item, err := inv.AddItem(testutil.FixtureItemInput())
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	clock = clock.Add(time.Hour)
	updated, err := inv.UpdateItem(item.ID, store.ItemUpdate{})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	if updated.UpdatedAt == item.UpdatedAt {
		t.Error("UpdatedAt not re-stamped on no-op update")
	}
	if updated.CreatedAt != item.CreatedAt {
		t.Error("CreatedAt must never change")
	}
}

func TestDeleteItem(t *testing.T) {
	inv := newInventory(t, storage.NewMemoryStore())

	item, err := inv.AddItem(testutil.FixtureItemInput(func(in *store.AddItemInput) {
		in.Quantity = 25
	}))
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if !inv.DeleteItem(item.ID) {
		t.Fatal("DeleteItem returned false for an existing item")
	}
	if inv.DeleteItem(item.ID) {
		t.Error("DeleteItem returned true for a deleted item")
	}

	if _, err := inv.Item(item.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	bin, err := inv.Bin(item.BinID)
	if err != nil {
		t.Fatalf("Bin: %v", err)
	}
	if bin.CurrentQuantity != 0 {
		t.Errorf("bin quantity = %d after delete, want 0", bin.CurrentQuantity)
	}
}

func TestQuantityInvariantUnderChurn(t *testing.T) {
	inv := newInventory(t, storage.NewMemoryStore())

	quantities := []int{60, 70, 15, 90, 5}
	var ids []string
	for _, q := range quantities {
		item, err := inv.AddItem(testutil.FixtureItemInput(func(in *store.AddItemInput) {
			in.Quantity = q
		}))
		if err != nil {
			t.Fatalf("AddItem: %v", err)
		}
		ids = append(ids, item.ID)
	}

	inv.DeleteItem(ids[1])
	inv.DeleteItem(ids[3])
	newQty := 33
	if _, err := inv.UpdateItem(ids[0], store.ItemUpdate{Quantity: &newQty}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	// Every bin's CurrentQuantity must equal the sum of its items.
	for _, bin := range inv.Bins() {
		items, err := inv.BinItems(bin.ID)
		if err != nil {
			t.Fatalf("BinItems: %v", err)
		}
		sum := 0
		for _, item := range items {
			sum += item.Quantity
		}
		if bin.CurrentQuantity != sum {
			t.Errorf("bin %q quantity = %d, items sum to %d", bin.Name, bin.CurrentQuantity, sum)
		}
	}
}

func TestSearchItems(t *testing.T) {
	inv := newInventory(t, storage.NewMemoryStore())

	seed := []store.AddItemInput{
		{Name: "Power Drill", Category: "Tools", Quantity: 12, ExpirationDate: "2030-01-01", Location: "Aisle D-1", Barcode: "TOO001"},
		{Name: "Screwdriver Set", Category: "Tools", Quantity: 30, ExpirationDate: "2028-06-01", Location: "Aisle D-2", Barcode: "TOO002"},
		{Name: "Canned Beans", Category: "Food", Quantity: 200, ExpirationDate: "2025-12-15", Location: "Aisle C-1", Barcode: "FOO001"},
	}
	for _, in := range seed {
		if _, err := inv.AddItem(in); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}

	tests := []struct {
		name      string
		filter    models.SearchFilter
		wantNames []string
	}{
		{
			name:      "empty filter returns everything in order",
			filter:    models.SearchFilter{},
			wantNames: []string{"Power Drill", "Screwdriver Set", "Canned Beans"},
		},
		{
			name:      "category is exact",
			filter:    models.SearchFilter{Category: "Tools"},
			wantNames: []string{"Power Drill", "Screwdriver Set"},
		},
		{
			name:      "category mismatch yields nothing",
			filter:    models.SearchFilter{Category: "tool"},
			wantNames: nil,
		},
		{
			name:      "barcode substring is case-insensitive",
			filter:    models.SearchFilter{Barcode: "foo"},
			wantNames: []string{"Canned Beans"},
		},
		{
			name:      "expiration range is inclusive",
			filter:    models.SearchFilter{ExpirationStart: "2025-12-15", ExpirationEnd: "2028-06-01"},
			wantNames: []string{"Screwdriver Set", "Canned Beans"},
		},
		{
			name:      "free text matches name",
			filter:    models.SearchFilter{Search: "drill"},
			wantNames: []string{"Power Drill"},
		},
		{
			name:      "free text matches location",
			filter:    models.SearchFilter{Search: "aisle c"},
			wantNames: []string{"Canned Beans"},
		},
		{
			name:      "criteria combine with AND",
			filter:    models.SearchFilter{Category: "Tools", Search: "screw"},
			wantNames: []string{"Screwdriver Set"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inv.SearchItems(tt.filter)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("got %d items, want %d", len(got), len(tt.wantNames))
			}
			for i, item := range got {
				if item.Name != tt.wantNames[i] {
					t.Errorf("result[%d] = %q, want %q", i, item.Name, tt.wantNames[i])
				}
			}
		})
	}
}
