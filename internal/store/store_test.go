package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stockroom/stockroom/internal/models"
	"github.com/stockroom/stockroom/internal/storage"
	"github.com/stockroom/stockroom/internal/store"
	"github.com/stockroom/stockroom/internal/testutil"
)

// testNow is the pinned clock for all store tests.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newInventory(t *testing.T, blobs storage.BlobStore) *store.Inventory {
	t.Helper()
	return store.New(blobs, store.Options{
		Now: func() time.Time { return testNow },
	})
}

func TestNewStartsWithDefaults(t *testing.T) {
	inv := newInventory(t, storage.NewMemoryStore())

	categories := inv.Categories()
	if len(categories) != 8 {
		t.Fatalf("expected 8 default categories, got %d", len(categories))
	}
	if categories[0] != "Electronics" || categories[7] != "Other" {
		t.Errorf("unexpected category order: %v", categories)
	}

	bins := inv.Bins()
	if len(bins) != len(categories) {
		t.Fatalf("expected one bin per category, got %d bins", len(bins))
	}
	for i, bin := range bins {
		if bin.Category != categories[i] {
			t.Errorf("bin %d category = %q, want %q", i, bin.Category, categories[i])
		}
		if bin.Name != categories[i]+" Bin A" {
			t.Errorf("bin %d name = %q, want %q", i, bin.Name, categories[i]+" Bin A")
		}
		if bin.MaxCapacity != models.DefaultBinCapacity {
			t.Errorf("bin %d capacity = %d, want %d", i, bin.MaxCapacity, models.DefaultBinCapacity)
		}
	}

	if items := inv.Items(); len(items) != 0 {
		t.Errorf("expected empty inventory, got %d items", len(items))
	}
}

func TestNewWithNilBlobStore(t *testing.T) {
	inv := store.New(nil, store.Options{})

	if _, err := inv.AddItem(testutil.FixtureItemInput()); err != nil {
		t.Fatalf("AddItem on in-memory inventory: %v", err)
	}
	if len(inv.Items()) != 1 {
		t.Error("expected item to be stored without a blob store")
	}
}

func TestRoundTripReload(t *testing.T) {
	blobs := storage.NewMemoryStore()

	inv := newInventory(t, blobs)
	if err := inv.AddCategory("Optics"); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	if err := inv.AddSubtype("Optics", "Lenses"); err != nil {
		t.Fatalf("AddSubtype: %v", err)
	}

	first, err := inv.AddItem(testutil.FixtureItemInput(func(in *store.AddItemInput) {
		in.Name = "Microscope"
		in.Category = "Optics"
		in.SubType = "Lenses"
		in.Barcode = "OPT001"
	}))
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	second, err := inv.AddItem(testutil.FixtureItemInput(func(in *store.AddItemInput) {
		in.Barcode = "TOO900"
	}))
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	// Fresh store over the same blobs must observe identical state.
	reloaded := newInventory(t, blobs)

	items := reloaded.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after reload, got %d", len(items))
	}
	if items[0].ID != first.ID || items[1].ID != second.ID {
		t.Error("insertion order not preserved across reload")
	}

	got, err := reloaded.Item(first.ID)
	if err != nil {
		t.Fatalf("Item after reload: %v", err)
	}
	if *got != *first {
		t.Errorf("reloaded item differs:\n got %+v\nwant %+v", got, first)
	}

	if _, err := reloaded.ItemByBarcode("OPT001"); err != nil {
		t.Errorf("barcode index not rebuilt on load: %v", err)
	}

	bin, err := reloaded.Bin(first.BinID)
	if err != nil {
		t.Fatalf("Bin after reload: %v", err)
	}
	if bin.CurrentQuantity != first.Quantity {
		t.Errorf("bin quantity = %d, want %d", bin.CurrentQuantity, first.Quantity)
	}
	if !bin.ContainsItem(first.ID) {
		t.Error("bin membership not restored on load")
	}

	if subtypes := reloaded.Subtypes("Optics"); len(subtypes) != 1 || subtypes[0] != "Lenses" {
		t.Errorf("subtypes after reload = %v", subtypes)
	}
}

func TestLoadFailOpen(t *testing.T) {
	tests := []struct {
		name  string
		blobs *storage.MemoryStore
	}{
		{
			name: "read error",
			blobs: func() *storage.MemoryStore {
				m := storage.NewMemoryStore()
				m.GetErr = errors.New("disk on fire")
				return m
			}(),
		},
		{
			name: "malformed items blob",
			blobs: func() *storage.MemoryStore {
				m := storage.NewMemoryStore()
				m.Put(context.Background(), storage.KeyItems, []byte("{not json"))
				return m
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := newInventory(t, tt.blobs)

			if len(inv.Categories()) != 8 {
				t.Error("expected default categories after failed load")
			}
			if len(inv.Items()) != 0 {
				t.Error("expected empty inventory after failed load")
			}
		})
	}
}

func TestSaveFailOpen(t *testing.T) {
	blobs := storage.NewMemoryStore()
	inv := newInventory(t, blobs)

	blobs.PutErr = errors.New("disk full")

	item, err := inv.AddItem(testutil.FixtureItemInput())
	if err != nil {
		t.Fatalf("AddItem must not surface persistence errors: %v", err)
	}

	// The in-memory state carries on regardless.
	if _, err := inv.Item(item.ID); err != nil {
		t.Errorf("item not readable after failed save: %v", err)
	}

	blobs.PutErr = nil
	if _, err := inv.UpdateItem(item.ID, store.ItemUpdate{}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if blobs.PutCount == 0 {
		t.Error("expected persistence to resume once writes succeed")
	}
}

func TestEveryMutationPersists(t *testing.T) {
	blobs := storage.NewMemoryStore()
	inv := newInventory(t, blobs)

	before := blobs.PutCount
	item, err := inv.AddItem(testutil.FixtureItemInput())
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if blobs.PutCount != before+4 {
		t.Errorf("AddItem wrote %d blobs, want 4", blobs.PutCount-before)
	}

	var items []*models.Item
	data, err := blobs.Get(context.Background(), storage.KeyItems)
	if err != nil {
		t.Fatalf("reading items blob: %v", err)
	}
	if err := json.Unmarshal(data, &items); err != nil {
		t.Fatalf("items blob is not valid JSON: %v", err)
	}
	if len(items) != 1 || items[0].ID != item.ID {
		t.Errorf("items blob = %+v, want the added item", items)
	}

	before = blobs.PutCount
	inv.DeleteItem(item.ID)
	if blobs.PutCount != before+4 {
		t.Error("DeleteItem did not persist all four parts")
	}
}
