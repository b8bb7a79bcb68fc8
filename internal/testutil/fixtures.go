// Package testutil provides shared fixtures for tests.
package testutil

import (
	"github.com/google/uuid"

	"github.com/stockroom/stockroom/internal/models"
	"github.com/stockroom/stockroom/internal/store"
)

// FixtureItemInput creates item input with sensible defaults. The barcode is
// randomized so multiple fixtures never collide in the barcode index.
func FixtureItemInput(overrides ...func(*store.AddItemInput)) store.AddItemInput {
	input := store.AddItemInput{
		Name:           "Test Widget",
		Category:       "Tools",
		Quantity:       20,
		ExpirationDate: "2030-01-01",
		Location:       "Aisle T-1",
		Barcode:        "TST-" + uuid.New().String()[:8],
	}

	for _, override := range overrides {
		override(&input)
	}

	return input
}

// FixtureLowStockInput creates input that trips the low-stock alert.
func FixtureLowStockInput(overrides ...func(*store.AddItemInput)) store.AddItemInput {
	return FixtureItemInput(append([]func(*store.AddItemInput){
		func(in *store.AddItemInput) {
			in.Name = "Scarce Widget"
			in.Quantity = 3
		},
	}, overrides...)...)
}

// FixtureExpiredInput creates input for an item whose date is already past.
func FixtureExpiredInput(overrides ...func(*store.AddItemInput)) store.AddItemInput {
	return FixtureItemInput(append([]func(*store.AddItemInput){
		func(in *store.AddItemInput) {
			in.Name = "Stale Widget"
			in.ExpirationDate = "2020-01-01"
		},
	}, overrides...)...)
}

// FixtureItem creates a detached item record for model-level tests.
func FixtureItem(overrides ...func(*models.Item)) *models.Item {
	item := &models.Item{
		ID:             uuid.New().String(),
		Name:           "Test Widget",
		Category:       "Tools",
		Quantity:       20,
		ExpirationDate: "2030-01-01",
		Location:       "Aisle T-1",
		Barcode:        "TST-" + uuid.New().String()[:8],
		BinID:          uuid.New().String(),
		CreatedAt:      "2025-01-01T00:00:00Z",
		UpdatedAt:      "2025-01-01T00:00:00Z",
	}

	for _, override := range overrides {
		override(item)
	}

	return item
}

// FixtureBin creates a detached bin record for model-level tests.
func FixtureBin(overrides ...func(*models.Bin)) *models.Bin {
	bin := &models.Bin{
		ID:          uuid.New().String(),
		Name:        "Tools Bin A",
		Category:    "Tools",
		MaxCapacity: models.DefaultBinCapacity,
	}

	for _, override := range overrides {
		override(bin)
	}

	return bin
}
