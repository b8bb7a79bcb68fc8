package store

import (
	"fmt"

	"github.com/stockroom/stockroom/internal/models"
	"github.com/stockroom/stockroom/internal/util"
)

// AddItemInput carries the caller-supplied fields for a new item. The store
// assigns the ID, bin and timestamps.
type AddItemInput struct {
	Name           string
	Category       string
	SubType        string
	Quantity       int
	ExpirationDate string
	Location       string
	Barcode        string
}

// ItemUpdate carries a partial item update. Nil fields are left unchanged.
type ItemUpdate struct {
	Name           *string
	Category       *string
	SubType        *string
	Quantity       *int
	ExpirationDate *string
	Location       *string
	Barcode        *string
}

// AddItem creates an item, places it in a bin for its category (creating one
// when every existing bin is full) and updates the barcode index and bin
// bookkeeping. The category must exist.
func (inv *Inventory) AddItem(input AddItemInput) (*models.Item, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if !inv.hasCategory(input.Category) {
		return nil, fmt.Errorf("category %q: %w", input.Category, ErrNotFound)
	}

	bin := inv.findOrCreateBin(input.Category)
	stamp := util.FormatTimestamp(inv.now())

	item := &models.Item{
		ID:             inv.idGen.NewID(),
		Name:           input.Name,
		Category:       input.Category,
		SubType:        input.SubType,
		Quantity:       input.Quantity,
		ExpirationDate: input.ExpirationDate,
		Location:       input.Location,
		Barcode:        input.Barcode,
		BinID:          bin.ID,
		CreatedAt:      stamp,
		UpdatedAt:      stamp,
	}

	inv.items[item.ID] = item
	inv.itemOrder = append(inv.itemOrder, item.ID)
	inv.barcodeIndex[item.Barcode] = item.ID

	bin.ItemIDs = append(bin.ItemIDs, item.ID)
	bin.CurrentQuantity += item.Quantity

	inv.save()

	cp := *item
	return &cp, nil
}

// Item returns the item with the given ID.
func (inv *Inventory) Item(id string) (*models.Item, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	item, ok := inv.items[id]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}

	cp := *item
	return &cp, nil
}

// ItemByBarcode resolves a barcode to its item via the index. When several
// items share a barcode, the most recently written one wins.
func (inv *Inventory) ItemByBarcode(barcode string) (*models.Item, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	id, ok := inv.barcodeIndex[barcode]
	if !ok {
		return nil, fmt.Errorf("barcode %q: %w", barcode, ErrNotFound)
	}

	cp := *inv.items[id]
	return &cp, nil
}

// Items returns all items in insertion order.
func (inv *Inventory) Items() []*models.Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	items := make([]*models.Item, 0, len(inv.itemOrder))
	for _, id := range inv.itemOrder {
		cp := *inv.items[id]
		items = append(items, &cp)
	}
	return items
}

// UpdateItem applies a partial update to an item. A quantity change adjusts
// the containing bin's total; a barcode change re-points the index; a category
// change moves the item into a bin of the new category, collapsing the old
// bin if it is left empty and redundant. UpdatedAt is always re-stamped, even
// for a no-op update.
func (inv *Inventory) UpdateItem(id string, upd ItemUpdate) (*models.Item, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	item, ok := inv.items[id]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}

	if upd.Category != nil && !inv.hasCategory(*upd.Category) {
		return nil, fmt.Errorf("category %q: %w", *upd.Category, ErrNotFound)
	}

	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.SubType != nil {
		item.SubType = *upd.SubType
	}
	if upd.ExpirationDate != nil {
		item.ExpirationDate = *upd.ExpirationDate
	}
	if upd.Location != nil {
		item.Location = *upd.Location
	}

	if upd.Barcode != nil && *upd.Barcode != item.Barcode {
		if inv.barcodeIndex[item.Barcode] == item.ID {
			delete(inv.barcodeIndex, item.Barcode)
		}
		item.Barcode = *upd.Barcode
		inv.barcodeIndex[item.Barcode] = item.ID
	}

	if upd.Quantity != nil && *upd.Quantity != item.Quantity {
		if bin, ok := inv.bins[item.BinID]; ok {
			bin.CurrentQuantity += *upd.Quantity - item.Quantity
		}
		item.Quantity = *upd.Quantity
	}

	if upd.Category != nil && *upd.Category != item.Category {
		inv.removeFromBin(item)
		item.Category = *upd.Category

		bin := inv.findOrCreateBin(item.Category)
		item.BinID = bin.ID
		bin.ItemIDs = append(bin.ItemIDs, item.ID)
		bin.CurrentQuantity += item.Quantity
	}

	item.UpdatedAt = util.FormatTimestamp(inv.now())

	inv.save()

	cp := *item
	return &cp, nil
}

// DeleteItem removes an item, its barcode index entry, and its bin membership.
// The emptied bin is collapsed when the category still has another bin.
// Returns false when the item does not exist.
func (inv *Inventory) DeleteItem(id string) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	item, ok := inv.items[id]
	if !ok {
		return false
	}

	inv.removeFromBin(item)

	if inv.barcodeIndex[item.Barcode] == item.ID {
		delete(inv.barcodeIndex, item.Barcode)
	}

	delete(inv.items, id)
	for i, oid := range inv.itemOrder {
		if oid == id {
			inv.itemOrder = append(inv.itemOrder[:i], inv.itemOrder[i+1:]...)
			break
		}
	}

	inv.save()
	return true
}

// SearchItems returns the items matching every set criterion of the filter,
// in insertion order. An empty filter returns everything.
func (inv *Inventory) SearchItems(filter models.SearchFilter) []*models.Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	var matched []*models.Item
	for _, id := range inv.itemOrder {
		item := inv.items[id]
		if filter.Matches(item) {
			cp := *item
			matched = append(matched, &cp)
		}
	}
	return matched
}
