package store

import (
	"fmt"

	"github.com/stockroom/stockroom/internal/models"
)

// findOrCreateBin returns the first bin of the category with spare capacity,
// in creation order, or creates a new one. Callers must hold the mutex.
func (inv *Inventory) findOrCreateBin(category string) *models.Bin {
	for _, id := range inv.binOrder {
		bin := inv.bins[id]
		if bin.Category == category && bin.HasSpace() {
			return bin
		}
	}
	return inv.createBin(category)
}

// createBin adds an empty bin for the category. Bins are lettered in creation
// order within their category: "Tools Bin A", "Tools Bin B" and so on.
func (inv *Inventory) createBin(category string) *models.Bin {
	letter := rune('A' + inv.binCountForCategory(category))
	bin := &models.Bin{
		ID:          inv.idGen.NewID(),
		Name:        fmt.Sprintf("%s Bin %c", category, letter),
		Category:    category,
		MaxCapacity: inv.opts.DefaultBinCapacity,
	}

	inv.bins[bin.ID] = bin
	inv.binOrder = append(inv.binOrder, bin.ID)
	return bin
}

// removeFromBin takes the item out of its bin, decrements the bin total, and
// collapses the bin if it is now empty and its category still has another
// bin. Callers must hold the mutex.
func (inv *Inventory) removeFromBin(item *models.Item) {
	bin, ok := inv.bins[item.BinID]
	if !ok {
		return
	}

	for i, id := range bin.ItemIDs {
		if id == item.ID {
			bin.ItemIDs = append(bin.ItemIDs[:i], bin.ItemIDs[i+1:]...)
			break
		}
	}
	bin.CurrentQuantity -= item.Quantity

	// Every category keeps at least one bin so new items have a home.
	if bin.IsEmpty() && inv.binCountForCategory(bin.Category) > 1 {
		inv.deleteBin(bin.ID)
	}
}

// deleteBin removes a bin from the map and the creation-order slice.
func (inv *Inventory) deleteBin(id string) {
	delete(inv.bins, id)
	for i, oid := range inv.binOrder {
		if oid == id {
			inv.binOrder = append(inv.binOrder[:i], inv.binOrder[i+1:]...)
			break
		}
	}
}

// binCountForCategory counts the bins assigned to a category.
func (inv *Inventory) binCountForCategory(category string) int {
	n := 0
	for _, id := range inv.binOrder {
		if inv.bins[id].Category == category {
			n++
		}
	}
	return n
}

// Bins returns all bins in creation order.
func (inv *Inventory) Bins() []*models.Bin {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	bins := make([]*models.Bin, 0, len(inv.binOrder))
	for _, id := range inv.binOrder {
		bins = append(bins, copyBin(inv.bins[id]))
	}
	return bins
}

// Bin returns the bin with the given ID.
func (inv *Inventory) Bin(id string) (*models.Bin, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	bin, ok := inv.bins[id]
	if !ok {
		return nil, fmt.Errorf("bin %q: %w", id, ErrNotFound)
	}
	return copyBin(bin), nil
}

// BinItems returns the items stored in the bin, in the bin's own order.
func (inv *Inventory) BinItems(binID string) ([]*models.Item, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	bin, ok := inv.bins[binID]
	if !ok {
		return nil, fmt.Errorf("bin %q: %w", binID, ErrNotFound)
	}

	items := make([]*models.Item, 0, len(bin.ItemIDs))
	for _, id := range bin.ItemIDs {
		if item, ok := inv.items[id]; ok {
			cp := *item
			items = append(items, &cp)
		}
	}
	return items, nil
}

func copyBin(bin *models.Bin) *models.Bin {
	cp := *bin
	cp.ItemIDs = append([]string(nil), bin.ItemIDs...)
	return &cp
}
