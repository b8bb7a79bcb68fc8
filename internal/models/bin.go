package models

// DefaultBinCapacity is the capacity assigned to bins created automatically.
const DefaultBinCapacity = 100

// Bin is a capacity-bounded container for items of one category. Bins hold
// only item identifiers in insertion order; item data lives in the item map
// and is joined on demand. CurrentQuantity is the sum of the contained items'
// quantities and is maintained in lockstep with item mutations.
type Bin struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	MaxCapacity     int      `json:"maxCapacity"`
	CurrentQuantity int      `json:"currentQuantity"`
	ItemIDs         []string `json:"itemIds"`
}

// IsEmpty reports whether the bin contains no items.
func (b *Bin) IsEmpty() bool {
	return len(b.ItemIDs) == 0
}

// HasSpace reports whether the bin is below its capacity. The capacity is
// advisory: a bin with space can still be pushed over MaxCapacity by a large
// item, which is allowed.
func (b *Bin) HasSpace() bool {
	return b.CurrentQuantity < b.MaxCapacity
}

// IsOverCapacity reports whether the bin has been filled past its capacity.
func (b *Bin) IsOverCapacity() bool {
	return b.CurrentQuantity > b.MaxCapacity
}

// FillPercent returns the fill level as a percentage of capacity.
func (b *Bin) FillPercent() float64 {
	if b.MaxCapacity <= 0 {
		return 0
	}
	return float64(b.CurrentQuantity) / float64(b.MaxCapacity) * 100
}

// ContainsItem reports whether the bin holds the given item ID.
func (b *Bin) ContainsItem(itemID string) bool {
	for _, id := range b.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}
