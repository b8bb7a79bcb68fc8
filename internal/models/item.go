// Package models defines the Stockroom data model: items, bins, alerts and
// the derived views computed from them.
package models

import (
	"strings"
	"time"

	"github.com/stockroom/stockroom/internal/util"
)

// Item is one stocked unit of a product. Expiration dates are stored as
// YYYY-MM-DD strings; created/updated stamps as RFC3339. The JSON field names
// match the persisted blob layout.
type Item struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	SubType        string `json:"subType,omitempty"`
	Quantity       int    `json:"quantity"`
	ExpirationDate string `json:"expirationDate"`
	Location       string `json:"location"`
	Barcode        string `json:"barcode"`
	BinID          string `json:"binId"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// IsExpired reports whether the item's expiration date is strictly before now.
func (i *Item) IsExpired(now time.Time) bool {
	exp, err := util.ParseDate(i.ExpirationDate)
	if err != nil {
		return false
	}
	return exp.Before(util.StartOfDay(now))
}

// IsExpiringWithin reports whether the item expires within the given number of
// days from now. Already-expired items are not "expiring".
func (i *Item) IsExpiringWithin(now time.Time, days int) bool {
	exp, err := util.ParseDate(i.ExpirationDate)
	if err != nil {
		return false
	}
	until := util.DaysUntil(now, exp)
	return until >= 0 && until < days
}

// DaysUntilExpiration returns whole days until expiration; negative when the
// item is already expired.
func (i *Item) DaysUntilExpiration(now time.Time) int {
	exp, err := util.ParseDate(i.ExpirationDate)
	if err != nil {
		return 0
	}
	return util.DaysUntil(now, exp)
}

// SearchFilter holds the optional, AND-combined item search criteria.
type SearchFilter struct {
	// Category matches exactly.
	Category string
	// Barcode is a case-insensitive substring match on the barcode.
	Barcode string
	// ExpirationStart and ExpirationEnd are inclusive YYYY-MM-DD bounds,
	// compared lexically.
	ExpirationStart string
	ExpirationEnd   string
	// Search is a case-insensitive substring match against name, barcode,
	// location or subtype.
	Search string
}

// IsEmpty reports whether no criteria are set.
func (f SearchFilter) IsEmpty() bool {
	return f == SearchFilter{}
}

// Matches reports whether the item satisfies every set criterion.
func (f SearchFilter) Matches(i *Item) bool {
	if f.Category != "" && i.Category != f.Category {
		return false
	}

	if f.Barcode != "" && !strings.Contains(strings.ToLower(i.Barcode), strings.ToLower(f.Barcode)) {
		return false
	}

	if f.ExpirationStart != "" && i.ExpirationDate < f.ExpirationStart {
		return false
	}

	if f.ExpirationEnd != "" && i.ExpirationDate > f.ExpirationEnd {
		return false
	}

	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(i.Name), q) &&
			!strings.Contains(strings.ToLower(i.Barcode), q) &&
			!strings.Contains(strings.ToLower(i.Location), q) &&
			!strings.Contains(strings.ToLower(i.SubType), q) {
			return false
		}
	}

	return true
}
