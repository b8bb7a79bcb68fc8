package store

import "log/slog"

// SampleItems returns a small demo inventory covering every default category
// plus a few items that trip the low-stock and expiration alerts.
func SampleItems() []AddItemInput {
	return []AddItemInput{
		{Name: "Arduino Uno", Category: "Electronics", Quantity: 25, ExpirationDate: "2026-12-31", Location: "Aisle A-1", Barcode: "ELE001"},
		{Name: "Raspberry Pi 4", Category: "Electronics", Quantity: 8, ExpirationDate: "2026-06-15", Location: "Aisle A-1", Barcode: "ELE002"},
		{Name: "USB-C Cables", Category: "Electronics", Quantity: 3, ExpirationDate: "2027-01-01", Location: "Aisle A-2", Barcode: "ELE003"},
		{Name: "Work Gloves (L)", Category: "Clothing", Quantity: 50, ExpirationDate: "2025-08-20", Location: "Aisle B-1", Barcode: "CLO001"},
		{Name: "Safety Vests", Category: "Clothing", Quantity: 15, ExpirationDate: "2026-03-10", Location: "Aisle B-2", Barcode: "CLO002"},
		{Name: "Canned Beans", Category: "Food", Quantity: 200, ExpirationDate: "2025-12-15", Location: "Aisle C-1", Barcode: "FOO001"},
		{Name: "Protein Bars", Category: "Food", Quantity: 5, ExpirationDate: "2025-12-10", Location: "Aisle C-2", Barcode: "FOO002"},
		{Name: "Power Drill", Category: "Tools", Quantity: 12, ExpirationDate: "2030-01-01", Location: "Aisle D-1", Barcode: "TOO001"},
		{Name: "Screwdriver Set", Category: "Tools", Quantity: 30, ExpirationDate: "2030-01-01", Location: "Aisle D-1", Barcode: "TOO002"},
		{Name: "Steel Sheets", Category: "Raw Materials", Quantity: 45, ExpirationDate: "2030-01-01", Location: "Aisle E-1", Barcode: "RAW001"},
		{Name: "Cardboard Boxes", Category: "Packaging", Quantity: 500, ExpirationDate: "2028-01-01", Location: "Aisle F-1", Barcode: "PAC001"},
		{Name: "Bubble Wrap", Category: "Packaging", Quantity: 2, ExpirationDate: "2027-06-01", Location: "Aisle F-2", Barcode: "PAC002"},
	}
}

// SeedSample loads the demo inventory. Items are only added when the store is
// empty, so re-running with the seed flag is harmless.
func (inv *Inventory) SeedSample() int {
	if len(inv.Items()) > 0 {
		slog.Info("inventory not empty, skipping sample data")
		return 0
	}

	added := 0
	for _, input := range SampleItems() {
		if _, err := inv.AddItem(input); err != nil {
			slog.Warn("skipping sample item", "name", input.Name, "error", err)
			continue
		}
		added++
	}

	slog.Info("sample inventory loaded", "items", added)
	return added
}
