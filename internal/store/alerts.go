package store

import (
	"fmt"

	"github.com/stockroom/stockroom/internal/models"
	"github.com/stockroom/stockroom/internal/util"
)

// Alerts recomputes the alert list from the current items. An item can raise
// a low-stock alert and an expiration alert at the same time. Critical alerts
// come first; within each severity the item insertion order is preserved.
func (inv *Inventory) Alerts() []models.Alert {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	now := inv.now()
	stamp := util.FormatTimestamp(now)

	var critical, warning []models.Alert
	add := func(a models.Alert) {
		if a.Severity == models.SeverityCritical {
			critical = append(critical, a)
		} else {
			warning = append(warning, a)
		}
	}

	for _, id := range inv.itemOrder {
		item := inv.items[id]

		if item.Quantity < inv.opts.LowStockThreshold {
			severity := models.SeverityWarning
			if item.Quantity < inv.opts.CriticalStockThreshold {
				severity = models.SeverityCritical
			}
			add(models.Alert{
				ID:        alertID(models.AlertLowStock, item.ID),
				Type:      models.AlertLowStock,
				ItemID:    item.ID,
				ItemName:  item.Name,
				Message:   fmt.Sprintf("Low stock: only %d units remaining", item.Quantity),
				Severity:  severity,
				CreatedAt: stamp,
			})
		}

		switch {
		case item.IsExpired(now):
			add(models.Alert{
				ID:        alertID(models.AlertExpired, item.ID),
				Type:      models.AlertExpired,
				ItemID:    item.ID,
				ItemName:  item.Name,
				Message:   fmt.Sprintf("Expired on %s", item.ExpirationDate),
				Severity:  models.SeverityCritical,
				CreatedAt: stamp,
			})
		case item.IsExpiringWithin(now, inv.opts.ExpiringWindowDays):
			add(models.Alert{
				ID:        alertID(models.AlertExpiring, item.ID),
				Type:      models.AlertExpiring,
				ItemID:    item.ID,
				ItemName:  item.Name,
				Message:   fmt.Sprintf("Expires on %s (%d days)", item.ExpirationDate, item.DaysUntilExpiration(now)),
				Severity:  models.SeverityWarning,
				CreatedAt: stamp,
			})
		}
	}

	return append(critical, warning...)
}

// alertID derives a stable identifier so the same condition on the same item
// always produces the same alert.
func alertID(alertType models.AlertType, itemID string) string {
	return fmt.Sprintf("alert-%s-%s", alertType, itemID)
}

// Stats aggregates the dashboard numbers. TotalItems sums item quantities,
// not record counts.
func (inv *Inventory) Stats() models.Stats {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	now := inv.now()
	stats := models.Stats{
		TotalBins:         len(inv.binOrder),
		CategoryBreakdown: make(map[string]int),
	}

	for _, id := range inv.itemOrder {
		item := inv.items[id]

		stats.TotalItems += item.Quantity
		stats.CategoryBreakdown[item.Category] += item.Quantity

		if item.Quantity < inv.opts.LowStockThreshold {
			stats.LowStockCount++
		}
		if item.IsExpired(now) || item.IsExpiringWithin(now, inv.opts.ExpiringWindowDays) {
			stats.ExpiringCount++
		}
	}

	return stats
}
