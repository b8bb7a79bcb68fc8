package models

// AlertType classifies a derived alert.
type AlertType string

const (
	AlertLowStock AlertType = "low-stock"
	AlertExpiring AlertType = "expiring"
	AlertExpired  AlertType = "expired"
)

func (t AlertType) String() string {
	return string(t)
}

// AlertSeverity indicates how urgent an alert is.
type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

func (s AlertSeverity) String() string {
	return string(s)
}

// IsCritical reports whether the severity is critical.
func (s AlertSeverity) IsCritical() bool {
	return s == SeverityCritical
}

// Alert is a derived, non-persisted notification about an item. Alerts are
// recomputed on every request; the ID is deterministic (type + item) so a
// given condition always maps to the same alert.
type Alert struct {
	ID        string
	Type      AlertType
	ItemID    string
	ItemName  string
	Message   string
	Severity  AlertSeverity
	CreatedAt string
}

// Stats is the aggregate dashboard view. TotalItems sums item quantities,
// not record counts.
type Stats struct {
	TotalItems        int
	TotalBins         int
	LowStockCount     int
	ExpiringCount     int
	CategoryBreakdown map[string]int
}
