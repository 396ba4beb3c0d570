package models

import "time"

// AnalyticsRecord aggregates sales per product per calendar month. The join
// key is the product *name*, not its ID, so renames and duplicate names
// corrupt aggregation; the intended one-record-per-(name, month) invariant is
// not enforced by the schema.
type AnalyticsRecord struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"index" json:"name"`
	Amount     float64   `json:"amount"`
	TotalSales float64   `json:"totalSales"`
	Views      int       `json:"views"`
	Uptakes    int       `json:"uptakes"`
	Month      time.Time `json:"month"` // bucket key, compared at month granularity
}
