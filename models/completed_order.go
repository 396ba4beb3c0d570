package models

import "time"

// CompletedOrder is an audit row written at checkout, one per purchased cart
// line. Nothing in the checkout flow reads it back.
type CompletedOrder struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef     string    `gorm:"index" json:"orderRef"`
	UserID       uint      `json:"userId"`
	ProdID       uint      `json:"prodId"`
	ProdName     string    `json:"prodName"`
	ProdQuantity int       `json:"prodQuantity"`
	ProdCost     float64   `json:"prodCost"`
	CreatedAt    time.Time `json:"createdAt"`
}
