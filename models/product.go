package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProdName    string    `gorm:"not null" json:"prodName"`
	ProdDesc    string    `json:"prodDesc"`
	ProdCost    float64   `gorm:"not null" json:"prodCost"`
	ProdVariant string    `json:"prodVariant"`
	ProdImg     []string  `gorm:"serializer:json" json:"prodImg"`
	StockCount  int       `json:"stockCount"` // never negative, though nothing enforces it atomically
	CreatedAt   time.Time `json:"createdAt"`
}
