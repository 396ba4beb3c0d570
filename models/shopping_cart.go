package models

// ShoppingCartItem is one line of a user's cart. Product name and cost are
// denormalized at add-to-cart time so the cart survives product edits.
type ShoppingCartItem struct {
	ID           uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint     `gorm:"index" json:"userId"`
	ProdID       uint     `json:"prodId"`
	ProdName     string   `json:"prodName"`
	ProdQuantity int      `json:"prodQuantity"`
	ProdCost     float64  `json:"prodCost"`
	ProdImg      []string `gorm:"serializer:json" json:"prodImg"`
}
