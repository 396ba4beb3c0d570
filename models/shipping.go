package models

// ShippingInfo carries a checkout session's delivery details. The wire
// identifier is shippingId, a dedicated key distinct from the other entities'
// plain id column.
type ShippingInfo struct {
	ShippingID uint   `gorm:"primaryKey;autoIncrement" json:"shippingId"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PostCode   string `json:"postCode"`
	State      string `json:"state"`
	UserID     uint   `json:"userId"`
}
