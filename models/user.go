package models

type User struct {
	UserID        uint   `gorm:"primaryKey;autoIncrement" json:"userId"`
	UserEmail     string `gorm:"unique" json:"userEmail"`
	UserAddress   string `json:"userAddress"`
	UserPhoneNo   string `json:"userPhoneNo"`
	UserFirstName string `json:"userFirstName"`
	UserLastName  string `json:"userLastName"`
	UserPassword  string `json:"-"`
}
