package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"not null" json:"userId"`
	User   User `json:"-"` // preload when the customer name is needed

	DeliveryCrewID *uint `json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status string    `gorm:"not null" json:"status"`
	Total  float64   `gorm:"not null" json:"total"`
	Date   time.Time `gorm:"not null" json:"date"`

	OrderItems []OrderItem `json:"-"` // preload only for detail
}
