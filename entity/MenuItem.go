package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title string  `gorm:"not null" json:"title"`
	Price float64 `gorm:"not null" json:"price"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only for detail views

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
