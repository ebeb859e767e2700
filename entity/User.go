package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer     = "customer"
	RoleManager      = "manager"
	RoleDeliveryCrew = "delivery-crew"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// Relations — preload only when needed
	Orders    []Order    `json:"-"`
	CartItems []CartItem `json:"-"`
}
