package entity

import (
	"time"
)

// CartItem is one (user, menu item) line. The pair is unique; repeated adds
// merge into the existing row. Lines are ephemeral — cleared carts delete
// their rows outright, so there is no soft-delete column to collide with the
// unique index on a later re-add.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	UserID uint `gorm:"uniqueIndex:idx_cart_user_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unitPrice"`
	Price     float64 `gorm:"not null" json:"price"`
}
