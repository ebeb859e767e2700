package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devnaspi/ThelittlelemonApi/entity"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	return r.listForUser(r.DB, userID)
}

// ListForUserTx reads the lines through an open transaction, so order
// placement works from a cart snapshot consistent with the clear that
// follows it.
func (r *CartRepository) ListForUserTx(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	return r.listForUser(tx, userID)
}

func (r *CartRepository) listForUser(db *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var lines []entity.CartItem
	err := db.Where("user_id = ?", userID).
		Preload("MenuItem").
		Order("id").
		Find(&lines).Error
	return lines, err
}

// UpsertLine merges into the existing (user, menu item) line if there is one:
// quantity is summed and the unit price refreshed from the latest resolution.
func (r *CartRepository) UpsertLine(tx *gorm.DB, userID, menuItemID uint, qty int, unitPrice float64) error {
	var exist entity.CartItem
	err := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&exist).Error
	if err == nil {
		exist.Quantity += qty
		exist.UnitPrice = unitPrice
		exist.Price = float64(exist.Quantity) * unitPrice
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	line := entity.CartItem{
		UserID:     userID,
		MenuItemID: menuItemID,
		Quantity:   qty,
		UnitPrice:  unitPrice,
		Price:      float64(qty) * unitPrice,
	}
	return tx.Create(&line).Error
}

// Clear removes every line for the user. Clearing an empty cart is a no-op.
func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
