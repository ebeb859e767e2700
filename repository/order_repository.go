package repository

import (
	"gorm.io/gorm"

	"github.com/devnaspi/ThelittlelemonApi/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

func (r *OrderRepository) preloaded() *gorm.DB {
	return r.DB.
		Preload("User").
		Preload("OrderItems").
		Preload("OrderItems.MenuItem")
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.preloaded().Where("user_id = ?", userID).Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForCrew(crewID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.preloaded().Where("delivery_crew_id = ?", crewID).Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.preloaded().Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var order entity.Order
	if err := r.preloaded().First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) UpdateOrder(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteOrder removes the order and its lines in one transaction.
func (r *OrderRepository) DeleteOrder(tx *gorm.DB, id uint) error {
	if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, id).Error
}
