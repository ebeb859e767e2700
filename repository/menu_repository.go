package repository

import (
	"gorm.io/gorm"

	"github.com/devnaspi/ThelittlelemonApi/entity"
)

// MenuRepository covers categories and menu items.
type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ----- categories -----

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	if err := r.DB.Order("id").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *MenuRepository) CountCategoriesBySlug(slug string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Category{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MenuRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *MenuRepository) CategoryExists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ----- menu items -----

func (r *MenuRepository) ListMenuItems() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := r.DB.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) FindMenuItem(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateMenuItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) SaveMenuItem(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) DeleteMenuItem(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// CountReferences reports how many cart lines and order lines still point at
// the menu item. Used for the restrict-delete policy.
func (r *MenuRepository) CountReferences(menuItemID uint) (int64, error) {
	var carts, orders int64
	if err := r.DB.Model(&entity.CartItem{}).Where("menu_item_id = ?", menuItemID).Count(&carts).Error; err != nil {
		return 0, err
	}
	if err := r.DB.Model(&entity.OrderItem{}).Where("menu_item_id = ?", menuItemID).Count(&orders).Error; err != nil {
		return 0, err
	}
	return carts + orders, nil
}
