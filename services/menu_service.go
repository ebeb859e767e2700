package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devnaspi/ThelittlelemonApi/entity"
	"github.com/devnaspi/ThelittlelemonApi/repository"
)

// MenuService covers categories and menu items. Every mutation here is
// manager-gated at the route level.
type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ----- categories -----

type CategoryIn struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

func (s *MenuService) ListCategories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *MenuService) CreateCategory(in *CategoryIn) (*entity.Category, error) {
	count, err := s.Repo.CountCategoriesBySlug(in.Slug)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}
	cat := &entity.Category{Slug: in.Slug, Title: in.Title}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// ----- menu items -----

type MenuItemIn struct {
	Title      string  `json:"title" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	CategoryID uint    `json:"categoryId" binding:"required"`
}

func (s *MenuService) ListMenuItems() ([]entity.MenuItem, error) {
	return s.Repo.ListMenuItems()
}

func (s *MenuService) GetMenuItem(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindMenuItem(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

func (s *MenuService) CreateMenuItem(in *MenuItemIn) (*entity.MenuItem, error) {
	ok, err := s.Repo.CategoryExists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCategoryNotFound
	}

	item := &entity.MenuItem{Title: in.Title, Price: in.Price, CategoryID: in.CategoryID}
	if err := s.Repo.CreateMenuItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// ReplaceMenuItem is a full-record update; validation failures leave the row
// untouched.
func (s *MenuService) ReplaceMenuItem(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	item, err := s.GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	ok, err := s.Repo.CategoryExists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCategoryNotFound
	}

	item.Title = in.Title
	item.Price = in.Price
	item.CategoryID = in.CategoryID
	if err := s.Repo.SaveMenuItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem restrict-deletes: a menu item still referenced by cart lines
// or order lines stays put.
func (s *MenuService) DeleteMenuItem(id uint) error {
	if _, err := s.GetMenuItem(id); err != nil {
		return err
	}
	refs, err := s.Repo.CountReferences(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrMenuItemInUse
	}
	return s.Repo.DeleteMenuItem(id)
}
