package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/devnaspi/ThelittlelemonApi/pkg/resp"
	"github.com/devnaspi/ThelittlelemonApi/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// ----- categories -----

// GET /categories
func (h *MenuController) ListCategories(c *gin.Context) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /categories (manager)
func (h *MenuController) CreateCategory(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(&req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, cat)
}

// ----- menu items -----

// GET /menu-items
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Svc.ListMenuItems()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /menu-items (manager)
// Also serves POST /menu-items/:id, the item-scoped create path.
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.CreateMenuItem(&req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /menu-items/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.Svc.GetMenuItem(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, item)
}

// PUT /menu-items/:id (manager)
func (h *MenuController) Replace(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.ReplaceMenuItem(id, &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id (manager)
func (h *MenuController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteMenuItem(id); err != nil {
		writeErr(c, err)
		return
	}
	resp.NoContent(c)
}
