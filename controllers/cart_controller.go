package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/devnaspi/ThelittlelemonApi/pkg/resp"
	"github.com/devnaspi/ThelittlelemonApi/services"
	"github.com/devnaspi/ThelittlelemonApi/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart/menu-items
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	lines, subtotal, err := h.Svc.List(uid)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cartItems": lines, "subtotal": subtotal})
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(uid, &req); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item added to cart"})
}

// DELETE /cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := h.Svc.Clear(uid); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart cleared"})
}
