package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/devnaspi/ThelittlelemonApi/pkg/resp"
	"github.com/devnaspi/ThelittlelemonApi/services"
	"github.com/devnaspi/ThelittlelemonApi/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// GET /orders — role-scoped listing
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	orders, err := h.Svc.ListFor(uid, role)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// POST /orders — place the current cart as an order (customer only, enforced
// at the route)
func (h *OrderController) Place(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	order, err := h.Svc.PlaceOrder(uid)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	id, ok := idParam(c)
	if !ok {
		return
	}
	order, err := h.Svc.Get(uid, role, id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id — status and crew assignment
func (h *OrderController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	id, ok := idParam(c)
	if !ok {
		return
	}
	var req services.UpdateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Update(uid, role, id, &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id (manager)
func (h *OrderController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		writeErr(c, err)
		return
	}
	resp.NoContent(c)
}
