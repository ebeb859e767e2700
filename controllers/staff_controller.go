package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/devnaspi/ThelittlelemonApi/pkg/resp"
	"github.com/devnaspi/ThelittlelemonApi/services"
)

// StaffController serves both rosters; the role is bound per route so the
// manager and delivery-crew paths share one implementation.
type StaffController struct{ Svc *services.StaffService }

func NewStaffController(s *services.StaffService) *StaffController {
	return &StaffController{Svc: s}
}

// GET /groups/{role}/users
func (h *StaffController) List(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := h.Svc.ListMembers(role)
		if err != nil {
			writeErr(c, err)
			return
		}
		resp.OK(c, members)
	}
}

// POST /groups/{role}/users
func (h *StaffController) Add(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.AddMemberIn
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		user, err := h.Svc.AddMember(role, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		resp.Created(c, gin.H{"id": user.ID, "username": user.Username, "role": user.Role})
	}
}

// GET /groups/{role}/users/:id
func (h *StaffController) Detail(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		member, err := h.Svc.GetMember(role, id)
		if err != nil {
			writeErr(c, err)
			return
		}
		resp.OK(c, member)
	}
}

// DELETE /groups/{role}/users/:id
func (h *StaffController) Remove(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := h.Svc.RemoveMember(role, id); err != nil {
			writeErr(c, err)
			return
		}
		resp.OK(c, gin.H{"message": "user removed from group"})
	}
}
