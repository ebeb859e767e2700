package utils

import "github.com/gin-gonic/gin"

// The auth middleware always stores userId as uint and role as string; a
// missing key means the handler ran without it and gets the zero value.

func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}

func CurrentRole(c *gin.Context) string {
	v, ok := c.Get("role")
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return role
}
