package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// IsStaff checks whether the authenticated user has staff privileges
func IsStaff(c *gin.Context) bool {
	staff, exists := c.Get("is_staff")
	if !exists {
		return false
	}
	isStaff, ok := staff.(bool)
	return ok && isStaff
}

// parseIDParam parses a UUID path parameter, returning nil when malformed
func parseIDParam(c *gin.Context, name string) *uuid.UUID {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return nil
	}
	return &id
}
