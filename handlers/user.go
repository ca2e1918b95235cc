package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akashasahu07/Linkedin-Clone/middleware"
)

// Me returns the identity the auth gate resolved for this request.
func (h *Handler) Me(c *gin.Context) {
	user, ok := middleware.AuthedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, user.Public())
}
