package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthMe reports the current session. Sessions are not implemented, so the
// answer is always 401.
//
// GET /api/auth/me
func AuthMe(c *gin.Context) {
	RespondError(c, http.StatusUnauthorized, "Unauthorized", nil)
}
