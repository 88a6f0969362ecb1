package handlers

import (
	"net/http"

	"travelapi/internal/domain"

	"github.com/gin-gonic/gin"
)

const MessageMethodNotAllowed = "Method not allowed"

// RespondError sends the standard error payload. "error" carries the
// underlying failure when there is one.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{"message": message}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. fallback is the
// message used for anything that is not a known client error.
func RespondDomainError(c *gin.Context, fallback string, err error) {
	switch {
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	default:
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, fallback, err)
	}
}

func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"message": MessageMethodNotAllowed})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"message": "Route not found",
		"path":    c.Request.URL.Path,
		"method":  c.Request.Method,
	})
}
