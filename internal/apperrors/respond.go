package apperrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond writes err to the client. AppErrors carry their own status and
// message; anything else becomes a generic 500 so storage internals never
// leak into responses.
func Respond(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPCode, gin.H{
			"error":   http.StatusText(appErr.HTTPCode),
			"message": appErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   http.StatusText(http.StatusInternalServerError),
		"message": ErrInternal.Message,
	})
}
