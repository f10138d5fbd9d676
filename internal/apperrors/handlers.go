package apperrors

import (
	"marketplace_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError translates an AppError into an HTTP response. Server-side errors
// are logged with the wrapped cause; the client only sees the generic message.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "Server error", err, "code", err.Code)
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}
