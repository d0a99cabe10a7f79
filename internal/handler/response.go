package handler

import (
	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope of every JSON response. The HTTP status code carries the real outcome.
// swagger:model
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// Respond writes data wrapped in a success envelope.
func Respond(c *gin.Context, code int, data any, message string) {
	c.JSON(code, Response{
		Status:  StatusSuccess,
		Data:    data,
		Message: message,
	})
}

// RespondError writes message wrapped in an error envelope.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Status:  StatusError,
		Message: message,
	})
}
