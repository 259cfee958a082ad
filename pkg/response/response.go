package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Successful responses carry the DTO payload directly; internal identifiers
// and absent fields are never serialized. Failures share this envelope.
type ErrorBody struct {
	Status    int         `json:"status"`
	RequestID string      `json:"request_id,omitempty"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

func Error(c *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorBody{
		Status:    status,
		RequestID: c.GetString("request_id"),
		Message:   message,
		Details:   details,
	})
}
