package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every /v1 endpoint answers with.
type Response struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    any               `json:"data"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func OK(c *gin.Context, message string, data any) {
	Success(c, http.StatusOK, message, data)
}

func Created(c *gin.Context, message string, data any) {
	Success(c, http.StatusCreated, message, data)
}

// Error aborts the chain with an error envelope.
func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Response{
		Status:  StatusError,
		Message: message,
	})
}

func ValidationError(c *gin.Context, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Response{
		Status:  StatusError,
		Message: "validation failed",
		Errors:  fields,
	})
}
