package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const timestampLayout = "2006-01-02 15:04:05"

type errorResponse struct {
	Message    string `json:"message" example:"User with id 999 was not found."`
	HTTPStatus string `json:"httpStatus" example:"NOT_FOUND"`
	Timestamp  string `json:"timestamp" example:"2024-05-01 12:30:00"`
}

type successResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Success message"`
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{
		Message:    message,
		HTTPStatus: statusName(statusCode),
		Timestamp:  time.Now().Format(timestampLayout),
	})
}

func newSuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, successResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// statusName turns 404 into NOT_FOUND.
func statusName(code int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))
}
