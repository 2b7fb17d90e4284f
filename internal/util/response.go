package util

import (
	"net/http"

	"literacy_dapat_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// The frontend consumes flat JSON bodies: resources are returned as-is,
// informational results as {"message": ...} and failures as either
// {"message": ...} or {"error": ...} depending on the endpoint.

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

func ErrorMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func Unauthorized(c *gin.Context) {
	Message(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context, message string) {
	Message(c, http.StatusForbidden, message)
}

func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

// LogInternalError logs the failure and surfaces the raw error message,
// matching what the API has always returned on 500s.
func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	ErrorMessage(c, http.StatusInternalServerError, err.Error())
}
