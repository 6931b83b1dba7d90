package middleware

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/point-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestIDFromContext(c),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
					domainerr.CodeInternalServer, "Internal server error", RequestIDFromContext(c),
				))
			}
		}()

		c.Next()
	}
}

// NoRoute answers unknown paths with the standard error body
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		WriteError(c, http.StatusNotFound, domainerr.CodeInvalidRequest, "Resource not found")
	}
}
