package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/indianbuddy/personal-finance-manager/internal/errors"
	"github.com/indianbuddy/personal-finance-manager/internal/logger"
)

// ErrorHandler renders the last error a handler attached with c.Error, unless
// a response was already written. Non-AppErrors become INTERNAL_ERROR.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := toAppError(c, c.Errors.Last().Err)
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}

func toAppError(c *gin.Context, err error) *apperrors.AppError {
	log := logger.Get().With(
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", RequestID(c),
	)

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		log.Errorw("unexpected error", "error", err.Error())
		return apperrors.ErrInternalServer
	}
	if appErr.Internal != nil {
		log.Errorw("app error", "code", appErr.Code, "internal", appErr.Internal.Error())
	}
	return appErr
}
