package response

import (
	"context"

	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Domain AppErrors map to their carried
// status; anything else is treated as unexpected, logged server-side, and
// returned as a generic 500.
func Error(c *gin.Context, err error) {
	appErr, ok := err.(*domainerrors.AppError)
	if !ok {
		appErr = domainerrors.InternalError(err)
	}

	if appErr.Code >= 500 {
		logUnexpected(c.Request.Context(), err)
		c.JSON(appErr.Code, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}

func logUnexpected(ctx context.Context, err error) {
	logger.Error(ctx, "unexpected error", zap.Error(err))
}
