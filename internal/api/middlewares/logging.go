package middleware

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/tejusbharadwaj/bemcost/internal/models"
)

// NewLoggingInterceptor logs every estimation call with its request ID.
func NewLoggingInterceptor(logger logrus.FieldLogger) Interceptor {
	return func(ctx context.Context, req *models.CalculateRequest, handler Handler) ([]byte, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		entry := logger.WithFields(logrus.Fields{
			"request_id": RequestIDFromContext(ctx),
			"address":    req.Location.Address,
			"from":       req.Parameters.FromDatetime,
			"to":         req.Parameters.ToDatetime,
			"group_by":   req.Parameters.GroupBy,
			"duration":   time.Since(start).String(),
		})
		if err != nil {
			entry.WithError(err).Error("Estimation request failed")
			return resp, err
		}

		entry.WithField("size", humanize.Bytes(uint64(len(resp)))).Info("Estimation request completed")
		return resp, nil
	}
}
