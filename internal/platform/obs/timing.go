package obs

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time logs the duration of an operation, tagging the request id when
// the context carries one. Use with a named error return:
//
//	defer obs.Time(ctx, log, "op")(&err)
func Time(ctx context.Context, log *logrus.Logger, name string) func(errp *error) {
	start := time.Now()

	if log == nil {
		log = logrus.StandardLogger()
	}

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		fields := logrus.Fields{
			"req_id": reqID,
			"op":     name,
			"dur_ms": time.Since(start).Milliseconds(),
		}

		if errp != nil && *errp != nil {
			log.WithFields(fields).WithError(*errp).Warn("operation failed")
			return
		}
		log.WithFields(fields).Debug("operation complete")
	}
}
