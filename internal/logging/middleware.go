package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

type logDataContextKey struct{}

// Middleware attaches a LogData to every request context and logs one
// structured line per request with the collected fields and timings.
func Middleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(logger)

		if requestID, err := uuid.NewV4(); err == nil {
			logData.AddData("requestID", requestID.String())
		}
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		endTimer := logData.AddTiming("durationMs")
		next(huma.WithValue(ctx, logDataContextKey{}, logData))
		endTimer()

		logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
	}
}

// GetLogData returns the request's LogData, or nil outside a request.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}
