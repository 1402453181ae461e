package logger

import "go.uber.org/zap"

// New creates a production sugared logger named after the service.
// Callers should defer Sync before exiting.
func New(service string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.DisableStacktrace = true

	log, err := config.Build()
	if err != nil {
		panic(err)
	}

	return log.Sugar().Named(service)
}
