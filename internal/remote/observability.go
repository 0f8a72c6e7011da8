package remote

import "log/slog"

// CallEvent records metadata about a single server call.
type CallEvent struct {
	Method    string
	Path      string
	RequestID string
	Status    int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about server calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"method", event.Method,
		"path", event.Path,
		"request_id", event.RequestID,
		"status", event.Status,
		"latency_ms", event.LatencyMs,
	}
	if event.Success {
		o.logger.Debug("api_call", attrs...)
		return
	}
	o.logger.Warn("api_call", append(attrs, "error_code", event.ErrorCode)...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
