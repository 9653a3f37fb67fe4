package useragent

import (
	"context"
	"log/slog"
)

// LogAttr groups the classification of ua under the "user_agent" key.
// Empty attributes are omitted.
func LogAttr(ua UserAgent) slog.Attr {
	attrs := make([]any, 0, 5)
	for _, kv := range []struct{ key, value string }{
		{"browser", ua.BrowserName()},
		{"version", ua.BrowserVersion()},
		{"engine", ua.BrowserEngine()},
		{"os", ua.OperatingSystem()},
		{"device", ua.Device()},
	} {
		if kv.value != "" {
			attrs = append(attrs, slog.String(kv.key, kv.value))
		}
	}
	return slog.Group("user_agent", attrs...)
}

// ContextExtractor returns the LogAttr of the UserAgent stored in ctx.
// Its signature fits slog handler decorators that inject request-scoped
// attributes into every record.
func ContextExtractor(ctx context.Context) (slog.Attr, bool) {
	ua, ok := FromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return LogAttr(ua), true
}
