package useragent

import (
	"io"
	"log/slog"
	"net/http"
)

type middlewareConfig struct {
	logger *slog.Logger
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithMiddlewareLogger logs unrecognized user agents at debug level.
func WithMiddlewareLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Middleware classifies the User-Agent header of every request and stores the
// result in the request context. A nil classifier uses the built-in parser.
func Middleware(c Classifier, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if c == nil {
		c = defaultParser
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua := FromRequest(r, c)
			if ua.IsUnknown() {
				cfg.logger.DebugContext(r.Context(), "unrecognized user agent",
					slog.String("user_agent", ua.UserAgent()),
					slog.String("path", r.URL.Path),
				)
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), ua)))
		})
	}
}
