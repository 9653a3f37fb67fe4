package useragent

import "context"

type userAgentContextKey struct{}

// WithContext stores ua in ctx.
func WithContext(ctx context.Context, ua UserAgent) context.Context {
	return context.WithValue(ctx, userAgentContextKey{}, ua)
}

// FromContext retrieves the UserAgent stored by WithContext or Middleware.
func FromContext(ctx context.Context) (UserAgent, bool) {
	if ctx == nil {
		return UserAgent{}, false
	}
	ua, ok := ctx.Value(userAgentContextKey{}).(UserAgent)
	return ua, ok
}
