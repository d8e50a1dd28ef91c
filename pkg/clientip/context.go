package clientip

import (
	"context"
	"log/slog"
)

type ipKey struct{}

func SetIPToContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ipKey{}, ip)
}

// GetIPFromContext returns the address stored by Middleware, or "".
func GetIPFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(ipKey{}).(string)
	return ip
}

// LogExtractor returns a context extractor for logger.WithContextExtractors
// that adds client_ip when the context carries one.
func LogExtractor() func(context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := GetIPFromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
