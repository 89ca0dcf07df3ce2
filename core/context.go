package core

import "context"

type suppressHeaderKey struct{}

// WithSuppressHeader marks the context so executors skip the stderr header.
// The MCP server uses it because its stdio carries the protocol.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey{}, true)
}

func shouldSuppressHeader(ctx context.Context) bool {
	suppress, _ := ctx.Value(suppressHeaderKey{}).(bool)
	return suppress
}
