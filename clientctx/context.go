// Package clientctx carries the caller's network metadata through a request context.
package clientctx

import "context"

// Context key type
type contextKey string

const clientKey contextKey = "client"

// Client describes who made the request
type Client struct {
	IP        string
	UserAgent string
}

// WithClient adds client metadata to the context
func WithClient(ctx context.Context, client Client) context.Context {
	return context.WithValue(ctx, clientKey, client)
}

// FromContext retrieves client metadata; missing values are empty strings
func FromContext(ctx context.Context) Client {
	client, _ := ctx.Value(clientKey).(Client)
	return client
}
