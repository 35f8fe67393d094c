package middleware

import "context"

type ctxKey string

const (
	ContextUserID   ctxKey = "user_id"
	ContextUsername ctxKey = "username"
	ContextRole     ctxKey = "role"

	// Флаг для админов — пропускать все role-проверки.
	ContextSkipGuards ctxKey = "skip_guards"
)

func WithSkipGuards(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextSkipGuards, true)
}

func SkipGuards(ctx context.Context) bool {
	v := ctx.Value(ContextSkipGuards)
	b, _ := v.(bool)
	return b
}
