package httpapi

import (
	"context"

	"github.com/riskibarqy/cricket-live/internal/domain/user"
)

type principalKey struct{}

// anonymousEditor names the writer of a match record when no account
// service gates the write routes.
const anonymousEditor = "anonymous"

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(user.Principal)
	return p, ok && p.UserID != ""
}

// editorFields are the log fields naming who changed a match record.
func editorFields(ctx context.Context) []any {
	p, ok := principalFromContext(ctx)
	if !ok {
		return []any{"editor", anonymousEditor}
	}
	return []any{"editor", p.UserID}
}
