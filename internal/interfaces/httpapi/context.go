package httpapi

import (
	"context"

	"github.com/riskibarqy/cricket-league/internal/domain/user"
)

type principalKey struct{}

// withPrincipal stores the verified token identity for handlers behind
// RequireAuth.
func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(user.Principal)
	return p, ok
}

// withActor appends the acting user id to log args on authenticated routes.
func withActor(ctx context.Context, args []any) []any {
	p, ok := principalFromContext(ctx)
	if !ok {
		return args
	}
	return append(args, "user_id", p.UserID, "token_id", p.TokenID)
}
