package common

import (
	"context"
	"fmt"

	"stepsocial/internal/dbmysql"
)

// CallerResolver maps an authenticated identity to the local user row.
type CallerResolver interface {
	ResolveIdentity(ctx context.Context, identity *Identity) (*dbmysql.User, error)
}

// CurrentUser resolves the user behind the request context. Handlers call it
// before any user-scoped operation.
func CurrentUser(ctx context.Context, resolver CallerResolver) (*dbmysql.User, error) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no identity on request", ErrUnauthenticated)
	}
	return resolver.ResolveIdentity(ctx, identity)
}
