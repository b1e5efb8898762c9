package interfaces

import (
	"context"

	"budget_portal/internal/domain/entities"
)

// ISessionStore keeps live sessions. Get returns ok=false for unknown or
// expired ids; Delete of an unknown id is a no-op.
type ISessionStore interface {
	Save(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, id string) (entities.Session, bool, error)
	Delete(ctx context.Context, id string) error
}

// ITokenIssuer turns a session into the bearer token handed to the portal and
// back into a session id.
type ITokenIssuer interface {
	Issue(s entities.Session) (string, error)
	SessionID(token string) (string, error)
}
