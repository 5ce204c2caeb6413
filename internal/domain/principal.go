package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/pkg/ctxutil"
)

// Principal is an authenticated actor. Creators, reviewers, experts and admins
// share one shape and are told apart by Kind.
type Principal struct {
	Kind PrincipalKind
	ID   uuid.UUID
}

// NewPrincipal builds a principal, rejecting unknown kinds and nil IDs.
func NewPrincipal(kind PrincipalKind, id uuid.UUID) (Principal, error) {
	if !kind.IsValid() {
		return Principal{}, NewValidationError("role", fmt.Sprintf("unknown role %q", kind))
	}
	if id == uuid.Nil {
		return Principal{}, NewValidationError("id", "required")
	}
	return Principal{Kind: kind, ID: id}, nil
}

func (p Principal) String() string {
	return fmt.Sprintf("%s:%s", p.Kind, p.ID)
}

// IsZero reports whether the principal is unset.
func (p Principal) IsZero() bool {
	return p.ID == uuid.Nil
}

// Is reports whether p acts under the given kind.
func (p Principal) Is(kind PrincipalKind) bool {
	return p.Kind == kind
}

// PrincipalFromCtx builds the acting principal from the authenticated user ID
// and role claim stored in ctx.
func PrincipalFromCtx(ctx context.Context) (Principal, bool) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Principal{}, false
	}
	kind := PrincipalKind(ctxutil.RoleFromCtx(ctx))
	if !kind.IsValid() {
		return Principal{}, false
	}
	return Principal{Kind: kind, ID: id}, true
}

// WithPrincipal stores p in ctx the way the auth middleware does.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = ctxutil.WithUserID(ctx, p.ID)
	return ctxutil.WithRole(ctx, string(p.Kind))
}
