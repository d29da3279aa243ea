package ports

import (
	"context"
	"time"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
)

// PrincipalStore is the minimal lookup capability the auth guard needs to
// resolve a verified token into a live account of one specific type.
type PrincipalStore interface {
	// Type tags every principal resolved through this store.
	Type() domain.PrincipalType
	FindCredentialsByID(ctx context.Context, id string) (*domain.Credentials, error)
}

// CredentialStore is the principal-type-agnostic persistence surface used by
// the shared credential flows. Both the company and the customer repository
// implement it against their own collection.
type CredentialStore interface {
	PrincipalStore

	FindCredentialsByEmail(ctx context.Context, email string) (*domain.Credentials, error)

	// SetPassword replaces the stored password hash.
	SetPassword(ctx context.Context, id, passwordHash string) error

	// SetResetToken persists a hashed reset ticket with an absolute expiry.
	SetResetToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error

	// RedeemResetToken atomically matches an unexpired ticket hash, replaces
	// the password hash and clears both reset fields in a single update, so
	// concurrent redemption attempts consume the ticket at most once.
	// Returns domain.ErrInvalidResetToken when nothing matches.
	RedeemResetToken(ctx context.Context, tokenHash string, now time.Time, passwordHash string) (*domain.Credentials, error)
}
