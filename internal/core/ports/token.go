package ports

// SessionTokens issues and verifies the signed, time-boxed session tokens
// that act as the sole authorization credential. Tokens are not persisted and
// cannot be revoked before natural expiry.
type SessionTokens interface {
	Issue(principalID, email string) (string, error)
	// Verify checks signature and expiry. On failure it returns one of the
	// domain token errors, all wrapping domain.ErrTokenInvalid.
	Verify(token string) (principalID, email string, err error)
}
