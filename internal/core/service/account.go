package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

const defaultResetTTL = 30 * time.Minute

// Accounts implements the credential flows shared by both principal types:
// login, password update, and the reset-token protocol. The company and
// customer services delegate here, parameterized by their own CredentialStore,
// so the two near-identical flows cannot drift apart.
type Accounts struct {
	store       ports.CredentialStore
	hasher      *PasswordHasher
	tokens      ports.SessionTokens
	mailer      ports.Mailer
	frontendURL string
	resetTTL    time.Duration
	log         zerolog.Logger
}

func NewAccounts(
	store ports.CredentialStore,
	hasher *PasswordHasher,
	tokens ports.SessionTokens,
	mailer ports.Mailer,
	frontendURL string,
	resetTTL time.Duration,
	log zerolog.Logger,
) *Accounts {
	if resetTTL <= 0 {
		resetTTL = defaultResetTTL
	}
	return &Accounts{
		store:       store,
		hasher:      hasher,
		tokens:      tokens,
		mailer:      mailer,
		frontendURL: frontendURL,
		resetTTL:    resetTTL,
		log:         log,
	}
}

// Login verifies the credentials and issues a session token. An unknown email
// and a wrong password fail identically with ErrInvalidCredentials.
func (a *Accounts) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	creds, err := a.store.FindCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !a.hasher.Verify(password, creds.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return a.tokens.Issue(creds.ID, creds.Email)
}

// UpdatePassword changes the password of an authenticated principal after
// re-verifying the old one. The stored hash is untouched on any failure.
func (a *Accounts) UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	creds, err := a.store.FindCredentialsByID(ctx, id)
	if err != nil {
		return err
	}

	if !a.hasher.Verify(oldPassword, creds.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return a.store.SetPassword(ctx, id, hash)
}

// ForgotPassword issues a reset ticket: a random value whose sha256 digest is
// persisted with a 30-minute expiry, while the plaintext travels only in the
// email. Delivery failure surfaces to the caller; the persisted digest is
// useless to anyone without the mailed plaintext.
func (a *Accounts) ForgotPassword(ctx context.Context, email string) error {
	creds, err := a.store.FindCredentialsByEmail(ctx, email)
	if err != nil {
		return err
	}

	plaintext, digest, err := newResetTicket()
	if err != nil {
		return fmt.Errorf("generate reset ticket: %w", err)
	}

	expiresAt := time.Now().UTC().Add(a.resetTTL)
	if err := a.store.SetResetToken(ctx, creds.ID, digest, expiresAt); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/api/%s/reset-password/%s", a.frontendURL, a.store.Type(), plaintext)
	msg := ports.Message{
		To:      creds.Email,
		Subject: "Password Reset Request",
		Body: "You are receiving this email because you (or someone else) has requested to reset your password. " +
			"Please make a PUT request to:\n\n " + resetURL,
	}
	if err := a.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}

	a.log.Info().
		Str("principal_type", string(a.store.Type())).
		Str("principal_id", creds.ID).
		Time("expires_at", expiresAt).
		Msg("password reset issued")
	return nil
}

// ResetPassword redeems a reset ticket. The store performs the match-and-clear
// as one conditional update, so a ticket is consumed at most once even under
// concurrent redemption. Wrong, already-redeemed and expired tickets fail
// identically with ErrInvalidResetToken.
//
// The confirmation check runs before redemption: a mismatch must not burn the
// ticket, since the original leaves it intact for a retry.
func (a *Accounts) ResetPassword(ctx context.Context, plaintext, password, confirmPassword string) error {
	if password != confirmPassword {
		return domain.ErrPasswordMismatch
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return err
	}

	creds, err := a.store.RedeemResetToken(ctx, hashResetToken(plaintext), time.Now().UTC(), hash)
	if err != nil {
		return err
	}

	a.log.Info().
		Str("principal_type", string(a.store.Type())).
		Str("principal_id", creds.ID).
		Msg("password reset redeemed")
	return nil
}
