package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// resetTokenBytes is the entropy of a reset ticket. The plaintext is mailed
// to the account holder; only its digest is ever persisted.
const resetTokenBytes = 20

// newResetTicket returns a fresh reset ticket as (plaintext, digest). The
// digest is a plain sha256: the value is high-entropy and single-use, so an
// adaptive hash would add cost without adding protection.
func newResetTicket() (string, string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	plaintext := hex.EncodeToString(b)
	return plaintext, hashResetToken(plaintext), nil
}

// hashResetToken computes the stored form of a reset ticket.
func hashResetToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
