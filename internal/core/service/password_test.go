package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}

	if !h.Verify("s3cret", digest) {
		t.Fatalf("expected verification to succeed")
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("expected verification to fail for wrong password")
	}
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	if h.Verify("anything", "not-a-bcrypt-digest") {
		t.Fatalf("expected verification to fail for malformed digest")
	}
}

func TestPasswordHasher_DefaultCost(t *testing.T) {
	h := NewPasswordHasher(0)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, h.cost)
	}
}

func TestResetTicket_DigestMatchesPlaintext(t *testing.T) {
	plaintext, digest, err := newResetTicket()
	if err != nil {
		t.Fatalf("newResetTicket returned error: %v", err)
	}
	if len(plaintext) != resetTokenBytes*2 {
		t.Fatalf("unexpected plaintext length: %d", len(plaintext))
	}
	if hashResetToken(plaintext) != digest {
		t.Fatalf("digest does not match plaintext")
	}
	if plaintext == digest {
		t.Fatalf("plaintext must differ from its digest")
	}
}
