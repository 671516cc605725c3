package auth

import (
	"strings"
	"testing"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4) // min cost keeps the test fast

	digest, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if digest == "pw123" || digest == "" {
		t.Fatalf("digest must not equal plaintext: %q", digest)
	}

	ok, err := h.Verify("pw123", digest)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatalf("expected password to verify")
	}
}

func TestBcryptHasher_SaltRandomization(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4)

	d1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	d2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("two digests of the same password must differ")
	}

	for _, d := range []string{d1, d2} {
		ok, err := h.Verify("same-password", d)
		if err != nil || !ok {
			t.Fatalf("digest %q did not verify: ok=%v err=%v", d, ok, err)
		}
	}
}

func TestBcryptHasher_WrongPassword(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4)

	digest, err := h.Hash("correct")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify("incorrect", digest)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatalf("wrong password must not verify")
	}
}

func TestBcryptHasher_CostClamped(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(0)

	digest, err := h.Hash("p")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	// bcrypt digests embed the cost: $2a$04$...
	if !strings.HasPrefix(digest, "$2a$04$") {
		t.Fatalf("expected clamped cost 4 in digest, got %q", digest)
	}
}
