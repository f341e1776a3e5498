package utils

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	for _, password := range []string{"p@ss1", "correct horse battery staple", "秘密"} {
		hash, err := HashPassword(password)
		if err != nil {
			t.Fatalf("HashPassword(%q) failed: %v", password, err)
		}
		if hash == password {
			t.Errorf("Digest equals the plaintext for %q", password)
		}
		if !CheckPasswordHash(password, hash) {
			t.Errorf("CheckPasswordHash rejected its own digest for %q", password)
		}
		if CheckPasswordHash(password+"x", hash) {
			t.Errorf("CheckPasswordHash accepted a wrong password for %q", password)
		}
	}
}

func TestHashPasswordSaltsEveryDigest(t *testing.T) {
	h1, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if h1 == h2 {
		t.Error("Two digests of one password matched; the salt is not random")
	}
}

func TestDigestIsSelfDescribing(t *testing.T) {
	hash, err := HashPassword("whatever")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	// bcrypt digests carry algorithm, cost and salt in the string itself
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("Unexpected digest format: %q", hash)
	}
}

func TestCheckPasswordHashMalformedDigest(t *testing.T) {
	if CheckPasswordHash("pw", "not a digest at all") {
		t.Error("Malformed digest verified")
	}
	if CheckPasswordHash("pw", "") {
		t.Error("Empty digest verified")
	}
}
