package cryptox

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashSecret("hunter2")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Errorf("hash not in PHC format: %s", hash)
	}
	if strings.Contains(hash, "hunter2") {
		t.Error("hash contains the plaintext secret")
	}

	if err := VerifySecret("hunter2", hash); err != nil {
		t.Errorf("VerifySecret with correct secret: %v", err)
	}
	if err := VerifySecret("hunter3", hash); !errors.Is(err, ErrMismatch) {
		t.Errorf("VerifySecret with wrong secret = %v, want ErrMismatch", err)
	}
}

func TestHashesAreSalted(t *testing.T) {
	a, err := HashSecret("same")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}
	b, err := HashSecret("same")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same secret should differ")
	}
	if err := VerifySecret("same", a); err != nil {
		t.Errorf("verify a: %v", err)
	}
	if err := VerifySecret("same", b); err != nil {
		t.Errorf("verify b: %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1,t=1,p=1$!!$aGFzaA",
	}
	for _, h := range cases {
		if err := VerifySecret("x", h); err == nil {
			t.Errorf("VerifySecret(%q) should fail", h)
		}
	}
}
