package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const secret = "unit-test-secret"

func TestRoundtrip(t *testing.T) {
	token, err := GenerateToken("3d1f6cce-9f2d-4c1a-8e37-000000000001", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	sub, err := SubjectFromToken(token, secret)
	if err != nil {
		t.Fatalf("SubjectFromToken: %v", err)
	}
	if sub != "3d1f6cce-9f2d-4c1a-8e37-000000000001" {
		t.Errorf("subject = %q", sub)
	}
}

func TestWrongSecret(t *testing.T) {
	token, err := GenerateToken("someone", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken(token, "a-different-secret"); err == nil {
		t.Fatal("token signed with another secret validated")
	}
}

func TestExpired(t *testing.T) {
	token, err := GenerateToken("someone", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	_, err = ValidateToken(token, secret)
	if err == nil {
		t.Fatal("expired token validated")
	}
	if !errors.Is(err, jwtlib.ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired in chain", err)
	}
}

func TestGarbage(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := ValidateToken(token, secret); err == nil {
			t.Errorf("garbage token %q validated", token)
		}
	}
}

func TestRejectsNoneAlgorithm(t *testing.T) {
	unsigned := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.RegisteredClaims{
		Subject:   "someone",
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}
	if _, err := ValidateToken(token, secret); err == nil {
		t.Fatal("alg=none token validated")
	}
}

func TestMissingSubject(t *testing.T) {
	token, err := GenerateToken("", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := SubjectFromToken(token, secret); !errors.Is(err, ErrMissingSubject) {
		t.Fatalf("err = %v, want ErrMissingSubject", err)
	}
}

func TestTokenShape(t *testing.T) {
	token, err := GenerateToken("someone", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Errorf("token is not a compact JWS: %q", token)
	}
}
