package services

import (
	"errors"
	"testing"
	"time"

	jwtpkg "github.com/endfield/backend/pkg/jwt"
	"github.com/google/uuid"
)

func TestResolveProfile(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewIdentityService(db, cfg)
	p := seedProfile(t, db, "OP-0001", "admin")

	token, err := jwtpkg.GenerateToken(p.ID.String(), cfg.JWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	identity, err := svc.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if identity.Kind != IdentityProfile {
		t.Fatalf("kind = %q, want profile", identity.Kind)
	}
	if identity.ID() != p.ID {
		t.Errorf("id = %s, want %s", identity.ID(), p.ID)
	}
	if !identity.IsAdmin() {
		t.Error("admin profile not recognized as admin")
	}
}

func TestResolveTempop(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewIdentityService(db, cfg)
	tp := seedTempop(t, db, "APP-0001")

	token, _ := jwtpkg.GenerateToken(tp.ID.String(), cfg.JWTSecret, time.Hour)
	identity, err := svc.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if identity.Kind != IdentityTempop {
		t.Fatalf("kind = %q, want tempop", identity.Kind)
	}
	if identity.IsAdmin() {
		t.Error("a tempop can never be admin")
	}
	if identity.UploaderType() != "tempop" {
		t.Errorf("uploader type = %q", identity.UploaderType())
	}
}

func TestResolvePrefersProfileTable(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewIdentityService(db, cfg)
	p := seedProfile(t, db, "OP-0001", "operator")

	token, _ := jwtpkg.GenerateToken(p.ID.String(), cfg.JWTSecret, time.Hour)
	identity, err := svc.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if identity.Kind != IdentityProfile {
		t.Errorf("kind = %q, want profile looked up first", identity.Kind)
	}
}

func TestResolveUnknownSubject(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewIdentityService(db, cfg)

	token, _ := jwtpkg.GenerateToken(uuid.New().String(), cfg.JWTSecret, time.Hour)
	_, err := svc.Resolve(token)
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("err = %v, want ErrAccessDenied", err)
	}
}

func TestResolveRejectsBadTokens(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewIdentityService(db, cfg)
	p := seedProfile(t, db, "OP-0001", "operator")

	cases := map[string]string{
		"garbage": "not-a-token",
	}
	if forged, err := jwtpkg.GenerateToken(p.ID.String(), "other-secret", time.Hour); err == nil {
		cases["forged"] = forged
	}
	if expired, err := jwtpkg.GenerateToken(p.ID.String(), cfg.JWTSecret, -time.Hour); err == nil {
		cases["expired"] = expired
	}
	if nonUUID, err := jwtpkg.GenerateToken("bob", cfg.JWTSecret, time.Hour); err == nil {
		cases["non-uuid subject"] = nonUUID
	}

	for name, token := range cases {
		if _, err := svc.Resolve(token); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("%s: err = %v, want ErrUnauthorized", name, err)
		}
	}
}
