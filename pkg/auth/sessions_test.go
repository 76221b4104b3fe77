package auth

import (
	"strings"
	"testing"
	"time"
)

func TestMakeSessionHandlerRejectsShortSecrets(t *testing.T) {
	if _, err := MakeSessionHandler([]byte("short"), time.Hour); err == nil {
		t.Fatalf("expected error for short secret")
	}

	if _, err := MakeSessionHandler([]byte(strings.Repeat("k", 32)), 0); err == nil {
		t.Fatalf("expected error for zero ttl")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	handler, err := MakeSessionHandler([]byte(strings.Repeat("k", 32)), time.Hour)
	if err != nil {
		t.Fatalf("make handler: %v", err)
	}

	user := SessionUser{ID: 7, Name: "Administrator", Email: "admin@example.test", Role: AdminRole}

	token, err := handler.Generate(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := handler.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if got := claims.SessionUser(); got != user {
		t.Fatalf("unexpected session user: %+v", got)
	}

	if !claims.SessionUser().IsAdmin() {
		t.Fatalf("expected admin role")
	}
}

func TestValidateRejectsForeignTokens(t *testing.T) {
	issuer, _ := MakeSessionHandler([]byte(strings.Repeat("a", 32)), time.Hour)
	verifier, _ := MakeSessionHandler([]byte(strings.Repeat("b", 32)), time.Hour)

	token, err := issuer.Generate(SessionUser{ID: 1, Role: "USER"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.Validate(token); err == nil {
		t.Fatalf("expected validation failure for foreign signature")
	}
}

func TestValidateRejectsExpiredTokens(t *testing.T) {
	handler := SessionHandler{SecretKey: []byte(strings.Repeat("k", 32)), TTL: -time.Minute}

	token, err := handler.Generate(SessionUser{ID: 1, Role: "USER"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := handler.Validate(token); err == nil {
		t.Fatalf("expected validation failure for expired token")
	}
}
