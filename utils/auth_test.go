package utils

import "testing"

func TestExtractNameFromEmail(t *testing.T) {
	cases := map[string]string{
		"alice@example.com": "alice",
		"bob.smith@x.io":    "bob.smith",
		"noatsign":          "noatsign",
	}
	for email, want := range cases {
		if got := ExtractNameFromEmail(email); got != want {
			t.Errorf("ExtractNameFromEmail(%q) = %q, want %q", email, got, want)
		}
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("flat-white")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPasswordHash("flat-white", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("cortado", hash) {
		t.Error("wrong password accepted")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret", 60)

	token, err := GenerateJWTToken("u1", "alice@example.com", true)
	if err != nil {
		t.Fatalf("GenerateJWTToken failed: %v", err)
	}

	claims, err := ParseJWTToken(token)
	if err != nil {
		t.Fatalf("ParseJWTToken failed: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "alice@example.com" || !claims.IsModerator {
		t.Errorf("claims round-trip mismatch: %+v", claims)
	}
}

func TestJWTRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret", 60)
	if _, err := ParseJWTToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
