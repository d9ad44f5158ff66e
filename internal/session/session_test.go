package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

// testToken builds an unsigned JWT with the given claims payload.
func testToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatal(err)
	}
	body := base64.RawURLEncoding.EncodeToString(payload)
	sig := base64.RawURLEncoding.EncodeToString([]byte("sig"))
	return header + "." + body + "." + sig
}

func TestDecodeIdentity(t *testing.T) {
	token := testToken(t, map[string]interface{}{"id": 42, "username": "abbie"})

	ident := DecodeIdentity(token)
	if ident.UserID != 42 {
		t.Errorf("UserID = %d, want 42", ident.UserID)
	}
	if ident.Username != "abbie" {
		t.Errorf("Username = %q, want %q", ident.Username, "abbie")
	}
}

func TestDecodeIdentityMissingClaims(t *testing.T) {
	token := testToken(t, map[string]interface{}{"sub": "whatever"})

	ident := DecodeIdentity(token)
	if ident.UserID != -1 {
		t.Errorf("UserID = %d, want -1 for missing id claim", ident.UserID)
	}
	if ident.Username != "User" {
		t.Errorf("Username = %q, want default", ident.Username)
	}
}

func TestDecodeIdentityGarbage(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt", "a.b", "x.y.z"} {
		ident := DecodeIdentity(token)
		if ident.UserID != -1 {
			t.Errorf("DecodeIdentity(%q).UserID = %d, want -1", token, ident.UserID)
		}
	}
}

func TestStoreRoundTrip(t *testing.T) {
	keyring.MockInit()
	store := NewStore(t.TempDir())

	token := testToken(t, map[string]interface{}{"id": 7, "username": "abbie"})
	if err := store.Save(token, "abbie", 7); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if got != token {
		t.Errorf("Token() = %q, want stored token", got)
	}

	profile, err := store.Profile()
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if profile.Username != "abbie" || profile.UserID != 7 {
		t.Errorf("Profile() = %+v", profile)
	}
}

func TestStoreClear(t *testing.T) {
	keyring.MockInit()
	store := NewStore(t.TempDir())

	if err := store.Save("tok", "abbie", 7); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if _, err := store.Token(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Token() after Clear = %v, want ErrNoSession", err)
	}
	if _, err := store.Profile(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Profile() after Clear = %v, want ErrNoSession", err)
	}
}

func TestStoreEmpty(t *testing.T) {
	keyring.MockInit()
	store := NewStore(t.TempDir())

	if _, err := store.Token(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Token() = %v, want ErrNoSession", err)
	}
	if _, err := store.Profile(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Profile() = %v, want ErrNoSession", err)
	}
}
