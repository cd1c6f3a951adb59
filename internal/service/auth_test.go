package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Yurisurdi/flats/internal/config"
	"github.com/Yurisurdi/flats/internal/errs"
)

func testUsers() []config.User {
	return []config.User{
		{ID: "u1", Username: "yuri", Password: "flats2024", Name: "Yuri", Role: "admin"},
		{ID: "u2", Username: "gestor", Password: "gestor123", Name: "Gestor", Role: "manager"},
	}
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()
	s := NewAuthService(testUsers(), []byte("k"), time.Hour)

	sess, tok, err := s.Login("yuri", "flats2024")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.UserID != "u1" || sess.Name != "Yuri" || sess.Role != "admin" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if tok == "" {
		t.Fatal("empty token")
	}
	if sess.LoginTime.IsZero() {
		t.Fatal("login time not set")
	}

	back, err := s.VerifyToken(tok)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if back.UserID != "u1" || back.Username != "yuri" || back.Role != "admin" {
		t.Fatalf("claims round trip: %+v", back)
	}
}

func TestAuth_LoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	s := NewAuthService(testUsers(), []byte("k"), time.Hour)

	for _, tc := range [][2]string{
		{"yuri", "wrong"},
		{"nobody", "flats2024"},
		{"YURI", "flats2024"}, // exact match, no case folding
		{"", ""},
	} {
		if _, _, err := s.Login(tc[0], tc[1]); !errors.Is(err, errs.ErrUnauthorized) {
			t.Errorf("Login(%q, %q): want ErrUnauthorized, got %v", tc[0], tc[1], err)
		}
	}
}

func TestAuth_VerifyTokenRejectsForgeries(t *testing.T) {
	t.Parallel()
	s := NewAuthService(testUsers(), []byte("k"), time.Hour)
	other := NewAuthService(testUsers(), []byte("different-key"), time.Hour)

	_, tok, err := other.Login("yuri", "flats2024")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := s.VerifyToken(tok); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("foreign signature: want ErrUnauthorized, got %v", err)
	}
	if _, err := s.VerifyToken("not-a-jwt"); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("garbage token: want ErrUnauthorized, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	t.Parallel()
	s := NewAuthService(testUsers(), []byte("k"), time.Hour)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	_, tok, err := s.Login("yuri", "flats2024")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	s.now = time.Now
	if _, err := s.VerifyToken(tok); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("expired token: want ErrUnauthorized, got %v", err)
	}
}

func TestAuth_CredentialMutations(t *testing.T) {
	t.Parallel()
	users := testUsers()
	s := NewAuthService(users, []byte("k"), time.Hour)

	if err := s.UpdateUsername("u1", "yuri2"); err != nil {
		t.Fatalf("UpdateUsername: %v", err)
	}
	if s.VerifyPassword("yuri", "flats2024") {
		t.Fatal("old username still accepted")
	}
	if !s.VerifyPassword("yuri2", "flats2024") {
		t.Fatal("new username rejected")
	}

	if err := s.UpdatePassword("u1", "nova"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	if !s.VerifyPassword("yuri2", "nova") {
		t.Fatal("new password rejected")
	}

	// The config slice is copied; mutations never reach it.
	if users[0].Username != "yuri" || users[0].Password != "flats2024" {
		t.Fatalf("config users mutated: %+v", users[0])
	}

	if err := s.UpdateUsername("u1", ""); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("empty username: want ErrValidation, got %v", err)
	}
	if err := s.UpdatePassword("missing", "x"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("unknown user: want ErrNotFound, got %v", err)
	}
}
