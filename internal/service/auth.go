// Package service contains application services for authentication, the
// feature modules and reporting.
package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Yurisurdi/flats/internal/config"
	"github.com/Yurisurdi/flats/internal/errs"
	"github.com/Yurisurdi/flats/internal/model"
)

// AuthService authenticates against the fixed credential list and issues
// session tokens.
type AuthService interface {
	// Login returns a session and a signed token on an exact credential match.
	Login(username, password string) (model.Session, string, error)
	// VerifyToken validates a token and reconstructs its session.
	VerifyToken(token string) (model.Session, error)
	// VerifyPassword reports whether the pair matches a user.
	VerifyPassword(username, password string) bool
	// UpdateUsername mutates a user's login name in place (process lifetime only).
	UpdateUsername(userID, newUsername string) error
	// UpdatePassword mutates a user's password in place (process lifetime only).
	UpdatePassword(userID, newPassword string) error
}

// Credentials are compared in plaintext and mutations live only in memory:
// a known product limitation of the fixed-user model, kept as-is.
type AuthServiceImpl struct {
	mu        sync.Mutex
	users     []config.User
	signKey   []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewAuthService copies the configured user list so in-place credential
// mutations never touch the config.
func NewAuthService(users []config.User, signKey []byte, accessTTL time.Duration) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:     append([]config.User(nil), users...),
		signKey:   signKey,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Login authenticates and issues an HS256 session token.
func (s *AuthServiceImpl) Login(username, password string) (model.Session, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			sess := model.Session{
				UserID:    u.ID,
				Username:  u.Username,
				Name:      u.Name,
				Role:      u.Role,
				LoginTime: s.now(),
			}
			tok, err := s.issueToken(sess)
			if err != nil {
				return model.Session{}, "", err
			}
			return sess, tok, nil
		}
	}
	return model.Session{}, "", errs.ErrUnauthorized
}

func (s *AuthServiceImpl) issueToken(sess model.Session) (string, error) {
	now := s.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
		Username: sess.Username,
		Name:     sess.Name,
		Role:     sess.Role,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.signKey)
}

// VerifyToken parses and validates a session token.
func (s *AuthServiceImpl) VerifyToken(token string) (model.Session, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return model.Session{}, errs.ErrUnauthorized
	}
	return model.Session{
		UserID:    claims.Subject,
		Username:  claims.Username,
		Name:      claims.Name,
		Role:      claims.Role,
		LoginTime: claims.IssuedAt.Time,
	}, nil
}

// VerifyPassword checks a credential pair without issuing a token.
func (s *AuthServiceImpl) VerifyPassword(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return true
		}
	}
	return false
}

// UpdateUsername changes a user's login name.
func (s *AuthServiceImpl) UpdateUsername(userID, newUsername string) error {
	if newUsername == "" {
		return fmt.Errorf("%w: username must not be empty", errs.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == userID {
			s.users[i].Username = newUsername
			return nil
		}
	}
	return errs.ErrNotFound
}

// UpdatePassword changes a user's password.
func (s *AuthServiceImpl) UpdatePassword(userID, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password must not be empty", errs.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == userID {
			s.users[i].Password = newPassword
			return nil
		}
	}
	return errs.ErrNotFound
}
