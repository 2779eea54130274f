// Package auth gates the admin API behind the static operator credentials
// and keeps the operator's session.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"motoradmin/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials never says which field was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidToken       = errors.New("invalid token")
)

// SessionStore persists sessions across restarts.
type SessionStore interface {
	SaveSession(ctx context.Context, sess *Session) error
	LoadSession(ctx context.Context, id string) (*Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// Credentials are the configured operator login. The password is kept
// only as a bcrypt hash.
type Credentials struct {
	Email        string
	passwordHash []byte
}

func NewCredentials(email, password string, cost int) (Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return Credentials{Email: email, passwordHash: hash}, nil
}

func (c Credentials) matches(username, password string) bool {
	if c.Email == "" || username != c.Email {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
}

type Service interface {
	// Login checks the credentials and opens a session.
	Login(ctx context.Context, username, password string) (*Session, string, error)
	// Authenticate restores the session a token points at.
	Authenticate(ctx context.Context, token string) (*Session, error)
	// Save persists changes to a session's view state or confirmation.
	Save(ctx context.Context, sess *Session) error
	// Logout tears the session down.
	Logout(ctx context.Context, sess *Session) error
}

type Config struct {
	Credentials Credentials
	JWTSecret   string
	SessionTTL  time.Duration
}

type service struct {
	cfg   Config
	store SessionStore
	log   *zap.Logger
	now   func() time.Time
}

func NewService(cfg Config, store SessionStore, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{cfg: cfg, store: store, log: log, now: time.Now}
}

func (s *service) Login(ctx context.Context, username, password string) (*Session, string, error) {
	if !s.cfg.Credentials.matches(username, password) {
		s.log.Info("admin login rejected")
		return nil, "", ErrInvalidCredentials
	}

	now := s.now()
	sess := NewSession(uuid.NewString(), username, now)
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, "", fmt.Errorf("failed to save session: %w", err)
	}

	token, err := utils.GenerateToken(sess.ID, sess.Email, s.cfg.JWTSecret, s.cfg.SessionTTL, now)
	if err != nil {
		_ = s.store.DeleteSession(ctx, sess.ID)
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.log.Info("admin logged in", zap.String("session_id", sess.ID))
	return sess, token, nil
}

func (s *service) Authenticate(ctx context.Context, token string) (*Session, error) {
	claims, err := utils.ParseToken(token, s.cfg.JWTSecret)
	if err != nil {
		s.log.Debug("token rejected", zap.Error(err))
		return nil, ErrInvalidToken
	}
	sess, err := s.store.LoadSession(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) Save(ctx context.Context, sess *Session) error {
	return s.store.SaveSession(ctx, sess)
}

func (s *service) Logout(ctx context.Context, sess *Session) error {
	if err := s.store.DeleteSession(ctx, sess.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.log.Info("admin logged out", zap.String("session_id", sess.ID))
	return nil
}
