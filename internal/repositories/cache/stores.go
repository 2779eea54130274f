package cache

import (
	"context"
	"time"

	"motoradmin/internal/models"
	"motoradmin/internal/services/auth"
)

var snapshotKey = GenerateKey("admin", "snapshot", "current")

// SnapshotStore keeps the last aggregated snapshot so a restarted
// instance can answer before its first load.
type SnapshotStore struct {
	cache *CacheService
	ttl   time.Duration
}

func NewSnapshotStore(c *CacheService, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{cache: c, ttl: ttl}
}

func (s *SnapshotStore) SaveSnapshot(ctx context.Context, snap *models.Snapshot) error {
	return s.cache.SetWithTTL(ctx, snapshotKey, snap, s.ttl)
}

func (s *SnapshotStore) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	var snap models.Snapshot
	found, err := s.cache.Get(ctx, snapshotKey, &snap)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrMiss
	}
	return &snap, nil
}

// SessionStore persists operator sessions with a sliding TTL.
type SessionStore struct {
	cache *CacheService
	ttl   time.Duration
}

func NewSessionStore(c *CacheService, ttl time.Duration) *SessionStore {
	return &SessionStore{cache: c, ttl: ttl}
}

func sessionKey(id string) string {
	return GenerateKey("admin", "session", id)
}

func (s *SessionStore) SaveSession(ctx context.Context, sess *auth.Session) error {
	return s.cache.SetWithTTL(ctx, sessionKey(sess.ID), sess, s.ttl)
}

func (s *SessionStore) LoadSession(ctx context.Context, id string) (*auth.Session, error) {
	var sess auth.Session
	found, err := s.cache.Get(ctx, sessionKey(id), &sess)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, auth.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKey(id))
}
