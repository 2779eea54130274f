// Package dashboard aggregates the marketplace tables into the snapshot
// the admin views are rendered from.
package dashboard

import (
	"context"
	"sync"
	"time"

	"motoradmin/internal/models"
	"motoradmin/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SnapshotCache persists the latest snapshot between restarts.
type SnapshotCache interface {
	SaveSnapshot(ctx context.Context, snap *models.Snapshot) error
	LoadSnapshot(ctx context.Context) (*models.Snapshot, error)
}

type Service interface {
	// LoadAll fetches and joins all three collections and replaces the
	// current snapshot. On error the previous snapshot is kept.
	LoadAll(ctx context.Context) (*models.Snapshot, error)
	// Current returns the last loaded snapshot, loading one if needed.
	Current(ctx context.Context) (*models.Snapshot, error)
}

type service struct {
	gateway repositories.Gateway
	cache   SnapshotCache
	log     *zap.Logger
	now     func() time.Time

	mu      sync.RWMutex
	current *models.Snapshot
}

func NewService(gateway repositories.Gateway, cache SnapshotCache, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		gateway: gateway,
		cache:   cache,
		log:     log,
		now:     time.Now,
	}
}

func (s *service) LoadAll(ctx context.Context) (*models.Snapshot, error) {
	var (
		requests []models.VerificationRequest
		users    []models.UserProfile
		cars     []models.CarListing
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = s.gateway.ListVerificationRequests(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.gateway.ListProfiles(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cars, err = s.gateway.ListCars(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("failed to load admin data", zap.Error(err))
		return nil, err
	}
	for _, r := range requests {
		if !models.ValidVerificationStatus(r.Status) {
			s.log.Warn("verification request with unknown status",
				zap.String("request_id", r.ID),
				zap.String("status", r.Status),
			)
		}
	}

	var (
		joinedRequests []models.VerificationRequestWithUser
		joinedCars     []models.CarListingWithUser
	)
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		joinedRequests, err = joinRequests(gctx, s.gateway, requests)
		return err
	})
	g.Go(func() error {
		var err error
		joinedCars, err = joinCars(gctx, s.gateway, cars)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("failed to join admin data", zap.Error(err))
		return nil, err
	}

	if users == nil {
		users = []models.UserProfile{}
	}
	snap := &models.Snapshot{
		VerificationRequests: joinedRequests,
		Users:                users,
		Cars:                 joinedCars,
		Stats:                ComputeStats(users, cars, requests),
		LoadedAt:             s.now(),
	}

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.SaveSnapshot(ctx, snap); err != nil {
			s.log.Warn("failed to cache snapshot", zap.Error(err))
		}
	}

	s.log.Debug("admin data loaded",
		zap.Int("users", len(users)),
		zap.Int("cars", len(joinedCars)),
		zap.Int("verification_requests", len(joinedRequests)),
	)
	return snap, nil
}

func (s *service) Current(ctx context.Context) (*models.Snapshot, error) {
	s.mu.RLock()
	snap := s.current
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	if s.cache != nil {
		cached, err := s.cache.LoadSnapshot(ctx)
		if err == nil && cached != nil {
			s.mu.Lock()
			if s.current == nil {
				s.current = cached
			}
			snap = s.current
			s.mu.Unlock()
			return snap, nil
		}
		if err != nil {
			s.log.Debug("no cached snapshot", zap.Error(err))
		}
	}
	return s.LoadAll(ctx)
}
