package moderation

import (
	"context"
	"sort"
	"sync"

	"motoradmin/internal/models"
	"motoradmin/internal/repositories"
)

// memoryGateway is an in-memory store with injectable failures.
type memoryGateway struct {
	mu       sync.Mutex
	profiles map[string]models.UserProfile
	cars     map[string]models.CarListing
	requests map[string]models.VerificationRequest
	fail     map[string]error
	calls    []string
}

func newMemoryGateway() *memoryGateway {
	return &memoryGateway{
		profiles: map[string]models.UserProfile{},
		cars:     map[string]models.CarListing{},
		requests: map[string]models.VerificationRequest{},
		fail:     map[string]error{},
	}
}

func (g *memoryGateway) record(op string) error {
	g.calls = append(g.calls, op)
	return g.fail[op]
}

func (g *memoryGateway) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.UserProfile, 0, len(g.profiles))
	for _, p := range g.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (g *memoryGateway) ListCars(ctx context.Context) ([]models.CarListing, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.CarListing, 0, len(g.cars))
	for _, c := range g.cars {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (g *memoryGateway) ListVerificationRequests(ctx context.Context) ([]models.VerificationRequest, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.VerificationRequest, 0, len(g.requests))
	for _, r := range g.requests {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (g *memoryGateway) ProfilesByIDs(ctx context.Context, ids []string) (map[string]models.UserProfile, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := map[string]models.UserProfile{}
	for _, id := range ids {
		if p, ok := g.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (g *memoryGateway) GetVerificationRequest(ctx context.Context, id string) (*models.VerificationRequest, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.requests[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &r, nil
}

func (g *memoryGateway) UpdateVerificationRequest(ctx context.Context, id string, fields map[string]interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("update_request"); err != nil {
		return err
	}
	r, ok := g.requests[id]
	if !ok {
		return repositories.ErrNotFound
	}
	r.Status = fields["status"].(string)
	if note, ok := fields["admin_note"].(string); ok {
		r.AdminNote = &note
	} else {
		r.AdminNote = nil
	}
	g.requests[id] = r
	return nil
}

func (g *memoryGateway) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("update_profile"); err != nil {
		return err
	}
	p, ok := g.profiles[id]
	if !ok {
		return repositories.ErrNotFound
	}
	p.IsVerified = fields["is_verified"].(bool)
	if status, ok := fields["verification_status"].(string); ok {
		p.VerificationStatus = &status
	} else {
		p.VerificationStatus = nil
	}
	g.profiles[id] = p
	return nil
}

func (g *memoryGateway) DeleteCarsByUser(ctx context.Context, userID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("delete_cars"); err != nil {
		return err
	}
	for id, c := range g.cars {
		if c.UserID == userID {
			delete(g.cars, id)
		}
	}
	return nil
}

func (g *memoryGateway) DeleteVerificationRequestsByUser(ctx context.Context, userID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("delete_requests"); err != nil {
		return err
	}
	for id, r := range g.requests {
		if r.UserID == userID {
			delete(g.requests, id)
		}
	}
	return nil
}

func (g *memoryGateway) DeleteProfile(ctx context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("delete_profile"); err != nil {
		return err
	}
	delete(g.profiles, id)
	return nil
}

func (g *memoryGateway) Ping(ctx context.Context) error { return nil }
