package models

import "time"

// AdminStats is recomputed from the loaded collections on every load.
type AdminStats struct {
	TotalUsers           int     `json:"total_users"`
	VerifiedUsers        int     `json:"verified_users"`
	TotalCars            int     `json:"total_cars"`
	VerifiedCars         int     `json:"verified_cars"`
	FeaturedCars         int     `json:"featured_cars"`
	SoldCars             int     `json:"sold_cars"`
	PendingVerifications int     `json:"pending_verifications"`
	TotalViews           int     `json:"total_views"`
	TotalValue           float64 `json:"total_value"`
}

// Snapshot is one complete load of the three collections.
type Snapshot struct {
	VerificationRequests []VerificationRequestWithUser `json:"verification_requests"`
	Users                []UserProfile                 `json:"users"`
	Cars                 []CarListingWithUser          `json:"cars"`
	Stats                AdminStats                    `json:"stats"`
	LoadedAt             time.Time                     `json:"loaded_at"`
}

// FindRequest returns the loaded request with the given id.
func (s *Snapshot) FindRequest(id string) (*VerificationRequestWithUser, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.VerificationRequests {
		if s.VerificationRequests[i].ID == id {
			return &s.VerificationRequests[i], true
		}
	}
	return nil, false
}

// CarCounts counts loaded listings per owner.
func (s *Snapshot) CarCounts() map[string]int {
	counts := make(map[string]int)
	if s == nil {
		return counts
	}
	for _, c := range s.Cars {
		counts[c.UserID]++
	}
	return counts
}
