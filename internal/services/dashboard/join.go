package dashboard

import (
	"context"

	"motoradmin/internal/models"
	"motoradmin/internal/repositories"
)

// distinctUserIDs keeps first-seen order.
func distinctUserIDs[T any](rows []T, userID func(T) string) []string {
	seen := make(map[string]struct{}, len(rows))
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		id := userID(r)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// lookupOwners resolves every referenced owner with a single gateway call.
func lookupOwners[T any](ctx context.Context, gw repositories.Gateway, rows []T, userID func(T) string) (map[string]models.UserProfile, error) {
	return gw.ProfilesByIDs(ctx, distinctUserIDs(rows, userID))
}

func ownerOf(owners map[string]models.UserProfile, id string) *models.UserProfile {
	p, ok := owners[id]
	if !ok {
		return nil
	}
	return &p
}

func joinRequests(ctx context.Context, gw repositories.Gateway, rows []models.VerificationRequest) ([]models.VerificationRequestWithUser, error) {
	owners, err := lookupOwners(ctx, gw, rows, func(r models.VerificationRequest) string { return r.UserID })
	if err != nil {
		return nil, err
	}
	out := make([]models.VerificationRequestWithUser, len(rows))
	for i, r := range rows {
		out[i] = models.VerificationRequestWithUser{VerificationRequest: r, User: ownerOf(owners, r.UserID)}
	}
	return out, nil
}

func joinCars(ctx context.Context, gw repositories.Gateway, rows []models.CarListing) ([]models.CarListingWithUser, error) {
	owners, err := lookupOwners(ctx, gw, rows, func(c models.CarListing) string { return c.UserID })
	if err != nil {
		return nil, err
	}
	out := make([]models.CarListingWithUser, len(rows))
	for i, c := range rows {
		out[i] = models.CarListingWithUser{CarListing: c, User: ownerOf(owners, c.UserID)}
	}
	return out, nil
}
