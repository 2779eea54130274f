package repositories

import (
	"context"
	"errors"
	"fmt"

	"motoradmin/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a keyed update or fetch matches no row.
var ErrNotFound = errors.New("record not found")

// Gateway is the query interface over profiles, cars and verification_requests.
type Gateway interface {
	ListProfiles(ctx context.Context) ([]models.UserProfile, error)
	ListCars(ctx context.Context) ([]models.CarListing, error)
	ListVerificationRequests(ctx context.Context) ([]models.VerificationRequest, error)

	// ProfilesByIDs resolves many ids in one query. Ids without a row are
	// absent from the result.
	ProfilesByIDs(ctx context.Context, ids []string) (map[string]models.UserProfile, error)
	GetVerificationRequest(ctx context.Context, id string) (*models.VerificationRequest, error)

	UpdateVerificationRequest(ctx context.Context, id string, fields map[string]interface{}) error
	UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error

	DeleteCarsByUser(ctx context.Context, userID string) error
	DeleteVerificationRequestsByUser(ctx context.Context, userID string) error
	DeleteProfile(ctx context.Context, id string) error

	Ping(ctx context.Context) error
}

type gormGateway struct {
	db *gorm.DB
}

// NewGateway returns a Gateway backed by GORM.
func NewGateway(db *gorm.DB) Gateway {
	return &gormGateway{db: db}
}

func newestFirst(tx *gorm.DB) *gorm.DB {
	return tx.Order("created_at DESC")
}

func (g *gormGateway) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	var rows []models.UserProfile
	if err := g.db.WithContext(ctx).Scopes(newestFirst).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return rows, nil
}

func (g *gormGateway) ListCars(ctx context.Context) ([]models.CarListing, error) {
	var rows []models.CarListing
	if err := g.db.WithContext(ctx).Scopes(newestFirst).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return rows, nil
}

func (g *gormGateway) ListVerificationRequests(ctx context.Context) ([]models.VerificationRequest, error) {
	var rows []models.VerificationRequest
	if err := g.db.WithContext(ctx).Scopes(newestFirst).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list verification requests: %w", err)
	}
	return rows, nil
}

func (g *gormGateway) ProfilesByIDs(ctx context.Context, ids []string) (map[string]models.UserProfile, error) {
	out := make(map[string]models.UserProfile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.UserProfile
	if err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to look up profiles: %w", err)
	}
	for _, p := range rows {
		out[p.ID] = p
	}
	return out, nil
}

func (g *gormGateway) GetVerificationRequest(ctx context.Context, id string) (*models.VerificationRequest, error) {
	var req models.VerificationRequest
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get verification request: %w", err)
	}
	return &req, nil
}

func (g *gormGateway) UpdateVerificationRequest(ctx context.Context, id string, fields map[string]interface{}) error {
	return g.updateByID(ctx, &models.VerificationRequest{}, "verification request", id, fields)
}

func (g *gormGateway) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	return g.updateByID(ctx, &models.UserProfile{}, "profile", id, fields)
}

// updateByID writes fields with a map so NULLs are written too.
func (g *gormGateway) updateByID(ctx context.Context, model interface{}, what, id string, fields map[string]interface{}) error {
	res := g.db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update %s %s: %w", what, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *gormGateway) DeleteCarsByUser(ctx context.Context, userID string) error {
	if err := g.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CarListing{}).Error; err != nil {
		return fmt.Errorf("failed to delete cars of user %s: %w", userID, err)
	}
	return nil
}

func (g *gormGateway) DeleteVerificationRequestsByUser(ctx context.Context, userID string) error {
	if err := g.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.VerificationRequest{}).Error; err != nil {
		return fmt.Errorf("failed to delete verification requests of user %s: %w", userID, err)
	}
	return nil
}

func (g *gormGateway) DeleteProfile(ctx context.Context, id string) error {
	if err := g.db.WithContext(ctx).Where("id = ?", id).Delete(&models.UserProfile{}).Error; err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	return nil
}

func (g *gormGateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
