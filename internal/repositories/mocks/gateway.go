// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"motoradmin/internal/models"

	"github.com/stretchr/testify/mock"
)

type Gateway struct {
	mock.Mock
}

func (m *Gateway) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.UserProfile)
	return rows, args.Error(1)
}

func (m *Gateway) ListCars(ctx context.Context) ([]models.CarListing, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.CarListing)
	return rows, args.Error(1)
}

func (m *Gateway) ListVerificationRequests(ctx context.Context) ([]models.VerificationRequest, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.VerificationRequest)
	return rows, args.Error(1)
}

func (m *Gateway) ProfilesByIDs(ctx context.Context, ids []string) (map[string]models.UserProfile, error) {
	args := m.Called(ctx, ids)
	out, _ := args.Get(0).(map[string]models.UserProfile)
	return out, args.Error(1)
}

func (m *Gateway) GetVerificationRequest(ctx context.Context, id string) (*models.VerificationRequest, error) {
	args := m.Called(ctx, id)
	req, _ := args.Get(0).(*models.VerificationRequest)
	return req, args.Error(1)
}

func (m *Gateway) UpdateVerificationRequest(ctx context.Context, id string, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *Gateway) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *Gateway) DeleteCarsByUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *Gateway) DeleteVerificationRequestsByUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *Gateway) DeleteProfile(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *Gateway) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
