// Package moderation applies the operator's actions to the marketplace
// tables and refreshes the dashboard afterwards.
package moderation

import (
	"context"
	"errors"
	"time"

	"motoradmin/internal/models"
	"motoradmin/internal/repositories"
	"motoradmin/internal/services/dashboard"

	"go.uber.org/zap"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionApprove, ActionReject:
		return a, nil
	}
	return "", ErrInvalidAction
}

// Outcome carries the refreshed snapshot. RefreshErr is set when the action
// was written but the reload failed.
type Outcome struct {
	Snapshot   *models.Snapshot
	RefreshErr error
}

type Service interface {
	ApproveOrReject(ctx context.Context, requestID string, action Action, note string) (*Outcome, error)
	SetUserVerification(ctx context.Context, userID string, verified bool) (*Outcome, error)
	DeleteUser(ctx context.Context, userID string) (*Outcome, error)
}

type service struct {
	gateway   repositories.Gateway
	dashboard dashboard.Service
	log       *zap.Logger
	now       func() time.Time
}

func NewService(gateway repositories.Gateway, dash dashboard.Service, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		gateway:   gateway,
		dashboard: dash,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) ApproveOrReject(ctx context.Context, requestID string, action Action, note string) (*Outcome, error) {
	if _, err := ParseAction(string(action)); err != nil {
		return nil, err
	}

	req, err := s.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.IsPending() {
		return nil, ErrInvalidTransition
	}

	status := models.VerificationRejected
	if action == ActionApprove {
		status = models.VerificationApproved
	}
	var adminNote interface{}
	if note != "" {
		adminNote = note
	}

	steps := []step{{
		name: "update_verification_request",
		run: func(ctx context.Context) error {
			return s.gateway.UpdateVerificationRequest(ctx, requestID, map[string]interface{}{
				"status":     status,
				"admin_note": adminNote,
				"updated_at": s.now(),
			})
		},
	}}
	if action == ActionApprove {
		steps = append(steps, step{
			name: "verify_profile",
			run: func(ctx context.Context) error {
				return s.gateway.UpdateProfile(ctx, req.UserID, verifiedFields(true, s.now()))
			},
		})
	}

	if err := runSteps(ctx, steps...); err != nil {
		s.log.Error("failed to update verification",
			zap.String("request_id", requestID),
			zap.String("action", string(action)),
			zap.Bool("partial", IsPartial(err)),
			zap.Error(err),
		)
		if errors.Is(err, repositories.ErrNotFound) && !IsPartial(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	s.log.Info("verification updated",
		zap.String("request_id", requestID),
		zap.String("status", status),
	)
	return s.refresh(ctx), nil
}

// findRequest prefers the loaded snapshot and falls back to the store.
func (s *service) findRequest(ctx context.Context, id string) (*models.VerificationRequest, error) {
	snap, err := s.dashboard.Current(ctx)
	if err != nil {
		s.log.Warn("no snapshot to resolve verification request", zap.Error(err))
	}
	if found, ok := snap.FindRequest(id); ok {
		req := found.VerificationRequest
		return &req, nil
	}

	req, err := s.gateway.GetVerificationRequest(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func verifiedFields(verified bool, now time.Time) map[string]interface{} {
	if verified {
		return map[string]interface{}{
			"is_verified":         true,
			"verification_status": models.VerificationApproved,
			"verified_at":         now,
		}
	}
	return map[string]interface{}{
		"is_verified":         false,
		"verification_status": nil,
		"verified_at":         nil,
	}
}

func (s *service) SetUserVerification(ctx context.Context, userID string, verified bool) (*Outcome, error) {
	err := s.gateway.UpdateProfile(ctx, userID, verifiedFields(verified, s.now()))
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		s.log.Error("failed to set user verification",
			zap.String("user_id", userID),
			zap.Bool("verified", verified),
			zap.Error(err),
		)
		return nil, err
	}
	s.log.Info("user verification changed", zap.String("user_id", userID), zap.Bool("verified", verified))
	return s.refresh(ctx), nil
}

// DeleteUser removes the user's cars, then their verification requests,
// then the profile.
func (s *service) DeleteUser(ctx context.Context, userID string) (*Outcome, error) {
	err := runSteps(ctx,
		step{name: "delete_cars", run: func(ctx context.Context) error {
			return s.gateway.DeleteCarsByUser(ctx, userID)
		}},
		step{name: "delete_verification_requests", run: func(ctx context.Context) error {
			return s.gateway.DeleteVerificationRequestsByUser(ctx, userID)
		}},
		step{name: "delete_profile", run: func(ctx context.Context) error {
			return s.gateway.DeleteProfile(ctx, userID)
		}},
	)
	if err != nil {
		s.log.Error("failed to delete user",
			zap.String("user_id", userID),
			zap.Bool("partial", IsPartial(err)),
			zap.Error(err),
		)
		return nil, err
	}
	s.log.Info("user and related data deleted", zap.String("user_id", userID))
	return s.refresh(ctx), nil
}

func (s *service) refresh(ctx context.Context) *Outcome {
	snap, err := s.dashboard.LoadAll(ctx)
	if err != nil {
		s.log.Warn("refresh after action failed", zap.Error(err))
	}
	return &Outcome{Snapshot: snap, RefreshErr: err}
}
