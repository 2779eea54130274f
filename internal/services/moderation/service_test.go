package moderation

import (
	"context"
	"errors"
	"testing"

	"motoradmin/internal/models"
	"motoradmin/internal/repositories"
	"motoradmin/internal/repositories/mocks"
	"motoradmin/internal/services/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seededGateway() *memoryGateway {
	g := newMemoryGateway()
	g.profiles["u1"] = models.UserProfile{ID: "u1", Email: "john@example.com"}
	g.profiles["u2"] = models.UserProfile{ID: "u2", Email: "mary@example.com"}
	g.cars["c1"] = models.CarListing{ID: "c1", UserID: "u1"}
	g.cars["c2"] = models.CarListing{ID: "c2", UserID: "u1"}
	g.cars["c3"] = models.CarListing{ID: "c3", UserID: "u2"}
	g.requests["r1"] = models.VerificationRequest{ID: "r1", UserID: "u1", Status: models.VerificationPending}
	g.requests["r2"] = models.VerificationRequest{ID: "r2", UserID: "u2", Status: models.VerificationPending}
	g.requests["r3"] = models.VerificationRequest{ID: "r3", UserID: "u2", Status: models.VerificationRejected}
	return g
}

func newServiceOver(t *testing.T, g *memoryGateway) (Service, dashboard.Service) {
	t.Helper()
	dash := dashboard.NewService(g, nil, nil)
	_, err := dash.LoadAll(context.Background())
	require.NoError(t, err)
	return NewService(g, dash, nil), dash
}

func TestApprove_SetsRequestAndOwner(t *testing.T) {
	g := seededGateway()
	svc, _ := newServiceOver(t, g)

	out, err := svc.ApproveOrReject(context.Background(), "r1", ActionApprove, "")
	require.NoError(t, err)
	require.NoError(t, out.RefreshErr)

	assert.Equal(t, models.VerificationApproved, g.requests["r1"].Status)
	assert.Nil(t, g.requests["r1"].AdminNote)
	assert.True(t, g.profiles["u1"].IsVerified)
	assert.Equal(t, models.VerificationApproved, *g.profiles["u1"].VerificationStatus)

	req, ok := out.Snapshot.FindRequest("r1")
	require.True(t, ok)
	assert.Equal(t, models.VerificationApproved, req.Status)
	assert.True(t, req.User.IsVerified)
	assert.Equal(t, 1, out.Snapshot.Stats.VerifiedUsers)
	assert.Equal(t, []string{"update_request", "update_profile"}, g.calls)
}

func TestReject_StoresNoteAndLeavesOwner(t *testing.T) {
	g := seededGateway()
	svc, _ := newServiceOver(t, g)

	_, err := svc.ApproveOrReject(context.Background(), "r2", ActionReject, "blurry photo")
	require.NoError(t, err)

	assert.Equal(t, models.VerificationRejected, g.requests["r2"].Status)
	require.NotNil(t, g.requests["r2"].AdminNote)
	assert.Equal(t, "blurry photo", *g.requests["r2"].AdminNote)
	assert.False(t, g.profiles["u2"].IsVerified)
	assert.Equal(t, []string{"update_request"}, g.calls)
}

func TestApproveOrReject_Guards(t *testing.T) {
	g := seededGateway()
	svc, _ := newServiceOver(t, g)
	ctx := context.Background()

	_, err := svc.ApproveOrReject(ctx, "r1", Action("escalate"), "")
	assert.ErrorIs(t, err, ErrInvalidAction)

	_, err = svc.ApproveOrReject(ctx, "missing", ActionApprove, "")
	assert.ErrorIs(t, err, ErrRequestNotFound)

	_, err = svc.ApproveOrReject(ctx, "r3", ActionApprove, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.Empty(t, g.calls, "no write for rejected input")
}

func TestApprove_ProfileFailureIsPartial(t *testing.T) {
	g := seededGateway()
	svc, _ := newServiceOver(t, g)
	g.fail["update_profile"] = errors.New("row level security")

	_, err := svc.ApproveOrReject(context.Background(), "r1", ActionApprove, "")
	require.Error(t, err)
	assert.True(t, IsPartial(err))

	var pe *PartialCompletionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{"update_verification_request"}, pe.Completed)
	assert.Equal(t, "verify_profile", pe.Failed)
	assert.Contains(t, err.Error(), "row level security")

	// left approved, owner untouched
	assert.Equal(t, models.VerificationApproved, g.requests["r1"].Status)
	assert.False(t, g.profiles["u1"].IsVerified)
}

func TestApprove_MissingOwnerIsPartial(t *testing.T) {
	g := seededGateway()
	g.requests["r4"] = models.VerificationRequest{ID: "r4", UserID: "gone", Status: models.VerificationPending}
	svc, _ := newServiceOver(t, g)

	_, err := svc.ApproveOrReject(context.Background(), "r4", ActionApprove, "")
	var pe *PartialCompletionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "verify_profile", pe.Failed)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.NotErrorIs(t, err, ErrRequestNotFound)
	assert.Equal(t, models.VerificationApproved, g.requests["r4"].Status)
}

func TestApprove_RequestFailureSkipsProfile(t *testing.T) {
	g := seededGateway()
	svc, _ := newServiceOver(t, g)
	g.fail["update_request"] = errors.New("network unreachable")

	_, err := svc.ApproveOrReject(context.Background(), "r1", ActionApprove, "")
	require.EqualError(t, err, "network unreachable")
	assert.False(t, IsPartial(err))
	assert.Equal(t, []string{"update_request"}, g.calls)
	assert.False(t, g.profiles["u1"].IsVerified)
}

func TestDeleteUser_RemovesEverything(t *testing.T) {
	g := seededGateway()
	svc, _ := newServiceOver(t, g)

	out, err := svc.DeleteUser(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, []string{"delete_cars", "delete_requests", "delete_profile"}, g.calls)
	for _, c := range g.cars {
		assert.NotEqual(t, "u1", c.UserID)
	}
	for _, r := range g.requests {
		assert.NotEqual(t, "u1", r.UserID)
	}
	_, ok := g.profiles["u1"]
	assert.False(t, ok)

	assert.Equal(t, 1, out.Snapshot.Stats.TotalUsers)
	assert.Equal(t, 1, out.Snapshot.Stats.TotalCars)
}

func TestDeleteUser_FirstStepFailureChangesNothing(t *testing.T) {
	g := seededGateway()
	svc, _ := newServiceOver(t, g)
	g.fail["delete_cars"] = errors.New("permission denied")

	_, err := svc.DeleteUser(context.Background(), "u1")
	require.EqualError(t, err, "permission denied")
	assert.False(t, IsPartial(err))

	assert.Equal(t, []string{"delete_cars"}, g.calls)
	assert.Len(t, g.cars, 3)
	assert.Len(t, g.requests, 3)
	assert.Len(t, g.profiles, 2)
}

func TestDeleteUser_LaterFailureIsPartial(t *testing.T) {
	g := seededGateway()
	svc, _ := newServiceOver(t, g)
	g.fail["delete_profile"] = errors.New("foreign key violation")

	_, err := svc.DeleteUser(context.Background(), "u1")
	var pe *PartialCompletionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{"delete_cars", "delete_verification_requests"}, pe.Completed)
	assert.Equal(t, "delete_profile", pe.Failed)

	_, ok := g.profiles["u1"]
	assert.True(t, ok, "profile remains after the failed last step")
	assert.Len(t, g.cars, 1)
}

func TestSetUserVerification(t *testing.T) {
	g := seededGateway()
	svc, _ := newServiceOver(t, g)
	ctx := context.Background()

	_, err := svc.SetUserVerification(ctx, "u2", true)
	require.NoError(t, err)
	assert.True(t, g.profiles["u2"].IsVerified)
	assert.Equal(t, models.VerificationApproved, *g.profiles["u2"].VerificationStatus)

	out, err := svc.SetUserVerification(ctx, "u2", false)
	require.NoError(t, err)
	assert.False(t, g.profiles["u2"].IsVerified)
	assert.Nil(t, g.profiles["u2"].VerificationStatus)
	assert.Equal(t, 0, out.Snapshot.Stats.VerifiedUsers)

	_, err = svc.SetUserVerification(ctx, "ghost", true)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// MockDashboard stands in for the aggregation service.
type MockDashboard struct {
	mock.Mock
}

func (m *MockDashboard) LoadAll(ctx context.Context) (*models.Snapshot, error) {
	args := m.Called(ctx)
	snap, _ := args.Get(0).(*models.Snapshot)
	return snap, args.Error(1)
}

func (m *MockDashboard) Current(ctx context.Context) (*models.Snapshot, error) {
	args := m.Called(ctx)
	snap, _ := args.Get(0).(*models.Snapshot)
	return snap, args.Error(1)
}

func TestApprove_UsesLoadedOwnerAndReportsRefreshFailure(t *testing.T) {
	gw := new(mocks.Gateway)
	dash := new(MockDashboard)

	// the loaded record is authoritative for user_id
	dash.On("Current", mock.Anything).Return(&models.Snapshot{
		VerificationRequests: []models.VerificationRequestWithUser{{
			VerificationRequest: models.VerificationRequest{ID: "r1", UserID: "u7", Status: models.VerificationPending},
		}},
	}, nil)
	gw.On("UpdateVerificationRequest", mock.Anything, "r1", mock.MatchedBy(func(f map[string]interface{}) bool {
		return f["status"] == models.VerificationApproved && f["admin_note"] == nil && f["updated_at"] != nil
	})).Return(nil).Once()
	gw.On("UpdateProfile", mock.Anything, "u7", mock.MatchedBy(func(f map[string]interface{}) bool {
		return f["is_verified"] == true && f["verification_status"] == models.VerificationApproved
	})).Return(nil).Once()
	dash.On("LoadAll", mock.Anything).Return(nil, errors.New("load failed"))

	svc := NewService(gw, dash, nil)
	out, err := svc.ApproveOrReject(context.Background(), "r1", ActionApprove, "")
	require.NoError(t, err)
	assert.EqualError(t, out.RefreshErr, "load failed")

	gw.AssertExpectations(t)
	gw.AssertNotCalled(t, "GetVerificationRequest", mock.Anything, mock.Anything)
	dash.AssertExpectations(t)
}

func TestApprove_FallsBackToStoreLookup(t *testing.T) {
	gw := new(mocks.Gateway)
	dash := new(MockDashboard)

	dash.On("Current", mock.Anything).Return(nil, errors.New("store offline"))
	gw.On("GetVerificationRequest", mock.Anything, "r9").
		Return(&models.VerificationRequest{ID: "r9", UserID: "u9", Status: models.VerificationPending}, nil)
	gw.On("UpdateVerificationRequest", mock.Anything, "r9", mock.Anything).Return(nil)
	dash.On("LoadAll", mock.Anything).Return(&models.Snapshot{}, nil)

	svc := NewService(gw, dash, nil)
	_, err := svc.ApproveOrReject(context.Background(), "r9", ActionReject, "expired id")
	require.NoError(t, err)
	gw.AssertCalled(t, "UpdateVerificationRequest", mock.Anything, "r9", mock.MatchedBy(func(f map[string]interface{}) bool {
		return f["status"] == models.VerificationRejected && f["admin_note"] == "expired id"
	}))
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("approve")
	require.NoError(t, err)
	assert.Equal(t, ActionApprove, a)
	_, err = ParseAction("delete")
	assert.ErrorIs(t, err, ErrInvalidAction)
}
