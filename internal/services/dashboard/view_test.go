package dashboard

import (
	"fmt"
	"testing"

	"motoradmin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleSnapshot() *models.Snapshot {
	john := models.UserProfile{ID: "u1", Email: "john@example.com", FullName: strPtr("John Carter")}
	return &models.Snapshot{
		Users: []models.UserProfile{
			john,
			{ID: "u2", Email: "mary@example.com", FullName: strPtr("Mary Johnson")},
			{ID: "u3", Email: "sam@example.com"},
			{ID: "u4", Email: "", FullName: strPtr("Johnny NoEmail")},
			{ID: "u5", Email: "JOHNDOE@EXAMPLE.COM"},
		},
		VerificationRequests: []models.VerificationRequestWithUser{
			{VerificationRequest: models.VerificationRequest{ID: "r1", UserID: "u1", DocumentType: "cnic"}, User: &john},
			{VerificationRequest: models.VerificationRequest{ID: "r2", UserID: "u9", DocumentType: "passport"}},
			{VerificationRequest: models.VerificationRequest{ID: "r3", UserID: "u1", DocumentType: ""}, User: &john},
		},
		Cars: []models.CarListingWithUser{
			{CarListing: models.CarListing{ID: "c1", UserID: "u1"}},
			{CarListing: models.CarListing{ID: "c2", UserID: "u1"}},
		},
	}
}

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		switch v := r.(type) {
		case UserRecord:
			out[i] = v.ID
		case VerificationRecord:
			out[i] = v.ID
		}
	}
	return out
}

func TestParseTab(t *testing.T) {
	for _, name := range []string{"overview", "users", "verifications"} {
		tab, err := ParseTab(name)
		require.NoError(t, err)
		assert.Equal(t, Tab(name), tab)
	}
	_, err := ParseTab("cars")
	assert.ErrorIs(t, err, ErrInvalidTab)
}

func TestFilterRecords_EmptyTermReturnsBaseInOrder(t *testing.T) {
	snap := sampleSnapshot()

	for _, tab := range []Tab{TabOverview, TabUsers} {
		got := FilterRecords(snap, tab, "")
		assert.Equal(t, []string{"u1", "u2", "u3", "u4", "u5"}, ids(got))
	}
	got := FilterRecords(snap, TabVerifications, "")
	assert.Equal(t, []string{"r1", "r2", "r3"}, ids(got))
	for _, r := range got {
		assert.Equal(t, KindVerification, r.Kind())
	}
}

func TestFilterRecords_UserSearch(t *testing.T) {
	got := FilterRecords(sampleSnapshot(), TabUsers, "john")
	// u2 matches on full name, u5 on upper-case email, u4 has no email
	assert.Equal(t, []string{"u1", "u2", "u5"}, ids(got))

	got = FilterRecords(sampleSnapshot(), TabUsers, "JOHN")
	assert.Equal(t, []string{"u1", "u2", "u5"}, ids(got))
}

func TestFilterRecords_VerificationSearch(t *testing.T) {
	snap := sampleSnapshot()

	assert.Equal(t, []string{"r2"}, ids(FilterRecords(snap, TabVerifications, "PASS")))
	// r3 belongs to john but has no document type
	assert.Equal(t, []string{"r1"}, ids(FilterRecords(snap, TabVerifications, "john@")))
	assert.Empty(t, FilterRecords(snap, TabVerifications, "nobody"))
}

func TestBaseRecords_CarCounts(t *testing.T) {
	records := BaseRecords(sampleSnapshot(), TabUsers)
	first := records[0].(UserRecord)
	assert.Equal(t, 2, first.CarCount)
	assert.Equal(t, 0, records[1].(UserRecord).CarCount)
	assert.Empty(t, BaseRecords(nil, TabUsers))
}

func manyUsers(n int) *models.Snapshot {
	snap := &models.Snapshot{}
	for i := 0; i < n; i++ {
		snap.Users = append(snap.Users, models.UserProfile{ID: fmt.Sprintf("u%d", i), Email: fmt.Sprintf("user%d@example.com", i)})
	}
	return snap
}

func TestPageRecords(t *testing.T) {
	records := FilterRecords(manyUsers(25), TabUsers, "")

	assert.Equal(t, 3, PageCount(len(records)))
	for page := 1; page <= 4; page++ {
		assert.LessOrEqual(t, len(PageRecords(records, page)), 10)
	}
	last := PageRecords(records, 3)
	require.Len(t, last, 5)
	assert.Equal(t, "u20", ids(last)[0])
	assert.Len(t, PageRecords(records, 1), 10)
	assert.Empty(t, PageRecords(records, 4))
}

func TestViewState_Navigation(t *testing.T) {
	v := NewViewState()
	assert.Equal(t, TabOverview, v.Tab)
	assert.Equal(t, 1, v.Page)

	v.NextPage(3)
	v.NextPage(3)
	v.NextPage(3)
	assert.Equal(t, 3, v.Page, "clamped to the last page")

	v.SetSearch("john")
	assert.Equal(t, 1, v.Page)

	v.SetPage(2, 3)
	v.SetSearch("john")
	assert.Equal(t, 2, v.Page, "unchanged term keeps the page")

	v.PrevPage(3)
	v.PrevPage(3)
	assert.Equal(t, 1, v.Page)

	v.SetPage(2, 3)
	v.SetTab(TabVerifications)
	assert.Equal(t, 1, v.Page)
}

func TestViewState_Render(t *testing.T) {
	v := NewViewState()
	v.SetTab(TabUsers)
	v.SetPage(3, 3)

	page := v.Render(manyUsers(25))
	assert.Len(t, page.Records, 5)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.Equal(t, int64(25), page.Meta.TotalItems)

	// the collection shrank below the stored page
	page = v.Render(manyUsers(4))
	assert.Equal(t, 1, v.Page)
	assert.Len(t, page.Records, 4)
}

func TestCarsPage(t *testing.T) {
	snap := &models.Snapshot{}
	for i := 0; i < 12; i++ {
		snap.Cars = append(snap.Cars, models.CarListingWithUser{CarListing: models.CarListing{ID: fmt.Sprintf("c%d", i)}})
	}
	cars, meta := CarsPage(snap, 2)
	assert.Len(t, cars, 2)
	assert.Equal(t, 2, meta.TotalPages)

	cars, meta = CarsPage(nil, 1)
	assert.Empty(t, cars)
	assert.Equal(t, 0, meta.TotalPages)
}
