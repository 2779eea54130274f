package dashboard

import (
	"errors"
	"strings"

	"motoradmin/internal/models"
	"motoradmin/internal/utils/pagination"
)

// ErrInvalidTab is returned for a tab name outside the three admin tabs.
var ErrInvalidTab = errors.New("invalid tab")

type Tab string

const (
	TabOverview      Tab = "overview"
	TabUsers         Tab = "users"
	TabVerifications Tab = "verifications"
)

func ParseTab(s string) (Tab, error) {
	switch t := Tab(s); t {
	case TabOverview, TabUsers, TabVerifications:
		return t, nil
	}
	return "", ErrInvalidTab
}

type RecordKind string

const (
	KindUser         RecordKind = "user"
	KindVerification RecordKind = "verification"
)

// Record is one row of a tab. It is implemented only by UserRecord and
// VerificationRecord.
type Record interface {
	Kind() RecordKind
	// Matches reports whether the record matches an already lowercased,
	// non-empty search term.
	Matches(term string) bool
	record()
}

type UserRecord struct {
	models.UserRow
}

func (UserRecord) Kind() RecordKind { return KindUser }
func (UserRecord) record()          {}

func (r UserRecord) Matches(term string) bool {
	if r.Email == "" {
		return false
	}
	return containsFold(r.Email, term) || containsFold(r.DisplayName(), term)
}

type VerificationRecord struct {
	models.VerificationRequestWithUser
}

func (VerificationRecord) Kind() RecordKind { return KindVerification }
func (VerificationRecord) record()          {}

func (r VerificationRecord) Matches(term string) bool {
	if r.DocumentType == "" {
		return false
	}
	if containsFold(r.DocumentType, term) {
		return true
	}
	return r.User != nil && r.User.Email != "" && containsFold(r.User.Email, term)
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

// BaseRecords returns the unfiltered collection behind a tab.
func BaseRecords(snap *models.Snapshot, tab Tab) []Record {
	if snap == nil {
		return []Record{}
	}
	switch tab {
	case TabOverview, TabUsers:
		counts := snap.CarCounts()
		out := make([]Record, len(snap.Users))
		for i, u := range snap.Users {
			out[i] = UserRecord{UserRow: models.UserRow{UserProfile: u, CarCount: counts[u.ID]}}
		}
		return out
	case TabVerifications:
		out := make([]Record, len(snap.VerificationRequests))
		for i, r := range snap.VerificationRequests {
			out[i] = VerificationRecord{VerificationRequestWithUser: r}
		}
		return out
	}
	return []Record{}
}

// FilterRecords applies the search term to a tab's collection, keeping the
// original order. An empty term returns the whole collection.
func FilterRecords(snap *models.Snapshot, tab Tab, search string) []Record {
	base := BaseRecords(snap, tab)
	if search == "" {
		return base
	}
	term := strings.ToLower(search)
	out := make([]Record, 0, len(base))
	for _, r := range base {
		if r.Matches(term) {
			out = append(out, r)
		}
	}
	return out
}

// PageCount is ceil(n / PageSize).
func PageCount(n int) int {
	return pagination.TotalPages(int64(n), pagination.DefaultLimit)
}

// PageRecords slices the window [(page-1)*10, page*10) out of records.
func PageRecords(records []Record, page int) []Record {
	start, end := pagination.New(page, pagination.DefaultLimit).Window(len(records))
	return records[start:end]
}

// ViewState is the per-session tab, search term and page.
type ViewState struct {
	Tab    Tab    `json:"tab"`
	Search string `json:"search"`
	Page   int    `json:"page"`
}

func NewViewState() ViewState {
	return ViewState{Tab: TabOverview, Page: 1}
}

// SetTab switches tabs and returns to the first page.
func (v *ViewState) SetTab(t Tab) {
	if v.Tab != t {
		v.Tab = t
		v.Page = 1
	}
}

// SetSearch changes the term; a changed term resets the page to 1.
func (v *ViewState) SetSearch(term string) {
	if v.Search != term {
		v.Search = term
		v.Page = 1
	}
}

// SetPage moves to page, clamped to [1, pageCount].
func (v *ViewState) SetPage(page, pageCount int) {
	v.Page = pagination.Clamp(page, pageCount)
}

func (v *ViewState) NextPage(pageCount int) { v.SetPage(v.Page+1, pageCount) }

func (v *ViewState) PrevPage(pageCount int) { v.SetPage(v.Page-1, pageCount) }

// Page is a rendered window of a tab.
type Page struct {
	Tab     Tab             `json:"tab"`
	Search  string          `json:"search"`
	Records []Record        `json:"records"`
	Meta    pagination.Meta `json:"meta"`
}

// Render filters and pages the snapshot for this view. The stored page is
// clamped first so a shrinking collection never yields an empty window.
func (v *ViewState) Render(snap *models.Snapshot) Page {
	filtered := FilterRecords(snap, v.Tab, v.Search)
	pages := PageCount(len(filtered))
	v.SetPage(v.Page, pages)

	p := pagination.New(v.Page, pagination.DefaultLimit)
	p.Total = int64(len(filtered))
	return Page{
		Tab:     v.Tab,
		Search:  v.Search,
		Records: PageRecords(filtered, v.Page),
		Meta:    p.Meta(),
	}
}

// CarsPage pages the car listings for the read-only cars table.
func CarsPage(snap *models.Snapshot, page int) ([]models.CarListingWithUser, pagination.Meta) {
	var cars []models.CarListingWithUser
	if snap != nil {
		cars = snap.Cars
	}
	page = pagination.Clamp(page, PageCount(len(cars)))
	p := pagination.New(page, pagination.DefaultLimit)
	p.Total = int64(len(cars))
	start, end := p.Window(len(cars))
	out := make([]models.CarListingWithUser, end-start)
	copy(out, cars[start:end])
	return out, p.Meta()
}
