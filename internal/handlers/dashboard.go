package handlers

import (
	"strconv"

	"motoradmin/internal/middleware"
	"motoradmin/internal/models"
	"motoradmin/internal/services/auth"
	"motoradmin/internal/services/dashboard"
	"motoradmin/internal/utils/pagination"
	"motoradmin/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHandler serves the stat cards, the tabbed tables and the
// document viewer.
type DashboardHandler struct {
	dashboard   dashboard.Service
	authService auth.Service
	log         *zap.Logger
}

func NewDashboardHandler(dash dashboard.Service, authService auth.Service, log *zap.Logger) *DashboardHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardHandler{dashboard: dash, authService: authService, log: log}
}

func loadFailed(c *fiber.Ctx, err error) error {
	return response.ServerError(c, "Failed to load dashboard: "+err.Error())
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	snap, err := h.dashboard.Current(c.UserContext())
	if err != nil {
		return loadFailed(c, err)
	}
	return response.Success(c, "Dashboard stats", fiber.Map{
		"stats":                 snap.Stats,
		"total_value_formatted": dashboard.FormatPrice(snap.Stats.TotalValue),
		"loaded_at":             snap.LoadedAt,
	})
}

// Refresh reloads all three collections. On failure the previous data
// stays in place.
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	snap, err := h.dashboard.LoadAll(c.UserContext())
	if err != nil {
		return response.ServerError(c, "Failed to refresh dashboard: "+err.Error())
	}
	return response.Success(c, "Dashboard refreshed", fiber.Map{
		"stats":     snap.Stats,
		"loaded_at": snap.LoadedAt,
	})
}

// Records applies ?tab=, ?search= and ?page= to the session view and
// returns the visible page.
func (h *DashboardHandler) Records(c *fiber.Ctx) error {
	sess, err := middleware.GetSession(c)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}

	args := c.Context().QueryArgs()
	if args.Has("tab") {
		tab, err := dashboard.ParseTab(c.Query("tab"))
		if err != nil {
			return writeError(c, err)
		}
		sess.View.SetTab(tab)
	}
	if args.Has("search") {
		sess.View.SetSearch(c.Query("search"))
	}
	if args.Has("page") {
		page, err := strconv.Atoi(c.Query("page"))
		if err != nil {
			return response.BadRequest(c, "page must be a number")
		}
		// Render clamps against the filtered page count.
		sess.View.Page = page
	}

	return h.render(c, sess)
}

func (h *DashboardHandler) NextPage(c *fiber.Ctx) error {
	return h.step(c, (*dashboard.ViewState).NextPage)
}

func (h *DashboardHandler) PrevPage(c *fiber.Ctx) error {
	return h.step(c, (*dashboard.ViewState).PrevPage)
}

func (h *DashboardHandler) step(c *fiber.Ctx, move func(*dashboard.ViewState, int)) error {
	sess, err := middleware.GetSession(c)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}
	snap, err := h.dashboard.Current(c.UserContext())
	if err != nil {
		return loadFailed(c, err)
	}
	filtered := dashboard.FilterRecords(snap, sess.View.Tab, sess.View.Search)
	move(&sess.View, dashboard.PageCount(len(filtered)))
	return h.renderSnapshot(c, sess, snap)
}

func (h *DashboardHandler) render(c *fiber.Ctx, sess *auth.Session) error {
	snap, err := h.dashboard.Current(c.UserContext())
	if err != nil {
		return loadFailed(c, err)
	}
	return h.renderSnapshot(c, sess, snap)
}

func (h *DashboardHandler) renderSnapshot(c *fiber.Ctx, sess *auth.Session, snap *models.Snapshot) error {
	page := sess.View.Render(snap)
	if err := h.authService.Save(c.UserContext(), sess); err != nil {
		h.log.Warn("failed to save view state", zap.String("session_id", sess.ID), zap.Error(err))
	}
	return response.Page(c, page.Records, page.Meta, fiber.Map{
		"tab":    page.Tab,
		"search": page.Search,
	})
}

// Cars lists car listings with their owners.
func (h *DashboardHandler) Cars(c *fiber.Ctx) error {
	snap, err := h.dashboard.Current(c.UserContext())
	if err != nil {
		return loadFailed(c, err)
	}
	p := pagination.ParseFromRequest(c)
	cars, meta := dashboard.CarsPage(snap, p.Page)
	return response.Page(c, cars, meta, nil)
}

// Documents returns the images behind a verification request.
func (h *DashboardHandler) Documents(c *fiber.Ctx) error {
	snap, err := h.dashboard.Current(c.UserContext())
	if err != nil {
		return loadFailed(c, err)
	}
	req, ok := snap.FindRequest(c.Params("id"))
	if !ok {
		return response.NotFound(c, "verification request not found")
	}
	return response.Success(c, "Verification documents", models.VerificationDocuments{
		RequestID:     req.ID,
		DocumentType:  req.DocumentType,
		FrontImageURL: req.FrontImageURL,
		BackImageURL:  req.BackImageURL,
	})
}
