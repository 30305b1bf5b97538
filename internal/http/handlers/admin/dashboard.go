package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zone3577/Test-Web/internal/http/middleware"
	"github.com/zone3577/Test-Web/internal/modules/notifications"
	"github.com/zone3577/Test-Web/internal/modules/orders"
	"github.com/zone3577/Test-Web/internal/modules/products"
	"github.com/zone3577/Test-Web/internal/modules/users"
	"github.com/zone3577/Test-Web/internal/shared/apperr"
	"github.com/zone3577/Test-Web/pkg/view"
)

// DashboardHandler assembles the landing-page counters from the individual
// modules.
type DashboardHandler struct {
	products      *products.Repo
	users         *users.Repo
	orders        *orders.Repo
	notifications *notifications.Service
}

func NewDashboardHandler(p *products.Repo, u *users.Repo, o *orders.Repo, n *notifications.Service) *DashboardHandler {
	return &DashboardHandler{products: p, users: u, orders: o, notifications: n}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	productCount, err := h.products.Count(ctx)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	userCounts, err := h.users.Count(ctx)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	byStatus, err := h.orders.CountByStatus(ctx)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	revenue, err := h.orders.DeliveredRevenueCents(ctx)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	unread, err := h.notifications.UnreadCount(ctx)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, view.DashboardFrom(productCount, userCounts, byStatus, revenue, unread))
}
