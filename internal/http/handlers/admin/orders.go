package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zone3577/Test-Web/internal/http/middleware"
	"github.com/zone3577/Test-Web/internal/http/validation"
	"github.com/zone3577/Test-Web/internal/modules/orders"
	"github.com/zone3577/Test-Web/internal/shared/apperr"
	"github.com/zone3577/Test-Web/pkg/view"
)

// OrderHandlers is the order management surface: the filtered list with its
// statistics, the status workflow and the payment flag.
type OrderHandlers struct {
	repo  *orders.Repo
	admin *orders.AdminService
}

func NewOrderHandlers(repo *orders.Repo, adminSvc *orders.AdminService) *OrderHandlers {
	return &OrderHandlers{repo: repo, admin: adminSvc}
}

// List applies the date, status and search filters over the whole table and
// reports statistics for the same filtered set.
func (h *OrderHandlers) List(c *gin.Context) {
	all, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	filtered := orders.Filter(all, time.Now(), orders.FilterParams{
		DateRange: c.Query("date_range"),
		Status:    c.Query("status"),
		Search:    c.Query("q"),
	})
	orders.SortOrders(filtered, c.Query("sort"))

	c.JSON(http.StatusOK, view.OrderListPage{
		Items: view.OrdersFrom(filtered),
		Stats: orders.ComputeStats(filtered),
	})
}

func (h *OrderHandlers) Get(c *gin.Context) {
	o, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Order not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	events, err := h.repo.ListEvents(c.Request.Context(), o.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":  view.OrderFrom(o),
		"events": events,
	})
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note" binding:"max=500"`
}

func (h *OrderHandlers) SetStatus(c *gin.Context) {
	var in statusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Status data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	a, _ := middleware.CurrentAdmin(c)
	err := h.admin.Transition(c.Request.Context(), orders.TransitionInput{
		OrderID: c.Param("id"),
		ActorID: a.ID,
		To:      in.Status,
		Note:    in.Note,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	o, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.OrderFrom(o))
}

type paymentInput struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

func (h *OrderHandlers) SetPayment(c *gin.Context) {
	var in paymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Payment data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	if err := h.admin.SetPaymentStatus(c.Request.Context(), c.Param("id"), in.PaymentStatus); err != nil {
		middleware.Fail(c, err)
		return
	}

	o, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.OrderFrom(o))
}
