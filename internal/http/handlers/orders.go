package handlers

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

// OrderHandlers serves the customer's order history and checkout.
type OrderHandlers struct {
	repo *orders.Repo
	svc  *orders.Service
}

func NewOrderHandlers(repo *orders.Repo, svc *orders.Service) *OrderHandlers {
	return &OrderHandlers{repo: repo, svc: svc}
}

// filterFromQuery maps the shared query parameters onto the in-memory
// filter. Unknown values fall through to the permissive defaults.
func filterFromQuery(c *gin.Context) orders.FilterParams {
	return orders.FilterParams{
		DateRange: c.Query("date_range"),
		Status:    c.Query("status"),
		Search:    c.Query("q"),
		SortBy:    c.Query("sort"),
	}
}

// List returns the customer's orders after applying the date, status and
// search filters, with statistics computed over the same filtered set.
func (h *OrderHandlers) List(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	all, err := h.repo.ListByUser(c.Request.Context(), u.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	filtered := orders.Filter(all, time.Now(), filterFromQuery(c))
	orders.SortOrders(filtered, c.Query("sort"))

	c.JSON(http.StatusOK, view.OrderListPage{
		Items: view.OrdersFrom(filtered),
		Stats: orders.ComputeStats(filtered),
	})
}

type createOrderInput struct {
	ShippingAddress string `json:"shipping_address" binding:"required,max=1000"`
	Phone           string `json:"phone" binding:"max=32"`
	Notes           string `json:"notes" binding:"max=1000"`
}

// Create turns the open cart into an order.
func (h *OrderHandlers) Create(c *gin.Context) {
	var in createOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Checkout data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	u, _ := middleware.CurrentUser(c)
	o, err := h.svc.CreateFromCart(c.Request.Context(), orders.Customer{
		ID:    u.ID,
		Name:  u.FullName,
		Email: u.Email,
	}, orders.CreateInput{
		ShippingAddress: in.ShippingAddress,
		Phone:           in.Phone,
		Notes:           in.Notes,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, view.OrderFrom(o))
}

// Get returns one order. Customers only see their own rows; a foreign id
// reads as not found.
func (h *OrderHandlers) Get(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	o, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Order not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if o.UserID != u.ID {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}

	c.JSON(http.StatusOK, view.OrderFrom(o))
}
