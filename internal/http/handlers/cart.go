package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zone3577/Test-Web/internal/http/middleware"
	"github.com/zone3577/Test-Web/internal/http/validation"
	"github.com/zone3577/Test-Web/internal/modules/cart"
	"github.com/zone3577/Test-Web/internal/shared/apperr"
	"github.com/zone3577/Test-Web/pkg/view"
)

// CartHandlers serves the authenticated customer's cart. All routes run
// behind RequireAuth, so CurrentUser always resolves.
type CartHandlers struct {
	cart *cart.Service
}

func NewCartHandlers(svc *cart.Service) *CartHandlers {
	return &CartHandlers{cart: svc}
}

func (h *CartHandlers) Get(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	v, err := h.cart.Build(c.Request.Context(), u.ID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.CartPageFrom(v))
}

type addItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandlers) Add(c *gin.Context) {
	var in addItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Cart data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	u, _ := middleware.CurrentUser(c)
	v, err := h.cart.Add(c.Request.Context(), u.ID, in.ProductID, in.Quantity)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.CartPageFrom(v))
}

type setQtyInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (h *CartHandlers) SetQuantity(c *gin.Context) {
	var in setQtyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Cart data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	u, _ := middleware.CurrentUser(c)
	v, err := h.cart.UpdateQuantity(c.Request.Context(), u.ID, c.Param("productID"), in.Quantity)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.CartPageFrom(v))
}

func (h *CartHandlers) Remove(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	v, err := h.cart.Remove(c.Request.Context(), u.ID, c.Param("productID"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.CartPageFrom(v))
}

func (h *CartHandlers) Clear(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	if err := h.cart.Clear(c.Request.Context(), u.ID); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
