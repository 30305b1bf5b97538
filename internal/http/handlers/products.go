package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zone3577/Test-Web/internal/http/middleware"
	"github.com/zone3577/Test-Web/internal/modules/products"
	"github.com/zone3577/Test-Web/pkg/view"
)

// ProductHandlers serves the public catalog: available products only.
type ProductHandlers struct {
	products *products.Service
}

func NewProductHandlers(svc *products.Service) *ProductHandlers {
	return &ProductHandlers{products: svc}
}

func (h *ProductHandlers) List(c *gin.Context) {
	items, err := h.products.ListAvailable(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": view.ProductsFrom(items)})
}

func (h *ProductHandlers) Get(c *gin.Context) {
	p, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.ProductFrom(p))
}
