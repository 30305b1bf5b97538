package admin

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/zone3577/Test-Web/internal/http/middleware"
	"github.com/zone3577/Test-Web/internal/http/validation"
	"github.com/zone3577/Test-Web/internal/modules/products"
	"github.com/zone3577/Test-Web/internal/shared/apperr"
	"github.com/zone3577/Test-Web/internal/storage"
	"github.com/zone3577/Test-Web/pkg/view"
)

const maxImageBytes = 5 << 20

// ProductHandlers is the catalog management surface: full CRUD plus image
// upload, unavailable products included.
type ProductHandlers struct {
	products *products.Service
}

func NewProductHandlers(svc *products.Service) *ProductHandlers {
	return &ProductHandlers{products: svc}
}

func (h *ProductHandlers) List(c *gin.Context) {
	items, err := h.products.List(c.Request.Context())
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

type productInput struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Slug        string          `json:"slug" binding:"max=255"`
	Description string          `json:"description"`
	SKU         string          `json:"sku" binding:"required,max=64"`
	PriceCents  int             `json:"price_cents" binding:"gte=0"`
	Currency    string          `json:"currency" binding:"required,len=3"`
	Stock       int             `json:"stock" binding:"gte=0"`
	Available   *bool           `json:"available"`
	ImageURL    string          `json:"image_url"`
	Metadata    json.RawMessage `json:"metadata"`
}

func (h *ProductHandlers) Create(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Product data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	p, err := h.products.Create(c.Request.Context(), products.CreateForm{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		SKU:         in.SKU,
		PriceCents:  in.PriceCents,
		Currency:    in.Currency,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		Metadata:    datatypes.JSON(in.Metadata),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view.ProductFrom(p))
}

func (h *ProductHandlers) Update(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Product data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	p, err := h.products.Update(c.Request.Context(), c.Param("id"), products.UpdateForm{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		SKU:         in.SKU,
		PriceCents:  in.PriceCents,
		Currency:    in.Currency,
		Available:   available,
		Stock:       in.Stock,
		Metadata:    datatypes.JSON(in.Metadata),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.ProductFrom(p))
}

func (h *ProductHandlers) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UploadImage accepts a multipart "image" file and points the product at
// the stored copy.
func (h *ProductHandlers) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("An image file is required.", map[string]string{"image": "missing file"}))
		return
	}
	if fh.Size > maxImageBytes {
		middleware.Fail(c, apperr.InvalidErr("Image is too large.", map[string]string{"image": "must be 5 MB or smaller"}))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	p, err := h.products.UploadImage(c.Request.Context(), c.Param("id"), f, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.ProductFrom(p))
}
