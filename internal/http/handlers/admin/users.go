package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zone3577/Test-Web/internal/http/middleware"
	"github.com/zone3577/Test-Web/internal/http/validation"
	"github.com/zone3577/Test-Web/internal/modules/users"
	"github.com/zone3577/Test-Web/internal/shared/apperr"
	"github.com/zone3577/Test-Web/pkg/view"
)

// UserHandlers is the customer management surface. Ban and unban run
// behind RequireSuperAdmin in the router.
type UserHandlers struct {
	users *users.Service
}

func NewUserHandlers(svc *users.Service) *UserHandlers {
	return &UserHandlers{users: svc}
}

func (h *UserHandlers) List(c *gin.Context) {
	page := parseInt(c.Query("page"), 1)
	size := parseInt(c.Query("page_size"), 30)

	res, err := h.users.AdminList(c.Request.Context(), users.AdminListParams{
		Q:        c.Query("q"),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, view.UserListPage{
		Items:    view.UsersFrom(res.Items),
		Total:    res.Total,
		Page:     page,
		PageSize: size,
	})
}

type banInput struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

func (h *UserHandlers) Ban(c *gin.Context) {
	var in banInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Ban data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	if err := h.users.Ban(c.Request.Context(), c.Param("id"), in.Reason); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type suspendInput struct {
	Until  time.Time `json:"until" binding:"required"`
	Reason string    `json:"reason" binding:"max=255"`
}

func (h *UserHandlers) Suspend(c *gin.Context) {
	var in suspendInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Suspension data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	if err := h.users.Suspend(c.Request.Context(), c.Param("id"), in.Until, in.Reason); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *UserHandlers) Unban(c *gin.Context) {
	if err := h.users.Unban(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
