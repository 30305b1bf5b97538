package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zone3577/Test-Web/internal/http/middleware"
	"github.com/zone3577/Test-Web/internal/http/validation"
	"github.com/zone3577/Test-Web/internal/modules/adminauth"
	"github.com/zone3577/Test-Web/internal/shared/apperr"
)

type LoginHandler struct {
	auth *adminauth.Service
}

func NewLoginHandler(auth *adminauth.Service) *LoginHandler {
	return &LoginHandler{auth: auth}
}

type loginInput struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required"`
}

func (h *LoginHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Login data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	res, err := h.auth.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      res.Token,
		"expires_at": res.ExpiresAt,
		"admin": gin.H{
			"id":        res.Admin.ID,
			"username":  res.Admin.Username,
			"email":     res.Admin.Email,
			"full_name": res.Admin.FullName,
			"role":      res.Admin.Role,
		},
	})
}
