package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zone3577/Test-Web/internal/http/middleware"
	"github.com/zone3577/Test-Web/internal/http/validation"
	"github.com/zone3577/Test-Web/internal/modules/users"
	"github.com/zone3577/Test-Web/internal/shared/apperr"
	"github.com/zone3577/Test-Web/pkg/view"
)

// AuthHandlers serves customer signup, login and logout.
type AuthHandlers struct {
	users   *users.Service
	sessCfg middleware.SessionCfg
}

func NewAuthHandlers(usersSvc *users.Service, sessCfg middleware.SessionCfg) *AuthHandlers {
	return &AuthHandlers{users: usersSvc, sessCfg: sessCfg}
}

type signupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,max=255"`
	Phone    string `json:"phone" binding:"max=32"`
	Address  string `json:"address" binding:"max=1000"`
}

func (h *AuthHandlers) Signup(c *gin.Context) {
	var in signupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Signup data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	u, err := h.users.Register(c.Request.Context(), users.RegisterInput{
		Email:    in.Email,
		Password: in.Password,
		FullName: in.FullName,
		Phone:    in.Phone,
		Address:  in.Address,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	token, err := middleware.CreateSession(h.sessCfg, u.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	middleware.SetSessionCookie(c, h.sessCfg, token)

	c.JSON(http.StatusCreated, gin.H{"user": view.UserFrom(u)})
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandlers) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Login data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	u, err := h.users.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	token, err := middleware.CreateSession(h.sessCfg, u.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	middleware.SetSessionCookie(c, h.sessCfg, token)

	c.JSON(http.StatusOK, gin.H{"user": view.UserFrom(u)})
}

func (h *AuthHandlers) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.sessCfg.CookieName); err == nil && token != "" {
		_ = middleware.DeleteSessionByToken(h.sessCfg, token)
	}
	middleware.ClearSessionCookie(c, h.sessCfg)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me returns the authenticated customer, or authenticated: false for
// anonymous visitors.
func (h *AuthHandlers) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":        u.ID,
			"email":     u.Email,
			"full_name": u.FullName,
			"role":      u.Role,
		},
	})
}
