package middleware

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zone3577/Test-Web/internal/modules/users"
)

// SessionCfg holds configuration for the customer session middleware.
type SessionCfg struct {
	DB         *gorm.DB
	CookieName string
	Secure     bool
	TTL        time.Duration
}

// Session is a database-backed customer session. The cookie carries the
// raw token; only its SHA-256 hash is stored.
type Session struct {
	ID         string    `gorm:"primaryKey;type:char(36)"`
	UserID     string    `gorm:"type:char(36);not null;index:ix_sessions_user_id"`
	TokenHash  []byte    `gorm:"type:binary(32);not null;uniqueIndex:ux_sessions_token_hash"`
	ExpiresAt  time.Time `gorm:"type:datetime(3);not null"`
	CreatedAt  time.Time `gorm:"type:datetime(3);not null"`
	LastSeenAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Session) TableName() string { return "sessions" }

// SessionMiddleware resolves the session cookie into an authenticated user
// in the request context. Banned and actively suspended accounts lose their
// session here, so a moderation action takes effect on the next request.
func SessionMiddleware(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		hash := hashToken(token)
		var sess Session
		if err := cfg.DB.Where("token_hash = ? AND expires_at > ?", hash, time.Now()).First(&sess).Error; err != nil {
			clearSessionCookie(c, cfg)
			c.Next()
			return
		}

		var u users.User
		if err := cfg.DB.First(&u, "id = ?", sess.UserID).Error; err != nil {
			clearSessionCookie(c, cfg)
			c.Next()
			return
		}
		if u.IsBanned || u.Suspended(time.Now()) {
			_ = cfg.DB.Delete(&Session{}, "id = ?", sess.ID).Error
			clearSessionCookie(c, cfg)
			c.Next()
			return
		}

		_ = cfg.DB.Model(&Session{}).
			Where("id = ?", sess.ID).
			Update("last_seen_at", time.Now()).Error

		c.Set("session_id", sess.ID)
		c.Set("user_id", u.ID)
		c.Set("user_email", u.Email)
		c.Set("user_role", u.Role)
		c.Set("user_full_name", u.FullName)

		c.Next()
	}
}

// CreateSession opens a session for the user and returns the raw cookie
// token.
func CreateSession(cfg SessionCfg, userID string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	now := time.Now()
	sess := Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		TokenHash:  hashToken(token),
		ExpiresAt:  now.Add(cfg.TTL),
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if err := cfg.DB.Create(&sess).Error; err != nil {
		return "", err
	}
	return token, nil
}

// DeleteSessionByToken removes the session the cookie points at.
func DeleteSessionByToken(cfg SessionCfg, token string) error {
	return cfg.DB.Delete(&Session{}, "token_hash = ?", hashToken(token)).Error
}

func SetSessionCookie(c *gin.Context, cfg SessionCfg, token string) {
	c.SetCookie(cfg.CookieName, token, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)
}

func clearSessionCookie(c *gin.Context, cfg SessionCfg) {
	c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
}

// ClearSessionCookie expires the cookie on the client.
func ClearSessionCookie(c *gin.Context, cfg SessionCfg) {
	clearSessionCookie(c, cfg)
}

func hashToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}

// ContextUser is the authenticated customer stored in request context.
type ContextUser struct {
	ID       string
	Email    string
	Role     string
	FullName string
}

// CurrentUser retrieves the authenticated user from the gin context.
func CurrentUser(c *gin.Context) (ContextUser, bool) {
	idVal, exists := c.Get("user_id")
	if !exists {
		return ContextUser{}, false
	}
	id, ok := idVal.(string)
	if !ok || id == "" {
		return ContextUser{}, false
	}

	out := ContextUser{ID: id}
	if v, ok := c.Get("user_email"); ok {
		out.Email, _ = v.(string)
	}
	if v, ok := c.Get("user_role"); ok {
		out.Role, _ = v.(string)
	}
	if v, ok := c.Get("user_full_name"); ok {
		out.FullName, _ = v.(string)
	}
	return out, true
}
