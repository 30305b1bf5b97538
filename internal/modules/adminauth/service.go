package adminauth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zone3577/Test-Web/internal/shared/apperr"
)

// Service authenticates dashboard admins. A successful login issues a
// signed token whose exp claim carries the session expiry, so session
// validity is enforced by signature verification rather than by a
// client-trusted timestamp.
type Service struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewService(db *gorm.DB, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{db: db, secret: []byte(secret), ttl: ttl}
}

type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Admin     Identity
	Token     string
	ExpiresAt time.Time
}

// Login verifies the credentials, stamps last_login_at and returns a
// session token.
func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)

	var a Admin
	err := s.db.WithContext(ctx).First(&a, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResult{}, apperr.UnauthorizedErr("Invalid username or password.")
		}
		return LoginResult{}, apperr.Wrap(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, apperr.UnauthorizedErr("Invalid username or password.")
	}

	now := time.Now()
	_ = s.db.WithContext(ctx).Model(&Admin{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{"last_login_at": now, "updated_at": now}).Error

	token, expiresAt, err := s.IssueToken(a, now)
	if err != nil {
		return LoginResult{}, apperr.Wrap(err)
	}

	return LoginResult{
		Admin:     identityOf(a),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// IssueToken signs an HS256 token for the admin with exp = issuedAt + ttl.
func (s *Service) IssueToken(a Admin, issuedAt time.Time) (string, time.Time, error) {
	expiresAt := issuedAt.Add(s.ttl)
	c := claims{
		Username: a.Username,
		Role:     a.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	return token, expiresAt, err
}

// VerifyToken parses and validates a session token. Expired, malformed or
// wrongly signed tokens all come back as unauthorized.
func (s *Service) VerifyToken(tokenStr string) (Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenStr, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, apperr.UnauthorizedErr("Admin session is invalid or expired.")
	}
	return Identity{
		ID:       c.Subject,
		Username: c.Username,
		Role:     c.Role,
	}, nil
}

func identityOf(a Admin) Identity {
	id := Identity{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
	}
	if a.FullName != nil {
		id.FullName = *a.FullName
	}
	return id
}
