package adminauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zone3577/Test-Web/internal/shared/apperr"
)

func testService(ttl time.Duration) *Service {
	return NewService(nil, "test-secret", ttl)
}

func testAdmin() Admin {
	return Admin{
		ID:       "admin-1",
		Username: "somsak",
		Role:     RoleSuperAdmin,
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	svc := testService(24 * time.Hour)
	now := time.Now()

	token, expiresAt, err := svc.IssueToken(testAdmin(), now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(24*time.Hour), expiresAt, time.Second)

	id, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", id.ID)
	assert.Equal(t, "somsak", id.Username)
	assert.Equal(t, RoleSuperAdmin, id.Role)
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := testService(24 * time.Hour)

	// Issued 25 hours ago, so the 24 hour session is over.
	token, _, err := svc.IssueToken(testAdmin(), time.Now().Add(-25*time.Hour))
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Unauthorized, ae.Kind)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).IssueToken(testAdmin(), time.Now())
	require.NoError(t, err)

	other := NewService(nil, "another-secret", time.Hour)
	_, err = other.VerifyToken(token)
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Unauthorized, ae.Kind)
}

func TestVerifyTokenGarbage(t *testing.T) {
	_, err := testService(time.Hour).VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestDefaultTTL(t *testing.T) {
	svc := testService(0)
	now := time.Now()
	_, expiresAt, err := svc.IssueToken(testAdmin(), now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(24*time.Hour), expiresAt, time.Second)
}
