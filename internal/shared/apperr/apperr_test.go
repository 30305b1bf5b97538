package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidErr("x", nil)))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFoundErr("x")))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(UnauthorizedErr("x")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(ForbiddenErr("x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ConflictErr("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Wrap(errors.New("boom"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("untagged")))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Order not found.", PublicMessage(NotFoundErr("Order not found.")))
	assert.Equal(t, "Something went wrong.", PublicMessage(Wrap(errors.New("sql: connection refused"))))
	assert.Equal(t, "Something went wrong.", PublicMessage(errors.New("untagged")))
}

func TestAsThroughWrapping(t *testing.T) {
	inner := NotFoundErr("User not found.")
	wrapped := fmt.Errorf("loading profile: %w", inner)

	ae, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, NotFound, ae.Kind)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil))
}
