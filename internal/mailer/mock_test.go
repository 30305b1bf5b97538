package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockRecordsSends(t *testing.T) {
	m := &Mock{}
	ctx := context.Background()

	require.NoError(t, m.Send(ctx, Email{From: "shop@example.com", To: []string{"a@example.com"}, Subject: "first"}))
	require.NoError(t, m.Send(ctx, Email{From: "shop@example.com", To: []string{"b@example.com"}, Subject: "second"}))

	assert.Len(t, m.Sent, 2)
	last, ok := m.Last()
	require.True(t, ok)
	assert.Equal(t, "second", last.Subject)
}

func TestMockErrSkipsRecording(t *testing.T) {
	m := &Mock{Err: errors.New("smtp down")}

	err := m.Send(context.Background(), Email{From: "shop@example.com", To: []string{"a@example.com"}})
	require.Error(t, err)
	assert.Empty(t, m.Sent)

	_, ok := m.Last()
	assert.False(t, ok)
}
