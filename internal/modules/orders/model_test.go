package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, nil},
		{"confirmed to processing", StatusConfirmed, StatusProcessing, nil},
		{"processing to shipped", StatusProcessing, StatusShipped, nil},
		{"shipped to delivered", StatusShipped, StatusDelivered, nil},
		{"pending to cancelled", StatusPending, StatusCancelled, nil},
		{"shipped to cancelled", StatusShipped, StatusCancelled, nil},
		{"delivered is terminal", StatusDelivered, StatusCancelled, ErrInvalidTransition},
		{"cancelled is terminal", StatusCancelled, StatusPending, ErrInvalidTransition},
		{"same status is a no-op", StatusPending, StatusPending, ErrInvalidTransition},
		{"unknown target", StatusPending, "misplaced", ErrUnknownStatus},
		{"empty target", StatusPending, "", ErrUnknownStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTransition(tc.from, tc.to)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(StatusDelivered))
	assert.True(t, Terminal(StatusCancelled))
	assert.False(t, Terminal(StatusPending))
	assert.False(t, Terminal(StatusShipped))
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("returned"))
	assert.False(t, ValidStatus(""))
}
