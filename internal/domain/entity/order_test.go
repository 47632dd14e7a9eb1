package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_ProgressIndex(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   int
	}{
		{StatusPending, 0},
		{StatusConfirmed, 1},
		{StatusPreparing, 2},
		{StatusReady, 3},
		{StatusDelivering, 4},
		{StatusCompleted, 5},
		{StatusCancelled, 0},
		{OrderStatus("SOMETHING_NEW"), 0},
		{OrderStatus(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.ProgressIndex())
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusDelivering.IsTerminal())
}
