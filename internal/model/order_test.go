package model

import (
	"testing"
)

func TestOrderStatus_IsCancellable(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		expected bool
	}{
		{OrderStatusPending, true},
		{OrderStatusPaid, true},
		{OrderStatusShipped, false},
		{OrderStatusCompleted, false},
		{OrderStatusCancelled, false},
	}

	for _, test := range tests {
		if result := test.status.IsCancellable(); result != test.expected {
			t.Errorf("IsCancellable() for %s = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestOrderStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		expected bool
	}{
		{OrderStatusPending, false},
		{OrderStatusPaid, false},
		{OrderStatusShipped, false},
		{OrderStatusCompleted, true},
		{OrderStatusCancelled, true},
	}

	for _, test := range tests {
		if result := test.status.IsFinished(); result != test.expected {
			t.Errorf("IsFinished() for %s = %v, expected %v", test.status, result, test.expected)
		}
	}
}
