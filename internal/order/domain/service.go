package domain

import (
	"context"
	"errors"
	"io"
)

type ListRequest struct {
	CustomerID string `form:"customer_id"`
	Status     string `form:"status"`
}

type Service interface {
	Get(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, req ListRequest) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
	// ExportCSV streams the order listing as CSV, one row per order.
	ExportCSV(ctx context.Context, req ListRequest, w io.Writer) error
}

var (
	ErrInvalidOrderID    = errors.New("invalid_order_id")
	ErrOrderNotFound     = errors.New("order_not_found")
	ErrInvalidStatus     = errors.New("invalid_order_status")
	ErrInvalidTransition = errors.New("invalid_order_transition")
)

// ValidStatus reports whether the value is a known order status.
func ValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransition encodes the order lifecycle: pending orders are
// confirmed or cancelled, confirmed orders are delivered or cancelled,
// delivered and cancelled orders are terminal.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusDelivered || to == StatusCancelled
	default:
		return false
	}
}
