package domain

import (
	"context"
	"errors"
)

type ListRequest struct {
	SubscriptionID string `form:"subscription_id"`
	Status         string `form:"status"`
}

type Service interface {
	List(ctx context.Context, req ListRequest) ([]Delivery, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Delivery, error)
}

var (
	ErrInvalidDeliveryID = errors.New("invalid_delivery_id")
	ErrDeliveryNotFound  = errors.New("delivery_not_found")
	ErrInvalidStatus     = errors.New("invalid_delivery_status")
)

func ValidStatus(status Status) bool {
	switch status {
	case StatusScheduled, StatusDelivered, StatusSkipped:
		return true
	default:
		return false
	}
}
