package domain

import (
	"context"
	"errors"
	"time"

	customerdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/customer/domain"
	orderdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/domain"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
)

// CheckoutRequest carries the storefront checkout form: who is buying
// and what they selected. The price is never taken from the client.
type CheckoutRequest struct {
	Customer customerdomain.CreateRequest `json:"customer"`
	Plan     string                       `json:"plan"`
	Meals    []string                     `json:"meals"`
	Days     int                          `json:"days"`
	Duration int                          `json:"duration"`
	StartAt  *time.Time                   `json:"start_at"`
}

type CheckoutResult struct {
	Subscription *Subscription              `json:"subscription"`
	Order        *orderdomain.Order         `json:"order"`
	Calculation  *pricingdomain.Calculation `json:"calculation"`
}

type ListRequest struct {
	CustomerID string `form:"customer_id"`
	Status     string `form:"status"`
}

type Service interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	Get(ctx context.Context, id string) (*Subscription, error)
	List(ctx context.Context, req ListRequest) ([]Subscription, error)
	Pause(ctx context.Context, id string) (*Subscription, error)
	Resume(ctx context.Context, id string) (*Subscription, error)
	Cancel(ctx context.Context, id string) (*Subscription, error)
}

var (
	ErrInvalidSubscriptionID = errors.New("invalid_subscription_id")
	ErrSubscriptionNotFound  = errors.New("subscription_not_found")
	ErrInvalidTransition     = errors.New("invalid_subscription_transition")
	ErrInvalidStatus         = errors.New("invalid_subscription_status")
)
