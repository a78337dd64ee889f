// Package domain defines the back-office surface for discount rules.
package domain

import (
	"context"
	"errors"
	"time"

	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
)

type CreateRequest struct {
	DiscountType       string     `json:"discount_type"`
	ConditionValue     int        `json:"condition_value"`
	DiscountPercentage float64    `json:"discount_percentage"`
	Stackable          bool       `json:"stackable"`
	Active             *bool      `json:"active"`
	ValidFrom          *time.Time `json:"valid_from"`
	ValidTo            *time.Time `json:"valid_to"`
}

type UpdateRequest struct {
	ConditionValue     *int       `json:"condition_value"`
	DiscountPercentage *float64   `json:"discount_percentage"`
	Stackable          *bool      `json:"stackable"`
	Active             *bool      `json:"active"`
	ValidFrom          *time.Time `json:"valid_from"`
	ValidTo            *time.Time `json:"valid_to"`
}

type ListRequest struct {
	DiscountType string `form:"discount_type"`
	Active       *bool  `form:"active"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*pricingdomain.DiscountRule, error)
	Get(ctx context.Context, id string) (*pricingdomain.DiscountRule, error)
	List(ctx context.Context, req ListRequest) ([]pricingdomain.DiscountRule, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*pricingdomain.DiscountRule, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidDiscountType  = errors.New("invalid_discount_type")
	ErrInvalidCondition     = errors.New("condition_value_must_be_positive")
	ErrInvalidPercentage    = errors.New("discount_percentage_out_of_range")
	ErrInvalidValidityRange = errors.New("invalid_validity_range")
	ErrInvalidRuleID        = errors.New("invalid_discount_rule_id")
	ErrRuleNotFound         = errors.New("discount_rule_not_found")
)
