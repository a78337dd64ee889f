package domain

import (
	"context"
	"errors"
)

// QuoteRequest is a meal selection to be priced. Both the storefront and
// the back office submit the same logical inputs.
type QuoteRequest struct {
	Plan     string
	Meals    []string
	Days     int
	Duration int
}

// AppliedDiscount is one discount actually subtracted from the weekly
// balance, in application order.
type AppliedDiscount struct {
	Type       string  `json:"type"`
	Condition  int     `json:"condition"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

type MealPriceLine struct {
	Meal  string  `json:"meal"`
	Price float64 `json:"price"`
}

// Breakdown restates the priced selection for display and audit.
type Breakdown struct {
	Plan       string          `json:"plan"`
	Meals      []string        `json:"meals"`
	Days       int             `json:"days"`
	MealPrices []MealPriceLine `json:"mealPrices"`
}

// Calculation is the full reproducible pricing output. All monetary
// figures are MAD rounded to 2 decimals; TotalRoundedMAD is the only
// amount a caller should charge.
type Calculation struct {
	PricePerDay      float64           `json:"pricePerDay"`
	GrossWeekly      float64           `json:"grossWeekly"`
	DiscountsApplied []AppliedDiscount `json:"discountsApplied"`
	FinalWeekly      float64           `json:"finalWeekly"`
	DurationWeeks    int               `json:"durationWeeks"`
	TotalRoundedMAD  float64           `json:"totalRoundedMAD"`
	Breakdown        Breakdown         `json:"breakdown"`
}

type Service interface {
	Quote(context.Context, QuoteRequest) (*Calculation, error)
}

var (
	ErrInvalidSelection = errors.New("invalid_selection")
	ErrInvalidDays      = errors.New("invalid_days")
	ErrInvalidDuration  = errors.New("invalid_duration")
	ErrMealsNotFound    = errors.New("meals_not_found")
	ErrQuoteFailed      = errors.New("quote_failed")
)
