package server

import (
	"errors"
	"net/http"

	customerdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/customer/domain"
	deliverydomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/delivery/domain"
	discountdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/discount/domain"
	mealdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/meal/domain"
	mealpricedomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/mealprice/domain"
	orderdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/domain"
	plandomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/domain"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	subscriptiondomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/subscription/domain"
	waitlistdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/waitlist/domain"
	"github.com/gin-gonic/gin"
)

// Storefront clients render these messages verbatim, so every error
// response is the flat {"error": "<message>"} shape.
type errorResponse struct {
	Error string `json:"error"`
}

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrTooManyRequests = errors.New("too_many_requests")
)

type mappedError struct {
	status  int
	message string
}

var errorTable = map[error]mappedError{
	pricingdomain.ErrInvalidDays:      {http.StatusBadRequest, "days must be between 1 and 7"},
	pricingdomain.ErrInvalidDuration:  {http.StatusBadRequest, "duration must be >= 1"},
	pricingdomain.ErrInvalidSelection: {http.StatusBadRequest, "plan/meals missing or invalid"},
	pricingdomain.ErrMealsNotFound:    {http.StatusNotFound, "meals not found for this plan"},
	pricingdomain.ErrQuoteFailed:      {http.StatusInternalServerError, "Failed to calculate price"},

	plandomain.ErrInvalidName:   {http.StatusBadRequest, "plan name is required"},
	plandomain.ErrInvalidPlanID: {http.StatusBadRequest, "invalid plan id"},
	plandomain.ErrPlanNotFound:  {http.StatusNotFound, "plan not found"},
	plandomain.ErrPlanExists:    {http.StatusConflict, "plan already exists"},

	mealdomain.ErrInvalidMeal:   {http.StatusBadRequest, "meal is invalid"},
	mealdomain.ErrInvalidMealID: {http.StatusBadRequest, "invalid meal id"},
	mealdomain.ErrMealNotFound:  {http.StatusNotFound, "meal not found"},

	mealpricedomain.ErrInvalidMealPrice:   {http.StatusBadRequest, "meal price is invalid"},
	mealpricedomain.ErrInvalidBasePrice:   {http.StatusBadRequest, "base_price_mad must be > 0"},
	mealpricedomain.ErrInvalidMealPriceID: {http.StatusBadRequest, "invalid meal price id"},
	mealpricedomain.ErrMealPriceNotFound:  {http.StatusNotFound, "meal price not found"},
	mealpricedomain.ErrMealPriceExists:    {http.StatusConflict, "meal price already exists for this plan and meal type"},

	discountdomain.ErrInvalidDiscountType:  {http.StatusBadRequest, "invalid discount type"},
	discountdomain.ErrInvalidCondition:     {http.StatusBadRequest, "condition_value must be > 0"},
	discountdomain.ErrInvalidPercentage:    {http.StatusBadRequest, "discount_percentage must be in (0, 1]"},
	discountdomain.ErrInvalidValidityRange: {http.StatusBadRequest, "valid_from must be before valid_to"},
	discountdomain.ErrInvalidRuleID:        {http.StatusBadRequest, "invalid discount rule id"},
	discountdomain.ErrRuleNotFound:         {http.StatusNotFound, "discount rule not found"},

	customerdomain.ErrInvalidCustomer:   {http.StatusBadRequest, "customer name is required"},
	customerdomain.ErrInvalidEmail:      {http.StatusBadRequest, "customer email is invalid"},
	customerdomain.ErrInvalidCustomerID: {http.StatusBadRequest, "invalid customer id"},
	customerdomain.ErrCustomerNotFound:  {http.StatusNotFound, "customer not found"},

	subscriptiondomain.ErrInvalidSubscriptionID: {http.StatusBadRequest, "invalid subscription id"},
	subscriptiondomain.ErrInvalidStatus:         {http.StatusBadRequest, "invalid subscription status"},
	subscriptiondomain.ErrSubscriptionNotFound:  {http.StatusNotFound, "subscription not found"},
	subscriptiondomain.ErrInvalidTransition:     {http.StatusConflict, "subscription cannot change to that status"},

	orderdomain.ErrInvalidOrderID:    {http.StatusBadRequest, "invalid order id"},
	orderdomain.ErrInvalidStatus:     {http.StatusBadRequest, "invalid order status"},
	orderdomain.ErrOrderNotFound:     {http.StatusNotFound, "order not found"},
	orderdomain.ErrInvalidTransition: {http.StatusConflict, "order cannot change to that status"},

	deliverydomain.ErrInvalidDeliveryID: {http.StatusBadRequest, "invalid delivery id"},
	deliverydomain.ErrInvalidStatus:     {http.StatusBadRequest, "invalid delivery status"},
	deliverydomain.ErrDeliveryNotFound:  {http.StatusNotFound, "delivery not found"},

	waitlistdomain.ErrInvalidEmail: {http.StatusBadRequest, "email is invalid"},

	ErrInvalidRequest:  {http.StatusBadRequest, "invalid request"},
	ErrTooManyRequests: {http.StatusTooManyRequests, "too many requests, try again later"},
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	for sentinel, mapped := range errorTable {
		if errors.Is(err, sentinel) {
			return mapped.status, mapped.message
		}
	}
	return http.StatusInternalServerError, "internal server error"
}

// classifyErrorForLog feeds the request logger so 4xx noise can be
// demoted without parsing response bodies.
func classifyErrorForLog(err error) (string, string) {
	status, _ := mapError(err)
	switch {
	case status == http.StatusNotFound:
		return "not_found", err.Error()
	case status == http.StatusConflict:
		return "conflict", err.Error()
	case status == http.StatusTooManyRequests:
		return "rate_limited", err.Error()
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return "validation_error", err.Error()
	default:
		return "internal_error", err.Error()
	}
}
