package server

import (
	"context"
	"net/http"

	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"github.com/gin-gonic/gin"
)

type quoteRequest struct {
	Plan     string   `json:"plan"`
	Meals    []string `json:"meals"`
	Days     int      `json:"days"`
	Duration int      `json:"duration"`
}

// Quote is the storefront pricing endpoint. The flattened top-level
// figures duplicate the calculation so simple clients can render a
// price without digging into the nested object.
func (s *Server) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, pricingdomain.ErrInvalidSelection)
		return
	}

	calc, err := s.pricingSvc.Quote(c.Request.Context(), pricingdomain.QuoteRequest{
		Plan:     req.Plan,
		Meals:    req.Meals,
		Days:     req.Days,
		Duration: req.Duration,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordQuote(c.Request.Context(), calc, "storefront")

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"currency":    s.pricingCfg.Get().Currency,
		"basePerDay":  calc.PricePerDay,
		"grossWeekly": calc.GrossWeekly,
		"total":       calc.TotalRoundedMAD,
		"calculation": calc,
	})
}

// PricingPreview lets the back office dry-run the engine with the same
// semantics as the storefront quote.
func (s *Server) PricingPreview(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, pricingdomain.ErrInvalidSelection)
		return
	}

	calc, err := s.pricingSvc.Quote(c.Request.Context(), pricingdomain.QuoteRequest{
		Plan:     req.Plan,
		Meals:    req.Meals,
		Days:     req.Days,
		Duration: req.Duration,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordQuote(c.Request.Context(), calc, "admin")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    calc,
	})
}

func (s *Server) recordQuote(ctx context.Context, calc *pricingdomain.Calculation, surface string) {
	if s.obsMetrics == nil {
		return
	}
	s.obsMetrics.RecordQuote(ctx, calc.Breakdown.Plan, surface)
	for _, applied := range calc.DiscountsApplied {
		s.obsMetrics.RecordDiscountApplied(ctx, applied.Type)
	}
}

type allowFunc func(ctx context.Context, clientIP string) (bool, error)

func (s *Server) allowQuote(ctx context.Context, clientIP string) (bool, error) {
	return s.publicLimiter.AllowQuote(ctx, clientIP)
}

func (s *Server) allowWaitlist(ctx context.Context, clientIP string) (bool, error) {
	return s.publicLimiter.AllowWaitlist(ctx, clientIP)
}

// PublicRateLimit gates an unauthenticated endpoint per client IP. A
// limiter error fails open: pricing availability beats strictness.
func (s *Server) PublicRateLimit(allow allowFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.publicLimiter == nil || !s.publicLimiter.Enabled() {
			c.Next()
			return
		}

		allowed, err := allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.Next()
			return
		}
		if !allowed {
			AbortWithError(c, ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
