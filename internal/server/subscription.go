package server

import (
	"net/http"
	"strings"

	subscriptiondomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/subscription/domain"
	"github.com/gin-gonic/gin"
)

// Checkout prices and persists a subscription in one call. The response
// carries the engine calculation so the storefront can show the same
// numbers the customer was quoted.
func (s *Server) Checkout(c *gin.Context) {
	var req subscriptiondomain.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.subscriptionSvc.Checkout(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.obsMetrics != nil {
		s.obsMetrics.RecordCheckout(c.Request.Context(), result.Calculation.Breakdown.Plan)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"subscription": result.Subscription,
		"order":        result.Order,
		"calculation":  result.Calculation,
	})
}

func (s *Server) ListSubscriptions(c *gin.Context) {
	var query subscriptiondomain.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.subscriptionSvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetSubscriptionByID(c *gin.Context) {
	resp, err := s.subscriptionSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) PauseSubscription(c *gin.Context) {
	resp, err := s.subscriptionSvc.Pause(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ResumeSubscription(c *gin.Context) {
	resp, err := s.subscriptionSvc.Resume(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CancelSubscription(c *gin.Context) {
	resp, err := s.subscriptionSvc.Cancel(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
