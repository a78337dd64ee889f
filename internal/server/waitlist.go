package server

import (
	"net/http"

	waitlistdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/waitlist/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) WaitlistSignup(c *gin.Context) {
	var req waitlistdomain.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.waitlistSvc.Signup(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.obsMetrics != nil {
		s.obsMetrics.RecordWaitlistSignup(c.Request.Context(), resp.Plan)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": resp})
}

func (s *Server) ListWaitlist(c *gin.Context) {
	resp, err := s.waitlistSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
