package server

import (
	"net/http"
	"strings"

	deliverydomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/delivery/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListDeliveries(c *gin.Context) {
	var query deliverydomain.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.deliverySvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) UpdateDeliveryStatus(c *gin.Context) {
	var req updateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.deliverySvc.UpdateStatus(
		c.Request.Context(),
		strings.TrimSpace(c.Param("id")),
		deliverydomain.Status(strings.TrimSpace(req.Status)),
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
