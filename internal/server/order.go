package server

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	orderdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListOrders(c *gin.Context) {
	var query orderdomain.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.orderSvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetOrderByID(c *gin.Context) {
	resp, err := s.orderSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) UpdateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.orderSvc.UpdateStatus(
		c.Request.Context(),
		strings.TrimSpace(c.Param("id")),
		orderdomain.Status(strings.TrimSpace(req.Status)),
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ExportOrdersCSV(c *gin.Context) {
	var query orderdomain.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	var buf bytes.Buffer
	if err := s.orderSvc.ExportCSV(c.Request.Context(), query, &buf); err != nil {
		AbortWithError(c, err)
		return
	}

	filename := "orders-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
