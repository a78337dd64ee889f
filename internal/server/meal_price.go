package server

import (
	"net/http"
	"strings"

	mealpricedomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/mealprice/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateMealPrice(c *gin.Context) {
	var req mealpricedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.mealPriceSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListMealPrices(c *gin.Context) {
	var query struct {
		PlanID string `form:"plan_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.mealPriceSvc.List(c.Request.Context(), mealpricedomain.ListRequest{
		PlanID: strings.TrimSpace(query.PlanID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetMealPriceByID(c *gin.Context) {
	resp, err := s.mealPriceSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateMealPrice(c *gin.Context) {
	var req mealpricedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.mealPriceSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteMealPrice(c *gin.Context) {
	if err := s.mealPriceSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
