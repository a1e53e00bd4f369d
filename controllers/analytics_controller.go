package controllers

import (
	"net/http"

	"github.com/WangRL15/Health-Management-Web-Application/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

func (h *AnalyticsController) GetAnalysis(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	out, err := h.Svc.Chart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
