package controllers

import (
	"net/http"

	"bookerino-backend/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: svc}
}

// GetAnalytics handles GET /api/analytics. Metrics come from one ledger
// snapshot.
func (ctrl *AnalyticsController) GetAnalytics(c *gin.Context) {
	summary, err := ctrl.Analytics.Summary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
