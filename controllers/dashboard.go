package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"photostudio-backend/services"
	"photostudio-backend/store"
)

type DashboardController struct {
	Repo    *store.Repository
	Reports *services.ReportService
}

// GetDashboardOverview composes the numbers the front page shows: order and
// client counts, this month's revenue, the most popular session type and
// the consumables stock.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	popular, _ := dc.Reports.MostPopularSessionType()

	response := gin.H{
		"activeOrders":       dc.Reports.ActiveOrdersCount(),
		"regularClients":     dc.Reports.RegularClientsCount(),
		"newClients":         dc.Reports.NewClientsCount(),
		"photographers":      dc.Reports.PhotographersCount(),
		"monthlyRevenue":     dc.Reports.RevenueForPeriod(firstOfMonth, now),
		"popularSessionType": popular,
		"sessionTypes":       dc.Repo.SessionTypes(),
		"inventory":          dc.Repo.Inventory(),
	}

	c.JSON(http.StatusOK, response)
}
