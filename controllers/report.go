// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"photostudio-backend/services"
	"photostudio-backend/utils"
)

// ReportController handles all reporting functions
type ReportController struct {
	Reports *services.ReportService
}

// GetRevenue sums revenue for the inclusive date range in the start/end
// query parameters (2006-01-02). The end date covers its whole day.
func (rc *ReportController) GetRevenue(c *gin.Context) {
	startParam := c.Query("start")
	endParam := c.Query("end")
	if startParam == "" || endParam == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "start and end query parameters required")
		return
	}

	start, err := time.Parse("2006-01-02", startParam)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date, expected 2006-01-02")
		return
	}
	end, err := time.Parse("2006-01-02", endParam)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date, expected 2006-01-02")
		return
	}

	revenue := rc.Reports.RevenueForPeriod(utils.BeginningOfDay(start), utils.EndOfDay(end))

	c.JSON(http.StatusOK, gin.H{
		"start":   startParam,
		"end":     endParam,
		"revenue": revenue,
	})
}
