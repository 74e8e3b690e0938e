package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"photostudio-backend/models"
	"photostudio-backend/services"
	"photostudio-backend/store"
	"photostudio-backend/utils"
)

type PhotographerController struct {
	Repo    *store.Repository
	Booking *services.BookingService
}

type CreatePhotographerInput struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Specialization string `json:"specialization"`
}

// CreatePhotographer adds a photographer to the roster
func (pc *PhotographerController) CreatePhotographer(c *gin.Context) {
	var input CreatePhotographerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	photographer := models.NewPhotographer(input.Name, input.Phone, input.Specialization)
	pc.Repo.AddPhotographer(photographer)

	c.JSON(http.StatusCreated, photographer)
}

// GetPhotographers lists the roster
func (pc *PhotographerController) GetPhotographers(c *gin.Context) {
	c.JSON(http.StatusOK, pc.Repo.Photographers())
}

// GetAvailablePhotographers lists photographers free for the slot in the
// "at" query parameter (2006-01-02T15:04:05).
func (pc *PhotographerController) GetAvailablePhotographers(c *gin.Context) {
	at := c.Query("at")
	if at == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "at query parameter required")
		return
	}

	slot, err := time.Parse("2006-01-02T15:04:05", at)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid slot format, expected 2006-01-02T15:04:05")
		return
	}

	c.JSON(http.StatusOK, pc.Booking.AvailablePhotographers(slot))
}
