package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photostudio-backend/models"
	"photostudio-backend/services"
	"photostudio-backend/store"
	"photostudio-backend/utils"
)

type OrderController struct {
	Repo    *store.Repository
	Booking *services.BookingService
	Reports *services.ReportService
}

// CreateOrderInput defines the expected JSON structure for booking a session.
// When basePrice is set the session type is taken as given; otherwise the
// name is resolved against the catalog.
type CreateOrderInput struct {
	ClientID       string   `json:"clientId" binding:"required"`
	PhotographerID string   `json:"photographerId" binding:"required"`
	SessionType    string   `json:"sessionType" binding:"required"`
	BasePrice      *float64 `json:"basePrice"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type AttachPhotoInput struct {
	FilePath string `json:"filePath" binding:"required"`
}

// CreateOrder books a session
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var sessionType models.SessionType
	if input.BasePrice != nil {
		sessionType = models.SessionType{Name: input.SessionType, BasePrice: *input.BasePrice}
	} else {
		st, ok := oc.Repo.SessionTypeByName(input.SessionType)
		if !ok {
			utils.RespondWithError(c, http.StatusNotFound, "Unknown session type")
			return
		}
		sessionType = st
	}

	order, err := oc.Booking.CreateOrder(input.ClientID, input.PhotographerID, sessionType)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrders lists all orders in creation order
func (oc *OrderController) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, oc.Repo.Orders())
}

// UpdateStatus moves an order through its lifecycle
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status, err := models.ParseOrderStatus(input.Status)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := oc.Booking.SetOrderStatus(c.Param("id"), status)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
		return
	}

	c.JSON(http.StatusOK, order)
}

// PayOrder marks the order PAID and records the payment
func (oc *OrderController) PayOrder(c *gin.Context) {
	payment, err := oc.Booking.RecordPayment(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
		return
	}

	c.JSON(http.StatusOK, payment)
}

// AttachPhoto adds a delivered photo to the order
func (oc *OrderController) AttachPhoto(c *gin.Context) {
	var input AttachPhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	photo, err := oc.Booking.AttachPhoto(c.Param("id"), input.FilePath)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// GetPhotos lists the photos attached to the order
func (oc *OrderController) GetPhotos(c *gin.Context) {
	c.JSON(http.StatusOK, oc.Reports.PhotosForOrder(c.Param("id")))
}
