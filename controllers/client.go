package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photostudio-backend/models"
	"photostudio-backend/store"
	"photostudio-backend/utils"
)

type ClientController struct {
	Repo *store.Repository
}

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

// CreateClient registers a new studio client
func (cc *ClientController) CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	if cc.Repo.ClientExists(input.Phone, input.Email) {
		utils.RespondWithError(c, http.StatusConflict, "Client with this phone or email already exists")
		return
	}

	client := models.NewClient(input.Name, input.Phone, input.Email, false)
	cc.Repo.AddClient(client)

	c.JSON(http.StatusCreated, client)
}

// GetClients lists all clients in registration order
func (cc *ClientController) GetClients(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Repo.Clients())
}

// FindClient looks a client up by exact phone match
func (cc *ClientController) FindClient(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "phone query parameter required")
		return
	}

	client := cc.Repo.FindClientByPhone(phone)
	if client == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, client)
}
