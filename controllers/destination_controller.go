package controllers

import (
	"log"
	"net/http"

	"tour-backend/models"
	"tour-backend/repositories"
	"tour-backend/services"
	"tour-backend/utils"

	"github.com/gin-gonic/gin"
)

type DestinationController struct {
	service services.DestinationService
}

func NewDestinationController(service services.DestinationService) *DestinationController {
	return &DestinationController{service: service}
}

// GetDestinations handles GET /api/destinations with optional category and
// search filters.
func (ctrl *DestinationController) GetDestinations(c *gin.Context) {
	filter := repositories.ListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	destinations, err := ctrl.service.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, destinations)
}

func (ctrl *DestinationController) GetDestinationByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	destination, err := ctrl.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, destination)
}

func (ctrl *DestinationController) CreateDestination(c *gin.Context) {
	var destination models.Destination
	if err := c.ShouldBindJSON(&destination); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := ctrl.service.Create(&destination)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (ctrl *DestinationController) UpdateDestination(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	updated, err := ctrl.service.Update(id, fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (ctrl *DestinationController) DeleteDestination(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
