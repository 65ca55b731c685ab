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

type ActivityController struct {
	service services.ActivityService
}

func NewActivityController(service services.ActivityService) *ActivityController {
	return &ActivityController{service: service}
}

func (ctrl *ActivityController) GetActivities(c *gin.Context) {
	opts := services.ActivityListOptions{
		Filter: repositories.ListFilter{
			Category:  c.Query("category"),
			Search:    c.Query("search"),
			Published: boolParam(c, "published"),
		},
		PriceRange: c.Query("price_range"),
	}

	activities, err := ctrl.service.List(opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

func (ctrl *ActivityController) GetActivityByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	activity, err := ctrl.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

func (ctrl *ActivityController) CreateActivity(c *gin.Context) {
	var activity models.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := ctrl.service.Create(&activity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (ctrl *ActivityController) UpdateActivity(c *gin.Context) {
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

func (ctrl *ActivityController) DeleteActivity(c *gin.Context) {
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
