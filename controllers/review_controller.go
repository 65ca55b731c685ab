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

type ReviewController struct {
	service services.ReviewService
}

func NewReviewController(service services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

// GetReviews handles GET /api/reviews. Without an approved parameter only
// approved reviews come back (the public-safe default); approved=false
// drops the filter entirely so the admin view sees everything.
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	filter := repositories.ListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	if c.Query("approved") != "false" {
		approved := true
		filter.Approved = &approved
	}

	reviews, err := ctrl.service.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (ctrl *ReviewController) GetReviewByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	review, err := ctrl.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// CreateReview is the one public write endpoint: the visitor review form
// posts here directly.
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := ctrl.service.Create(&review)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
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

func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
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
