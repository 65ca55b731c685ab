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

type BlogController struct {
	service services.BlogService
}

func NewBlogController(service services.BlogService) *BlogController {
	return &BlogController{service: service}
}

// GetBlogPosts handles GET /api/blog. The public listing always passes
// published=true; the admin manager omits it to see drafts too.
func (ctrl *BlogController) GetBlogPosts(c *gin.Context) {
	opts := services.BlogListOptions{
		Filter: repositories.ListFilter{
			Category:  c.Query("category"),
			Search:    c.Query("search"),
			Published: boolParam(c, "published"),
			Featured:  boolParam(c, "featured"),
		},
		Tag: c.Query("tag"),
	}

	posts, err := ctrl.service.List(opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (ctrl *BlogController) GetBlogPostByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := ctrl.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (ctrl *BlogController) CreateBlogPost(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := ctrl.service.Create(&post)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (ctrl *BlogController) UpdateBlogPost(c *gin.Context) {
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

func (ctrl *BlogController) DeleteBlogPost(c *gin.Context) {
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
