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

type PackageController struct {
	service services.PackageService
}

func NewPackageController(service services.PackageService) *PackageController {
	return &PackageController{service: service}
}

// GetPackages handles GET /api/packages. The public site passes
// published=true plus the dropdown bucket labels; the admin list passes
// nothing and sees everything.
func (ctrl *PackageController) GetPackages(c *gin.Context) {
	opts := services.PackageListOptions{
		Filter: repositories.ListFilter{
			Category:  c.Query("category"),
			Search:    c.Query("search"),
			Published: boolParam(c, "published"),
			Featured:  boolParam(c, "featured"),
		},
		PriceRange:    c.Query("price_range"),
		DurationRange: c.Query("duration_range"),
	}

	packages, err := ctrl.service.List(opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, packages)
}

func (ctrl *PackageController) GetPackageByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	pkg, err := ctrl.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg)
}

func (ctrl *PackageController) CreatePackage(c *gin.Context) {
	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := ctrl.service.Create(&pkg)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (ctrl *PackageController) UpdatePackage(c *gin.Context) {
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

func (ctrl *PackageController) DeletePackage(c *gin.Context) {
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
