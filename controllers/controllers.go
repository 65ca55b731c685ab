package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"tour-backend/repositories"
	"tour-backend/services"
	"tour-backend/utils"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter. A non-numeric id is a 400; the
// response is already written when ok is false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// respondError maps service/repository errors onto the API's status codes:
// validation 400, missing row 404, anything else 500 with the raw provider
// message.
func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, repositories.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found")
	default:
		log.Printf("❌ DB ERROR: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

// boolParam turns ?name=true / ?name=false into a filter pointer; any other
// value (or absence) means no filter.
func boolParam(c *gin.Context, name string) *bool {
	switch c.Query(name) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}
