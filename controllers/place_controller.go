package controllers

import (
	"net/http"
	"strconv"

	"staybnb-backend/middleware"
	"staybnb-backend/services"
	"staybnb-backend/utils"

	"github.com/gin-gonic/gin"
)

type PlaceController struct {
	Places *services.PlaceService
}

func NewPlaceController(places *services.PlaceService) *PlaceController {
	return &PlaceController{Places: places}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (pc *PlaceController) Create(c *gin.Context) {
	var fields services.PlaceFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	claims := middleware.CurrentClaims(c)
	place, err := pc.Places.Create(claims.UserID, fields)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

func (pc *PlaceController) ListOwn(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	places, err := pc.Places.ListByOwner(claims.UserID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

// ListAll is the public catalog, no authentication.
func (pc *PlaceController) ListAll(c *gin.Context) {
	places, err := pc.Places.ListAll()
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

func (pc *PlaceController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	place, err := pc.Places.GetByID(id)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

type updatePlacePayload struct {
	ID uint `json:"id"`
	services.PlaceFields
}

// Update takes the listing id from the request body, not the path. That is
// the wire contract existing clients rely on.
func (pc *PlaceController) Update(c *gin.Context) {
	var payload updatePlacePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	claims := middleware.CurrentClaims(c)
	place, err := pc.Places.Update(payload.ID, claims.UserID, payload.PlaceFields)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

func (pc *PlaceController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	claims := middleware.CurrentClaims(c)
	if err := pc.Places.Delete(id, claims.UserID); err != nil {
		utils.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, "ok")
}
