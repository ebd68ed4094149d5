package controllers

import (
	"net/http"

	"staybnb-backend/middleware"
	"staybnb-backend/services"
	"staybnb-backend/utils"

	"github.com/gin-gonic/gin"
)

type LikedController struct {
	Liked *services.LikedService
}

func NewLikedController(liked *services.LikedService) *LikedController {
	return &LikedController{Liked: liked}
}

type likePayload struct {
	PlaceID uint `json:"place"`
}

type unlikePayload struct {
	PlaceID uint `json:"placeId"`
}

func (lc *LikedController) Like(c *gin.Context) {
	var payload likePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	claims := middleware.CurrentClaims(c)
	liked, err := lc.Liked.Like(claims.UserID, payload.PlaceID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, liked)
}

func (lc *LikedController) ListOwn(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	liked, err := lc.Liked.ListByUser(claims.UserID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, liked)
}

// Unlike addresses the favorite by placeId in the body, matching the wire
// contract of the like/unlike pair.
func (lc *LikedController) Unlike(c *gin.Context) {
	var payload unlikePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	claims := middleware.CurrentClaims(c)
	if err := lc.Liked.Unlike(claims.UserID, payload.PlaceID); err != nil {
		utils.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, "ok")
}
