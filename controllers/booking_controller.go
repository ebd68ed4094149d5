package controllers

import (
	"net/http"

	"staybnb-backend/middleware"
	"staybnb-backend/services"
	"staybnb-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

func (bc *BookingController) Create(c *gin.Context) {
	var fields services.BookingFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	claims := middleware.CurrentClaims(c)
	booking, err := bc.Bookings.Create(claims.UserID, fields)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) ListOwn(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	bookings, err := bc.Bookings.ListByUser(claims.UserID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	claims := middleware.CurrentClaims(c)
	if err := bc.Bookings.Delete(id, claims.UserID); err != nil {
		utils.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, "ok")
}
