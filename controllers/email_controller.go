package controllers

import (
	"errors"
	"net/http"

	"staybnb-backend/utils"

	"github.com/gin-gonic/gin"
)

type EmailController struct {
	Mailer *utils.Mailer
}

func NewEmailController(mailer *utils.Mailer) *EmailController {
	return &EmailController{Mailer: mailer}
}

type sendEmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (ec *EmailController) SendEmail(c *gin.Context) {
	var payload sendEmailPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ec.Mailer.SendEmail(payload.To, payload.Subject, payload.Text); err != nil {
		if errors.Is(err, utils.ErrInvalidRecipient) {
			utils.JSONError(c, http.StatusBadRequest, "invalid email address")
			return
		}
		// transport failure: surface the transport's message
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, "Email sent successfully")
}
