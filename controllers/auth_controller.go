package controllers

import (
	"errors"
	"net/http"

	"staybnb-backend/auth"
	"staybnb-backend/config"
	"staybnb-backend/middleware"
	"staybnb-backend/services"
	"staybnb-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Users *services.UserService
	Cfg   *config.Config
}

func NewAuthController(users *services.UserService, cfg *config.Config) *AuthController {
	return &AuthController{Users: users, Cfg: cfg}
}

type registerPayload struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateEmailPayload struct {
	NewEmail string `json:"newEmail"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	user, err := ac.Users.Register(payload.Name, payload.Username, payload.Phone, payload.Email, payload.Password)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (ac *AuthController) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", false, true)
}

// Login checks credentials and sets the session token as an HTTP-only cookie.
// An unknown email and a wrong password fail with different statuses, the
// contract the frontend distinguishes on.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	user, err := ac.Users.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusUnauthorized, "not found")
			return
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "password not ok")
			return
		}
		utils.ServiceError(c, err)
		return
	}

	token, err := auth.IssueToken(auth.Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Username: user.Username,
		Phone:    user.Phone,
	}, ac.Cfg.JWTSecret, ac.Cfg.JWTTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	ac.setTokenCookie(c, token, int(ac.Cfg.JWTTTL.Seconds()))
	c.JSON(http.StatusOK, user)
}

// Profile returns the caller's decoded claims, or null for an anonymous
// request. Runs behind OptionalUser.
func (ac *AuthController) Profile(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       claims.UserID,
		"email":    claims.Email,
		"name":     claims.Name,
		"username": claims.Username,
		"phone":    claims.Phone,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	ac.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, true)
}

func (ac *AuthController) UpdateEmail(c *gin.Context) {
	var payload updateEmailPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	claims := middleware.CurrentClaims(c)
	user, err := ac.Users.UpdateEmail(claims.UserID, payload.NewEmail)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
