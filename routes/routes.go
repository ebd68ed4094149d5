package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"staybnb-backend/config"
	"staybnb-backend/controllers"
	"staybnb-backend/middleware"
)

// SetupRouter wires the controllers onto the public route table. Paths and
// auth requirements follow the existing client contract: mutating routes sit
// behind RequireUser, catalog reads stay open.
func SetupRouter(
	cfg *config.Config,
	ac *controllers.AuthController,
	pc *controllers.PlaceController,
	bc *controllers.BookingController,
	lc *controllers.LikedController,
	uc *controllers.UploadController,
	ec *controllers.EmailController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	r.Static("/uploads", "./"+cfg.UploadDir)

	origins := cfg.CORSOrigins
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	requireUser := middleware.RequireUser(cfg.JWTSecret)
	optionalUser := middleware.OptionalUser(cfg.JWTSecret)

	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, "test ok")
	})

	r.POST("/register", ac.Register)
	r.GET("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, "fine")
	})
	r.POST("/login", ac.Login)
	r.GET("/profile", optionalUser, ac.Profile)
	r.POST("/logout", ac.Logout)
	r.PUT("/update-email", requireUser, ac.UpdateEmail)

	r.POST("/upload-by-link", uc.UploadByLink)
	r.POST("/upload", uc.Upload)

	r.POST("/places", requireUser, pc.Create)
	r.GET("/user-places", requireUser, pc.ListOwn)
	r.GET("/places", pc.ListAll)
	r.GET("/places/:id", pc.GetByID)
	// id rides in the body here; existing clients PUT to the bare collection
	r.PUT("/places/", requireUser, pc.Update)
	r.DELETE("/places/:id", requireUser, pc.Delete)

	r.POST("/bookings", requireUser, bc.Create)
	r.GET("/bookings", requireUser, bc.ListOwn)
	r.DELETE("/bookings/:id", requireUser, bc.Delete)

	r.POST("/liked", requireUser, lc.Like)
	r.GET("/liked", requireUser, lc.ListOwn)
	r.DELETE("/liked", requireUser, lc.Unlike)

	r.POST("/send-email", ec.SendEmail)

	return r
}
