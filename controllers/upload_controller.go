package controllers

import (
	"net/http"

	"staybnb-backend/services"
	"staybnb-backend/utils"

	"github.com/gin-gonic/gin"
)

const maxUploadFiles = 100

type UploadController struct {
	Uploads *services.UploadService
}

func NewUploadController(uploads *services.UploadService) *UploadController {
	return &UploadController{Uploads: uploads}
}

type uploadByLinkPayload struct {
	Link string `json:"link"`
}

func (uc *UploadController) UploadByLink(c *gin.Context) {
	var payload uploadByLinkPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Link == "" {
		utils.JSONError(c, http.StatusUnprocessableEntity, "link is required")
		return
	}

	name, err := uc.Uploads.DownloadByLink(payload.Link)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, name)
}

func (uc *UploadController) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid multipart form")
		return
	}

	files := form.File["photos"]
	if len(files) == 0 {
		utils.JSONError(c, http.StatusUnprocessableEntity, "no files provided")
		return
	}
	if len(files) > maxUploadFiles {
		files = files[:maxUploadFiles]
	}

	names := make([]string, 0, len(files))
	for _, fh := range files {
		name, err := uc.Uploads.SaveFile(fh)
		if err != nil {
			utils.ServiceError(c, err)
			return
		}
		names = append(names, name)
	}
	c.JSON(http.StatusOK, names)
}
