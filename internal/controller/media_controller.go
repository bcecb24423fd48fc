package controller

import (
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/middleware"
	"CivicReportAPI/internal/model"
	"CivicReportAPI/internal/service"
	"log/slog"
	"net/http"
)

type MediaController struct {
	mediaService *service.MediaService
}

func NewMediaController(mediaService *service.MediaService) *MediaController {
	return &MediaController{
		mediaService: mediaService,
	}
}

// UploadReportImage godoc
// @Summary      Upload Report Image
// @Description  Upload one image to attach to a report later. The returned reference goes into the report's image_refs.
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Image file"
// @Success      201  {object}  helper.ResponseSuccess{data=model.MediaDTO}
// @Failure      400  {object}  helper.ResponseError
// @Failure      401  {object}  helper.ResponseError
// @Failure      429  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/media/report-images [post]
func (c *MediaController) UploadReportImage(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserDTO)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		slog.Warn("Error retrieving file", "error", err)
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}
	defer file.Close()

	req := model.UploadMediaRequest{
		File: header,
	}

	resp, err := c.mediaService.UploadReportImage(r.Context(), userContext.ID, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteCreated(w, resp)
}
