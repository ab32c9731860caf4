package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/portfolio-api/internal/api/metrics"
	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

type ResumeHandler struct {
	service ports.ResumeService
}

func NewResumeHandler(service ports.ResumeService) *ResumeHandler {
	return &ResumeHandler{service: service}
}

type resumeLink struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Download handles GET /resume/download.
//
// @Summary      Resume download link
// @Description  Records a download event and returns where the file lives.
// @Tags         resume
// @Produce      json
// @Success      200  {object}  Envelope{data=resumeLink}
// @Failure      404  {object}  ErrorResponse
// @Router       /resume/download [get]
func (h *ResumeHandler) Download(c echo.Context) error {
	res, err := h.service.Download(c.Request().Context(), requestMeta(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Resume available", resumeLink{Filename: res.Filename, URL: res.URL})
}

// Upload handles POST /resume/upload.
//
// @Summary      Upload a new resume
// @Description  Multipart form with a single PDF under "file".
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Security     AdminToken
// @Security     BearerAuth
// @Param        file  formData  file  true  "PDF document"
// @Success      201   {object}  Envelope{data=domain.Resume}
// @Failure      400   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Router       /resume/upload [post]
func (h *ResumeHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return domain.NewValidationError("file", "is required")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := h.service.Upload(c.Request().Context(), ports.UploadResumeInput{
		Filename: fh.Filename,
		Size:     fh.Size,
		Content:  f,
	})
	if err != nil {
		return err
	}

	metrics.ResumeUploadBytes.Observe(float64(res.Size))
	return respond(c, http.StatusCreated, "Resume uploaded successfully", res)
}
