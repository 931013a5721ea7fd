package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeparser/api/http/presenter"
	"github.com/artem13815/resumeparser/pkg/logger"
	"github.com/artem13815/resumeparser/pkg/resume"
)

// ParseHandler exposes the extraction pipeline as a JSON endpoint.
type ParseHandler struct {
	svc      *resume.Service
	log      *logger.Logger
	maxBytes int64
}

func NewParseHandler(svc *resume.Service, log *logger.Logger, maxBytes int64) *ParseHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ParseHandler{svc: svc, log: log.WithComponent("http.parse"), maxBytes: maxBytes}
}

// ParseResponse is the body returned by Parse.
type ParseResponse struct {
	Batch   resume.Batch   `json:"batch"`
	Summary resume.Summary `json:"summary"`
}

// Parse извлекает имя, email, телефон и навыки из загруженных резюме.
// @Summary Parse resumes
// @Description Accepts one or more PDF/DOCX files and returns one record per file. Documents that cannot be read come back with status "failed".
// @Tags    resumes
// @Accept  multipart/form-data
// @Produce json
// @Param   files formData file true "Resume files (PDF or DOCX)"
// @Success 200 {object} handlers.ParseResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes/parse [post]
func (h *ParseHandler) Parse(c *fiber.Ctx) error {
	docs, err := readUploads(c, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	b, err := h.svc.ParseDocuments(c.UserContext(), docs, resume.SourceUpload)
	if err != nil {
		h.log.Error().Err(err).Int("documents", len(docs)).Msg("parse uploads")
		return presenter.Error(c, http.StatusInternalServerError, "failed to parse resumes")
	}
	return presenter.JSON(c, http.StatusOK, ParseResponse{Batch: b, Summary: resume.Summarize(b)})
}
