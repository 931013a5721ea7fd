package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/resumeparser/api/http/presenter"
	"github.com/artem13815/resumeparser/pkg/resume"
)

// CSVFilename is the download name of every exported batch.
const CSVFilename = "parsed_resumes.csv"

type BatchesHandler struct {
	repo resume.Repository
}

func NewBatchesHandler(repo resume.Repository) *BatchesHandler {
	return &BatchesHandler{repo: repo}
}

// List возвращает последние партии без записей.
// @Summary List batches
// @Tags    batches
// @Produce json
// @Param   limit  query int false "Page size (max 200)"
// @Param   offset query int false "Offset"
// @Success 200 {array} resume.Batch
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /batches [get]
func (h *BatchesHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.repo.List(c.UserContext(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list batches")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get возвращает партию с записями и сводкой.
// @Summary Get batch
// @Tags    batches
// @Produce json
// @Param   id path string true "Batch ID (UUID)"
// @Success 200 {object} handlers.ParseResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /batches/{id} [get]
func (h *BatchesHandler) Get(c *fiber.Ctx) error {
	b, status, msg := h.load(c)
	if status != 0 {
		return presenter.Error(c, status, msg)
	}
	return presenter.JSON(c, http.StatusOK, ParseResponse{Batch: b, Summary: resume.Summarize(b)})
}

// CSV скачивает партию в формате parsed_resumes.csv.
// @Summary Download batch as CSV
// @Tags    batches
// @Produce text/csv
// @Param   id     path  string true  "Batch ID (UUID)"
// @Param   errors query bool   false "Append Status and Error columns"
// @Success 200 {file} file
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /batches/{id}/csv [get]
func (h *BatchesHandler) CSV(c *fiber.Ctx) error {
	b, status, msg := h.load(c)
	if status != 0 {
		return presenter.Error(c, status, msg)
	}
	var buf bytes.Buffer
	if err := resume.WriteCSV(&buf, b.Records, resume.CSVOptions{IncludeErrors: c.QueryBool("errors")}); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to render csv")
	}
	c.Attachment(CSVFilename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func (h *BatchesHandler) load(c *fiber.Ctx) (resume.Batch, int, string) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return resume.Batch{}, http.StatusBadRequest, "invalid id"
	}
	b, err := h.repo.Get(c.UserContext(), id)
	if errors.Is(err, resume.ErrNotFound) {
		return resume.Batch{}, http.StatusNotFound, "batch not found"
	}
	if err != nil {
		return resume.Batch{}, http.StatusInternalServerError, "failed to load batch"
	}
	return b, 0, ""
}
