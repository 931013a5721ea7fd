package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeparser/pkg/logger"
	"github.com/artem13815/resumeparser/pkg/resume"
)

// NoTopSkill is shown when no uploaded resume matched any skill.
const NoTopSkill = "N/A"

// WebHandler serves the upload page and renders parsed batches.
type WebHandler struct {
	svc      *resume.Service
	log      *logger.Logger
	maxBytes int64
}

func NewWebHandler(svc *resume.Service, log *logger.Logger, maxBytes int64) *WebHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &WebHandler{svc: svc, log: log.WithComponent("http.web"), maxBytes: maxBytes}
}

type skillBar struct {
	Skill   string
	Count   int
	Percent int
}

func (h *WebHandler) Index(c *fiber.Ctx) error {
	return c.Render("index", h.indexData(""))
}

func (h *WebHandler) Upload(c *fiber.Ctx) error {
	docs, err := readUploads(c, h.maxBytes)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return c.Render("index", h.indexData(err.Error()))
	}
	b, err := h.svc.ParseDocuments(c.UserContext(), docs, resume.SourceUpload)
	if err != nil {
		h.log.Error().Err(err).Msg("parse uploads")
		c.Status(http.StatusInternalServerError)
		return c.Render("index", h.indexData("failed to parse resumes"))
	}

	sum := resume.Summarize(b)
	top := sum.TopSkill
	if top == "" {
		top = NoTopSkill
	}
	return c.Render("results", fiber.Map{
		"Batch":    b,
		"Summary":  sum,
		"TopSkill": top,
		"Bars":     skillBars(sum.Frequencies),
		"CSVURL":   "/batches/" + b.ID.String() + "/" + CSVFilename,
	})
}

func (h *WebHandler) indexData(errMsg string) fiber.Map {
	return fiber.Map{
		"Error":  errMsg,
		"Skills": h.svc.Extractor().Catalog().Skills(),
		"MaxMB":  h.maxBytes >> 20,
	}
}

// skillBars scales counts against the most frequent skill for the chart.
func skillBars(freq []resume.SkillCount) []skillBar {
	bars := make([]skillBar, 0, len(freq))
	if len(freq) == 0 {
		return bars
	}
	top := freq[0].Count
	for _, f := range freq {
		bars = append(bars, skillBar{Skill: f.Skill, Count: f.Count, Percent: f.Count * 100 / top})
	}
	return bars
}
