package api

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"aihub/resume"
)

type PortfolioHandler struct {
	orchestrator *resume.Orchestrator
	uploadDir    string
}

func NewPortfolioHandler(orchestrator *resume.Orchestrator) *PortfolioHandler {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	os.MkdirAll(dir, 0755)
	return &PortfolioHandler{
		orchestrator: orchestrator,
		uploadDir:    dir,
	}
}

// HandlePortfolio accepts a resume upload, runs the extraction pipeline and
// returns the portfolio record. The file is processed once and discarded.
func (h *PortfolioHandler) HandlePortfolio(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return ErrNoFile()
	}
	if strings.TrimSpace(fileHeader.Filename) == "" {
		return NewError(fiber.StatusBadRequest, "empty filename")
	}

	path := filepath.Join(h.uploadDir, uuid.NewString()+"_"+filepath.Base(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, path); err != nil {
		return err
	}
	defer os.Remove(path)

	record, err := h.orchestrator.ResumeToPortfolio(c.Context(), path)
	if err != nil {
		return err
	}

	return c.JSON(record)
}
