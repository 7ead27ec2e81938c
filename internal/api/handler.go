package api

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Sandunbit/hotel-maintenance-agent/internal/extractor"
	"github.com/Sandunbit/hotel-maintenance-agent/internal/models"
	"github.com/Sandunbit/hotel-maintenance-agent/internal/parser"
	"github.com/Sandunbit/hotel-maintenance-agent/internal/report"
	"github.com/Sandunbit/hotel-maintenance-agent/internal/rules"
	"github.com/Sandunbit/hotel-maintenance-agent/internal/store"
	"github.com/Sandunbit/hotel-maintenance-agent/internal/writer"
)

const version = "1.0.0"

// Server holds the handlers for the maintenance API.
type Server struct {
	Store store.RecordStore
	Rules *rules.Table
}

// NewApp builds the Fiber application with all routes registered.
func NewApp(srv *Server) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 8 << 20,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/api/health", srv.HandleHealth)
	app.Post("/api/jobs", srv.HandleExtractJobs)
	app.Get("/api/jobs", srv.HandleListJobs)
	app.Patch("/api/jobs/:id/status", srv.HandleUpdateStatus)
	app.Get("/api/dashboard", srv.HandleDashboard)
	app.Post("/api/materials", srv.HandleMaterials)
	app.Post("/api/duplicates", srv.HandleDuplicates)

	return app
}

// pasteRequest is the body for endpoints that take pasted text.
type pasteRequest struct {
	Text string `json:"text"`
}

// extractJobsResponse is the JSON response from POST /api/jobs.
type extractJobsResponse struct {
	Success bool               `json:"success"`
	Error   string             `json:"error,omitempty"`
	Jobs    []models.JobRecord `json:"jobs"`
	Count   int                `json:"count"`
	Skipped int                `json:"skipped"`
}

// materialsResponse is the JSON response from POST /api/materials and is
// embedded in the dashboard payload.
type materialsResponse struct {
	Success   bool               `json:"success"`
	Error     string             `json:"error,omitempty"`
	Jobs      []models.JobRecord `json:"jobs,omitempty"`
	Materials map[string]int     `json:"materials"`
	Skipped   int                `json:"skipped"`
	CSV       string             `json:"csv,omitempty"`
}

// duplicatesResponse is the JSON response from POST /api/duplicates.
type duplicatesResponse struct {
	Success bool                    `json:"success"`
	Error   string                  `json:"error,omitempty"`
	Entries []models.FinancialEntry `json:"entries"`
	Groups  []models.DuplicateGroup `json:"groups"`
	Skipped int                     `json:"skipped"`
	CSV     string                  `json:"csv,omitempty"`
}

// dashboardResponse is the JSON response from GET /api/dashboard.
type dashboardResponse struct {
	Success       bool                  `json:"success"`
	Total         int                   `json:"total"`
	ByStatus      map[models.Status]int `json:"byStatus"`
	ByRoom        map[string]int        `json:"byRoom"`
	ByDescription map[string]int        `json:"byDescription"`
	OpenByRoom    map[string]int        `json:"openByRoom"`
	Materials     map[string]int        `json:"materials"`
}

func (s *Server) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": version,
	})
}

// HandleExtractJobs takes pasted ticket text, extracts job records,
// appends them to the store, and reports what was skipped.
func (s *Server) HandleExtractJobs(c *fiber.Ctx) error {
	text, errResp := pastedText(c)
	if errResp != "" {
		return c.Status(fiber.StatusBadRequest).JSON(extractJobsResponse{Error: errResp})
	}

	result := parser.ExtractJobs(text, time.Now())
	if err := s.Store.Append(c.Context(), result.Jobs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(extractJobsResponse{Error: err.Error()})
	}

	jobs := result.Jobs
	if jobs == nil {
		jobs = []models.JobRecord{} // nil marshals to JSON null, not []
	}
	return c.JSON(extractJobsResponse{
		Success: true,
		Jobs:    jobs,
		Count:   len(jobs),
		Skipped: result.Skipped,
	})
}

// HandleListJobs returns the stored record set, optionally narrowed by
// room, status, and description-substring filters.
func (s *Server) HandleListJobs(c *fiber.Ctx) error {
	jobs, err := s.Store.LoadAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	status := models.Status(c.Query("status"))
	if status != "" && !validStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("unknown status %q", status),
		})
	}

	filtered := report.Filter(jobs, c.Query("room"), status, c.Query("q"))
	if filtered == nil {
		filtered = []models.JobRecord{}
	}
	return c.JSON(fiber.Map{
		"success": true,
		"jobs":    filtered,
		"count":   len(filtered),
	})
}

// HandleUpdateStatus flips one job's status. The transition itself is not
// constrained beyond the known state set.
func (s *Server) HandleUpdateStatus(c *fiber.Ctx) error {
	var body struct {
		Status models.Status `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if !validStatus(body.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("unknown status %q", body.Status),
		})
	}

	err := s.Store.UpdateStatus(c.Context(), c.Params("id"), body.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleDashboard returns summary counts over the stored record set plus
// the materials needed for the open jobs.
func (s *Server) HandleDashboard(c *fiber.Ctx) error {
	jobs, err := s.Store.LoadAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	open := report.OpenJobs(jobs)
	return c.JSON(dashboardResponse{
		Success:       true,
		Total:         len(jobs),
		ByStatus:      report.CountByStatus(jobs),
		ByRoom:        report.CountByRoom(jobs),
		ByDescription: report.CountByDescription(jobs),
		OpenByRoom:    report.OpenByRoom(jobs),
		Materials:     s.Rules.MaterialsNeeded(report.Descriptions(open)),
	})
}

// HandleMaterials takes pasted ticket text and returns the consumable
// materials the pasted jobs require, without touching the store.
func (s *Server) HandleMaterials(c *fiber.Ctx) error {
	text, errResp := pastedText(c)
	if errResp != "" {
		return c.Status(fiber.StatusBadRequest).JSON(materialsResponse{Error: errResp})
	}

	result := parser.ExtractJobs(text, time.Now())
	if len(result.Jobs) == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(materialsResponse{
			Error: "no valid job entries found",
		})
	}

	needed := s.Rules.MaterialsNeeded(report.Descriptions(result.Jobs))

	var csvBuf bytes.Buffer
	w := &writer.CSVWriter{IncludeHeader: true}
	if err := w.WriteMaterials(&csvBuf, needed); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(materialsResponse{Error: err.Error()})
	}

	return c.JSON(materialsResponse{
		Success:   true,
		Jobs:      result.Jobs,
		Materials: needed,
		Skipped:   result.Skipped,
		CSV:       csvBuf.String(),
	})
}

// HandleDuplicates takes pasted statement text, or an uploaded statement
// PDF in form field "file", and returns the duplicate-amount groups.
func (s *Server) HandleDuplicates(c *fiber.Ctx) error {
	text, errResp := statementText(c)
	if errResp != "" {
		return c.Status(fiber.StatusBadRequest).JSON(duplicatesResponse{Error: errResp})
	}

	result := parser.ExtractEntries(text)
	if len(result.Entries) == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(duplicatesResponse{
			Error: "no valid debit entries found",
		})
	}

	groups := report.GroupDuplicates(result.Entries)

	var csvBuf bytes.Buffer
	w := &writer.CSVWriter{IncludeHeader: true}
	if err := w.WriteDuplicates(&csvBuf, groups); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(duplicatesResponse{Error: err.Error()})
	}

	if groups == nil {
		groups = []models.DuplicateGroup{}
	}
	return c.JSON(duplicatesResponse{
		Success: true,
		Entries: result.Entries,
		Groups:  groups,
		Skipped: result.Skipped,
		CSV:     csvBuf.String(),
	})
}

// pastedText pulls the text blob from a JSON body or the "text" form
// field. Empty input is a validation problem, not a processing failure.
func pastedText(c *fiber.Ctx) (text, errMsg string) {
	var body pasteRequest
	if err := c.BodyParser(&body); err == nil && body.Text != "" {
		text = body.Text
	} else {
		text = c.FormValue("text")
	}
	if strings.TrimSpace(text) == "" {
		return "", "nothing to process"
	}
	return text, ""
}

// statementText is pastedText plus the PDF-upload path for statements.
func statementText(c *fiber.Ctx) (text, errMsg string) {
	file, err := c.FormFile("file")
	if err != nil {
		return pastedText(c)
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return "", "only PDF uploads are supported; paste other formats as text"
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return "", "failed to store uploaded file"
	}
	defer os.Remove(tmp.Name())
	tmp.Close()

	if err := c.SaveFile(file, tmp.Name()); err != nil {
		return "", "failed to store uploaded file"
	}

	text, err = extractor.ExtractTextCombined(tmp.Name())
	if err != nil {
		return "", err.Error()
	}
	return text, ""
}

func validStatus(s models.Status) bool {
	return s == models.StatusOpen || s == models.StatusClosed
}
